package message

import (
	"fmt"

	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/reflect/protodesc"
	"google.golang.org/protobuf/reflect/protoreflect"
	"google.golang.org/protobuf/reflect/protoregistry"
	"google.golang.org/protobuf/types/descriptorpb"
	"google.golang.org/protobuf/types/dynamicpb"
)

func Encode(msg proto.Message) ([]byte, error) {
	data, err := proto.MarshalOptions{Deterministic: true}.Marshal(msg)
	if err != nil {
		return nil, fmt.Errorf("proto marshal: %w", err)
	}
	return data, nil
}

func Decode(data []byte, msg proto.Message) error {
	if err := proto.Unmarshal(data, msg); err != nil {
		return fmt.Errorf("proto unmarshal: %w", err)
	}
	return nil
}

func EncodeJSON(msg proto.Message) ([]byte, error) {
	data, err := protojson.MarshalOptions{Multiline: true}.Marshal(msg)
	if err != nil {
		return nil, fmt.Errorf("proto json marshal: %w", err)
	}
	return data, nil
}

// NavMeshData field numbers. Keep in sync with navMeshFile.
const (
	FieldVersion   = 1
	FieldVertices  = 2
	FieldTriangles = 3
)

// navMeshFile is the schema of the navigation mesh exchange message:
//
//	syntax = "proto3";
//	package gonavmesh;
//	message NavMeshData {
//	  uint32 version = 1;
//	  repeated float vertices = 2;
//	  repeated uint32 triangles = 3;
//	}
var navMeshFile = &descriptorpb.FileDescriptorProto{
	Name:    proto.String("gonavmesh/navmesh.proto"),
	Package: proto.String("gonavmesh"),
	Syntax:  proto.String("proto3"),
	MessageType: []*descriptorpb.DescriptorProto{{
		Name: proto.String("NavMeshData"),
		Field: []*descriptorpb.FieldDescriptorProto{
			{
				Name:     proto.String("version"),
				Number:   proto.Int32(FieldVersion),
				Label:    descriptorpb.FieldDescriptorProto_LABEL_OPTIONAL.Enum(),
				Type:     descriptorpb.FieldDescriptorProto_TYPE_UINT32.Enum(),
				JsonName: proto.String("version"),
			},
			{
				Name:     proto.String("vertices"),
				Number:   proto.Int32(FieldVertices),
				Label:    descriptorpb.FieldDescriptorProto_LABEL_REPEATED.Enum(),
				Type:     descriptorpb.FieldDescriptorProto_TYPE_FLOAT.Enum(),
				JsonName: proto.String("vertices"),
			},
			{
				Name:     proto.String("triangles"),
				Number:   proto.Int32(FieldTriangles),
				Label:    descriptorpb.FieldDescriptorProto_LABEL_REPEATED.Enum(),
				Type:     descriptorpb.FieldDescriptorProto_TYPE_UINT32.Enum(),
				JsonName: proto.String("triangles"),
			},
		},
	}},
}

var navMeshDesc protoreflect.MessageDescriptor

func init() {
	fd, err := protodesc.NewFile(navMeshFile, new(protoregistry.Files))
	if err != nil {
		panic(fmt.Sprintf("navmesh descriptor: %v", err))
	}
	navMeshDesc = fd.Messages().ByName("NavMeshData")
}

// NavMeshData is the decoded form of the exchange message.
type NavMeshData struct {
	Version   uint32
	Vertices  []float32
	Triangles []uint32
}

// ToProto builds a dynamic protobuf message holding d.
func (d *NavMeshData) ToProto() proto.Message {
	msg := dynamicpb.NewMessage(navMeshDesc)
	fields := navMeshDesc.Fields()
	msg.Set(fields.ByNumber(FieldVersion), protoreflect.ValueOfUint32(d.Version))
	verts := msg.Mutable(fields.ByNumber(FieldVertices)).List()
	for _, v := range d.Vertices {
		verts.Append(protoreflect.ValueOfFloat32(v))
	}
	tris := msg.Mutable(fields.ByNumber(FieldTriangles)).List()
	for _, t := range d.Triangles {
		tris.Append(protoreflect.ValueOfUint32(t))
	}
	return msg
}

// FromProto fills d from a message produced by ToProto or NewNavMeshMessage.
func (d *NavMeshData) FromProto(msg proto.Message) {
	m := msg.ProtoReflect()
	fields := navMeshDesc.Fields()
	d.Version = uint32(m.Get(fields.ByNumber(FieldVersion)).Uint())
	verts := m.Get(fields.ByNumber(FieldVertices)).List()
	d.Vertices = make([]float32, verts.Len())
	for i := range d.Vertices {
		d.Vertices[i] = float32(verts.Get(i).Float())
	}
	tris := m.Get(fields.ByNumber(FieldTriangles)).List()
	d.Triangles = make([]uint32, tris.Len())
	for i := range d.Triangles {
		d.Triangles[i] = uint32(tris.Get(i).Uint())
	}
}

// NewNavMeshMessage returns an empty NavMeshData message, ready for Decode.
func NewNavMeshMessage() proto.Message {
	return dynamicpb.NewMessage(navMeshDesc)
}
