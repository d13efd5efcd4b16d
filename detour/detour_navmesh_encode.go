package detour

import (
	"fmt"

	"github.com/gorustyt/gonavmesh/common/message"
	"github.com/gorustyt/gonavmesh/common/rw"
)

const (
	NAVMESH_MAGIC   = 'N'<<24 | 'A'<<16 | 'V'<<8 | 'T' ///< Identifies a serialized navigation mesh.
	NAVMESH_VERSION = 1                                ///< Serialized navigation mesh format version.
)

// ToBin serializes the vertex and index buffers.
//
// Layout, little endian: magic u32, version u32, vertex count u32,
// triangle count u32, vertices as 3*count f32, indices as 3*count u32.
// Adjacency is not stored; it is rebuilt on load.
func (m *NavMesh) ToBin() []byte {
	w := rw.NewNavMeshDataBinWriter()
	w.WriteUInt32(NAVMESH_MAGIC)
	w.WriteUInt32(NAVMESH_VERSION)
	w.WriteUInt32(uint32(len(m.verts)))
	w.WriteUInt32(uint32(len(m.tris)))
	w.WriteFloat32s(m.Vertices())
	w.WriteUInt32s(m.Indices())
	return w.GetWriteBytes()
}

// FromBin decodes data written by ToBin and builds a mesh from it.
func FromBin(data []byte, opts ...Option) (*NavMesh, error) {
	r := rw.NewNavMeshDataBinReader(data)
	magic := r.ReadUInt32()
	version := r.ReadUInt32()
	if err := r.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrWrongMagic, err)
	}
	if magic != NAVMESH_MAGIC {
		return nil, fmt.Errorf("%w: magic 0x%08x", ErrWrongMagic, magic)
	}
	if version != NAVMESH_VERSION {
		return nil, fmt.Errorf("%w: version %d", ErrWrongVersion, version)
	}
	nverts := int(r.ReadUInt32())
	ntris := int(r.ReadUInt32())
	if err := r.Err(); err != nil {
		return nil, fmt.Errorf("%w: header: %w", ErrInvalidParam, err)
	}
	// Counts come from untrusted input; check them against the payload before allocating.
	if need := (nverts + ntris) * 3 * 4; nverts < 0 || ntris < 0 || need < 0 || r.Size() < need {
		return nil, fmt.Errorf("%w: %d vertices and %d triangles need %d bytes, have %d",
			ErrInvalidParam, nverts, ntris, (nverts+ntris)*12, r.Size())
	}
	verts := make([]float32, nverts*3)
	r.ReadFloat32s(verts)
	tris := make([]uint32, ntris*3)
	r.ReadUInt32s(tris)
	if err := r.Err(); err != nil {
		return nil, fmt.Errorf("%w: body: %w", ErrInvalidParam, err)
	}
	return NewNavMesh(verts, tris, opts...)
}

func (m *NavMesh) toMessage() *message.NavMeshData {
	return &message.NavMeshData{
		Version:   NAVMESH_VERSION,
		Vertices:  m.Vertices(),
		Triangles: m.Indices(),
	}
}

// ToProto encodes the mesh as a NavMeshData protobuf message.
func (m *NavMesh) ToProto() ([]byte, error) {
	return message.Encode(m.toMessage().ToProto())
}

// ToJSON renders the NavMeshData message in protobuf JSON form.
func (m *NavMesh) ToJSON() ([]byte, error) {
	return message.EncodeJSON(m.toMessage().ToProto())
}

// FromProto decodes a NavMeshData protobuf message and builds a mesh from it.
func FromProto(data []byte, opts ...Option) (*NavMesh, error) {
	msg := message.NewNavMeshMessage()
	if err := message.Decode(data, msg); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidParam, err)
	}
	var d message.NavMeshData
	d.FromProto(msg)
	if d.Version != NAVMESH_VERSION {
		return nil, fmt.Errorf("%w: version %d", ErrWrongVersion, d.Version)
	}
	return NewNavMesh(d.Vertices, d.Triangles, opts...)
}
