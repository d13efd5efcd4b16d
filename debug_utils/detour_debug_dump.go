package debug_utils

import (
	"errors"
	"fmt"
	"io"

	"github.com/gorustyt/gonavmesh/common/rw"
	"github.com/gorustyt/gonavmesh/detour"
)

// DuDumpNavMeshToObj writes the mesh geometry as a Wavefront OBJ file.
func DuDumpNavMeshToObj(mesh *detour.NavMesh, w io.Writer) error {
	if w == nil {
		return errors.New("duDumpNavMeshToObj: output is nil")
	}
	if mesh == nil {
		return errors.New("duDumpNavMeshToObj: mesh is nil")
	}
	buf := rw.NewNavMeshDataBinWriter()
	buf.WriteString("# Navigation mesh\n")
	buf.WriteString("o NavMesh\n")

	buf.WriteString("\n")

	for i := 0; i < mesh.VertCount(); i++ {
		v := mesh.Vert(i)
		buf.WriteString(fmt.Sprintf("v %f %f %f\n", v[0], v[1], v[2]))
	}

	buf.WriteString("\n")

	for i := 0; i < mesh.TriCount(); i++ {
		t := mesh.Triangle(int32(i))
		buf.WriteString(fmt.Sprintf("f %d %d %d\n", t.Verts[0]+1, t.Verts[1]+1, t.Verts[2]+1))
	}

	_, err := w.Write(buf.GetWriteBytes())
	return err
}
