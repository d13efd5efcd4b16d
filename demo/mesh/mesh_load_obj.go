package mesh

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path"
	"strconv"
	"strings"
)

// maxFaceVerts caps the polygon size accepted on an "f" line.
const maxFaceVerts = 32

// MeshLoaderObj loads the geometry of a Wavefront OBJ file.
// Only "v" and "f" records are read; polygons are fan triangulated.
type MeshLoaderObj struct {
	m_filename  string
	m_scale     float32
	m_verts     []float32
	m_tris      []uint32
	m_vertCount int
	m_triCount  int
}

func NewMeshLoaderObj() *MeshLoaderObj {
	return &MeshLoaderObj{m_scale: 1}
}

// SetScale multiplies every vertex read afterwards.
func (m *MeshLoaderObj) SetScale(scale float32) { m.m_scale = scale }

func (m *MeshLoaderObj) GetVerts() []float32 { return m.m_verts }
func (m *MeshLoaderObj) GetTris() []uint32   { return m.m_tris }
func (m *MeshLoaderObj) GetVertCount() int   { return m.m_vertCount }
func (m *MeshLoaderObj) GetTriCount() int    { return m.m_triCount }
func (m *MeshLoaderObj) GetFileName() string { return m.m_filename }

// LoadObj reads an OBJ file from disk.
func LoadObj(p string) (*MeshLoaderObj, error) {
	m := NewMeshLoaderObj()
	if err := m.Load(p); err != nil {
		return nil, err
	}
	return m, nil
}

// ParseObj reads OBJ text from r.
func ParseObj(r io.Reader) (*MeshLoaderObj, error) {
	m := NewMeshLoaderObj()
	if err := m.Parse(r); err != nil {
		return nil, err
	}
	return m, nil
}

func (m *MeshLoaderObj) Load(p string) error {
	f, err := os.Open(p)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := m.Parse(f); err != nil {
		return fmt.Errorf("%s: %w", p, err)
	}
	m.m_filename = path.Base(p)
	return nil
}

func (m *MeshLoaderObj) Parse(r io.Reader) error {
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		row := scanner.Text()
		if i := strings.IndexByte(row, '#'); i >= 0 {
			row = row[:i]
		}
		fields := strings.Fields(row)
		if len(fields) == 0 {
			continue
		}
		if err := m.parseRow(fields); err != nil {
			return fmt.Errorf("line %d: %w", lineNo, err)
		}
	}
	return scanner.Err()
}

func (m *MeshLoaderObj) parseRow(ss []string) error {
	switch ss[0] {
	case "v":
		return m.parseVertex(ss[1:])
	case "f":
		return m.parseFace(ss[1:])
	}
	// vt, vn, o, g, s, usemtl and friends carry nothing walkable.
	return nil
}

func (m *MeshLoaderObj) parseVertex(ss []string) error {
	if len(ss) < 3 {
		return fmt.Errorf("vertex needs 3 coordinates, got %d", len(ss))
	}
	var v [3]float32
	for i := range v {
		f, err := strconv.ParseFloat(ss[i], 32)
		if err != nil {
			return fmt.Errorf("vertex coordinate %q: %w", ss[i], err)
		}
		v[i] = float32(f)
	}
	m.addVertex(v[0], v[1], v[2])
	return nil
}

func (m *MeshLoaderObj) parseFace(ss []string) error {
	if len(ss) > maxFaceVerts {
		return fmt.Errorf("face has %d vertices, at most %d are supported", len(ss), maxFaceVerts)
	}
	data := make([]uint32, 0, len(ss))
	for _, s := range ss {
		// v, v/vt, v//vn and v/vt/vn all start with the position index.
		vs, _, _ := strings.Cut(s, "/")
		vi, err := strconv.Atoi(vs)
		if err != nil {
			return fmt.Errorf("face index %q: %w", s, err)
		}
		if vi < 0 {
			vi += m.m_vertCount
		} else {
			vi--
		}
		if vi < 0 || vi >= m.m_vertCount {
			return fmt.Errorf("face index %q outside %d vertices", s, m.m_vertCount)
		}
		data = append(data, uint32(vi))
	}
	if len(data) < 3 {
		return fmt.Errorf("face needs 3 vertices, got %d", len(data))
	}
	for i := 2; i < len(data); i++ {
		m.addTriangle(data[0], data[i-1], data[i])
	}
	return nil
}

func (m *MeshLoaderObj) addVertex(x, y, z float32) {
	m.m_verts = append(m.m_verts, x*m.m_scale, y*m.m_scale, z*m.m_scale)
	m.m_vertCount++
}

func (m *MeshLoaderObj) addTriangle(a, b, c uint32) {
	m.m_tris = append(m.m_tris, a, b, c)
	m.m_triCount++
}
