package mesh

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const quadObj = `# walkable quad
o Quad
v 0 0 0
v 4 0 0
v 4 0 4
v 0 0 4   # trailing comment
vn 0 1 0
vt 0 0

f 1//1 2//1 3//1 4//1
`

func TestParseObj(t *testing.T) {
	m, err := ParseObj(strings.NewReader(quadObj))
	require.NoError(t, err)
	assert.Equal(t, 4, m.GetVertCount())
	assert.Equal(t, 2, m.GetTriCount())
	assert.Equal(t, []float32{0, 0, 0, 4, 0, 0, 4, 0, 4, 0, 0, 4}, m.GetVerts())
	assert.Equal(t, []uint32{0, 1, 2, 0, 2, 3}, m.GetTris())
}

func TestParseObjNegativeIndices(t *testing.T) {
	m, err := ParseObj(strings.NewReader("v 0 0 0\nv 1 0 0\nv 0 0 1\nf -3 -2/5 -1/1/1\n"))
	require.NoError(t, err)
	assert.Equal(t, []uint32{0, 1, 2}, m.GetTris())
}

func TestParseObjErrors(t *testing.T) {
	tests := []struct {
		name string
		obj  string
	}{
		{"short vertex", "v 1 2\n"},
		{"bad coordinate", "v 1 x 2\n"},
		{"bad index", "v 0 0 0\nv 1 0 0\nv 0 0 1\nf 1 2 a\n"},
		{"index out of range", "v 0 0 0\nv 1 0 0\nv 0 0 1\nf 1 2 4\n"},
		{"zero index", "v 0 0 0\nv 1 0 0\nv 0 0 1\nf 0 1 2\n"},
		{"short face", "v 0 0 0\nv 1 0 0\nf 1 2\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseObj(strings.NewReader(tt.obj))
			assert.Error(t, err)
		})
	}
}

func TestParseObjLargeFace(t *testing.T) {
	var b strings.Builder
	face := "f"
	for i := 0; i < maxFaceVerts+1; i++ {
		fmt.Fprintf(&b, "v %d 0 %d\n", i, i*i)
		face += fmt.Sprintf(" %d", i+1)
	}
	_, err := ParseObj(strings.NewReader(b.String() + face + "\n"))
	assert.ErrorContains(t, err, "at most 32")

	// A face of exactly maxFaceVerts vertices is fanned completely.
	m, err := ParseObj(strings.NewReader(b.String() + "f" + face[strings.Index(face, " "):strings.LastIndex(face, " ")] + "\n"))
	require.NoError(t, err)
	assert.Equal(t, maxFaceVerts-2, m.GetTriCount())
}

func TestLoadObj(t *testing.T) {
	p := filepath.Join(t.TempDir(), "quad.obj")
	require.NoError(t, os.WriteFile(p, []byte(quadObj), 0o644))

	m, err := LoadObj(p)
	require.NoError(t, err)
	assert.Equal(t, "quad.obj", m.GetFileName())
	assert.Equal(t, 2, m.GetTriCount())

	_, err = LoadObj(filepath.Join(t.TempDir(), "missing.obj"))
	assert.Error(t, err)
}

func TestScale(t *testing.T) {
	m := NewMeshLoaderObj()
	m.SetScale(2)
	require.NoError(t, m.Parse(strings.NewReader("v 1 2 3\n")))
	assert.Equal(t, []float32{2, 4, 6}, m.GetVerts())
}
