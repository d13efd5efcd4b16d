package debug_utils

import (
	"image"
	"image/draw"
	"image/png"
	"io"
	"math"
	"sync"

	"github.com/golang/freetype"
	"github.com/golang/freetype/truetype"
	"github.com/gorustyt/gonavmesh/common"
	"github.com/gorustyt/gonavmesh/detour"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/vector"
)

const (
	imageMargin   = 8
	imageFontSize = 10
)

var (
	labelFontOnce sync.Once
	labelFont     *truetype.Font
	labelFontErr  error
)

func loadLabelFont() (*truetype.Font, error) {
	labelFontOnce.Do(func() {
		labelFont, labelFontErr = freetype.ParseFont(goregular.TTF)
	})
	return labelFont, labelFontErr
}

// DuImageDraw rasterizes primitives into a top-down image of a mesh. Points
// are projected on the plane orthogonal to the mesh up axis.
type DuImageDraw struct {
	img   *image.NRGBA
	ras   *vector.Rasterizer
	list  *DuDisplayList
	hAxis int
	vAxis int
	minH  float32
	minV  float32
	scale float32
}

// NewDuImageDraw sizes an image so the longer side of the mesh bounds spans size pixels.
func NewDuImageDraw(mesh *detour.NavMesh, size int) *DuImageDraw {
	d := &DuImageDraw{list: NewDuDisplayList(256), scale: 1}
	up := common.AxisY
	var bmin, bmax common.Vec3
	if mesh != nil {
		up = mesh.UpAxis()
		bmin, bmax = mesh.Bounds()
	}
	u, v := up.Plane()
	d.hAxis, d.vAxis = min(u, v), max(u, v)
	d.minH, d.minV = bmin[d.hAxis], bmin[d.vAxis]
	extentH := bmax[d.hAxis] - d.minH
	extentV := bmax[d.vAxis] - d.minV
	if extent := max(extentH, extentV); extent > 0 {
		d.scale = float32(max(size-2*imageMargin, 1)) / extent
	}
	w := int(math.Ceil(float64(extentH*d.scale))) + 2*imageMargin
	h := int(math.Ceil(float64(extentV*d.scale))) + 2*imageMargin
	d.img = image.NewNRGBA(image.Rect(0, 0, w, h))
	draw.Draw(d.img, d.img.Bounds(), image.White, image.Point{}, draw.Src)
	d.ras = vector.NewRasterizer(w, h)
	return d
}

func (d *DuImageDraw) Image() *image.NRGBA { return d.img }

// Project maps a world position to image coordinates.
func (d *DuImageDraw) Project(p common.Vec3) (x, y float32) {
	x = (p[d.hAxis]-d.minH)*d.scale + imageMargin
	y = (p[d.vAxis]-d.minV)*d.scale + imageMargin
	return x, y
}

func (d *DuImageDraw) Begin(prim DuDebugDrawPrimitives, size ...float32) {
	d.list.Begin(prim, size...)
}

func (d *DuImageDraw) Vertex(pos common.Vec3, color Colorb) {
	d.list.Vertex(pos, color)
}

func (d *DuImageDraw) AreaToCol(area int) Colorb {
	return DuIntToCol(area, 255)
}

func (d *DuImageDraw) End() {
	l := d.list
	switch l.m_prim {
	case DU_DRAW_TRIS:
		for i := 0; i+2 < len(l.m_pos); i += 3 {
			ax, ay := d.Project(l.m_pos[i])
			bx, by := d.Project(l.m_pos[i+1])
			cx, cy := d.Project(l.m_pos[i+2])
			d.fill(l.m_color[i], [][2]float32{{ax, ay}, {bx, by}, {cx, cy}})
		}
	case DU_DRAW_LINES:
		for i := 0; i+1 < len(l.m_pos); i += 2 {
			d.line(l.m_pos[i], l.m_pos[i+1], l.m_color[i], l.m_primSize)
		}
	case DU_DRAW_POINTS:
		for i, p := range l.m_pos {
			x, y := d.Project(p)
			s := l.m_primSize / 2
			d.fill(l.m_color[i], [][2]float32{{x - s, y - s}, {x + s, y - s}, {x + s, y + s}, {x - s, y + s}})
		}
	}
	l.clear()
}

// line draws a segment as a quad of the given pixel width.
func (d *DuImageDraw) line(a, b common.Vec3, col Colorb, width float32) {
	ax, ay := d.Project(a)
	bx, by := d.Project(b)
	dx, dy := bx-ax, by-ay
	l := float32(math.Hypot(float64(dx), float64(dy)))
	if l == 0 {
		return
	}
	nx, ny := -dy/l*width/2, dx/l*width/2
	d.fill(col, [][2]float32{{ax + nx, ay + ny}, {bx + nx, by + ny}, {bx - nx, by - ny}, {ax - nx, ay - ny}})
}

func (d *DuImageDraw) fill(col Colorb, pts [][2]float32) {
	b := d.img.Bounds()
	d.ras.Reset(b.Dx(), b.Dy())
	d.ras.MoveTo(pts[0][0], pts[0][1])
	for _, p := range pts[1:] {
		d.ras.LineTo(p[0], p[1])
	}
	d.ras.ClosePath()
	d.ras.Draw(d.img, b, image.NewUniform(col.NRGBA()), image.Point{})
}

// Text draws a label with its baseline just above and right of pos.
func (d *DuImageDraw) Text(pos common.Vec3, text string, col Colorb) error {
	f, err := loadLabelFont()
	if err != nil {
		return err
	}
	x, y := d.Project(pos)
	c := freetype.NewContext()
	c.SetDPI(72)
	c.SetFont(f)
	c.SetFontSize(imageFontSize)
	c.SetClip(d.img.Bounds())
	c.SetDst(d.img)
	c.SetSrc(image.NewUniform(col.NRGBA()))
	_, err = c.DrawString(text, freetype.Pt(int(x)+3, int(y)-3))
	return err
}

// DuRenderNavMesh draws mesh, optionally a corridor and a path, and encodes the result as PNG.
func DuRenderNavMesh(w io.Writer, mesh *detour.NavMesh, corridor []int32, path []common.Vec3, size int) error {
	dd := NewDuImageDraw(mesh, size)
	DuDebugDrawNavMesh(dd, mesh, DU_DRAWNAVMESH_COMPONENTS|DU_DRAWNAVMESH_INNERBOUND)
	DuDebugDrawCorridor(dd, mesh, corridor, DuRGBA(255, 196, 0, 64))
	DuDebugDrawPath(dd, path, DuRGBA(255, 0, 0, 255), 2)
	if len(path) > 0 {
		if err := dd.Text(path[0], "S", DuRGBA(0, 0, 0, 255)); err != nil {
			return err
		}
		if err := dd.Text(path[len(path)-1], "E", DuRGBA(0, 0, 0, 255)); err != nil {
			return err
		}
	}
	return png.Encode(w, dd.Image())
}
