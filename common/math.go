package common

import (
	"cmp"
	"math"
)

// Axis names one of the three coordinate axes.
type Axis int

const (
	AxisX Axis = iota
	AxisY
	AxisZ
)

func (a Axis) String() string {
	switch a {
	case AxisX:
		return "x"
	case AxisY:
		return "y"
	case AxisZ:
		return "z"
	}
	return "invalid"
}

// Plane returns the two axes spanning the plane orthogonal to a, in cyclic order.
func (a Axis) Plane() (u, v int) {
	return (int(a) + 1) % 3, (int(a) + 2) % 3
}

// Project drops the a component of p.
func (a Axis) Project(p Vec3) (u, v float32) {
	iu, iv := a.Plane()
	return p[iu], p[iv]
}

// / Derives the signed area of triangle ABC projected on the plane orthogonal to the axis.
// / The result equals the axis component of (B-A)x(C-A).
func (a Axis) TriArea2D(pa, pb, pc Vec3) float32 {
	u, v := a.Plane()
	abu := pb[u] - pa[u]
	abv := pb[v] - pa[v]
	acu := pc[u] - pa[u]
	acv := pc[v] - pa[v]
	return abu*acv - abv*acu
}

// DistancePtSegSqr2D returns the squared distance from pt to segment pq on the
// plane orthogonal to a, and the segment parameter of the closest point.
func (a Axis) DistancePtSegSqr2D(pt, p, q Vec3) (t float32, d float32) {
	u, v := a.Plane()
	pqu := q[u] - p[u]
	pqv := q[v] - p[v]
	du := pt[u] - p[u]
	dv := pt[v] - p[v]
	dd := pqu*pqu + pqv*pqv
	t = pqu*du + pqv*dv
	if dd > 0 {
		t /= dd
	}
	t = Clamp(t, 0, 1)
	du = p[u] + t*pqu - pt[u]
	dv = p[v] + t*pqv - pt[v]
	return t, du*du + dv*dv
}

// / Derives the signed xz-plane area of the triangle ABC, or the relationship of line AB to point C.
func TriArea2D(a, b, c Vec3) float32 {
	return AxisY.TriArea2D(a, b, c)
}

// / Returns the square of the value.
func Sqr[T IT](a T) T {
	return a * a
}

func Sqrt(x float64) float64 {
	return math.Sqrt(x)
}

// / Returns the absolute value.
func Abs[T IT](a T) T {
	if a < 0 {
		return -a
	}
	return a
}

// / Clamps the value to the specified range.
func Clamp[T cmp.Ordered](value, minInclusive, maxInclusive T) T {
	if value < minInclusive {
		return minInclusive
	}
	if value > maxInclusive {
		return maxInclusive
	}
	return value
}

// / Returns the square of the distance between two points.
func VdistSqr(v1, v2 Vec3) float32 {
	d := v2.Sub(v1)
	return d.Dot(d)
}

// / Returns the distance between two points.
func Vdist(v1, v2 Vec3) float32 {
	return float32(Sqrt(float64(VdistSqr(v1, v2))))
}

// / Performs a linear interpolation between two vectors. (@p v1 toward @p v2)
func Vlerp(v1, v2 Vec3, t float32) Vec3 {
	return Vec3{
		v1[0] + (v2[0]-v1[0])*t,
		v1[1] + (v2[1]-v1[1])*t,
		v1[2] + (v2[2]-v1[2])*t,
	}
}

// / Selects the minimum value of each element from the specified vectors.
func Vmin(a, b Vec3) Vec3 {
	return Vec3{min(a[0], b[0]), min(a[1], b[1]), min(a[2], b[2])}
}

// / Selects the maximum value of each element from the specified vectors.
func Vmax(a, b Vec3) Vec3 {
	return Vec3{max(a[0], b[0]), max(a[1], b[1]), max(a[2], b[2])}
}

// / Performs a 'sloppy' colocation check of the specified points.
// /
// / Basically, this function will return true if the specified points are
// / close enough to eachother to be considered colocated.
func Vequal(p0, p1 Vec3) bool {
	thr := Sqr(float32(1.0 / 16384.0))
	return VdistSqr(p0, p1) < thr
}

func IsFinite(v float32) bool {
	return !math.IsInf(float64(v), 0) && !math.IsNaN(float64(v))
}

// / Checks that the specified vector's components are all finite.
func Visfinite(v Vec3) bool {
	return IsFinite(v[0]) && IsFinite(v[1]) && IsFinite(v[2])
}

// TriAreaSqr64 returns the squared area of triangle ABC computed in float64.
func TriAreaSqr64(a, b, c Vec3) float64 {
	e1x, e1y, e1z := float64(b[0])-float64(a[0]), float64(b[1])-float64(a[1]), float64(b[2])-float64(a[2])
	e2x, e2y, e2z := float64(c[0])-float64(a[0]), float64(c[1])-float64(a[1]), float64(c[2])-float64(a[2])
	nx := e1y*e2z - e1z*e2y
	ny := e1z*e2x - e1x*e2z
	nz := e1x*e2y - e1y*e2x
	return (nx*nx + ny*ny + nz*nz) / 4
}

// ClosestPtPointTriangle returns the point of triangle ABC nearest to p.
// Regions are resolved in barycentric space, so points outside the triangle
// are clamped onto the closest edge or vertex.
func ClosestPtPointTriangle(p, a, b, c Vec3) Vec3 {
	ab := b.Sub(a)
	ac := c.Sub(a)
	ap := p.Sub(a)
	d1 := ab.Dot(ap)
	d2 := ac.Dot(ap)
	if d1 <= 0 && d2 <= 0 {
		return a
	}

	bp := p.Sub(b)
	d3 := ab.Dot(bp)
	d4 := ac.Dot(bp)
	if d3 >= 0 && d4 <= d3 {
		return b
	}

	vc := d1*d4 - d3*d2
	if vc <= 0 && d1 >= 0 && d3 <= 0 {
		return a.Add(ab.Mul(d1 / (d1 - d3)))
	}

	cp := p.Sub(c)
	d5 := ab.Dot(cp)
	d6 := ac.Dot(cp)
	if d6 >= 0 && d5 <= d6 {
		return c
	}

	vb := d5*d2 - d1*d6
	if vb <= 0 && d2 >= 0 && d6 <= 0 {
		return a.Add(ac.Mul(d2 / (d2 - d6)))
	}

	va := d3*d6 - d5*d4
	if va <= 0 && (d4-d3) >= 0 && (d5-d6) >= 0 {
		w := (d4 - d3) / ((d4 - d3) + (d5 - d6))
		return b.Add(c.Sub(b).Mul(w))
	}

	denom := 1 / (va + vb + vc)
	v := vb * denom
	w := vc * denom
	return a.Add(ab.Mul(v)).Add(ac.Mul(w))
}

// DistancePtSegSqr returns the parameter t of the closest point on segment PQ
// to pt and the squared distance between them.
func DistancePtSegSqr(pt, p, q Vec3) (t float32, d float32) {
	pq := q.Sub(p)
	dd := pq.Dot(pq)
	t = pq.Dot(pt.Sub(p))
	if dd > 0 {
		t /= dd
	}
	t = Clamp(t, 0, 1)
	return t, VdistSqr(p.Add(pq.Mul(t)), pt)
}
