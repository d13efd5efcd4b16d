package common

import "github.com/go-gl/mathgl/mgl32"

type Vec3 = mgl32.Vec3

type IT interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}
type IIndex interface {
	~int | ~int8 | ~int16 | ~int32 | ~uint | ~uint8 | ~uint16 | ~uint32
}

func GetVert3[T IT, T1 IIndex](verts []T, index T1) []T {
	return verts[index*3 : index*3+3]
}

// ToVec3 reads the index-th (x, y, z) triple of a flat buffer.
func ToVec3[T1 IIndex](verts []float32, index T1) Vec3 {
	v := GetVert3(verts, index)
	return Vec3{v[0], v[1], v[2]}
}

// FlattenVec3 writes points back into a flat x,y,z buffer.
func FlattenVec3(points []Vec3) []float32 {
	res := make([]float32, 0, len(points)*3)
	for _, p := range points {
		res = append(res, p[0], p[1], p[2])
	}
	return res
}
