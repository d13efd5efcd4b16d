package detour

import (
	"fmt"
	"strings"

	"github.com/gorustyt/gonavmesh/common"
)

type Vec3 = common.Vec3

// NoNeighbor marks a boundary edge in Triangle.Neis.
const NoNeighbor int32 = -1

const (
	// DegenerateAreaEpsilon scales the squared bounding box diagonal into the
	// smallest triangle area accepted by NewNavMesh.
	DegenerateAreaEpsilon = 1e-14

	// Relative tolerance for treating two squared distances as equal when locating.
	locateEpsilon = 1e-6

	DefaultGridCellScale   = 1.0
	DefaultMaxGridDim      = 256
	DefaultExpansionFactor = 4
)

// QueryMode trades locator and search quality for bounded cost.
type QueryMode uint8

const (
	// Accuracy scans every triangle when locating and searches until the optimal corridor is known.
	Accuracy QueryMode = iota
	// Performance restricts locating to nearby grid cells and bounds the number of search expansions.
	Performance
)

func (m QueryMode) String() string {
	switch m {
	case Accuracy:
		return "accuracy"
	case Performance:
		return "performance"
	}
	return fmt.Sprintf("QueryMode(%d)", uint8(m))
}

func ParseQueryMode(s string) (QueryMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "accuracy":
		return Accuracy, nil
	case "performance":
		return Performance, nil
	}
	return Accuracy, fmt.Errorf("%w: unknown query mode %q", ErrInvalidParam, s)
}

func midpoint(a, b Vec3) Vec3 {
	return common.Vlerp(a, b, 0.5)
}
