package detour

import (
	"errors"
	"fmt"
)

// Construction and parameter errors. All of them wrap ErrFailure.
var ErrFailure = errors.New("operation failed")
var ErrInvalidParam = fmt.Errorf("%w: an input parameter was invalid", ErrFailure)
var ErrInvalidIndex = fmt.Errorf("%w: triangle references a vertex outside the vertex buffer", ErrFailure)
var ErrDegenerateTriangle = fmt.Errorf("%w: triangle has near-zero area", ErrFailure)
var ErrWrongMagic = fmt.Errorf("%w: input data is not recognized", ErrFailure)
var ErrWrongVersion = fmt.Errorf("%w: input data is in wrong version", ErrFailure)

// Query outcomes. These describe an absent result, not a broken mesh.
var ErrNoPath = errors.New("start and end are not connected")
var ErrPartialResult = errors.New("query did not reach the end location, returning best guess")
var ErrEmptyMesh = errors.New("mesh has no triangles")
