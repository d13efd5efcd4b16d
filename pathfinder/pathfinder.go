// Package pathfinder exposes a navigation mesh through flat float buffers.
//
// It is the surface meant for bindings: construction never fails loudly and
// every query answers with an empty slice when there is nothing to return.
package pathfinder

import (
	"github.com/gorustyt/gonavmesh/common"
	"github.com/gorustyt/gonavmesh/common/logger"
	"github.com/gorustyt/gonavmesh/detour"
	"go.uber.org/zap"
)

type Pathfinder struct {
	mesh  *detour.NavMesh
	query *detour.NavMeshQuery
	mode  detour.QueryMode
	err   error
}

type options struct {
	mode            detour.QueryMode
	expansionFactor float32
	logger          *zap.Logger
	meshOpts        []detour.Option
}

type Option func(*options)

// WithMode selects the query mode used by SearchPath and Sample. Accuracy by default.
func WithMode(mode detour.QueryMode) Option {
	return func(o *options) { o.mode = mode }
}

func WithExpansionFactor(factor float32) Option {
	return func(o *options) { o.expansionFactor = factor }
}

func WithLogger(l *zap.Logger) Option {
	return func(o *options) { o.logger = logger.OrNop(l) }
}

// WithMeshOptions forwards build options to detour.NewNavMesh.
func WithMeshOptions(opts ...detour.Option) Option {
	return func(o *options) { o.meshOpts = append(o.meshOpts, opts...) }
}

// New builds the mesh from flat x,y,z vertices and i0,i1,i2 triangle indices.
// A mesh that fails validation leaves the Pathfinder empty; Err reports why.
func New(vertices []float32, triangles []uint32, opts ...Option) *Pathfinder {
	o := options{
		mode:            detour.Accuracy,
		expansionFactor: detour.DefaultExpansionFactor,
		logger:          zap.NewNop(),
	}
	for _, opt := range opts {
		opt(&o)
	}

	p := &Pathfinder{mode: o.mode}
	meshOpts := append([]detour.Option{detour.WithBuildLogger(o.logger)}, o.meshOpts...)
	mesh, err := detour.NewNavMesh(vertices, triangles, meshOpts...)
	if err != nil {
		o.logger.Warn("navmesh construction failed, queries will return nothing", zap.Error(err))
		p.err = err
		mesh = nil
	}
	p.mesh = mesh
	p.query = detour.NewNavMeshQuery(mesh,
		detour.WithExpansionFactor(o.expansionFactor),
		detour.WithLogger(o.logger))
	return p
}

// FromMesh wraps an already built mesh.
func FromMesh(mesh *detour.NavMesh, opts ...Option) *Pathfinder {
	o := options{
		mode:            detour.Accuracy,
		expansionFactor: detour.DefaultExpansionFactor,
		logger:          zap.NewNop(),
	}
	for _, opt := range opts {
		opt(&o)
	}
	return &Pathfinder{
		mesh: mesh,
		mode: o.mode,
		query: detour.NewNavMeshQuery(mesh,
			detour.WithExpansionFactor(o.expansionFactor),
			detour.WithLogger(o.logger)),
	}
}

// Err returns the construction error, if any.
func (p *Pathfinder) Err() error { return p.err }

// Mesh returns the underlying mesh, nil when construction failed.
func (p *Pathfinder) Mesh() *detour.NavMesh { return p.mesh }

func (p *Pathfinder) Mode() detour.QueryMode { return p.mode }

// SearchPath returns the path from (sx,sy,sz) to (ex,ey,ez) as flat x,y,z triples.
func (p *Pathfinder) SearchPath(sx, sy, sz, ex, ey, ez float32) []float32 {
	points := p.query.SearchPath(common.Vec3{sx, sy, sz}, common.Vec3{ex, ey, ez}, p.mode)
	if len(points) == 0 {
		return []float32{}
	}
	return common.FlattenVec3(points)
}

// Sample returns the closest point on the mesh surface, or an empty slice.
func (p *Pathfinder) Sample(x, y, z float32) []float32 {
	pt, ok := p.query.SamplePoint(common.Vec3{x, y, z}, p.mode)
	if !ok {
		return []float32{}
	}
	return []float32{pt[0], pt[1], pt[2]}
}
