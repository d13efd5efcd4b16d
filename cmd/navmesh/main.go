package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/gorustyt/gonavmesh/common"
	"github.com/gorustyt/gonavmesh/common/logger"
	"github.com/gorustyt/gonavmesh/demo/config"
	"github.com/gorustyt/gonavmesh/demo/mesh"
	"github.com/gorustyt/gonavmesh/detour"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func main() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// app holds the state shared by every subcommand once flags are parsed.
type app struct {
	configFile string
	mode       string
	logLevel   string

	cfg *config.Config
	log *zap.Logger
}

func NewRootCmd() *cobra.Command {
	a := &app{log: zap.NewNop()}
	c := &cobra.Command{
		Use:          "navmesh",
		Short:        "triangle navigation mesh tool",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = a.log.Sync()
		},
	}
	c.PersistentFlags().StringVar(&a.configFile, "config", "", "hjson config file")
	c.PersistentFlags().StringVar(&a.mode, "mode", "", "query mode: accuracy or performance (overrides config)")
	c.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "log level (overrides config)")
	c.AddCommand(
		InfoCmd(a),
		PathCmd(a),
		SampleCmd(a),
		ConvertCmd(a),
		RenderCmd(a),
		BenchCmd(a),
		ConfigCmd(a),
	)
	return c
}

func (a *app) setup() error {
	cfg, err := config.Load(a.configFile)
	if err != nil {
		return err
	}
	if a.mode != "" {
		cfg.Query.Mode = a.mode
	}
	if a.logLevel != "" {
		cfg.Log.Level = a.logLevel
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	log, err := logger.New(cfg.Log)
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.log = log
	return nil
}

func (a *app) queryMode() detour.QueryMode {
	mode, _ := a.cfg.QueryMode()
	return mode
}

// loadMesh picks a decoder by file extension: .obj, .bin or .pb.
func (a *app) loadMesh(p string) (*detour.NavMesh, error) {
	opts := append(a.cfg.MeshOptions(), detour.WithBuildLogger(a.log))
	switch strings.ToLower(filepath.Ext(p)) {
	case ".obj":
		obj, err := mesh.LoadObj(p)
		if err != nil {
			return nil, err
		}
		return detour.NewNavMesh(obj.GetVerts(), obj.GetTris(), opts...)
	case ".bin":
		data, err := os.ReadFile(p)
		if err != nil {
			return nil, err
		}
		return detour.FromBin(data, opts...)
	case ".pb":
		data, err := os.ReadFile(p)
		if err != nil {
			return nil, err
		}
		return detour.FromProto(data, opts...)
	}
	return nil, fmt.Errorf("unsupported mesh format: %s", p)
}

func (a *app) newQuery(m *detour.NavMesh) *detour.NavMeshQuery {
	return detour.NewNavMeshQuery(m,
		detour.WithExpansionFactor(a.cfg.Query.ExpansionFactor),
		detour.WithLogger(a.log))
}

func parseVec3(args []string) (common.Vec3, error) {
	var v common.Vec3
	if len(args) != 3 {
		return v, fmt.Errorf("expected 3 coordinates, got %d", len(args))
	}
	for i, s := range args {
		f, err := strconv.ParseFloat(s, 32)
		if err != nil {
			return v, fmt.Errorf("coordinate %q: %w", s, err)
		}
		v[i] = float32(f)
	}
	return v, nil
}

func formatVec3(v common.Vec3) string {
	return fmt.Sprintf("%g %g %g", v[0], v[1], v[2])
}
