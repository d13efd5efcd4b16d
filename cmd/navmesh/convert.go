package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gorustyt/gonavmesh/debug_utils"
	"github.com/gorustyt/gonavmesh/detour"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func ConvertCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "convert <in> <out>",
		Short: "convert a mesh between .obj, .bin, .pb and .json",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := a.loadMesh(args[0])
			if err != nil {
				return err
			}
			data, err := encodeMesh(m, args[1])
			if err != nil {
				return err
			}
			if err := os.WriteFile(args[1], data, 0o644); err != nil {
				return err
			}
			a.log.Info("mesh converted",
				zap.String("in", args[0]),
				zap.String("out", args[1]),
				zap.Int("bytes", len(data)))
			return nil
		},
	}
}

func encodeMesh(m *detour.NavMesh, out string) ([]byte, error) {
	switch strings.ToLower(filepath.Ext(out)) {
	case ".obj":
		var buf bytes.Buffer
		if err := debug_utils.DuDumpNavMeshToObj(m, &buf); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	case ".bin":
		return m.ToBin(), nil
	case ".pb":
		return m.ToProto()
	case ".json":
		return m.ToJSON()
	}
	return nil, fmt.Errorf("unsupported output format: %s", out)
}
