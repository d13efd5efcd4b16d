package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func InfoCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "info <mesh>",
		Short: "print mesh statistics",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := a.loadMesh(args[0])
			if err != nil {
				return err
			}
			bmin, bmax := m.Bounds()
			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "vertices:      %d\n", m.VertCount())
			fmt.Fprintf(w, "triangles:     %d\n", m.TriCount())
			fmt.Fprintf(w, "components:    %d\n", m.ComponentCount())
			fmt.Fprintf(w, "up axis:       %s\n", m.UpAxis())
			fmt.Fprintf(w, "non-manifold:  %d\n", m.NonManifoldEdges())
			fmt.Fprintf(w, "bounds:        [%s] [%s]\n", formatVec3(bmin), formatVec3(bmax))
			return nil
		},
	}
}

func ConfigCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "print the effective configuration as hjson",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := a.cfg.Encode()
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))
			return err
		},
	}
}
