package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/gorustyt/gonavmesh/debug_utils"
	"github.com/gorustyt/gonavmesh/detour"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func PathCmd(a *app) *cobra.Command {
	var (
		render   string
		size     int
		corridor bool
	)
	c := &cobra.Command{
		Use:   "path <mesh> <sx> <sy> <sz> <ex> <ey> <ez>",
		Short: "find a straight path between two points",
		Args:  cobra.ExactArgs(7),
		RunE: func(cmd *cobra.Command, args []string) error {
			start, err := parseVec3(args[1:4])
			if err != nil {
				return err
			}
			end, err := parseVec3(args[4:7])
			if err != nil {
				return err
			}
			m, err := a.loadMesh(args[0])
			if err != nil {
				return err
			}
			res, err := a.newQuery(m).FindPath(start, end, a.queryMode())
			w := cmd.OutOrStdout()
			switch {
			case errors.Is(err, detour.ErrNoPath), errors.Is(err, detour.ErrPartialResult), errors.Is(err, detour.ErrEmptyMesh):
				fmt.Fprintf(w, "no path: %v\n", err)
				res = &detour.PathResult{}
			case err != nil:
				return err
			default:
				for _, p := range res.Points {
					fmt.Fprintln(w, formatVec3(p))
				}
				if corridor {
					fmt.Fprintf(w, "corridor: %v\n", res.Corridor)
				}
			}
			if render == "" {
				return nil
			}
			f, err := os.Create(render)
			if err != nil {
				return err
			}
			defer f.Close()
			a.log.Info("render path", zap.String("file", render), zap.Int("points", len(res.Points)))
			return debug_utils.DuRenderNavMesh(f, m, res.Corridor, res.Points, size)
		},
	}
	c.Flags().StringVar(&render, "render", "", "write a PNG of the mesh and path")
	c.Flags().IntVar(&size, "size", 512, "rendered image size in pixels")
	c.Flags().BoolVar(&corridor, "corridor", false, "print the triangle corridor")
	return c
}

func SampleCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "sample <mesh> <x> <y> <z>",
		Short: "project a point onto the mesh surface",
		Args:  cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := parseVec3(args[1:4])
			if err != nil {
				return err
			}
			m, err := a.loadMesh(args[0])
			if err != nil {
				return err
			}
			pt, ok := a.newQuery(m).SamplePoint(p, a.queryMode())
			if !ok {
				fmt.Fprintln(cmd.OutOrStdout(), "no result")
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatVec3(pt))
			return nil
		},
	}
}

func RenderCmd(a *app) *cobra.Command {
	var size int
	c := &cobra.Command{
		Use:   "render <mesh> <out.png>",
		Short: "draw a top-down PNG of the mesh",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := a.loadMesh(args[0])
			if err != nil {
				return err
			}
			f, err := os.Create(args[1])
			if err != nil {
				return err
			}
			defer f.Close()
			return debug_utils.DuRenderNavMesh(f, m, nil, nil, size)
		},
	}
	c.Flags().IntVar(&size, "size", 512, "image size in pixels")
	return c
}
