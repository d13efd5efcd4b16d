package main

import (
	"fmt"

	"github.com/gorustyt/gonavmesh/demo/mesh"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func BenchCmd(a *app) *cobra.Command {
	var (
		runs     int
		meshFile string
	)
	c := &cobra.Command{
		Use:   "bench <testcase>",
		Short: "run the path queries of a test case and print timings",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tc, err := mesh.LoadTestCase(args[0])
			if err != nil {
				return err
			}
			if meshFile == "" {
				meshFile = tc.GetGeomFileName()
			}
			if meshFile == "" {
				return fmt.Errorf("%s: no geometry file", args[0])
			}
			m, err := a.loadMesh(meshFile)
			if err != nil {
				return err
			}
			q := a.newQuery(m)
			mode := a.queryMode()
			for i := 0; i < max(runs, 1); i++ {
				tc.DoTests(q, mode)
			}
			a.log.Info("test case done",
				zap.String("sample", tc.GetSampleName()),
				zap.String("mesh", meshFile),
				zap.Stringer("mode", mode),
				zap.Int("tests", len(tc.GetTests())),
				zap.Int("runs", max(runs, 1)))
			return tc.WriteResults(cmd.OutOrStdout())
		},
	}
	c.Flags().IntVar(&runs, "runs", 1, "number of times every query is repeated")
	c.Flags().StringVar(&meshFile, "mesh", "", "geometry file overriding the one named by the test case")
	return c
}
