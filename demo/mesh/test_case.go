package mesh

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/gorustyt/gonavmesh/common"
	"github.com/gorustyt/gonavmesh/detour"
)

// Test is one path query of a test case together with its last result.
type Test struct {
	Start common.Vec3
	End   common.Vec3

	NearestStart common.Vec3
	NearestEnd   common.Vec3
	Corridor     []int32
	Straight     []common.Vec3
	Err          error

	FindNearestTime      time.Duration
	FindPathTime         time.Duration
	FindStraightPathTime time.Duration

	// Total query time of every run, in milliseconds.
	History *ValueHistory
}

func newTest() *Test {
	return &Test{History: NewValueHistory()}
}

func (t *Test) Total() time.Duration {
	return t.FindNearestTime + t.FindPathTime + t.FindStraightPathTime
}

// TestCase is a list of path queries against one geometry file.
//
//	s <sample name>
//	f <geometry file>
//	pf <sx> <sy> <sz> <ex> <ey> <ez>
type TestCase struct {
	m_sampleName   string
	m_geomFileName string
	m_tests        []*Test
}

// LoadTestCase reads a test case file. A relative geometry file name is
// resolved against the directory of the test case.
func LoadTestCase(p string) (*TestCase, error) {
	f, err := os.Open(p)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	tc, err := ParseTestCase(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", p, err)
	}
	if tc.m_geomFileName != "" && !filepath.IsAbs(tc.m_geomFileName) {
		tc.m_geomFileName = filepath.Join(filepath.Dir(p), tc.m_geomFileName)
	}
	return tc, nil
}

func ParseTestCase(r io.Reader) (*TestCase, error) {
	t := &TestCase{}
	sc := bufio.NewScanner(r)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := sc.Text()
		if i := strings.IndexByte(line, '#'); i >= 0 {
			line = line[:i]
		}
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		if err := t.parseRow(fields); err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return t, nil
}

func (t *TestCase) parseRow(ss []string) error {
	switch ss[0] {
	case "s":
		// Sample name.
		if len(ss) < 2 {
			return fmt.Errorf("missing sample name")
		}
		t.m_sampleName = strings.Join(ss[1:], " ")
	case "f":
		// File name.
		if len(ss) < 2 {
			return fmt.Errorf("missing geometry file")
		}
		t.m_geomFileName = strings.Join(ss[1:], " ")
	case "pf":
		// Pathfind test.
		if len(ss) < 7 {
			return fmt.Errorf("pathfind test needs 6 coordinates, got %d", len(ss)-1)
		}
		test := newTest()
		var coords [6]float32
		for i := range coords {
			f, err := strconv.ParseFloat(ss[i+1], 32)
			if err != nil {
				return fmt.Errorf("bad coordinate %q", ss[i+1])
			}
			coords[i] = float32(f)
		}
		test.Start = common.Vec3{coords[0], coords[1], coords[2]}
		test.End = common.Vec3{coords[3], coords[4], coords[5]}
		t.m_tests = append(t.m_tests, test)
	default:
		return fmt.Errorf("unknown record %q", ss[0])
	}
	return nil
}

func (t *TestCase) GetSampleName() string   { return t.m_sampleName }
func (t *TestCase) GetGeomFileName() string { return t.m_geomFileName }
func (t *TestCase) GetTests() []*Test       { return t.m_tests }

func (t *TestCase) resetTimes() {
	for _, iter := range t.m_tests {
		iter.FindNearestTime = 0
		iter.FindPathTime = 0
		iter.FindStraightPathTime = 0
	}
}

// DoTests runs every query once and records its result and timings.
func (t *TestCase) DoTests(navquery *detour.NavMeshQuery, mode detour.QueryMode) {
	if navquery == nil {
		return
	}

	t.resetTimes()

	for _, iter := range t.m_tests {
		iter.Corridor = nil
		iter.Straight = nil
		iter.Err = nil

		// Find start points
		findNearestStart := time.Now()
		startRef, nspos, okStart := navquery.FindNearestTriangle(iter.Start, mode)
		endRef, nepos, okEnd := navquery.FindNearestTriangle(iter.End, mode)
		iter.FindNearestTime = time.Since(findNearestStart)
		iter.NearestStart, iter.NearestEnd = nspos, nepos

		if !okStart || !okEnd {
			iter.Err = detour.ErrInvalidParam
			if navquery.GetAttachedNavMesh() == nil || navquery.GetAttachedNavMesh().Empty() {
				iter.Err = detour.ErrEmptyMesh
			}
			iter.History.AddSample(durationMs(iter.Total()))
			continue
		}

		// Find path
		findPathStart := time.Now()
		iter.Corridor, iter.Err = navquery.FindCorridor(startRef, endRef, nspos, nepos, mode)
		iter.FindPathTime = time.Since(findPathStart)

		// Find straight path
		if iter.Err == nil {
			findStraightPathStart := time.Now()
			iter.Straight, iter.Err = navquery.FindStraightPath(iter.Corridor, nspos, nepos)
			iter.FindStraightPathTime = time.Since(findStraightPathStart)
		}
		iter.History.AddSample(durationMs(iter.Total()))
	}
}

// WriteResults prints the timings of the last run, and the averages once
// more than one run has been recorded.
func (t *TestCase) WriteResults(w io.Writer) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "Test Results:\n")
	for n, iter := range t.m_tests {
		status := "ok"
		if iter.Err != nil {
			status = iter.Err.Error()
		}
		fmt.Fprintf(bw, " - Path %02d:     %.4f ms (%d points, %s)\n", n, durationMs(iter.Total()), len(iter.Straight), status)
		fmt.Fprintf(bw, "    - tri:      %.4f ms\n", durationMs(iter.FindNearestTime))
		fmt.Fprintf(bw, "    - path:     %.4f ms\n", durationMs(iter.FindPathTime))
		fmt.Fprintf(bw, "    - straight: %.4f ms\n", durationMs(iter.FindStraightPathTime))
		if h := iter.History; h.GetSampleCount() > 1 {
			fmt.Fprintf(bw, "    - runs %d: min %.4f ms, avg %.4f ms, max %.4f ms\n",
				h.GetSampleCount(), h.GetSampleMin(), h.GetAverage(), h.GetSampleMax())
		}
	}
	return bw.Flush()
}

func durationMs(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}
