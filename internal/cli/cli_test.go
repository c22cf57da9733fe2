package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/circuits/circuit"
)

const examplePoints = `162,817,812
57,618,57
906,360,560
592,479,940
352,342,300
466,668,158
542,29,236
431,825,988
739,650,466
52,470,668
216,146,977
819,987,18
117,168,530
805,96,715
346,949,466
970,615,88
941,993,340
862,61,35
984,92,344
425,690,689
`

// writeFile creates name under dir with content and returns its path.
func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

// execute runs the root command with args and returns stdout, log output and the error.
func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var out, logs bytes.Buffer
	c := New(&out, &logs, LogInfo)
	root := c.RootCommand()
	root.SetArgs(args)
	root.SetOut(&out)
	root.SetErr(&logs)
	err := root.ExecuteContext(context.Background())
	return out.String(), logs.String(), err
}

func TestSolve_Example(t *testing.T) {
	input := writeFile(t, t.TempDir(), "input.txt", examplePoints)

	out, logs, err := execute(t, "solve", "-i", input)
	require.NoError(t, err)
	assert.Contains(t, out, "Product of three largest circuits: 5 × 4 × 2 = 40")
	assert.Contains(t, out, "Product of X coordinates of last connected junction boxes: 216 × 117 = 25272")
	assert.Contains(t, logs, "Loaded junction boxes")
	assert.NotContains(t, logs, "Connected 162,817,812", "step lines are debug only")
}

func TestBounded_ExplicitBudget(t *testing.T) {
	input := writeFile(t, t.TempDir(), "input.txt", examplePoints)

	// All 190 pairs examined: a single circuit remains.
	_, logs, err := execute(t, "bounded", "-i", input, "--budget", "1000")
	require.ErrorIs(t, err, circuit.ErrInsufficientClusters)
	assert.Contains(t, logs, "Circuits after budget")

	out, _, err := execute(t, "bounded", "-i", input, "-k", "10")
	require.NoError(t, err)
	assert.Contains(t, out, "= 40")
}

func TestSingle_Verbose(t *testing.T) {
	input := writeFile(t, t.TempDir(), "input.txt", examplePoints)

	out, logs, err := execute(t, "single", "-i", input, "-v")
	require.NoError(t, err)
	assert.Contains(t, out, "= 25272")
	assert.Contains(t, logs, "Connected 162,817,812 and 425,690,689 (distance: 316.90)")
	assert.Contains(t, logs, "Skipped 431,825,988 and 425,690,689 (already in same circuit)")
}

func TestConfigFile(t *testing.T) {
	dir := t.TempDir()
	input := writeFile(t, dir, "boxes.txt", examplePoints)
	cfg := writeFile(t, dir, "circuits.toml", "input = "+quoteTOML(input)+"\nbudget = 1000\nworkers = 2\n")

	// Budget from the file applies.
	_, _, err := execute(t, "bounded", "--config", cfg)
	require.ErrorIs(t, err, circuit.ErrInsufficientClusters)

	// An explicit flag overrides the file.
	out, _, err := execute(t, "bounded", "--config", cfg, "--budget", "10")
	require.NoError(t, err)
	assert.Contains(t, out, "= 40")

	// Verbose from the file turns on step lines.
	cfgV := writeFile(t, dir, "verbose.toml", "input = "+quoteTOML(input)+"\nverbose = true\n")
	_, logs, err := execute(t, "single", "--config", cfgV)
	require.NoError(t, err)
	assert.Contains(t, logs, "Connected 162,817,812")
}

func TestErrors(t *testing.T) {
	dir := t.TempDir()

	_, _, err := execute(t, "solve", "-i", filepath.Join(dir, "missing.txt"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)

	bad := writeFile(t, dir, "bad.txt", "1,2,3\n4,5\n")
	_, _, err = execute(t, "single", "-i", bad)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 2")

	cfg := writeFile(t, dir, "typo.toml", "budgett = 3\n")
	_, _, err = execute(t, "single", "--config", cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown key")

	// Budget defaults to 1000 here: three points have only three pairs.
	few := writeFile(t, dir, "few.txt", "0,0,0\n1,0,0\n5,0,0\n")
	_, _, err = execute(t, "bounded", "-i", few)
	assert.ErrorIs(t, err, circuit.ErrInsufficientClusters)
}

func TestResolveBudget(t *testing.T) {
	three := 3
	tests := []struct {
		name     string
		explicit *int
		points   int
		want     int
	}{
		{"explicit wins", &three, exampleSize, 3},
		{"example size", nil, exampleSize, exampleBudget},
		{"real input", nil, 1000, defaultBudget},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, resolveBudget(tt.explicit, tt.points))
		})
	}
}

func TestRunLog(t *testing.T) {
	var buf bytes.Buffer
	assert.Nil(t, newRunLog(newLogger(&buf, log.InfoLevel), "bounded").hooks())
	assert.Len(t, newRunLog(newLogger(&buf, log.DebugLevel), "bounded").hooks(), 2)

	newRunLog(newLogger(&buf, log.InfoLevel), "single").done(29, 19)
	assert.Contains(t, buf.String(), "single")
	assert.Contains(t, buf.String(), "attempts=29")
	assert.Contains(t, buf.String(), "merges=19")
}

func TestLoggerFromContext(t *testing.T) {
	var buf bytes.Buffer
	l := newLogger(&buf, log.InfoLevel)
	assert.Same(t, l, loggerFromContext(withLogger(context.Background(), l)))
	assert.NotNil(t, loggerFromContext(context.Background()))
}

func TestSolve_FewerThanThreeCircuits(t *testing.T) {
	few := writeFile(t, t.TempDir(), "few.txt", "0,0,0\n1,0,0\n5,0,0\n")

	out, logs, err := execute(t, "solve", "-i", few, "--budget", "1000")
	require.ErrorIs(t, err, circuit.ErrInsufficientClusters)
	assert.Contains(t, logs, "Bounded policy failed")
	assert.NotContains(t, out, "Product of three largest circuits")
	assert.Contains(t, out, "Product of X coordinates of last connected junction boxes: 1 × 5 = 5")
}

func TestSingle_ProductOverflow(t *testing.T) {
	big := writeFile(t, t.TempDir(), "big.txt", "3037000500,0,0\n3037000501,0,0\n")

	out, _, err := execute(t, "single", "-i", big)
	require.ErrorIs(t, err, circuit.ErrProductOverflow)
	assert.Empty(t, out)
}

func TestCancelledContext(t *testing.T) {
	input := writeFile(t, t.TempDir(), "input.txt", examplePoints)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var out, logs bytes.Buffer
	root := New(&out, &logs, LogInfo).RootCommand()
	root.SetArgs([]string{"solve", "-i", input})
	root.SetOut(&out)
	root.SetErr(&logs)
	err := root.ExecuteContext(ctx)
	require.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, out.String())
	assert.NotContains(t, logs.String(), "Bounded policy failed", "an interrupt skips the single policy")
}

func quoteTOML(s string) string {
	return "'" + s + "'"
}
