package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvmaze/internal/config"
	"github.com/katalvlaran/lvmaze/internal/render"
	"github.com/katalvlaran/lvmaze/internal/store"
	"github.com/katalvlaran/lvmaze/maze"
)

// execute runs the root command with args and returns its stdout.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	root := New(io.Discard, LogInfo).RootCommand()
	root.SetOut(&out)
	root.SetErr(io.Discard)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestNewLoggerLevels(t *testing.T) {
	tests := []struct {
		name    string
		level   log.Level
		logFunc func(*log.Logger)
		wantLog bool
	}{
		{"info at info level", log.InfoLevel, func(l *log.Logger) { l.Info("test") }, true},
		{"debug at info level", log.InfoLevel, func(l *log.Logger) { l.Debug("test") }, false},
		{"debug at debug level", log.DebugLevel, func(l *log.Logger) { l.Debug("test") }, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			tt.logFunc(newLogger(&buf, tt.level))
			assert.Equal(t, tt.wantLog, buf.Len() > 0)
		})
	}
}

func TestProgressDone(t *testing.T) {
	var buf bytes.Buffer
	newProgress(newLogger(&buf, log.InfoLevel)).done("Generated", "batches", 3)
	assert.Contains(t, buf.String(), "Generated")
	assert.Contains(t, buf.String(), "elapsed")
	assert.Contains(t, buf.String(), "batches=3")
}

func TestSetLogLevel(t *testing.T) {
	var buf bytes.Buffer
	c := New(&buf, LogInfo)
	c.Logger.Debug("hidden")
	assert.Zero(t, buf.Len())
	c.SetLogLevel(LogDebug)
	c.Logger.Debug("shown")
	assert.Contains(t, buf.String(), "shown")
}

func TestGenerate_Final(t *testing.T) {
	out, err := execute(t, "generate", "-a", "kruskal", "-W", "7", "-H", "5", "-s", "9")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	require.Len(t, lines, 5)
	assert.Equal(t, "#######", lines[0])
	assert.Equal(t, "#######", lines[4])
}

func TestGenerate_Deterministic(t *testing.T) {
	args := []string{"generate", "-a", "dfs", "-W", "11", "-H", "9", "-s", "42"}
	a, err := execute(t, args...)
	require.NoError(t, err)
	b, err := execute(t, args...)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestGenerate_Text(t *testing.T) {
	out, err := execute(t, "generate", "-a", "dfs", "-W", "5", "-H", "5", "-s", "1", "-f", "text")
	require.NoError(t, err)
	lines := strings.Split(out, "\n")
	assert.True(t, strings.HasPrefix(lines[0], "batch 1 progress 0.000:"), lines[0])
	assert.Contains(t, out, "#####")
}

func TestGenerate_JSON(t *testing.T) {
	out, err := execute(t, "generate", "-a", "dfs", "-W", "7", "-H", "7", "-s", "5", "-f", "json")
	require.NoError(t, err)

	dec := json.NewDecoder(strings.NewReader(out))
	var recs []batchRecord
	for {
		var rec batchRecord
		err := dec.Decode(&rec)
		if errors.Is(err, io.EOF) {
			break
		}
		require.NoError(t, err)
		recs = append(recs, rec)
	}
	require.NotEmpty(t, recs)
	for i, rec := range recs {
		assert.Equal(t, i+1, rec.Index)
	}
	assert.Len(t, recs[0].Updates, 7*7+1)
	assert.InDelta(t, 1.0, recs[len(recs)-1].Progress, 1e-9)
	assert.NotContains(t, out, "#")
}

func TestGenerate_YAML(t *testing.T) {
	out, err := execute(t, "generate", "-a", "origin-shift", "-W", "5", "-H", "5", "--steps", "4", "-s", "2", "-f", "yaml")
	require.NoError(t, err)

	dec := yaml.NewDecoder(strings.NewReader(out))
	n := 0
	for {
		var rec batchRecord
		err := dec.Decode(&rec)
		if errors.Is(err, io.EOF) {
			break
		}
		require.NoError(t, err)
		n++
		assert.Equal(t, n, rec.Index)
	}
	// opening, four steps, closing
	assert.Equal(t, 6, n)
}

func TestGenerate_InvalidInput(t *testing.T) {
	_, err := execute(t, "generate", "-W", "2")
	assert.ErrorIs(t, err, config.ErrInvalid)

	_, err = execute(t, "generate", "-a", "prim")
	assert.ErrorIs(t, err, maze.ErrUnknownKind)

	_, err = execute(t, "generate", "-f", "xml")
	assert.ErrorIs(t, err, config.ErrInvalid)

	_, err = execute(t, "generate", "--config", filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}

func TestGenerate_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	c := New(io.Discard, LogInfo)
	cfg := config.Default()
	cfg.Seed = 1
	_, err := c.generate(ctx, io.Discard, cfg, &runFlags{})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestGenerate_ConfigFileAndFlags(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "maze.toml")
	dbPath := filepath.Join(dir, "data", "runs.db")
	require.NoError(t, os.WriteFile(cfgPath, []byte(`
algorithm = "kruskal"
width = 9
height = 9
seed = 77
record = "`+filepath.ToSlash(dbPath)+`"
`), 0o644))

	_, err := execute(t, "generate", "--config", cfgPath, "-W", "7")
	require.NoError(t, err)

	s, err := store.Open(dbPath)
	require.NoError(t, err)
	defer s.Close()
	runs, err := s.List(context.Background(), 0)
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.Equal(t, "kruskal", runs[0].Algorithm)
	assert.Equal(t, 7, runs[0].Width)
	assert.Equal(t, 9, runs[0].Height)
	assert.Equal(t, int64(77), runs[0].Seed)
}

func TestRuns_ListAndShow(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "runs.db")
	_, err := execute(t, "generate", "-a", "dfs", "-W", "5", "-H", "5", "-s", "3", "--record", dbPath)
	require.NoError(t, err)

	out, err := execute(t, "runs", "--db", dbPath, "list")
	require.NoError(t, err)
	assert.Contains(t, out, "dfs")
	assert.Contains(t, out, "5x5")

	s, err := store.Open(dbPath)
	require.NoError(t, err)
	runs, err := s.List(context.Background(), 1)
	require.NoError(t, err)
	require.NoError(t, s.Close())
	require.Len(t, runs, 1)

	out, err = execute(t, "runs", "--db", dbPath, "show", runs[0].ID)
	require.NoError(t, err)
	assert.Contains(t, out, runs[0].ID)
	assert.Contains(t, out, runs[0].Maze)

	_, err = execute(t, "runs", "--db", dbPath, "show", "missing")
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestRuns_ListEmpty(t *testing.T) {
	out, err := execute(t, "runs", "--db", filepath.Join(t.TempDir(), "empty.db"), "list")
	require.NoError(t, err)
	assert.Contains(t, out, "No runs recorded")
}

func TestVersionCommand(t *testing.T) {
	SetVersion("v1.2.3", "abc123", "2026-01-01")
	t.Cleanup(func() { SetVersion("dev", "none", "unknown") })

	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "lvmaze v1.2.3")
	assert.Contains(t, out, "commit: abc123")
}

func TestResolve_TimeSeed(t *testing.T) {
	var f runFlags
	cmd := &cobra.Command{Use: "test"}
	bindRunFlags(cmd, &f)
	cfg, err := f.resolve(cmd)
	require.NoError(t, err)
	assert.NotZero(t, cfg.Seed)
}

func TestWatchModel_RunsToCompletion(t *testing.T) {
	gen, err := maze.New(maze.KindDFS, 5, 5, maze.WithSeed(1))
	require.NoError(t, err)
	m, err := newWatchModel(gen, render.New(gen.Role), 0)
	require.NoError(t, err)
	require.NotNil(t, m.Init())

	for i := 0; i < 1000 && !m.done; i++ {
		next, _ := m.Update(tickMsg{})
		m = next.(watchModel)
	}
	require.True(t, m.done)
	require.NoError(t, m.err)
	assert.True(t, gen.Done())

	view := m.View()
	assert.Contains(t, view, "dfs 5x5")
	assert.Contains(t, view, "#####")
	assert.Contains(t, view, "done")

	next, cmd := m.Update(tickMsg{})
	assert.Nil(t, cmd)
	assert.True(t, next.(watchModel).done)
}

func TestWatchModel_Quit(t *testing.T) {
	gen, err := maze.New(maze.KindKruskal, 5, 5)
	require.NoError(t, err)
	m, err := newWatchModel(gen, render.New(gen.Role), 0)
	require.NoError(t, err)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestGenerate_Solve(t *testing.T) {
	out, err := execute(t, "generate", "-a", "dfs", "-W", "9", "-H", "7", "-s", "4", "--solve")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	require.Len(t, lines, 7)
	assert.Equal(t, byte('o'), lines[1][1])
	assert.Equal(t, byte('o'), lines[5][7])
}

func TestWatchModel_Solve(t *testing.T) {
	gen, err := maze.New(maze.KindOriginShift, 7, 7, maze.WithSeed(8), maze.WithSteps(30))
	require.NoError(t, err)
	m, err := newWatchModel(gen, render.New(gen.Role), 0)
	require.NoError(t, err)
	m.solve = true

	for i := 0; i < 1000 && !m.done; i++ {
		next, _ := m.Update(tickMsg{})
		m = next.(watchModel)
	}
	require.NoError(t, m.err)
	require.NotEmpty(t, m.path)
	assert.Contains(t, m.View(), "o")
}

func TestGenerate_RecordsEffectiveSteps(t *testing.T) {
	dir := t.TempDir()
	tests := []struct {
		name string
		args []string
		want int
	}{
		{"step factor budget", []string{"-a", "origin-shift", "--step-factor", "4"}, 4 * 7 * 5},
		{"explicit steps", []string{"-a", "origin-shift", "--steps", "12"}, 12},
		{"no budget", []string{"-a", "dfs"}, 0},
	}
	for i, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dbPath := filepath.Join(dir, fmt.Sprintf("runs%d.db", i))
			args := append([]string{"generate", "-W", "7", "-H", "5", "-s", "3", "--record", dbPath}, tt.args...)
			_, err := execute(t, args...)
			require.NoError(t, err)

			s, err := store.Open(dbPath)
			require.NoError(t, err)
			defer s.Close()
			runs, err := s.List(context.Background(), 0)
			require.NoError(t, err)
			require.Len(t, runs, 1)
			assert.Equal(t, tt.want, runs[0].Steps)
		})
	}
}
