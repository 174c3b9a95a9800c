package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvmaze/grid"
	"github.com/katalvlaran/lvmaze/internal/config"
	"github.com/katalvlaran/lvmaze/internal/render"
	"github.com/katalvlaran/lvmaze/internal/store"
	"github.com/katalvlaran/lvmaze/maze"
	"github.com/katalvlaran/lvmaze/pipeline"
	"github.com/katalvlaran/lvmaze/solve"
)

// runFlags are the settings shared by generate and watch.
type runFlags struct {
	configPath string
	cfg        config.Config
	color      bool
	solve      bool
}

func bindRunFlags(cmd *cobra.Command, f *runFlags) {
	f.cfg = config.Default()
	fs := cmd.Flags()
	fs.StringVarP(&f.configPath, "config", "c", "", "TOML or YAML config file")
	fs.StringVarP(&f.cfg.Algorithm, "algorithm", "a", f.cfg.Algorithm, "algorithm: dfs, kruskal, origin-shift")
	fs.IntVarP(&f.cfg.Width, "width", "W", f.cfg.Width, "real grid width (>= 3)")
	fs.IntVarP(&f.cfg.Height, "height", "H", f.cfg.Height, "real grid height (>= 3)")
	fs.IntVar(&f.cfg.Steps, "steps", f.cfg.Steps, "origin-shift step budget (0 = step-factor x width x height)")
	fs.IntVar(&f.cfg.StepFactor, "step-factor", f.cfg.StepFactor, "origin-shift budget multiplier when --steps is 0")
	fs.Int64VarP(&f.cfg.Seed, "seed", "s", f.cfg.Seed, "random seed (0 = time based)")
	fs.BoolVar(&f.color, "color", false, "draw cells as colored blocks")
	fs.BoolVar(&f.solve, "solve", false, "draw the route between the first and last cell of the finished maze")
}

// resolve merges the config file (if any) with explicitly set flags.
// Flags win over file values.
func (f *runFlags) resolve(cmd *cobra.Command) (config.Config, error) {
	cfg := f.cfg
	if f.configPath != "" {
		loaded, err := config.Load(f.configPath)
		if err != nil {
			return cfg, err
		}
		changed := cmd.Flags().Changed
		if changed("algorithm") {
			loaded.Algorithm = f.cfg.Algorithm
		}
		if changed("width") {
			loaded.Width = f.cfg.Width
		}
		if changed("height") {
			loaded.Height = f.cfg.Height
		}
		if changed("steps") {
			loaded.Steps = f.cfg.Steps
		}
		if changed("step-factor") {
			loaded.StepFactor = f.cfg.StepFactor
		}
		if changed("seed") {
			loaded.Seed = f.cfg.Seed
		}
		if changed("delay") {
			loaded.Delay = f.cfg.Delay
		}
		if changed("format") {
			loaded.Format = f.cfg.Format
		}
		if changed("record") {
			loaded.Record = f.cfg.Record
		}
		cfg = loaded
	}
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	return cfg, cfg.Validate()
}

func (f *runFlags) renderer(gen *maze.Generator) *render.Renderer {
	if f.color {
		return render.New(gen.Role, render.WithPalette(render.Blocks()))
	}
	return render.New(gen.Role)
}

func (c *CLI) generateCommand() *cobra.Command {
	var flags runFlags

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a maze and print its update stream or final layout",
		Long: `Generate runs one algorithm to completion.

With --format text, json or yaml every batch of cell updates is written as it is
produced; with --format final only the finished maze is printed. --record stores
the run in a SQLite database for the runs command.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := flags.resolve(cmd)
			if err != nil {
				return err
			}
			_, err = c.generate(cmd.Context(), cmd.OutOrStdout(), cfg, &flags)
			return err
		},
	}

	bindRunFlags(cmd, &flags)
	cmd.Flags().StringVarP(&flags.cfg.Format, "format", "f", flags.cfg.Format, "output: text, json, yaml, final")
	cmd.Flags().StringVar(&flags.cfg.Record, "record", "", "record the run into this SQLite database")

	return cmd
}

// generate drains one generator into a grid, writing batches to w in cfg.Format.
// The returned run is recorded when cfg.Record is set.
func (c *CLI) generate(ctx context.Context, w io.Writer, cfg config.Config, flags *runFlags) (*store.Run, error) {
	kind, err := cfg.Kind()
	if err != nil {
		return nil, err
	}
	gen, err := maze.New(kind, cfg.Width, cfg.Height, cfg.Options()...)
	if err != nil {
		return nil, err
	}
	g, err := grid.New(cfg.Width, cfg.Height)
	if err != nil {
		return nil, err
	}

	c.Logger.Debug("Generating", "algorithm", kind, "width", cfg.Width, "height", cfg.Height, "seed", cfg.Seed)
	prog := newProgress(c.Logger)

	em := newEmitter(w, cfg.Format)
	stats, err := g.Drain(ctx, pipeline.Tap(gen, em.emit))
	if err != nil {
		return nil, fmt.Errorf("generating %s maze: %w", kind, err)
	}
	if err := em.close(); err != nil {
		return nil, fmt.Errorf("writing output: %w", err)
	}

	if cfg.Format == config.FormatText || cfg.Format == config.FormatFinal {
		out, err := c.draw(ctx, gen, g, flags)
		if err != nil {
			return nil, err
		}
		if _, err := fmt.Fprintln(w, out); err != nil {
			return nil, fmt.Errorf("writing output: %w", err)
		}
	}
	prog.done("Generated", "algorithm", kind, "batches", stats.Batches, "updates", stats.Updates, "seed", cfg.Seed)

	run := &store.Run{
		Algorithm: string(kind),
		Width:     cfg.Width,
		Height:    cfg.Height,
		Steps:     gen.Steps(),
		Seed:      cfg.Seed,
		Batches:   stats.Batches,
		Updates:   stats.Updates,
		Maze:      render.New(gen.Role).Render(g),
	}
	if cfg.Record == "" {
		return run, nil
	}
	if err := c.record(ctx, cfg.Record, run); err != nil {
		return nil, err
	}
	return run, nil
}

// draw renders the finished grid, with the corner-to-corner route when requested.
func (c *CLI) draw(ctx context.Context, gen *maze.Generator, g *grid.Grid, flags *runFlags) (string, error) {
	r := flags.renderer(gen)
	if !flags.solve {
		return r.Render(g), nil
	}
	path, err := route(ctx, gen, g)
	if err != nil {
		return "", err
	}
	c.Logger.Debug("Solved", "length", len(path)-1)
	return r.RenderPath(g, path), nil
}

// route returns the shortest path between the maze's corner cells.
func route(ctx context.Context, gen *maze.Generator, g *grid.Grid) ([]grid.Coord, error) {
	from, to := solve.Corners(g.Width(), g.Height())
	res, err := solve.Solve(g, from, to,
		solve.WithContext(ctx),
		solve.WithPassable(func(s grid.State) bool {
			r := gen.Role(s)
			return r != maze.RoleWall && r != maze.RoleUnset
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("solving maze: %w", err)
	}
	return res.Path, nil
}

func (c *CLI) record(ctx context.Context, path string, run *store.Run) error {
	s, err := openStore(path)
	if err != nil {
		return err
	}
	defer s.Close()
	if err := s.Save(ctx, run); err != nil {
		return err
	}
	c.Logger.Info("Recorded run", "id", run.ID, "db", path)
	return nil
}

// batchRecord is the serialized form of one batch.
type batchRecord struct {
	Index    int            `json:"index" yaml:"index"`
	Progress float64        `json:"progress" yaml:"progress"`
	Updates  []updateRecord `json:"updates" yaml:"updates"`
}

type updateRecord struct {
	Row   int `json:"row" yaml:"row"`
	Col   int `json:"col" yaml:"col"`
	State int `json:"state" yaml:"state"`
}

func newBatchRecord(index int, b grid.Batch) batchRecord {
	rec := batchRecord{Index: index, Progress: b.Progress(), Updates: make([]updateRecord, len(b))}
	for i, u := range b {
		rec.Updates[i] = updateRecord{Row: u.Row, Col: u.Col, State: int(u.State)}
	}
	return rec
}

// emitter writes batches in one output format. The first write error is kept
// and later batches are dropped.
type emitter struct {
	w      io.Writer
	format string
	count  int
	json   *json.Encoder
	yaml   *yaml.Encoder
	err    error
}

func newEmitter(w io.Writer, format string) *emitter {
	e := &emitter{w: w, format: format}
	switch format {
	case config.FormatJSON:
		e.json = json.NewEncoder(w)
	case config.FormatYAML:
		e.yaml = yaml.NewEncoder(w)
		e.yaml.SetIndent(2)
	}
	return e
}

func (e *emitter) emit(b grid.Batch) {
	if e.err != nil {
		return
	}
	e.count++
	switch e.format {
	case config.FormatText:
		e.err = writeTextBatch(e.w, e.count, b)
	case config.FormatJSON:
		e.err = e.json.Encode(newBatchRecord(e.count, b))
	case config.FormatYAML:
		e.err = e.yaml.Encode(newBatchRecord(e.count, b))
	}
}

func (e *emitter) close() error {
	if e.yaml != nil {
		if err := e.yaml.Close(); err != nil && e.err == nil {
			e.err = err
		}
	}
	return e.err
}

// writeTextBatch writes "batch N progress P: row,col=state ..." on one line.
func writeTextBatch(w io.Writer, index int, b grid.Batch) error {
	var sb strings.Builder
	fmt.Fprintf(&sb, "batch %d progress %.3f:", index, b.Progress())
	for _, u := range b {
		fmt.Fprintf(&sb, " %d,%d=%d", u.Row, u.Col, u.State)
	}
	sb.WriteByte('\n')
	_, err := io.WriteString(w, sb.String())
	return err
}
