package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvmaze/grid"
	"github.com/katalvlaran/lvmaze/internal/render"
	"github.com/katalvlaran/lvmaze/maze"
)

func (c *CLI) watchCommand() *cobra.Command {
	var flags runFlags

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Animate maze generation in the terminal",
		Long: `Watch pulls one batch per tick and redraws the grid, so every intermediate
state of the algorithm is visible. Press q to quit.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := flags.resolve(cmd)
			if err != nil {
				return err
			}
			kind, err := cfg.Kind()
			if err != nil {
				return err
			}
			gen, err := maze.New(kind, cfg.Width, cfg.Height, cfg.Options()...)
			if err != nil {
				return err
			}
			m, err := newWatchModel(gen, flags.renderer(gen), cfg.Delay)
			if err != nil {
				return err
			}
			m.solve = flags.solve

			c.Logger.Debug("Watching", "algorithm", kind, "seed", cfg.Seed, "delay", cfg.Delay)
			p := tea.NewProgram(m,
				tea.WithContext(cmd.Context()),
				tea.WithInput(cmd.InOrStdin()),
				tea.WithOutput(cmd.OutOrStdout()),
			)
			final, err := p.Run()
			if err != nil {
				return err
			}
			if fm, ok := final.(watchModel); ok && fm.err != nil {
				return fm.err
			}
			return nil
		},
	}

	bindRunFlags(cmd, &flags)
	cmd.Flags().DurationVarP(&flags.cfg.Delay, "delay", "d", flags.cfg.Delay, "pause between batches")

	return cmd
}

// tickMsg asks the model to pull the next batch.
type tickMsg struct{}

// watchModel is the bubbletea model for animated generation.
type watchModel struct {
	gen      *maze.Generator
	grid     *grid.Grid
	renderer *render.Renderer
	delay    time.Duration
	solve    bool
	path     []grid.Coord
	done     bool
	err      error
}

func newWatchModel(gen *maze.Generator, r *render.Renderer, delay time.Duration) (watchModel, error) {
	g, err := grid.New(gen.Width(), gen.Height())
	if err != nil {
		return watchModel{}, err
	}
	return watchModel{gen: gen, grid: g, renderer: r, delay: delay}, nil
}

func tick(d time.Duration) tea.Cmd {
	if d <= 0 {
		d = time.Millisecond
	}
	return tea.Tick(d, func(time.Time) tea.Msg { return tickMsg{} })
}

func (m watchModel) Init() tea.Cmd {
	return tick(m.delay)
}

func (m watchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		}
	case tickMsg:
		if m.done {
			return m, nil
		}
		b, ok, err := m.gen.Next()
		if err != nil {
			m.err = err
			m.done = true
			return m, tea.Quit
		}
		if !ok {
			m.done = true
			if m.solve {
				m.path, m.err = route(context.Background(), m.gen, m.grid)
			}
			return m, nil
		}
		if err := m.grid.Apply(b); err != nil {
			m.err = err
			m.done = true
			return m, tea.Quit
		}
		return m, tick(m.delay)
	}
	return m, nil
}

func (m watchModel) View() string {
	var b strings.Builder

	b.WriteString(styleTitle.Render(fmt.Sprintf("%s %dx%d", m.gen.Kind(), m.gen.Width(), m.gen.Height())))
	b.WriteString("\n\n")
	if len(m.path) > 0 {
		b.WriteString(m.renderer.RenderPath(m.grid, m.path))
	} else {
		b.WriteString(m.renderer.Render(m.grid))
	}
	b.WriteString("\n\n")

	stats := m.grid.Stats()
	status := fmt.Sprintf("progress %3.0f%%  batches %d  updates %d", stats.Progress*100, stats.Batches, stats.Updates)
	if m.done {
		status += "  done"
	}
	b.WriteString(styleDim.Render(status))
	b.WriteString("\n")
	b.WriteString(styleDim.Render("q quit"))
	b.WriteString("\n")
	return b.String()
}
