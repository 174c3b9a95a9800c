package cli

import (
	"fmt"
	"strconv"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvmaze/internal/store"
)

func (c *CLI) runsCommand() *cobra.Command {
	var dbPath string

	cmd := &cobra.Command{
		Use:   "runs",
		Short: "Inspect runs recorded with generate --record",
	}
	cmd.PersistentFlags().StringVar(&dbPath, "db", defaultDBPath(), "SQLite run database")

	cmd.AddCommand(c.runsListCommand(&dbPath))
	cmd.AddCommand(c.runsShowCommand(&dbPath))

	return cmd
}

func (c *CLI) runsListCommand(dbPath *string) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List recorded runs, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openStore(*dbPath)
			if err != nil {
				return err
			}
			defer s.Close()

			runs, err := s.List(cmd.Context(), limit)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if len(runs) == 0 {
				printInfo(out, "No runs recorded in %s", *dbPath)
				return nil
			}

			rows := make([][]string, len(runs))
			for i, r := range runs {
				rows[i] = []string{
					r.ID,
					r.Algorithm,
					fmt.Sprintf("%dx%d", r.Width, r.Height),
					strconv.FormatInt(r.Seed, 10),
					strconv.Itoa(r.Batches),
					r.CreatedAt.Local().Format(time.DateTime),
				}
			}
			t := table.New().
				Border(lipgloss.RoundedBorder()).
				BorderStyle(styleDim).
				Headers("ID", "Algorithm", "Size", "Seed", "Batches", "Created").
				Rows(rows...).
				StyleFunc(func(row, col int) lipgloss.Style {
					if row == -1 {
						return styleHeader
					}
					return lipgloss.NewStyle()
				})
			fmt.Fprintln(out, t.Render())
			return nil
		},
	}
	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "maximum runs to list (0 = all)")

	return cmd
}

func (c *CLI) runsShowCommand(dbPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show one recorded run and its final maze",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openStore(*dbPath)
			if err != nil {
				return err
			}
			defer s.Close()

			r, err := s.Get(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			printSuccess(out, "Run %s", r.ID)
			printKeyValue(out, "algorithm", r.Algorithm)
			printKeyValue(out, "size", fmt.Sprintf("%dx%d", r.Width, r.Height))
			if r.Steps > 0 {
				printKeyValue(out, "steps", strconv.Itoa(r.Steps))
			}
			printKeyValue(out, "seed", strconv.FormatInt(r.Seed, 10))
			printKeyValue(out, "batches", strconv.Itoa(r.Batches))
			printKeyValue(out, "updates", strconv.Itoa(r.Updates))
			printKeyValue(out, "created", r.CreatedAt.Local().Format(time.DateTime))
			fmt.Fprintln(out)
			fmt.Fprintln(out, r.Maze)
			return nil
		},
	}
}

func openStore(path string) (*store.Store, error) {
	if err := ensureDir(path); err != nil {
		return nil, fmt.Errorf("creating store directory: %w", err)
	}
	return store.Open(path)
}
