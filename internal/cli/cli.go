// Package cli implements the lvmaze command-line interface.
//
// The CLI is built on cobra. Commands share one CLI value holding the
// charmbracelet/log logger and the output writer:
//   - generate: run a generator to completion, streaming batches or printing the maze
//   - watch: animate a generator in the terminal with bubbletea
//   - runs: list and show runs recorded in the SQLite store
//   - version: print build information
package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

const (
	appName = "lvmaze"

	// dbFile is the default run store, under the XDG data directory.
	dbFile = "runs.db"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// SetVersion sets the build information shown by --version and the version command.
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

func versionString() string {
	return fmt.Sprintf("%s %s\ncommit: %s\nbuilt: %s\n", appName, version, commit, date)
}

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
}

// New creates a CLI logging to w at level.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "lvmaze generates perfect mazes step by step",
		Long:         `lvmaze builds perfect mazes with randomized depth-first search, randomized Kruskal or origin shift, and streams every intermediate cell update.`,
		Version:      version,
		SilenceUsage: true,
	}
	root.SetVersionTemplate(versionString())

	root.AddCommand(c.generateCommand())
	root.AddCommand(c.watchCommand())
	root.AddCommand(c.runsCommand())
	root.AddCommand(c.versionCommand())

	return root
}

func (c *CLI) versionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := io.WriteString(cmd.OutOrStdout(), versionString())
			return err
		},
	}
}

// defaultDBPath returns the run store path using the XDG data directory
// (~/.local/share/lvmaze/runs.db).
func defaultDBPath() string {
	if dataHome := os.Getenv("XDG_DATA_HOME"); dataHome != "" {
		return filepath.Join(dataHome, appName, dbFile)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return dbFile
	}
	return filepath.Join(home, ".local", "share", appName, dbFile)
}

// ensureDir creates the parent directory of a file path.
func ensureDir(path string) error {
	dir := filepath.Dir(path)
	if dir == "." || dir == "" {
		return nil
	}
	return os.MkdirAll(dir, 0o755)
}
