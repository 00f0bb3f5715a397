// Command eventcap extracts calendar events from event poster text.
//
// Usage:
//
//	eventcap parse poster.png other.json      # print the extracted events
//	eventcap ics poster.hocr -o event.ics     # write an iCalendar event
//	eventcap xlsx posters/*.json -o out.xlsx  # write a review workbook
//	eventcap blocks poster.png                # dump recognized blocks as JSON
//
// Configuration comes from flags, EVENTCAP_* environment variables and an
// optional YAML file named by --config.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/tsawler/eventcap/internal/config"
)

var (
	version   = "dev"     // This will be set by build flags
	buildTime = "unknown" // This will be set by build flags
	gitCommit = "unknown" // This will be set by build flags
)

// app carries the loaded configuration to the subcommands
type app struct {
	cfg    *config.Config
	logger *slog.Logger
	stdout io.Writer
	stderr io.Writer
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	a := &app{stdout: stdout, stderr: stderr}

	rootCmd := &cobra.Command{
		Use:           "eventcap",
		Short:         "Extract calendar events from event posters",
		Long:          `Reads the text of a photographed or scanned event poster and extracts its title, date, time, location and description.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(cmd.Flags())
			if err != nil {
				return err
			}
			a.cfg = cfg
			a.logger = newLogger(stderr, cfg)
			a.logger.Debug("configuration loaded", "config", cfg.String())
			return nil
		},
	}
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	config.RegisterFlags(rootCmd.PersistentFlags(), config.DefaultConfig())

	rootCmd.AddCommand(
		newParseCmd(a),
		newICSCmd(a),
		newXLSXCmd(a),
		newBlocksCmd(a),
		newVersionCmd(a),
	)
	return rootCmd
}

// newLogger builds a text logger on w at the configured level
func newLogger(w io.Writer, cfg *config.Config) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: cfg.SlogLevel()}))
}

func newVersionCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			printVersion(a.stdout)
		},
	}
}

// printVersion prints version information
func printVersion(w io.Writer) {
	fmt.Fprintf(w, "eventcap\n")
	fmt.Fprintf(w, "Version: %s\n", version)
	fmt.Fprintf(w, "Build Time: %s\n", buildTime)
	fmt.Fprintf(w, "Git Commit: %s\n", gitCommit)
	fmt.Fprintf(w, "Built with: %s\n", runtime.Version())
}

func main() {
	rootCmd := newRootCmd(os.Stdout, os.Stderr)
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
