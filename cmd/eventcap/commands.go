package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"runtime"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/tsawler/eventcap"
	"github.com/tsawler/eventcap/export"
	"github.com/tsawler/eventcap/input"
	"github.com/tsawler/eventcap/internal/config"
	"github.com/tsawler/eventcap/model"
)

// fileResult is the outcome of extracting one poster
type fileResult struct {
	Source   string                    `json:"source" yaml:"source"`
	Event    model.RawEventData        `json:"event" yaml:"event"`
	DateTime *model.StructuredDateTime `json:"dateTime,omitempty" yaml:"dateTime,omitempty"`
	When     string                    `json:"when,omitempty" yaml:"when,omitempty"`
	Warnings []string                  `json:"warnings,omitempty" yaml:"warnings,omitempty"`
	Error    string                    `json:"error,omitempty" yaml:"error,omitempty"`

	err error
}

// extractor builds an Extractor for path configured from a.cfg
func (a *app) extractor(ctx context.Context, path string) *eventcap.Extractor {
	loc, _ := a.cfg.Location()
	return eventcap.Open(path).
		WithContext(ctx).
		WithLogger(a.logger).
		InLocation(loc).
		WithTitleCandidates(a.cfg.TitleCandidates).
		WithParagraphGap(a.cfg.ParagraphGap).
		WithOCRLanguage(a.cfg.OCRLanguage).
		WithMinImageWidth(a.cfg.MinImageWidth)
}

func (a *app) extract(ctx context.Context, path string) fileResult {
	out := fileResult{Source: path}

	result, warnings, err := a.extractor(ctx, path).Result()
	if err != nil {
		a.logger.Error("extraction failed", "source", path, "error", err)
		out.err = err
		out.Error = err.Error()
		return out
	}

	loc, _ := a.cfg.Location()
	out.Event = result.Event
	out.DateTime = result.DateTime
	out.When = export.FormatRange(result.DateTime, loc)
	for _, w := range warnings {
		out.Warnings = append(out.Warnings, w.String())
	}
	if len(warnings) > 0 {
		a.logger.Info("extracted with warnings", "source", path, "warnings", eventcap.FormatWarnings(warnings))
	}
	return out
}

// extractAll extracts every path concurrently, keeping input order
func (a *app) extractAll(ctx context.Context, paths []string, workers int) ([]fileResult, error) {
	results := forEach(ctx, paths, workers, a.extract)

	var errs []error
	for _, r := range results {
		if r.err != nil {
			errs = append(errs, r.err)
		}
	}
	return results, errors.Join(errs...)
}

func newParseCmd(a *app) *cobra.Command {
	var workers int

	cmd := &cobra.Command{
		Use:   "parse FILE...",
		Short: "Extract events and print them",
		Long:  `Extracts the event from each poster and prints the results as JSON or YAML. Failed files are reported in the output and make the command exit non-zero.`,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			results, err := a.extractAll(cmd.Context(), args, workers)

			var payload any = results
			if len(results) == 1 {
				payload = results[0]
			}
			if werr := writeFormatted(a.stdout, a.cfg.Format, payload); werr != nil {
				return werr
			}
			return err
		},
	}
	cmd.Flags().IntVarP(&workers, "workers", "w", runtime.NumCPU(), "Number of posters processed at once")
	return cmd
}

func newICSCmd(a *app) *cobra.Command {
	var (
		output    string
		uid       string
		reminders []string
	)

	cmd := &cobra.Command{
		Use:   "ics FILE",
		Short: "Write the event as an iCalendar file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, _, err := a.extractor(cmd.Context(), args[0]).Result()
			if err != nil {
				return err
			}

			var minutes []int
			for _, r := range reminders {
				m := export.ParseReminder(r)
				if m < 0 {
					a.logger.Warn("ignoring reminder", "reminder", r)
					continue
				}
				minutes = append(minutes, m)
			}

			loc, _ := a.cfg.Location()
			doc, err := export.ICS(result.Event, result.DateTime, export.ICSOptions{
				UID:             uid,
				DefaultDuration: a.cfg.DefaultDuration,
				Location:        loc,
				Reminders:       minutes,
			})
			if err != nil {
				return fmt.Errorf("%s: %w", args[0], err)
			}
			return writeOutput(a.stdout, output, []byte(doc))
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "Output file (default stdout)")
	cmd.Flags().StringVar(&uid, "uid", "", "Event UID (default random)")
	cmd.Flags().StringSliceVar(&reminders, "reminder", nil, `Reminder, e.g. "15 minutes before", "1 day before" or minutes`)
	return cmd
}

func newXLSXCmd(a *app) *cobra.Command {
	var (
		output  string
		workers int
	)

	cmd := &cobra.Command{
		Use:   "xlsx FILE...",
		Short: "Write a workbook with one row per poster",
		Long:  `Extracts every poster and writes the results to an XLSX workbook for review. Posters that fail are logged and left out.`,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			results, _ := a.extractAll(cmd.Context(), args, workers)

			var rows []export.Row
			for _, r := range results {
				if r.err != nil {
					continue
				}
				rows = append(rows, export.Row{Source: r.Source, Event: r.Event, DateTime: r.DateTime})
			}

			loc, _ := a.cfg.Location()
			data, err := export.Workbook(rows, loc)
			if err != nil {
				return err
			}
			a.logger.Info("workbook written", "output", output, "rows", len(rows), "failed", len(results)-len(rows))
			return os.WriteFile(output, data, 0o644)
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "Output file")
	cmd.Flags().IntVarP(&workers, "workers", "w", runtime.NumCPU(), "Number of posters processed at once")
	_ = cmd.MarkFlagRequired("output")
	return cmd
}

func newBlocksCmd(a *app) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "blocks FILE",
		Short: "Print the text blocks of a poster as a JSON block document",
		Long:  `Loads a poster (typically an image or hOCR file) and prints its text blocks in the JSON block document format, which every other command accepts as input.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			blocks, err := a.extractor(cmd.Context(), args[0]).Blocks()
			if err != nil {
				return err
			}
			w := a.stdout
			if output != "" {
				f, err := os.Create(output)
				if err != nil {
					return err
				}
				defer f.Close()
				w = f
			}
			return input.WriteBlocksJSON(w, blocks)
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "Output file (default stdout)")
	return cmd
}

// writeFormatted encodes v as JSON or YAML
func writeFormatted(w io.Writer, format string, v any) error {
	switch format {
	case config.FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	default:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	}
}

// writeOutput writes data to path, or to w when path is empty
func writeOutput(w io.Writer, path string, data []byte) error {
	if path == "" {
		_, err := w.Write(data)
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
