package cli

import (
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/roach88/ordo/internal/calendar"
	"github.com/roach88/ordo/internal/engine"
	"github.com/roach88/ordo/internal/liturgy"
)

// GenerateOptions holds flags for the generate command.
type GenerateOptions struct {
	*RootOptions
}

// NewGenerateCommand creates the generate command.
func NewGenerateCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &GenerateOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "generate [year]",
		Short: "Generate the calendar for a year",
		Long: `Compute the full liturgical calendar for a civil year (default: the
current year) and print one record per date.

JSON output is canonical: generating the same year twice yields
byte-identical bytes, suitable for diffing and golden comparison.

Examples:
  ordo generate
  ordo generate 2026
  ordo generate 2026 --format json`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(opts, cmd, args)
		},
	}
	return cmd
}

func runGenerate(opts *GenerateOptions, cmd *cobra.Command, args []string) error {
	year := time.Now().Year()
	if len(args) == 1 {
		y, err := strconv.Atoi(args[0])
		if err != nil {
			return WrapExitError(ExitCommandError, fmt.Sprintf("invalid year %q", args[0]), err)
		}
		year = y
	}

	// Every run carries a time-sortable token so log lines from
	// concurrent invocations stay attributable.
	runID := uuid.Must(uuid.NewV7()).String()
	logger := slog.Default().With("run_id", runID)
	logger.Info("generating calendar", "year", year)

	out := cmd.OutOrStdout()
	f := &OutputFormatter{
		Format:    opts.Format,
		Writer:    out,
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	store, err := engine.Compute(year)
	if err != nil {
		_ = f.Error(engineErrorCode(err), err.Error())
		return WrapExitError(ExitCommandError, "compute failed", err)
	}
	logger.Info("calendar computed", "year", year, "days", store.Len())
	f.VerboseLog("run %s: %d day records", runID, store.Len())
	if opts.Format == "json" {
		data, err := liturgy.MarshalCanonical(store.Snapshot())
		if err != nil {
			return WrapExitError(ExitCommandError, "serialize calendar", err)
		}
		_, err = fmt.Fprintf(out, "%s\n", data)
		return err
	}

	for _, rec := range store.Days() {
		fmt.Fprintln(out, formatDayLine(rec))
	}
	return nil
}

// formatDayLine renders one calendar record as a text line:
//
//	2008-03-23  tempora:dom_resurrectionis:1
//	2008-11-30  tempora:dom_adventus_1:1 / sancti:11-30_andreae_apostoli:2
func formatDayLine(rec *calendar.DayRecord) string {
	var b strings.Builder
	b.WriteString(rec.Date.Format("2006-01-02"))
	b.WriteString("  ")
	b.WriteString(joinIDs(rec.Celebration))
	if len(rec.Commemoration) > 0 {
		b.WriteString(" / ")
		b.WriteString(joinIDs(rec.Commemoration))
	}
	return b.String()
}

func joinIDs(days []liturgy.Day) string {
	if len(days) == 0 {
		return "-"
	}
	ids := make([]string, len(days))
	for i, d := range days {
		ids[i] = d.ID
	}
	return strings.Join(ids, ", ")
}

// engineErrorCode maps engine errors to response codes.
func engineErrorCode(err error) string {
	var engErr *engine.Error
	if errors.As(err, &engErr) {
		return string(engErr.Code)
	}
	return "COMMAND_ERROR"
}
