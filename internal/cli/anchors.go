package cli

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/roach88/ordo/internal/anchor"
	"github.com/roach88/ordo/internal/liturgy"
)

// NewAnchorsCommand creates the anchors command.
func NewAnchorsCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "anchors [year]",
		Short: "Print the movable anchor dates for a year",
		Long: `Compute the movable anchors the calendar is built from: Easter and the
dates derived from it, the first Advent Sunday, and the conditional
anchors (Holy Name, Christmas octave Sunday) for the given civil year.

Examples:
  ordo anchors 2026
  ordo anchors 2026 --format json`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAnchors(rootOpts, cmd, args)
		},
	}
	return cmd
}

// anchorRow pairs an anchor name with its computed date. Rows keep
// derivation order for text output; JSON output sorts by key.
type anchorRow struct {
	Name string
	Date time.Time
}

func runAnchors(opts *RootOptions, cmd *cobra.Command, args []string) error {
	year := time.Now().Year()
	if len(args) == 1 {
		y, err := strconv.Atoi(args[0])
		if err != nil {
			return WrapExitError(ExitCommandError, fmt.Sprintf("invalid year %q", args[0]), err)
		}
		year = y
	}
	if !anchor.YearSupported(year) {
		return NewExitError(ExitCommandError,
			fmt.Sprintf("year %d outside supported range %d-%d", year, anchor.MinYear, anchor.MaxYear))
	}

	rows := anchorRows(year)
	out := cmd.OutOrStdout()

	if opts.Format == "json" {
		m := map[string]any{"year": year}
		for _, r := range rows {
			m[r.Name] = r.Date.Format("2006-01-02")
		}
		data, err := liturgy.MarshalCanonical(m)
		if err != nil {
			return WrapExitError(ExitCommandError, "serialize anchors", err)
		}
		_, err = fmt.Fprintf(out, "%s\n", data)
		return err
	}

	for _, r := range rows {
		fmt.Fprintf(out, "%-28s %s\n", r.Name, r.Date.Format("2006-01-02"))
	}
	return nil
}

func anchorRows(year int) []anchorRow {
	rows := []anchorRow{
		{"easter", anchor.EasterSunday(year)},
		{"septuagesima", anchor.Septuagesima(year)},
		{"holy_family_sunday", anchor.HolyFamilySunday(year)},
		{"holy_name_sunday", anchor.HolyNameSunday(year)},
		{"september_ember_wednesday", anchor.SeptemberEmberWednesday(year)},
		{"christ_king_sunday", anchor.ChristKingSunday(year)},
		{"post_pentecost_24_sunday", anchor.PostPentecost24Sunday(year)},
		{"first_advent_sunday", anchor.FirstAdventSunday(year)},
		{"all_souls", anchor.AllSoulsDay(year)},
		{"matthias", anchor.MatthiasDay(year)},
	}
	if d, ok := anchor.ChristmasOctaveSunday(year); ok {
		rows = append(rows, anchorRow{"christmas_octave_sunday", d})
	}
	return rows
}
