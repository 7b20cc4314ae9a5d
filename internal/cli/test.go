package cli

import (
	"encoding/json"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/roach88/ordo/internal/harness"
)

// TestOptions holds flags for the test command.
type TestOptions struct {
	*RootOptions
	Filter string // scenario name filter (glob pattern)
}

// ScenarioResult holds the outcome of one scenario.
type ScenarioResult struct {
	Name   string   `json:"name"`
	Pass   bool     `json:"pass"`
	Errors []string `json:"errors,omitempty"`
}

// TestResult aggregates a harness run.
type TestResult struct {
	Scenarios []ScenarioResult `json:"scenarios"`
	Passed    int              `json:"passed"`
	Failed    int              `json:"failed"`
	Total     int              `json:"total"`
}

// NewTestCommand creates the test command.
func NewTestCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &TestOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "test <scenarios-dir>",
		Short: "Run conformance scenarios",
		Long: `Run YAML conformance scenarios against the engine.

Exit codes:
  0 - all scenarios passed
  1 - one or more scenarios failed
  2 - command error (bad paths, malformed scenarios)

Examples:
  ordo test ./scenarios
  ordo test ./scenarios --filter "advent_*"
  ordo test ./scenarios --format json`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScenarios(opts, cmd, args[0])
		},
	}

	cmd.Flags().StringVar(&opts.Filter, "filter", "", "run only scenarios matching this glob")

	return cmd
}

func runScenarios(opts *TestOptions, cmd *cobra.Command, dir string) error {
	scenarios, err := harness.LoadScenarios(dir)
	if err != nil {
		return WrapExitError(ExitCommandError, "load scenarios", err)
	}
	if len(scenarios) == 0 {
		return NewExitError(ExitCommandError, fmt.Sprintf("no scenarios found in %s", dir))
	}

	f := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	result := TestResult{}
	for _, s := range scenarios {
		if opts.Filter != "" {
			match, globErr := filepath.Match(opts.Filter, s.Name)
			if globErr != nil {
				return WrapExitError(ExitCommandError, "invalid filter", globErr)
			}
			if !match {
				continue
			}
		}

		f.VerboseLog("running scenario %s (year %d)", s.Name, s.Year)
		r, runErr := harness.Run(s)
		if runErr != nil {
			return WrapExitError(ExitCommandError, fmt.Sprintf("scenario %s", s.Name), runErr)
		}

		result.Scenarios = append(result.Scenarios, ScenarioResult{
			Name:   s.Name,
			Pass:   r.Pass,
			Errors: r.Errors,
		})
		result.Total++
		if r.Pass {
			result.Passed++
		} else {
			result.Failed++
		}
	}
	if result.Total == 0 {
		return NewExitError(ExitCommandError,
			fmt.Sprintf("no scenarios match filter %q", opts.Filter))
	}

	if opts.Format == "json" {
		if err := json.NewEncoder(f.Writer).Encode(result); err != nil {
			return WrapExitError(ExitCommandError, "encode result", err)
		}
	} else {
		for _, s := range result.Scenarios {
			status := "PASS"
			if !s.Pass {
				status = "FAIL"
			}
			fmt.Fprintf(f.Writer, "%s  %s\n", status, s.Name)
			for _, e := range s.Errors {
				fmt.Fprintf(f.Writer, "      %s\n", e)
			}
		}
		fmt.Fprintf(f.Writer, "%d/%d scenarios passed\n", result.Passed, result.Total)
	}

	if result.Failed > 0 {
		return NewExitError(ExitFailure,
			fmt.Sprintf("%d of %d scenarios failed", result.Failed, result.Total))
	}
	return nil
}
