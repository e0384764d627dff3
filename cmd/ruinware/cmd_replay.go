package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/danielpatrickdp/ruinware/internal/engine"
	"github.com/danielpatrickdp/ruinware/internal/replay"
)

// #region command
func (a *app) newReplayCmd() *cobra.Command {
	var fixturePath string

	cmd := &cobra.Command{
		Use:   "replay",
		Short: "Run a scripted fixture through a fresh engine",
		Long: `Replay feeds each step of a JSON fixture through a new engine with no
cogitator attached, and checks the expected response kind and text.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			f, err := replay.LoadFixture(fixturePath)
			if err != nil {
				return err
			}

			router := f.NewRouter(engine.WithLogger(a.logger))
			results := replay.Replay(cmd.Context(), router, f.Steps)
			summary := replay.Summarize(results, router)

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Fixture: %s\n", f.Description)
			for _, r := range results {
				status := "PASS"
				if !r.Passed {
					status = "FAIL"
				}
				fmt.Fprintf(out, "  [%s] %2d %-24q", status, r.Index, r.Input)
				if r.Passed {
					fmt.Fprintf(out, " %s\n", r.Response.Kind)
				} else {
					fmt.Fprintf(out, " %s\n", r.Reason)
				}
			}
			fmt.Fprintf(out, "\nSummary: %d/%d passed | lock=%s depth=%d\n",
				summary.Passed, summary.TotalSteps, summary.FinalLockState, summary.FinalDepth)

			if summary.Failed > 0 {
				return fmt.Errorf("%d of %d steps failed", summary.Failed, summary.TotalSteps)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&fixturePath, "fixture", "", "path to fixture JSON")
	_ = cmd.MarkFlagRequired("fixture")
	return cmd
}

// #endregion command
