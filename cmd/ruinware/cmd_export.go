package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/danielpatrickdp/ruinware/internal/journal"
	"github.com/danielpatrickdp/ruinware/internal/replay"
)

// #region command
func (a *app) newExportCmd() *cobra.Command {
	var sessionID, outPath, description string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export a journalled session as a replay fixture",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			store, err := journal.NewStore(a.cfg.DB.Path)
			if err != nil {
				return fmt.Errorf("open db: %w", err)
			}
			defer store.Close()

			if sessionID == "" {
				latest, err := store.LatestSession()
				if err != nil {
					return err
				}
				sessionID = latest.SessionID
			}

			turns, err := store.ListTurns(sessionID)
			if err != nil {
				return err
			}
			if description == "" {
				description = "exported from session " + sessionID
			}

			f := replay.FromTurns(description, turns)
			if err := f.Save(outPath); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote fixture with %d steps to %s\n", len(f.Steps), outPath)
			return nil
		},
	}
	cmd.Flags().StringVar(&sessionID, "session", "", "session id (default: latest)")
	cmd.Flags().StringVar(&outPath, "out", "", "output fixture JSON path")
	cmd.Flags().StringVar(&description, "description", "", "fixture description")
	_ = cmd.MarkFlagRequired("out")
	return cmd
}

// #endregion command
