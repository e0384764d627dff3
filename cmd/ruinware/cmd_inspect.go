package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/danielpatrickdp/ruinware/internal/journal"
)

// #region command
func (a *app) newInspectCmd() *cobra.Command {
	var sessionID string
	var last int
	var jsonOut bool

	cmd := &cobra.Command{
		Use:   "inspect",
		Short: "List journalled sessions, or the turns of one session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			store, err := journal.NewStore(a.cfg.DB.Path)
			if err != nil {
				return fmt.Errorf("open db: %w", err)
			}
			defer store.Close()

			out := cmd.OutOrStdout()
			if sessionID != "" {
				return runTurnsMode(out, store, sessionID, jsonOut)
			}
			return runSessionsMode(out, store, last, jsonOut)
		},
	}
	cmd.Flags().StringVar(&sessionID, "session", "", "show turns for one session id")
	cmd.Flags().IntVar(&last, "last", 20, "show N most recent sessions")
	cmd.Flags().BoolVar(&jsonOut, "json", false, "output as JSON instead of table")
	return cmd
}

// #endregion command

// #region sessions-mode
type sessionRow struct {
	SessionID string `json:"session_id"`
	StartedAt string `json:"started_at"`
	Model     string `json:"model,omitempty"`
	Turns     int    `json:"turns"`
}

func runSessionsMode(out io.Writer, store *journal.Store, last int, jsonOut bool) error {
	sessions, err := store.ListSessions(last)
	if err != nil {
		return err
	}
	if len(sessions) == 0 {
		fmt.Fprintln(out, "no sessions found")
		return nil
	}

	rows := make([]sessionRow, len(sessions))
	for i, s := range sessions {
		rows[i] = sessionRow{
			SessionID: s.SessionID,
			StartedAt: s.StartedAt.Format(time.RFC3339),
			Model:     s.Model,
			Turns:     s.TurnCount,
		}
	}

	if jsonOut {
		return writeJSON(out, rows)
	}
	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "SESSION\tSTARTED\tMODEL\tTURNS")
	for _, r := range rows {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%d\n", r.SessionID, r.StartedAt, r.Model, r.Turns)
	}
	return tw.Flush()
}

// #endregion sessions-mode

// #region turns-mode
type turnRow struct {
	Turn      int    `json:"turn"`
	Input     string `json:"input"`
	Kind      string `json:"kind"`
	Response  string `json:"response"`
	LockState string `json:"lock_state"`
	Depth     int    `json:"depth"`
	CreatedAt string `json:"created_at"`
}

func runTurnsMode(out io.Writer, store *journal.Store, sessionID string, jsonOut bool) error {
	turns, err := store.ListTurns(sessionID)
	if err != nil {
		return err
	}
	if len(turns) == 0 {
		fmt.Fprintf(out, "no turns for session %s\n", sessionID)
		return nil
	}

	rows := make([]turnRow, len(turns))
	for i, t := range turns {
		rows[i] = turnRow{
			Turn:      t.TurnNum,
			Input:     t.Input,
			Kind:      t.Kind,
			Response:  t.Response,
			LockState: t.LockState,
			Depth:     t.Depth,
			CreatedAt: t.CreatedAt.Format(time.RFC3339),
		}
	}

	if jsonOut {
		return writeJSON(out, rows)
	}
	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "#\tINPUT\tKIND\tLOCK\tDEPTH\tRESPONSE")
	for _, r := range rows {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%d\t%s\n",
			r.Turn, r.Input, r.Kind, r.LockState, r.Depth, truncate(firstLine(r.Response), 60))
	}
	return tw.Flush()
}

// #endregion turns-mode

// #region helpers
func writeJSON(out io.Writer, v any) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func firstLine(s string) string {
	line, _, _ := strings.Cut(s, "\n")
	return line
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-3]) + "..."
}

// #endregion helpers
