package logging

import (
	"database/sql"
	"fmt"
	"time"
)

// #region log-turn
// LogTurn writes one routed turn to the turns table.
func LogTurn(db *sql.DB, entry TurnEntry) error {
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now().UTC()
	}

	_, err := db.Exec(
		`INSERT INTO turns (session_id, turn_num, input, kind, response, lock_state, depth, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		entry.SessionID,
		entry.TurnNum,
		entry.Input,
		nullIfEmpty(entry.Kind),
		nullIfEmpty(entry.Response),
		entry.LockState,
		entry.Depth,
		entry.CreatedAt.Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("log turn: %w", err)
	}
	return nil
}

// #endregion log-turn

// #region helpers
func nullIfEmpty(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}

// #endregion helpers
