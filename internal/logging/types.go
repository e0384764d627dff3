package logging

import "time"

// #region turn-entry
// TurnEntry is a single row in the turns table.
type TurnEntry struct {
	SessionID string
	TurnNum   int
	Input     string
	Kind      string // "cenobite" | "system" | "ai" | "error"
	Response  string
	LockState string
	Depth     int
	CreatedAt time.Time
}

// #endregion turn-entry
