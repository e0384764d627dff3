package journal

import "time"

// #region session
// Session is one REPL run.
type Session struct {
	SessionID string
	StartedAt time.Time
	Model     string
	TurnCount int
}

// #endregion session

// #region turn
// Turn is one journalled input and the router's answer to it.
type Turn struct {
	ID        int64
	SessionID string
	TurnNum   int
	Input     string
	Kind      string
	Response  string
	LockState string
	Depth     int
	CreatedAt time.Time
}

// #endregion turn
