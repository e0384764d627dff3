package journal

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

// #region schema
const schema = `
CREATE TABLE IF NOT EXISTS sessions (
	session_id  TEXT PRIMARY KEY,
	started_at  TEXT NOT NULL,
	model       TEXT
);

CREATE TABLE IF NOT EXISTS turns (
	id          INTEGER PRIMARY KEY AUTOINCREMENT,
	session_id  TEXT NOT NULL,
	turn_num    INTEGER NOT NULL,
	input       TEXT NOT NULL,
	kind        TEXT,
	response    TEXT,
	lock_state  TEXT NOT NULL,
	depth       INTEGER NOT NULL,
	created_at  TEXT NOT NULL,
	FOREIGN KEY (session_id) REFERENCES sessions(session_id)
);

CREATE INDEX IF NOT EXISTS idx_turns_session ON turns(session_id, turn_num);
`

// #endregion schema

// #region errors
// timeLayout is fixed width so started_at orders correctly as text.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

// ErrNoSessions is returned by LatestSession on an empty journal.
var ErrNoSessions = errors.New("no sessions recorded")

// #endregion errors

// #region store-struct
// Store is the append-only turn journal in SQLite.
type Store struct {
	db *sql.DB
}

// #endregion store-struct

// #region constructor
// NewStore opens a SQLite database and runs migrations.
func NewStore(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	// PRAGMA foreign_keys is per connection.
	db.SetMaxOpenConns(1)
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("pragma: %w", err)
	}
	if _, err := db.Exec("PRAGMA foreign_keys=ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("pragma fk: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return &Store{db: db}, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// DB returns the underlying *sql.DB for use by other packages (e.g. logging).
func (s *Store) DB() *sql.DB {
	return s.db
}

// #endregion constructor

// #region start-session
// StartSession records a new session with a fresh uuid.
func (s *Store) StartSession(model string, startedAt time.Time) (Session, error) {
	sess := Session{
		SessionID: uuid.New().String(),
		StartedAt: startedAt.UTC(),
		Model:     model,
	}
	_, err := s.db.Exec(
		`INSERT INTO sessions (session_id, started_at, model) VALUES (?, ?, ?)`,
		sess.SessionID, sess.StartedAt.Format(timeLayout),
		sql.NullString{String: model, Valid: model != ""},
	)
	if err != nil {
		return Session{}, fmt.Errorf("insert session: %w", err)
	}
	return sess, nil
}

// #endregion start-session

// #region list-sessions
// ListSessions returns the most recent sessions, newest first.
func (s *Store) ListSessions(limit int) ([]Session, error) {
	rows, err := s.db.Query(
		`SELECT s.session_id, s.started_at, s.model, COUNT(t.id)
		 FROM sessions s LEFT JOIN turns t ON t.session_id = s.session_id
		 GROUP BY s.session_id
		 ORDER BY s.started_at DESC, s.rowid DESC LIMIT ?`, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}
	defer rows.Close()

	var sessions []Session
	for rows.Next() {
		var sess Session
		var startedStr string
		var model sql.NullString
		if err := rows.Scan(&sess.SessionID, &startedStr, &model, &sess.TurnCount); err != nil {
			return nil, fmt.Errorf("scan session: %w", err)
		}
		sess.StartedAt, _ = time.Parse(timeLayout, startedStr)
		if model.Valid {
			sess.Model = model.String
		}
		sessions = append(sessions, sess)
	}
	return sessions, rows.Err()
}

// LatestSession returns the most recently started session.
func (s *Store) LatestSession() (Session, error) {
	sessions, err := s.ListSessions(1)
	if err != nil {
		return Session{}, err
	}
	if len(sessions) == 0 {
		return Session{}, ErrNoSessions
	}
	return sessions[0], nil
}

// #endregion list-sessions

// #region list-turns
// ListTurns returns every turn of a session in turn order.
func (s *Store) ListTurns(sessionID string) ([]Turn, error) {
	rows, err := s.db.Query(
		`SELECT id, session_id, turn_num, input, kind, response, lock_state, depth, created_at
		 FROM turns WHERE session_id = ? ORDER BY turn_num ASC, id ASC`, sessionID,
	)
	if err != nil {
		return nil, fmt.Errorf("list turns: %w", err)
	}
	defer rows.Close()

	var turns []Turn
	for rows.Next() {
		var t Turn
		var kind, response sql.NullString
		var createdStr string
		if err := rows.Scan(&t.ID, &t.SessionID, &t.TurnNum, &t.Input, &kind, &response,
			&t.LockState, &t.Depth, &createdStr); err != nil {
			return nil, fmt.Errorf("scan turn: %w", err)
		}
		t.Kind = kind.String
		t.Response = response.String
		t.CreatedAt, _ = time.Parse(time.RFC3339Nano, createdStr)
		turns = append(turns, t)
	}
	return turns, rows.Err()
}

// #endregion list-turns
