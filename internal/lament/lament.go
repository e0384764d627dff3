package lament

// #region lock
// Lock is the sequence puzzle box. Each twist extends the attempt; an attempt
// that stops matching the secret prefix is discarded.
// Not safe for concurrent use.
type Lock struct {
	state   State
	secret  []int
	attempt []int
	moves   int
}

// NewLock creates an unsolved lock keyed to DefaultSecret.
func NewLock() *Lock {
	return NewLockWithSecret(DefaultSecret)
}

// NewLockWithSecret creates an unsolved lock keyed to a copy of secret.
func NewLockWithSecret(secret []int) *Lock {
	s := make([]int, len(secret))
	copy(s, secret)
	return &Lock{
		state:   StateUnsolved,
		secret:  s,
		attempt: []int{},
	}
}

// #endregion lock

// #region twist
// Twist turns one face of the box and reports what the box does.
// Once solved the lock is frozen and every twist is a no-op.
func (l *Lock) Twist(face int) string {
	if l.state == StateSolved {
		return MsgAlreadyOpen
	}

	l.attempt = append(l.attempt, face)
	l.moves++

	if !l.matchesPrefix() {
		l.attempt = l.attempt[:0]
		return MsgResets
	}
	if len(l.attempt) == len(l.secret) {
		l.state = StateSolved
		return MsgOpens
	}
	return MsgClicks
}

func (l *Lock) matchesPrefix() bool {
	if len(l.attempt) > len(l.secret) {
		return false
	}
	for i, f := range l.attempt {
		if l.secret[i] != f {
			return false
		}
	}
	return true
}

// #endregion twist

// #region accessors
// State returns the current lock state.
func (l *Lock) State() State { return l.state }

// Solved reports whether the box has opened.
func (l *Lock) Solved() bool { return l.state == StateSolved }

// Moves returns the number of accepted twists, resets included.
func (l *Lock) Moves() int { return l.moves }

// Attempt returns a copy of the matched prefix so far.
func (l *Lock) Attempt() []int {
	out := make([]int, len(l.attempt))
	copy(out, l.attempt)
	return out
}

// #endregion accessors
