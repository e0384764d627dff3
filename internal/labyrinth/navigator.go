package labyrinth

import (
	"fmt"

	"github.com/danielpatrickdp/ruinware/internal/lament"
)

// #region navigator
// Navigator walks the labyrinth behind the lament configuration. It owns its
// lock and tracks how deep the visitor has gone.
type Navigator struct {
	lock  *lament.Lock
	depth int
}

// NewNavigator creates a navigator at depth 0 with a fresh default lock.
func NewNavigator() *Navigator {
	return NewNavigatorWithLock(lament.NewLock())
}

// NewNavigatorWithLock creates a navigator that takes ownership of lock.
func NewNavigatorWithLock(lock *lament.Lock) *Navigator {
	return &Navigator{lock: lock}
}

// #endregion navigator

// #region process
// Process handles one lower-cased command. The boolean is false only when the
// command is outside the navigator's vocabulary, so the caller can route it
// elsewhere.
func (n *Navigator) Process(cmd string) (string, bool) {
	c := ParseCommand(cmd)
	switch c.Kind {
	case CommandTwist:
		if c.Err != nil {
			return MsgWhichFace, true
		}
		return n.lock.Twist(c.Face), true
	case CommandEnter:
		if n.lock.Solved() {
			n.depth = 1
			return MsgEnter, true
		}
		return MsgClosed, true
	case CommandDeeper:
		// deeper is not gated on the lock, unlike enter.
		n.depth++
		return fmt.Sprintf(msgDescend, n.depth), true
	}
	return "", false
}

// #endregion process

// #region accessors
// Depth returns the current layer depth.
func (n *Navigator) Depth() int { return n.depth }

// LockState returns the state of the owned lock.
func (n *Navigator) LockState() lament.State { return n.lock.State() }

// Lock exposes the owned lock for read-only inspection.
func (n *Navigator) Lock() *lament.Lock { return n.lock }

// #endregion accessors
