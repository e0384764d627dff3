package labyrinth

import "errors"

// #region command-kind
// CommandKind identifies a navigator verb.
type CommandKind string

const (
	CommandUnknown CommandKind = "unknown"
	CommandTwist   CommandKind = "twist"
	CommandEnter   CommandKind = "enter"
	CommandDeeper  CommandKind = "deeper"
)

// #endregion command-kind

// #region command
// Command is a parsed navigator command. For CommandTwist, either Face holds
// the parsed face or Err says why the face could not be read.
type Command struct {
	Kind CommandKind
	Face int
	Err  error
}

// #endregion command

// #region errors
var (
	ErrMissingFace = errors.New("twist: missing face")
	ErrBadFace     = errors.New("twist: face is not an integer")
)

// #endregion errors

// #region messages
const (
	MsgWhichFace = "Twist which face?"
	MsgEnter     = "You enter Layer 1: The Hall of Screaming Statues."
	MsgClosed    = "The gateway is closed."
	msgDescend   = "Descending to Layer %d..."
)

// #endregion messages
