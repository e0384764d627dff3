package lament

// #region state
// State is the observable condition of the lament configuration.
type State string

const (
	StateUnsolved State = "unsolved"
	StateSolved   State = "solved"
)

// #endregion state

// #region messages
const (
	MsgAlreadyOpen = "Gateway already open."
	MsgOpens       = "The box opens. The blue light spills out."
	MsgClicks      = "The box clicks. It is warm."
	MsgResets      = "The box resets. The geometry was wrong."
)

// #endregion messages

// #region secret
// DefaultSecret is the first eight digits of pi.
var DefaultSecret = []int{3, 1, 4, 1, 5, 9, 2, 6}

// #endregion secret
