package engine

import "context"

// #region kind
// Kind tags a response with the subsystem that produced it.
type Kind string

const (
	KindNone     Kind = ""
	KindCenobite Kind = "cenobite"
	KindSystem   Kind = "system"
	KindAI       Kind = "ai"
	KindError    Kind = "error"
)

// #endregion kind

// #region response
// Response is the tagged result of one routed input.
type Response struct {
	Kind      Kind    `json:"type,omitempty"`
	Text      string  `json:"response"`
	Coherence float64 `json:"z,omitempty"`
}

// #endregion response

// #region advisor
// Advisor answers free-form prompts that no internal route claims.
// Implementations may block; they must honour ctx.
type Advisor interface {
	Advise(ctx context.Context, prompt string) (string, error)
}

// #endregion advisor

// #region messages
const (
	cenobitePrefix    = "[CENOBITE] "
	cenobiteCoherence = 0.88

	MsgUnknownCommand = "Unknown command."
	MsgAIUnavailable  = "[SYSTEM] Cogitator bridge offline. AI unavailable."

	statusFormat = "SYSTEM STATUS: ONLINE\n" +
		"Uptime: %ds\n" +
		"Witness Depth: %.2f\n" +
		"Lament State: %s"
)

// #endregion messages
