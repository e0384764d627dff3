package engine

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/danielpatrickdp/ruinware/internal/cogitator"
	"github.com/danielpatrickdp/ruinware/internal/labyrinth"
	"github.com/danielpatrickdp/ruinware/internal/lament"
	"github.com/danielpatrickdp/ruinware/internal/witness"
)

// #region router
// Router is the single entry point for text input. It owns the navigator and
// the witness baseline and is meant for one caller at a time.
type Router struct {
	navigator *labyrinth.Navigator
	baseline  *witness.Baseline
	advisor   Advisor
	startTime time.Time
	now       func() time.Time
	logger    *zap.Logger
	routes    []route
}

// Option customises a Router.
type Option func(*Router)

// WithAdvisor sets the fallback advisory service. Without one, free-form
// input yields an "unavailable" error response.
func WithAdvisor(a Advisor) Option {
	return func(r *Router) { r.advisor = a }
}

// WithBaseline shares a precomputed baseline instead of building a new one.
func WithBaseline(b *witness.Baseline) Option {
	return func(r *Router) { r.baseline = b }
}

// WithNavigator replaces the default navigator.
func WithNavigator(n *labyrinth.Navigator) Option {
	return func(r *Router) { r.navigator = n }
}

// WithClock overrides time.Now for uptime reporting.
func WithClock(now func() time.Time) Option {
	return func(r *Router) { r.now = now }
}

// WithLogger sets the structured logger.
func WithLogger(l *zap.Logger) Option {
	return func(r *Router) { r.logger = l }
}

// New builds a router. The start time is captured after options are applied.
func New(opts ...Option) *Router {
	r := &Router{now: time.Now}
	for _, opt := range opts {
		opt(r)
	}
	if r.navigator == nil {
		r.navigator = labyrinth.NewNavigator()
	}
	if r.baseline == nil {
		r.baseline = witness.NewBaseline()
	}
	if r.logger == nil {
		r.logger = zap.NewNop()
	}
	r.startTime = r.now()
	r.routes = r.defaultRoutes()
	return r
}

// #endregion router

// #region process-input
// ProcessInput routes one line of user text. Empty input yields an untyped
// empty response.
func (r *Router) ProcessInput(ctx context.Context, text string) Response {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return Response{}
	}

	in := input{raw: trimmed, lower: strings.ToLower(trimmed)}
	for _, rt := range r.routes {
		if resp, ok := rt.handle(ctx, in); ok {
			r.logger.Debug("input routed", zap.String("route", rt.name), zap.String("kind", string(resp.Kind)))
			return resp
		}
	}
	resp := r.routeCogitator(ctx, in)
	r.logger.Debug("input routed", zap.String("route", fallbackRoute), zap.String("kind", string(resp.Kind)))
	return resp
}

// #endregion process-input

// #region system-command
// HandleSystemCommand answers a slash command. Arguments after the verb are
// currently ignored.
func (r *Router) HandleSystemCommand(cmd string) Response {
	fields := strings.Fields(cmd)
	verb := ""
	if len(fields) > 0 {
		verb = strings.ToLower(fields[0])
	}

	switch verb {
	case "/status":
		uptime := int(r.now().Sub(r.startTime).Seconds())
		report := r.baseline.Report()
		state := strings.ToUpper(string(r.navigator.LockState()))
		return Response{
			Kind: KindSystem,
			Text: fmt.Sprintf(statusFormat, uptime, report.TotalBitDepth, state),
		}
	}
	return Response{Kind: KindSystem, Text: MsgUnknownCommand}
}

// #endregion system-command

// #region advise
func (r *Router) invokeAdvisor(ctx context.Context, prompt string) Response {
	if r.advisor == nil {
		return Response{Kind: KindError, Text: MsgAIUnavailable}
	}

	text, err := r.advisor.Advise(ctx, prompt)
	if err == nil {
		return Response{Kind: KindAI, Text: text}
	}

	var se *cogitator.StatusError
	switch {
	case errors.Is(err, cogitator.ErrUnavailable):
		return Response{Kind: KindError, Text: MsgAIUnavailable}
	case errors.As(err, &se):
		return Response{Kind: KindError, Text: fmt.Sprintf("[OLLAMA ERROR] %d", se.Code)}
	}
	r.logger.Warn("advisor call failed", zap.Error(err))
	return Response{Kind: KindError, Text: fmt.Sprintf("[CONNECTION FAILED] Is Ollama running? %v", err)}
}

// #endregion advise

// #region accessors
// LockState reports the lament configuration's state.
func (r *Router) LockState() lament.State { return r.navigator.LockState() }

// Depth reports the navigator's current layer.
func (r *Router) Depth() int { return r.navigator.Depth() }

// StartedAt returns the time the router was built.
func (r *Router) StartedAt() time.Time { return r.startTime }

// Baseline returns the shared witness baseline.
func (r *Router) Baseline() *witness.Baseline { return r.baseline }

// #endregion accessors
