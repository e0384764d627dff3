package engine

import (
	"context"
	"strings"
)

// #region route-table
type input struct {
	raw   string
	lower string
}

// route claims an input by returning ok=true. Routes are tried in order and
// input no route claims goes to the fallback.
type route struct {
	name   string
	handle func(ctx context.Context, in input) (Response, bool)
}

const fallbackRoute = "cogitator"

func (r *Router) defaultRoutes() []route {
	return []route{
		{name: "cenobite", handle: r.routeCenobite},
		{name: "system", handle: r.routeSystem},
	}
}

// #endregion route-table

// #region routes
func (r *Router) routeCenobite(_ context.Context, in input) (Response, bool) {
	msg, ok := r.navigator.Process(in.lower)
	if !ok {
		return Response{}, false
	}
	return Response{
		Kind:      KindCenobite,
		Text:      cenobitePrefix + msg,
		Coherence: cenobiteCoherence,
	}, true
}

func (r *Router) routeSystem(_ context.Context, in input) (Response, bool) {
	if !strings.HasPrefix(in.raw, "/") {
		return Response{}, false
	}
	return r.HandleSystemCommand(in.raw), true
}

func (r *Router) routeCogitator(ctx context.Context, in input) Response {
	return r.invokeAdvisor(ctx, in.raw)
}

// #endregion routes
