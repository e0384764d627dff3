package replay

import (
	"context"
	"fmt"
	"strings"

	"github.com/danielpatrickdp/ruinware/internal/engine"
	"github.com/danielpatrickdp/ruinware/internal/lament"
)

// #region types
// StepResult captures the outcome of replaying one scripted input.
type StepResult struct {
	Index    int
	Input    string
	Response engine.Response
	Passed   bool
	Reason   string
}

// Summary provides aggregate stats from a replay run.
type Summary struct {
	TotalSteps     int
	Passed         int
	Failed         int
	FinalLockState lament.State
	FinalDepth     int
}

// #endregion types

// #region replay
// Replay feeds every step through r in order and checks its expectations.
func Replay(ctx context.Context, r *engine.Router, steps []FixtureStep) []StepResult {
	results := make([]StepResult, 0, len(steps))
	for i, step := range steps {
		resp := r.ProcessInput(ctx, step.Input)
		res := StepResult{Index: i, Input: step.Input, Response: resp, Passed: true}

		if step.ExpectKind != "" && string(resp.Kind) != step.ExpectKind {
			res.Passed = false
			res.Reason = fmt.Sprintf("kind %q, want %q", resp.Kind, step.ExpectKind)
		} else if step.ExpectContains != "" && !strings.Contains(resp.Text, step.ExpectContains) {
			res.Passed = false
			res.Reason = fmt.Sprintf("response %q does not contain %q", resp.Text, step.ExpectContains)
		}
		results = append(results, res)
	}
	return results
}

// Summarize computes aggregate stats from replay results and the router's final state.
func Summarize(results []StepResult, r *engine.Router) Summary {
	s := Summary{
		TotalSteps:     len(results),
		FinalLockState: r.LockState(),
		FinalDepth:     r.Depth(),
	}
	for _, res := range results {
		if res.Passed {
			s.Passed++
		} else {
			s.Failed++
		}
	}
	return s
}

// #endregion replay
