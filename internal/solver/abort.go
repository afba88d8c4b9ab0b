package solver

import "context"

// AbortController is polled at the head of every negamax call. The solver
// has exactly one suspension point: this check.
type AbortController interface {
	ShouldAbort() bool
}

// NeverAbort never stops a search; useful for tests and for solving
// without a time budget.
type NeverAbort struct{}

func (NeverAbort) ShouldAbort() bool { return false }

// DeadlineController wraps a context.Context created with
// context.WithDeadline, polling ctx.Err() rather than tracking its own
// timer bookkeeping.
type DeadlineController struct {
	ctx context.Context
}

// NewDeadlineController builds a DeadlineController from an
// already-deadlined context (see context.WithDeadline / WithTimeout).
func NewDeadlineController(ctx context.Context) DeadlineController {
	return DeadlineController{ctx: ctx}
}

func (d DeadlineController) ShouldAbort() bool {
	return d.ctx.Err() != nil
}
