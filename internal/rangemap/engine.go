package rangemap

import "fmt"

// StageContext describes one stage of a run. Middleware receives it after the
// stage has been applied and may stop the run by setting Err.
type StageContext struct {
	Index  int
	Stage  Stage
	Input  []Interval
	Output []Interval
	Err    error
}

// Middleware observes or checks a stage result. Returning a context with Err
// set aborts the run.
type Middleware func(StageContext) StageContext

// Engine runs stages like Run and passes every stage result through a
// middleware chain.
type Engine struct {
	middleware []Middleware
}

// NewEngine creates an engine with the given middleware installed in order.
func NewEngine(middleware ...Middleware) *Engine {
	e := &Engine{}
	for _, mw := range middleware {
		e.Use(mw)
	}
	return e
}

// Use appends a middleware to the chain.
func (e *Engine) Use(mw Middleware) {
	e.middleware = append(e.middleware, mw)
}

// Run applies stages in order, invoking the middleware chain after each.
// The error is the first one raised by a middleware; the remapping itself
// cannot fail.
func (e *Engine) Run(seeds []Interval, stages []Stage) ([]Interval, error) {
	current := seeds
	for i, stage := range stages {
		ctx := StageContext{
			Index:  i,
			Stage:  stage,
			Input:  current,
			Output: ApplyStage(current, stage),
		}
		for _, mw := range e.middleware {
			ctx = mw(ctx)
			if ctx.Err != nil {
				return nil, ctx.Err
			}
		}
		current = ctx.Output
	}
	return current, nil
}

// ConservationCheck fails the run when a stage changes the total covered
// length of the set.
func ConservationCheck(ctx StageContext) StageContext {
	in, out := TotalLength(ctx.Input), TotalLength(ctx.Output)
	if in != out {
		ctx.Err = fmt.Errorf("stage %d (%s) changed covered length from %d to %d", ctx.Index+1, ctx.Stage.Name, in, out)
	}
	return ctx
}
