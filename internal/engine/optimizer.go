package engine

import (
	"github.com/streamfuse/streamfuse/internal/config"
	"github.com/streamfuse/streamfuse/internal/logger"
	"github.com/streamfuse/streamfuse/internal/model"
	"github.com/streamfuse/streamfuse/internal/report"
)

// Result is the outcome of one optimization run.
type Result struct {
	Pipeline []model.Node
	Trace    []model.TraceEntry
}

// Optimizer fuses adjacent compatible operators in a pipeline until a
// fixpoint is reached. It is a pure function of (pipeline, config,
// environment); running it concurrently is safe as long as the environment
// is not being mutated.
type Optimizer struct {
	env *Environment
	log *logger.Logger
}

// New creates an optimizer over the given environment.
func New(env *Environment, log *logger.Logger) *Optimizer {
	return &Optimizer{env: env, log: log}
}

// Optimize repeats rewrite passes until a pass stops shrinking the pipeline
// or the iteration budget is exhausted. Pipeline length is non-increasing
// pass over pass and strictly decreases on any pass that fuses, so the loop
// always terminates within MaxIterations.
//
// Exhausting MaxIterations while fusions are still occurring is not an
// error: the partially optimized pipeline and the trace recorded so far are
// returned as-is. Re-running Optimize on an optimized pipeline is a no-op.
func (o *Optimizer) Optimize(pipeline []model.Node, cfg config.OptimizerConfig) Result {
	cfg = cfg.Normalize()
	recorder := report.NewRecorder(cfg, o.log)

	working := append([]model.Node(nil), pipeline...)
	clock := &ordinalClock{}

	for iteration := 0; iteration < cfg.MaxIterations; iteration++ {
		next := o.rewrite(working, iteration, clock, recorder)
		fused := len(working) - len(next)

		o.log.WithFields(map[string]any{
			"iteration": iteration,
			"fusions":   fused,
			"length":    len(next),
		}).Debug("rewrite pass complete")

		working = next
		if fused == 0 {
			break
		}
	}

	return Result{Pipeline: working, Trace: recorder.Entries()}
}
