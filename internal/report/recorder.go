package report

import (
	"fmt"

	"github.com/streamfuse/streamfuse/internal/config"
	"github.com/streamfuse/streamfuse/internal/logger"
	"github.com/streamfuse/streamfuse/internal/model"
)

// Recorder accumulates fusion trace entries for one optimization run and,
// when configured, emits each one to the console as it is recorded. A
// recorder created with tracing disabled drops everything.
type Recorder struct {
	enabled bool
	console bool
	level   config.LogLevel
	log     *logger.Logger
	entries []model.TraceEntry
}

// NewRecorder creates a recorder honoring the run configuration.
func NewRecorder(cfg config.OptimizerConfig, log *logger.Logger) *Recorder {
	return &Recorder{
		enabled: cfg.EnableTracing,
		console: cfg.TraceToConsole,
		level:   cfg.LogLevel,
		log:     log,
	}
}

// Record appends one fusion event to the trace.
func (r *Recorder) Record(entry model.TraceEntry) {
	if r == nil || !r.enabled {
		return
	}

	r.entries = append(r.entries, entry)
	if r.console {
		r.log.WithFields(map[string]any{"iteration": entry.Iteration}).Info(FormatEntry(entry, r.level))
	}
}

// Entries returns a copy of the accumulated trace.
func (r *Recorder) Entries() []model.TraceEntry {
	if r == nil || len(r.entries) == 0 {
		return nil
	}
	return append([]model.TraceEntry(nil), r.entries...)
}

// FormatEntry renders one trace entry at the given log level.
//
// Basic names the two operators and the result; detailed adds the fusion
// type and timestamp; verbose adds the position and the before/after
// pipeline lengths.
func FormatEntry(entry model.TraceEntry, level config.LogLevel) string {
	line := fmt.Sprintf("fused %s + %s -> %s", entry.LeftOp, entry.RightOp, entry.FusedOp)

	switch level {
	case config.LogLevelDetailed:
		line += fmt.Sprintf(" [type=%s ts=%d]", entry.Type, entry.Timestamp)
	case config.LogLevelVerbose:
		line += fmt.Sprintf(" [type=%s ts=%d pos=%d len %d->%d iter=%d step=%d]",
			entry.Type, entry.Timestamp, entry.Position, entry.LengthBefore, entry.LengthAfter, entry.Iteration, entry.Step)
	}

	return line
}
