package report

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/streamfuse/streamfuse/internal/model"
)

// Summary aggregates statistics over an optimization trace.
type Summary struct {
	TotalFusions     int
	Iterations       int
	FusionTypeCounts map[model.FusionType]int
	Performance      PerformanceStats
}

// PerformanceStats carries timing aggregates over the trace. Timestamps are
// event ordinals, so the figures are diagnostic proxies for elapsed cost,
// not wall-clock measurements.
type PerformanceStats struct {
	TimestampSum     int64
	TimestampAverage float64
}

// Summarize computes trace statistics: total fusion count, the number of
// passes that actually fused anything, and a histogram of fusion types.
func Summarize(entries []model.TraceEntry) Summary {
	summary := Summary{
		FusionTypeCounts: make(map[model.FusionType]int),
	}
	if len(entries) == 0 {
		return summary
	}

	maxIteration := 0
	var sum int64
	for _, entry := range entries {
		summary.TotalFusions++
		summary.FusionTypeCounts[entry.Type]++
		if entry.Iteration > maxIteration {
			maxIteration = entry.Iteration
		}
		sum += entry.Timestamp
	}

	summary.Iterations = maxIteration + 1
	summary.Performance = PerformanceStats{
		TimestampSum:     sum,
		TimestampAverage: float64(sum) / float64(len(entries)),
	}
	return summary
}

// String renders a short human readable summary.
func (s Summary) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%d fusions over %d iterations\n", s.TotalFusions, s.Iterations)
	for _, fusionType := range []model.FusionType{
		model.FusionStatelessOnly,
		model.FusionStatelessBeforeStateful,
		model.FusionStatefulBeforeStateless,
	} {
		if count := s.FusionTypeCounts[fusionType]; count > 0 {
			fmt.Fprintf(&b, "  %s: %d\n", fusionType, count)
		}
	}
	return b.String()
}

var (
	fusedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true)
	leafStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("250"))
	noteStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("244")).Italic(true)
)

// Visualizer renders a pipeline for diagnostics. Rendering is read-only.
type Visualizer struct {
	styled bool
}

// NewVisualizer creates a visualizer. Styled output uses terminal colors;
// plain output is suitable for pipes and logs.
func NewVisualizer(styled bool) *Visualizer {
	return &Visualizer{styled: styled}
}

// Render returns one line per node with its label and, for fused nodes, a
// readable lineage: the immediate operands, the pass the fusion happened in,
// and the total number of atomic fusions folded into the node.
func (v *Visualizer) Render(pipeline []model.Node) string {
	if len(pipeline) == 0 {
		return "(empty pipeline)\n"
	}

	var b strings.Builder
	for i, node := range pipeline {
		label := node.Op
		if v.styled {
			if node.Fused() {
				label = fusedStyle.Render(label)
			} else {
				label = leafStyle.Render(label)
			}
		}
		fmt.Fprintf(&b, "Step %d: %s", i, label)

		if node.Fused() {
			meta := node.Metadata
			note := fmt.Sprintf(" (fused %s with %s in pass %d, %d fusions total)",
				meta.OriginalOperators[0], meta.OriginalOperators[1], meta.Pass, len(meta.History))
			if v.styled {
				note = noteStyle.Render(note)
			}
			b.WriteString(note)
		}
		b.WriteString("\n")
	}

	return b.String()
}
