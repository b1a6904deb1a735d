package engine

import (
	"github.com/streamfuse/streamfuse/internal/model"
	"github.com/streamfuse/streamfuse/internal/report"
)

// ordinalClock hands out monotonic event ordinals within one optimizer run.
// Ordinals correlate trace entries with metadata; they are not wall clock.
type ordinalClock struct {
	last int64
}

func (c *ordinalClock) next() int64 {
	c.last++
	return c.last
}

// rewrite performs one left-to-right pass over nodes. Fusion is greedy and
// leftmost-first: each position is only ever considered against its immediate
// right neighbor, a fused pair is consumed and never re-examined within the
// pass, and nodes are never re-ordered. The input slice is left untouched.
func (o *Optimizer) rewrite(nodes []model.Node, iteration int, clock *ordinalClock, recorder *report.Recorder) []model.Node {
	out := make([]model.Node, 0, len(nodes))
	step := 0

	for i := 0; i < len(nodes); {
		if i+1 >= len(nodes) {
			out = append(out, nodes[i])
			i++
			continue
		}

		left, right := nodes[i], nodes[i+1]
		fusionType, builder, ok := o.env.Rules.Plan(left.Op, right.Op)
		if !ok {
			out = append(out, left)
			i++
			continue
		}

		fusedOp := model.FusedLabel(left.Op, right.Op)
		entry := model.TraceEntry{
			Iteration:    iteration,
			Step:         step,
			Position:     i,
			LeftOp:       left.Op,
			RightOp:      right.Op,
			FusedOp:      fusedOp,
			LengthBefore: len(nodes),
			LengthAfter:  len(nodes) - step - 1,
			Type:         fusionType,
			Timestamp:    clock.next(),
		}

		fused := model.Node{
			Op:        fusedOp,
			Transform: builder(left, right),
			Metadata:  MergeMetadata(left, right, fusionType, entry),
		}
		out = append(out, fused)
		recorder.Record(entry)
		step++
		i += 2
	}

	return out
}
