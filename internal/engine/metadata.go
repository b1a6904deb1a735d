package engine

import (
	"github.com/streamfuse/streamfuse/internal/model"
)

// MergeMetadata constructs the provenance record for fusing left immediately
// before right. Ancestor histories are concatenated left-first, then
// right, with the new entry appended last, so a node's history always lists
// every atomic fusion that transitively contributed to it in order. The
// operands' histories are copied, never aliased or mutated.
func MergeMetadata(left, right model.Node, fusionType model.FusionType, entry model.TraceEntry) *model.FusionMetadata {
	size := 1
	if left.Metadata != nil {
		size += len(left.Metadata.History)
	}
	if right.Metadata != nil {
		size += len(right.Metadata.History)
	}

	history := make([]model.TraceEntry, 0, size)
	if left.Metadata != nil {
		history = append(history, left.Metadata.History...)
	}
	if right.Metadata != nil {
		history = append(history, right.Metadata.History...)
	}
	history = append(history, entry)

	return &model.FusionMetadata{
		Fused:             true,
		Pass:              entry.Iteration,
		OriginalOperators: [2]string{left.Op, right.Op},
		OriginalPositions: [2]int{entry.Position, entry.Position + 1},
		Type:              fusionType,
		Timestamp:         entry.Timestamp,
		History:           history,
	}
}
