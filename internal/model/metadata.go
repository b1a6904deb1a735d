package model

// FusionType classifies a legal operator pair by the categories of its operands.
type FusionType string

const (
	// FusionStatelessOnly marks a fusion of two stateless operators.
	FusionStatelessOnly FusionType = "stateless_only"
	// FusionStatelessBeforeStateful marks a stateless operator fused into a stateful one.
	FusionStatelessBeforeStateful FusionType = "stateless_before_stateful"
	// FusionStatefulBeforeStateless marks a stateful operator fused into a stateless one.
	FusionStatefulBeforeStateless FusionType = "stateful_before_stateless"
	// FusionNotFusible marks a pair that must not be fused.
	FusionNotFusible FusionType = "not_fusible"
)

// String returns the string representation of the fusion type.
func (t FusionType) String() string {
	return string(t)
}

// FusionMetadata records the provenance of a fused node.
type FusionMetadata struct {
	Fused bool
	// Pass is the optimizer iteration in which this specific fusion occurred.
	Pass int
	// OriginalOperators holds the labels of the two immediate operands.
	OriginalOperators [2]string
	// OriginalPositions holds the operand indices in the pipeline at the time of the pass.
	OriginalPositions [2]int
	Type              FusionType
	// Timestamp is a per-run monotonic event ordinal used for trace correlation.
	Timestamp int64
	// History lists every atomic fusion that contributed to this node,
	// transitively: ancestor entries first, the newest entry last.
	History []TraceEntry
}

// Equal compares metadata field by field, including the full history.
func (m *FusionMetadata) Equal(other *FusionMetadata) bool {
	if m == nil || other == nil {
		return m == other
	}
	if m.Fused != other.Fused ||
		m.Pass != other.Pass ||
		m.OriginalOperators != other.OriginalOperators ||
		m.OriginalPositions != other.OriginalPositions ||
		m.Type != other.Type ||
		m.Timestamp != other.Timestamp {
		return false
	}
	if len(m.History) != len(other.History) {
		return false
	}
	for i := range m.History {
		if m.History[i] != other.History[i] {
			return false
		}
	}
	return true
}

// TraceEntry is one logged fusion event.
type TraceEntry struct {
	// Iteration is the optimizer pass index, Step the fusion ordinal within it.
	Iteration int
	Step      int
	// Position is the index of the left operand in the pass's input sequence.
	Position int
	LeftOp   string
	RightOp  string
	FusedOp  string
	// LengthBefore and LengthAfter are the pipeline lengths around the pass
	// as observed when the fusion was recorded.
	LengthBefore int
	LengthAfter  int
	Type         FusionType
	Timestamp    int64
}
