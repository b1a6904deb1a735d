package model

import "strings"

// FusedOpSeparator joins operand labels into the synthetic label of a fused node.
// Registered operator names must never contain it.
const FusedOpSeparator = "+"

// Transform consumes a single element and emits zero or more results downstream.
// The optimizer treats transforms as opaque: it passes them to fusion rule
// builders and never inspects them. Emit-style composition means a filter
// that drops an element short-circuits everything fused after it.
type Transform func(v any, emit func(any))

// Node is one element of a stream pipeline.
//
// A node is immutable once constructed; fusion produces a new node rather
// than mutating its operands. Metadata is nil for a leaf node that has never
// participated in a fusion.
type Node struct {
	Op        string
	Transform Transform
	Args      []any
	Metadata  *FusionMetadata
}

// NewNode constructs a leaf pipeline node.
func NewNode(op string, transform Transform, args ...any) Node {
	return Node{Op: op, Transform: transform, Args: args}
}

// Fused reports whether this node is the product of at least one fusion.
func (n Node) Fused() bool {
	return n.Metadata != nil && n.Metadata.Fused
}

// Segments splits the node's label into its primitive operator names,
// oldest contribution first. A leaf node yields a single segment.
func (n Node) Segments() []string {
	return SplitLabel(n.Op)
}

// SplitLabel splits an operator label into its primitive segments.
func SplitLabel(op string) []string {
	return strings.Split(op, FusedOpSeparator)
}

// FusedLabel returns the synthetic label for a fusion of a before b.
func FusedLabel(a, b string) string {
	return a + FusedOpSeparator + b
}

// Equal compares two nodes structurally, ignoring the opaque transform.
// Args are compared by shallow equality, metadata field by field.
func (n Node) Equal(other Node) bool {
	if n.Op != other.Op {
		return false
	}
	if len(n.Args) != len(other.Args) {
		return false
	}
	for i := range n.Args {
		if n.Args[i] != other.Args[i] {
			return false
		}
	}
	if (n.Metadata == nil) != (other.Metadata == nil) {
		return false
	}
	if n.Metadata != nil && !n.Metadata.Equal(other.Metadata) {
		return false
	}
	return true
}

// PipelinesEqual compares two pipelines node by node.
func PipelinesEqual(a, b []Node) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !a[i].Equal(b[i]) {
			return false
		}
	}
	return true
}
