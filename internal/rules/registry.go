package rules

import (
	"fmt"
	"sync"

	streamfuseerrors "github.com/streamfuse/streamfuse/pkg/errors"

	"github.com/streamfuse/streamfuse/internal/catalog"
	"github.com/streamfuse/streamfuse/internal/model"
)

// Builder produces the transform of a fused node from its two operands. It
// receives the full nodes so it can consult their args (a scan seed, a take
// count), and must return a transform semantically equivalent to applying the
// left operand's transform and then the right operand's to the same element.
type Builder func(left, right model.Node) model.Transform

// pairKey identifies an ordered operator pair. Keys are resolved at
// registration time so rule dispatch never concatenates strings.
type pairKey struct {
	left  string
	right string
}

// Registry decides whether two adjacent operator kinds may fuse and supplies
// the builder for the fused transform. It consults the catalog for adjacency
// and categories; builder registration is expected to happen once at startup.
type Registry struct {
	catalog  *catalog.Catalog
	mu       sync.RWMutex
	builders map[pairKey]Builder
}

// New creates an empty registry backed by the given catalog.
func New(cat *catalog.Catalog) *Registry {
	return &Registry{
		catalog:  cat,
		builders: make(map[pairKey]Builder),
	}
}

// Register installs the builder for fusing operator left immediately before
// operator right. Both kinds must already be registered in the catalog.
func (r *Registry) Register(left, right string, builder Builder) error {
	if builder == nil {
		return streamfuseerrors.NewValidationError("builder", fmt.Sprintf("nil builder for pair (%s, %s)", left, right), nil)
	}
	if _, ok := r.catalog.Lookup(left); !ok {
		return streamfuseerrors.NewValidationError("left", fmt.Sprintf("operator %q is not in the catalog", left), nil)
	}
	if _, ok := r.catalog.Lookup(right); !ok {
		return streamfuseerrors.NewValidationError("right", fmt.Sprintf("operator %q is not in the catalog", right), nil)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.builders[pairKey{left: left, right: right}] = builder
	return nil
}

// resolved is the structural view of an operator label. Composite labels
// produced by fusion resolve through their primitive segments: the head and
// tail segments carry the adjacency behavior of the composite's outer edges,
// and the composite is stateless only if every segment is.
type resolved struct {
	head     string
	tail     string
	category catalog.Category
}

func (r *Registry) resolve(kind string) (resolved, bool) {
	segments := model.SplitLabel(kind)
	res := resolved{category: catalog.Stateless}
	for i, segment := range segments {
		desc, ok := r.catalog.Lookup(segment)
		if !ok {
			return resolved{}, false
		}
		if desc.Category == catalog.Stateful {
			res.category = catalog.Stateful
		}
		if i == 0 {
			res.head = segment
		}
		res.tail = segment
	}
	return res, true
}

// CanFuse reports whether operator kind left may fuse immediately before
// right. The check is directional and resolves to false whenever either kind
// (or any segment of a composite label) is not in the catalog.
func (r *Registry) CanFuse(left, right string) bool {
	a, ok := r.resolve(left)
	if !ok {
		return false
	}
	b, ok := r.resolve(right)
	if !ok {
		return false
	}

	tail, ok := r.catalog.Lookup(a.tail)
	if !ok {
		return false
	}
	return tail.CanPrecede(b.head)
}

// Classify returns the fusion type for fusing left before right, derived
// from the operands' categories. Stateful before stateful is never fusible:
// no combination law for two accumulator states is defined.
func (r *Registry) Classify(left, right string) model.FusionType {
	if !r.CanFuse(left, right) {
		return model.FusionNotFusible
	}

	a, _ := r.resolve(left)
	b, _ := r.resolve(right)

	switch {
	case a.category == catalog.Stateless && b.category == catalog.Stateless:
		return model.FusionStatelessOnly
	case a.category == catalog.Stateless && b.category == catalog.Stateful:
		return model.FusionStatelessBeforeStateful
	case a.category == catalog.Stateful && b.category == catalog.Stateless:
		return model.FusionStatefulBeforeStateless
	default:
		return model.FusionNotFusible
	}
}

// Plan returns the fusion type and transform builder for fusing left before
// right. A legal-by-category pair with no registered builder is reported as
// not fusible: registry completeness, not category compatibility, gates
// whether a fusion actually proceeds.
//
// Builders are keyed by primitive operator names. For composite labels the
// lookup uses the tail segment of the left operand and the head segment of
// the right one, the two primitives that actually meet at the fusion seam.
func (r *Registry) Plan(left, right string) (model.FusionType, Builder, bool) {
	fusionType := r.Classify(left, right)
	if fusionType == model.FusionNotFusible {
		return model.FusionNotFusible, nil, false
	}

	a, _ := r.resolve(left)
	b, _ := r.resolve(right)

	r.mu.RLock()
	builder, ok := r.builders[pairKey{left: a.tail, right: b.head}]
	r.mu.RUnlock()
	if !ok {
		return model.FusionNotFusible, nil, false
	}
	return fusionType, builder, true
}

// BuildFusedTransform invokes the registered builder for the pair of nodes.
// ok is false when the pair must not fuse.
func (r *Registry) BuildFusedTransform(left, right model.Node) (model.Transform, bool) {
	_, builder, ok := r.Plan(left.Op, right.Op)
	if !ok {
		return nil, false
	}
	return builder(left, right), true
}
