package rules

import (
	"github.com/streamfuse/streamfuse/internal/catalog"
	"github.com/streamfuse/streamfuse/internal/model"
)

// Compose chains two transforms: every element the first emits is fed to the
// second. Because emission is the only way to produce output, a dropped
// element short-circuits the rest of the chain and a multi-emitting transform
// fans out naturally, so composition respects each operand's multiplicity.
func Compose(first, second model.Transform) model.Transform {
	return func(v any, emit func(any)) {
		first(v, func(mid any) {
			second(mid, emit)
		})
	}
}

// composeNodes is the builder shared by the builtin pair rules.
func composeNodes(left, right model.Node) model.Transform {
	return Compose(left.Transform, right.Transform)
}

// NewDefault returns a registry backed by cat with the builtin pair rules
// installed: the stateless map/filter pairs plus map around scan. Scan before
// scan has no rule on purpose; see Classify.
func NewDefault(cat *catalog.Catalog) *Registry {
	r := New(cat)

	pairs := [][2]string{
		{catalog.OpMap, catalog.OpMap},
		{catalog.OpMap, catalog.OpFilter},
		{catalog.OpFilter, catalog.OpMap},
		{catalog.OpFilter, catalog.OpFilter},
		{catalog.OpMap, catalog.OpScan},
		{catalog.OpScan, catalog.OpMap},
	}
	for _, pair := range pairs {
		// Builtin pairs reference catalog builtins, registration cannot fail.
		_ = r.Register(pair[0], pair[1], composeNodes)
	}

	return r
}
