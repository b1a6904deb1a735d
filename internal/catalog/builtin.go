package catalog

// Builtin operator names.
const (
	OpMap      = "map"
	OpFilter   = "filter"
	OpScan     = "scan"
	OpFlatMap  = "flatMap"
	OpTake     = "take"
	OpSkip     = "skip"
	OpDistinct = "distinct"
)

// NewDefault returns a catalog pre-registered with the builtin operator set.
//
// Adjacency mirrors the builtin fusion rules: map and filter fuse freely with
// each other, map additionally fuses around scan. The remaining stateful
// operators are registered so pipelines may contain them, but declare no
// fusion partners.
func NewDefault() *Catalog {
	c := New()

	builtins := []Descriptor{
		{
			Name:          OpMap,
			Category:      Stateless,
			Multiplicity:  Preserve,
			FusibleBefore: []string{OpMap, OpFilter, OpScan},
			FusibleAfter:  []string{OpMap, OpFilter, OpScan},
		},
		{
			Name:          OpFilter,
			Category:      Stateless,
			Multiplicity:  Decrease,
			FusibleBefore: []string{OpMap, OpFilter},
			FusibleAfter:  []string{OpMap, OpFilter},
		},
		{
			Name:          OpScan,
			Category:      Stateful,
			Multiplicity:  Preserve,
			FusibleBefore: []string{OpMap},
			FusibleAfter:  []string{OpMap},
		},
		{
			Name:         OpFlatMap,
			Category:     Stateful,
			Multiplicity: Increase,
		},
		{
			Name:         OpTake,
			Category:     Stateful,
			Multiplicity: Decrease,
		},
		{
			Name:         OpSkip,
			Category:     Stateful,
			Multiplicity: Decrease,
		},
		{
			Name:         OpDistinct,
			Category:     Stateful,
			Multiplicity: Decrease,
		},
	}

	for _, desc := range builtins {
		// Builtin descriptors are statically valid.
		_ = c.Register(desc)
	}

	return c
}
