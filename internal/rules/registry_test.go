package rules

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/streamfuse/streamfuse/internal/catalog"
	"github.com/streamfuse/streamfuse/internal/model"
)

func collect(transform model.Transform, inputs ...any) []any {
	var out []any
	for _, v := range inputs {
		transform(v, func(x any) { out = append(out, x) })
	}
	return out
}

func TestCanFuseIsDirectional(t *testing.T) {
	t.Parallel()

	r := NewDefault(catalog.NewDefault())

	require.True(t, r.CanFuse("map", "map"))
	require.True(t, r.CanFuse("map", "scan"))
	require.True(t, r.CanFuse("scan", "map"))
	require.True(t, r.CanFuse("filter", "map"))

	require.False(t, r.CanFuse("scan", "scan"))
	require.False(t, r.CanFuse("filter", "scan"))
	require.False(t, r.CanFuse("flatMap", "map"))
	require.False(t, r.CanFuse("map", "flatMap"))
}

func TestCanFuseUnknownKind(t *testing.T) {
	t.Parallel()

	r := NewDefault(catalog.NewDefault())

	require.False(t, r.CanFuse("map", "custom"))
	require.False(t, r.CanFuse("custom", "map"))
	require.False(t, r.CanFuse("map+custom", "map"))
}

func TestClassify(t *testing.T) {
	t.Parallel()

	r := NewDefault(catalog.NewDefault())

	require.Equal(t, model.FusionStatelessOnly, r.Classify("map", "map"))
	require.Equal(t, model.FusionStatelessOnly, r.Classify("map", "filter"))
	require.Equal(t, model.FusionStatelessBeforeStateful, r.Classify("map", "scan"))
	require.Equal(t, model.FusionStatefulBeforeStateless, r.Classify("scan", "map"))
	require.Equal(t, model.FusionNotFusible, r.Classify("scan", "scan"))
	require.Equal(t, model.FusionNotFusible, r.Classify("map", "missing"))
}

func TestClassifyCompositeLabels(t *testing.T) {
	t.Parallel()

	r := NewDefault(catalog.NewDefault())

	// A composite is stateless only if every segment is.
	require.Equal(t, model.FusionStatelessOnly, r.Classify("map+map", "map+map"))
	require.Equal(t, model.FusionStatelessOnly, r.Classify("map+filter", "map+filter"))
	require.Equal(t, model.FusionStatefulBeforeStateless, r.Classify("map+scan", "map"))
}

func TestPlanRequiresRegisteredBuilder(t *testing.T) {
	t.Parallel()

	cat := catalog.New()
	require.NoError(t, cat.Register(catalog.Descriptor{
		Name: "a", Category: catalog.Stateless, Multiplicity: catalog.Preserve, FusibleAfter: []string{"b"},
	}))
	require.NoError(t, cat.Register(catalog.Descriptor{
		Name: "b", Category: catalog.Stateless, Multiplicity: catalog.Preserve,
	}))

	r := New(cat)

	// Legal by category and adjacency, but no builder: must not fuse.
	require.Equal(t, model.FusionStatelessOnly, r.Classify("a", "b"))
	fusionType, builder, ok := r.Plan("a", "b")
	require.False(t, ok)
	require.Nil(t, builder)
	require.Equal(t, model.FusionNotFusible, fusionType)

	require.NoError(t, r.Register("a", "b", func(left, right model.Node) model.Transform {
		return Compose(left.Transform, right.Transform)
	}))

	fusionType, builder, ok = r.Plan("a", "b")
	require.True(t, ok)
	require.NotNil(t, builder)
	require.Equal(t, model.FusionStatelessOnly, fusionType)
}

func TestRegisterValidatesPair(t *testing.T) {
	t.Parallel()

	cat := catalog.NewDefault()
	r := New(cat)

	noop := func(left, right model.Node) model.Transform { return left.Transform }

	require.Error(t, r.Register("map", "map", nil))
	require.Error(t, r.Register("missing", "map", noop))
	require.Error(t, r.Register("map", "missing", noop))
	require.NoError(t, r.Register("map", "map", noop))
}

func TestComposeShortCircuits(t *testing.T) {
	t.Parallel()

	double := model.Transform(func(v any, emit func(any)) { emit(v.(int) * 2) })
	positive := model.Transform(func(v any, emit func(any)) {
		if v.(int) > 0 {
			emit(v)
		}
	})

	t.Run("map then filter", func(t *testing.T) {
		fused := Compose(double, positive)
		require.Equal(t, []any{2, 4}, collect(fused, 1, -3, 2))
	})

	t.Run("filter then map drops early", func(t *testing.T) {
		fused := Compose(positive, double)
		require.Equal(t, []any{2, 4}, collect(fused, 1, -3, 2))
	})
}

func TestBuildFusedTransform(t *testing.T) {
	t.Parallel()

	r := NewDefault(catalog.NewDefault())

	addOne := model.NewNode("map", func(v any, emit func(any)) { emit(v.(int) + 1) })
	double := model.NewNode("map", func(v any, emit func(any)) { emit(v.(int) * 2) })

	fused, ok := r.BuildFusedTransform(addOne, double)
	require.True(t, ok)
	require.Equal(t, []any{4, 8}, collect(fused, 1, 3))

	scanNode := model.NewNode("scan", nil, 0)
	_, ok = r.BuildFusedTransform(scanNode, scanNode)
	require.False(t, ok)
}
