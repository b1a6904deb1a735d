package report

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/streamfuse/streamfuse/internal/config"
	"github.com/streamfuse/streamfuse/internal/model"
)

func sampleEntry() model.TraceEntry {
	return model.TraceEntry{
		Iteration:    1,
		Step:         0,
		Position:     2,
		LeftOp:       "map",
		RightOp:      "filter",
		FusedOp:      "map+filter",
		LengthBefore: 4,
		LengthAfter:  3,
		Type:         model.FusionStatelessOnly,
		Timestamp:    7,
	}
}

func TestFormatEntryLevels(t *testing.T) {
	t.Parallel()

	entry := sampleEntry()

	require.Equal(t, "fused map + filter -> map+filter", FormatEntry(entry, config.LogLevelBasic))
	require.Equal(t, "fused map + filter -> map+filter [type=stateless_only ts=7]", FormatEntry(entry, config.LogLevelDetailed))
	require.Equal(t,
		"fused map + filter -> map+filter [type=stateless_only ts=7 pos=2 len 4->3 iter=1 step=0]",
		FormatEntry(entry, config.LogLevelVerbose))
}

func TestRecorderDisabledDropsEntries(t *testing.T) {
	t.Parallel()

	cfg := config.DefaultOptimizerConfig()
	r := NewRecorder(cfg, nil)

	r.Record(sampleEntry())
	require.Nil(t, r.Entries())
}

func TestRecorderAccumulatesCopies(t *testing.T) {
	t.Parallel()

	cfg := config.DefaultOptimizerConfig()
	cfg.EnableTracing = true
	r := NewRecorder(cfg, nil)

	r.Record(sampleEntry())
	r.Record(sampleEntry())

	first := r.Entries()
	require.Len(t, first, 2)

	first[0].LeftOp = "mutated"
	require.Equal(t, "map", r.Entries()[0].LeftOp)
}

func TestSummarizeEmptyTrace(t *testing.T) {
	t.Parallel()

	summary := Summarize(nil)
	require.Zero(t, summary.TotalFusions)
	require.Zero(t, summary.Iterations)
	require.Empty(t, summary.FusionTypeCounts)
	require.Zero(t, summary.Performance.TimestampSum)
}

func TestSummarize(t *testing.T) {
	t.Parallel()

	entries := []model.TraceEntry{
		{Iteration: 0, Type: model.FusionStatelessOnly, Timestamp: 1},
		{Iteration: 0, Type: model.FusionStatelessOnly, Timestamp: 2},
		{Iteration: 1, Type: model.FusionStatefulBeforeStateless, Timestamp: 3},
	}

	summary := Summarize(entries)
	require.Equal(t, 3, summary.TotalFusions)
	require.Equal(t, 2, summary.Iterations)
	require.Equal(t, 2, summary.FusionTypeCounts[model.FusionStatelessOnly])
	require.Equal(t, 1, summary.FusionTypeCounts[model.FusionStatefulBeforeStateless])
	require.Equal(t, int64(6), summary.Performance.TimestampSum)
	require.InDelta(t, 2.0, summary.Performance.TimestampAverage, 1e-9)
}

func TestSummaryString(t *testing.T) {
	t.Parallel()

	summary := Summarize([]model.TraceEntry{
		{Iteration: 0, Type: model.FusionStatelessOnly, Timestamp: 1},
	})

	text := summary.String()
	require.Contains(t, text, "1 fusions over 1 iterations")
	require.Contains(t, text, "stateless_only: 1")
}

func TestVisualizerRenderPlain(t *testing.T) {
	t.Parallel()

	v := NewVisualizer(false)

	t.Run("empty pipeline", func(t *testing.T) {
		require.Equal(t, "(empty pipeline)\n", v.Render(nil))
	})

	t.Run("mixed pipeline", func(t *testing.T) {
		pipeline := []model.Node{
			{Op: "scan"},
			{
				Op: "map+filter",
				Metadata: &model.FusionMetadata{
					Fused:             true,
					Pass:              0,
					OriginalOperators: [2]string{"map", "filter"},
					Type:              model.FusionStatelessOnly,
					History:           []model.TraceEntry{{}},
				},
			},
		}

		text := v.Render(pipeline)
		require.Contains(t, text, "Step 0: scan\n")
		require.Contains(t, text, "Step 1: map+filter (fused map with filter in pass 0, 1 fusions total)\n")
	})
}
