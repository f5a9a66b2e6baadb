package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoreRoundtrip(t *testing.T) {
	st := New(t.TempDir())
	require.NoError(t, st.Init())

	spend := []float64{10, 0, 0, 5}
	adstocked := []float64{5, 2.5, 1.25, 3.125}

	runID, err := st.Save(RunMetadata{
		Channel:   "tv",
		Transform: "geometric",
		LMax:      12,
		Mode:      "after",
		Params:    map[string]float64{"alpha": 0.5},
		Summary:   map[string]float64{"half_life": 0, "mean_lag": 0.875},
	}, spend, adstocked)
	require.NoError(t, err)
	assert.Contains(t, runID, "geometric_")

	meta, err := st.Load(runID)
	require.NoError(t, err)
	assert.Equal(t, "tv", meta.Channel)
	assert.Equal(t, "geometric", meta.Transform)
	assert.Equal(t, 12, meta.LMax)
	assert.Equal(t, 0.5, meta.Params["alpha"])

	gotSpend, gotAdstocked, err := st.LoadSeries(runID)
	require.NoError(t, err)
	assert.InDeltaSlice(t, spend, gotSpend, 1e-6)
	assert.InDeltaSlice(t, adstocked, gotAdstocked, 1e-6)
}

func TestStoreList(t *testing.T) {
	st := New(t.TempDir())
	require.NoError(t, st.Init())

	runs, err := st.List()
	require.NoError(t, err)
	assert.Empty(t, runs)

	_, err = st.Save(RunMetadata{Transform: "delayed"}, []float64{1}, []float64{1})
	require.NoError(t, err)

	runs, err = st.List()
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.Equal(t, "delayed", runs[0].Transform)
}

func TestStoreDistinctRunIDs(t *testing.T) {
	st := New(t.TempDir())
	require.NoError(t, st.Init())

	// Back-to-back saves of the same transform must not collide.
	id1, err := st.Save(RunMetadata{Transform: "geometric"}, []float64{1}, []float64{1})
	require.NoError(t, err)
	id2, err := st.Save(RunMetadata{Transform: "geometric"}, []float64{2}, []float64{2})
	require.NoError(t, err)

	assert.NotEqual(t, id1, id2)

	runs, err := st.List()
	require.NoError(t, err)
	assert.Len(t, runs, 2)
}

func TestStoreListMissingDir(t *testing.T) {
	st := New(t.TempDir() + "/nope")

	runs, err := st.List()
	require.NoError(t, err)
	assert.Empty(t, runs)
}

func TestLoadUnknownRun(t *testing.T) {
	st := New(t.TempDir())
	require.NoError(t, st.Init())

	_, err := st.Load("geometric_0")
	assert.Error(t, err)
}
