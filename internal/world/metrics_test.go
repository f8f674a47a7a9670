package world

import (
	"testing"

	"github.com/annel0/voxel-store/internal/vec"
	"github.com/annel0/voxel-store/internal/world/block"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_CountsMapActivity(t *testing.T) {
	reg := prometheus.NewRegistry()
	metrics := NewMetrics(reg)
	m := newTestMap(t, cube(4), WithMetrics(metrics))

	sel := vec.Selection{Src: vec.Coords{X: -2}, Dest: vec.Coords{X: 1, Y: 1, Z: 1}}
	for it := m.SelectSlots(sel); it.Next(); {
	}
	assert.Equal(t, float64(2), testutil.ToFloat64(metrics.chunksMaterialized))

	// Повторный обход тех же чанков не создаёт новых
	for it := m.SelectSlots(sel); it.Next(); {
	}
	assert.Equal(t, float64(2), testutil.ToFloat64(metrics.chunksMaterialized))
	assert.Equal(t, float64(2*sel.Volume()), testutil.ToFloat64(metrics.slotsVisited))

	require.NoError(t, m.SlotAt(vec.Coords{}).Set(3, block.StoneBlockID))
	assert.Equal(t, float64(4), testutil.ToFloat64(metrics.layersGrownTotal))

	_, err := m.ChunkAt(vec.Coords{}).Get(vec.Coords{X: 4}, 0)
	assert.ErrorIs(t, err, ErrOutOfBounds)
	assert.Equal(t, float64(1), testutil.ToFloat64(metrics.outOfBoundsTotal))

	count, err := testutil.GatherAndCount(reg)
	require.NoError(t, err)
	assert.Equal(t, 4, count)
}

func TestMetrics_NilIsNoop(t *testing.T) {
	var metrics *Metrics
	assert.NotPanics(t, func() {
		metrics.chunkMaterialized()
		metrics.layersGrown(3)
		metrics.slotVisited()
		metrics.outOfBounds()
	})
}
