package worldgen

import (
	"testing"

	"github.com/annel0/voxel-store/internal/vec"
	"github.com/annel0/voxel-store/internal/world"
	"github.com/annel0/voxel-store/internal/world/block"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerator_Deterministic(t *testing.T) {
	a := NewGenerator(12345)
	b := NewGenerator(12345)

	for x := -20; x <= 20; x += 3 {
		for z := -20; z <= 20; z += 5 {
			assert.Equal(t, a.HeightAt(x, z), b.HeightAt(x, z))
		}
	}
}

func TestGenerator_ColumnShape(t *testing.T) {
	g := NewGenerator(7)
	h := g.HeightAt(3, -4)

	assert.Equal(t, block.StoneBlockID, g.BlockAt(vec.Coords{X: 3, Y: h - g.DirtDepth, Z: -4}))
	assert.Equal(t, block.DirtBlockID, g.BlockAt(vec.Coords{X: 3, Y: h - 1, Z: -4}))
	top := g.BlockAt(vec.Coords{X: 3, Y: h, Z: -4})
	assert.Contains(t, []block.BlockID{block.GrassBlockID, block.SandBlockID}, top)

	above := g.BlockAt(vec.Coords{X: 3, Y: max(h, g.SeaLevel) + 1, Z: -4})
	assert.Equal(t, block.AirBlockID, above)
}

func TestGenerator_FillMatchesBlockAt(t *testing.T) {
	m, err := world.NewVoxelMap(vec.Size{Width: 8, Height: 8, Depth: 8}, world.WithLogger(nil))
	require.NoError(t, err)

	g := NewGenerator(99)
	g.SetLogger(nil)
	sel := vec.Selection{Src: vec.Coords{X: -6, Y: -20, Z: -6}, Dest: vec.Coords{X: 5, Y: 20, Z: 5}}

	written, err := g.Fill(m, sel)
	require.NoError(t, err)
	assert.Greater(t, written, 0)

	report, err := m.Occupancy(sel, TerrainLayer)
	require.NoError(t, err)
	assert.Equal(t, written, report.Occupied)
	assert.Zero(t, report.MissingChunks)

	for it := m.SelectSlots(sel); it.Next(); {
		s := it.Slot()
		id, err := s.Get(TerrainLayer)
		require.NoError(t, err)
		assert.Equal(t, g.BlockAt(s.Coords()), id, "точка %s", s.Coords())
	}
}
