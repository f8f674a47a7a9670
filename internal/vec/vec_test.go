package vec

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFloorDiv_MatchesFloor(t *testing.T) {
	for _, e := range []int{1, 2, 3, 16, 32} {
		for a := -100; a <= 100; a++ {
			q := FloorDiv(a, e)
			assert.LessOrEqual(t, q*e, a, "a=%d e=%d", a, e)
			assert.Less(t, a, (q+1)*e, "a=%d e=%d", a, e)
		}
	}
}

func TestFloorDiv_NegativeBoundaries(t *testing.T) {
	assert.Equal(t, -1, FloorDiv(-1, 32))
	assert.Equal(t, -1, FloorDiv(-32, 32))
	assert.Equal(t, -2, FloorDiv(-33, 32))
	assert.Equal(t, 0, FloorDiv(31, 32))
	assert.Equal(t, 1, FloorDiv(32, 32))
}

func TestFloorDiv_ExtremeValues(t *testing.T) {
	assert.Equal(t, math.MinInt/32, FloorDiv(math.MinInt, 32))
	assert.Equal(t, math.MinInt/32-1, FloorDiv(math.MinInt+1, 32))
	assert.Equal(t, math.MaxInt/32, FloorDiv(math.MaxInt, 32))
	assert.Equal(t, Coords{X: math.MinInt / 32}, Coords{X: math.MinInt}.ToChunkCoords(Size{32, 32, 32}))
}

func TestFloorMod(t *testing.T) {
	assert.Equal(t, 31, FloorMod(-1, 32))
	assert.Equal(t, 0, FloorMod(-32, 32))
	assert.Equal(t, 5, FloorMod(37, 32))
}

func TestCoords_ChunkAndLocalRoundTrip(t *testing.T) {
	size := Size{Width: 16, Height: 8, Depth: 4}
	for _, p := range []Coords{{0, 0, 0}, {-1, -1, -1}, {10, -11, 12}, {-17, 9, -5}} {
		chunk := p.ToChunkCoords(size)
		local := p.LocalInChunk(size)
		require.True(t, size.Contains(local), "local %v out of %v", local, size)
		assert.Equal(t, p, chunk.Scale(size).Add(local))
	}
}

func TestSelection_IntersectCommutes(t *testing.T) {
	a := Selection{Src: Coords{-5, 0, 2}, Dest: Coords{3, 7, 9}}
	b := Selection{Src: Coords{0, -3, 4}, Dest: Coords{10, 2, 4}}

	ab := a.Intersect(b)
	assert.Equal(t, ab, b.Intersect(a))
	assert.Equal(t, Selection{Src: Coords{0, 0, 4}, Dest: Coords{3, 2, 4}}, ab)

	for x := -6; x <= 11; x++ {
		for y := -4; y <= 8; y++ {
			for z := 1; z <= 10; z++ {
				p := Coords{x, y, z}
				if a.Contains(p) && b.Contains(p) {
					assert.True(t, ab.Contains(p), "point %v lost", p)
				}
			}
		}
	}
}

func TestSelection_DisjointIsEmpty(t *testing.T) {
	a := Selection{Src: Coords{0, 0, 0}, Dest: Coords{1, 1, 1}}
	b := Selection{Src: Coords{5, 0, 0}, Dest: Coords{6, 1, 1}}

	got := a.Intersect(b)
	assert.True(t, got.Empty())
	assert.Equal(t, 0, got.Volume())
}

func TestSelection_NewSelectionNormalizes(t *testing.T) {
	s := NewSelection(Coords{3, -1, 0}, Coords{-2, 4, 0})
	assert.Equal(t, Coords{-2, -1, 0}, s.Src)
	assert.Equal(t, Coords{3, 4, 0}, s.Dest)
	assert.Equal(t, 6*6*1, s.Volume())
}

func TestSelection_ToChunkSelection(t *testing.T) {
	size := Size{Width: 32, Height: 32, Depth: 32}
	s := Selection{Src: Coords{-1, -1, -1}, Dest: Coords{0, 0, 0}}
	assert.Equal(t, Selection{Src: Coords{-1, -1, -1}, Dest: Coords{0, 0, 0}}, s.ToChunkSelection(size))
}

func TestSize_Index(t *testing.T) {
	size := Size{Width: 4, Height: 3, Depth: 2}
	assert.Equal(t, 0, size.Index(Coords{0, 0, 0}))
	assert.Equal(t, 1, size.Index(Coords{1, 0, 0}))
	assert.Equal(t, 4, size.Index(Coords{0, 1, 0}))
	assert.Equal(t, 12, size.Index(Coords{0, 0, 1}))
	assert.Equal(t, size.Volume()-1, size.Index(size.Max()))
	assert.False(t, size.Contains(Coords{4, 0, 0}))
	assert.False(t, size.Contains(Coords{0, -1, 0}))
}

func TestSelection_WalkOrder(t *testing.T) {
	s := Selection{Src: Coords{0, 0, 0}, Dest: Coords{1, 1, 1}}

	var got []Coords
	s.Walk(func(c Coords) bool {
		got = append(got, c)
		return true
	})

	assert.Equal(t, []Coords{
		{0, 0, 0}, {1, 0, 0}, {0, 1, 0}, {1, 1, 0},
		{0, 0, 1}, {1, 0, 1}, {0, 1, 1}, {1, 1, 1},
	}, got)
}

func TestSelection_WalkEmptyAndStop(t *testing.T) {
	calls := 0
	Selection{Src: Coords{1, 0, 0}, Dest: Coords{0, 5, 5}}.Walk(func(Coords) bool {
		calls++
		return true
	})
	assert.Zero(t, calls)

	Selection{Src: Coords{0, 0, 0}, Dest: Coords{9, 9, 9}}.Walk(func(Coords) bool {
		calls++
		return calls < 3
	})
	assert.Equal(t, 3, calls)
}

func TestSelection_WalkAtMaxInt(t *testing.T) {
	s := Selection{Src: Coords{X: math.MaxInt - 1}, Dest: Coords{X: math.MaxInt}}

	var got []Coords
	s.Walk(func(c Coords) bool {
		got = append(got, c)
		return len(got) <= 4
	})

	assert.Equal(t, []Coords{{X: math.MaxInt - 1}, {X: math.MaxInt}}, got)

	_, ok := s.Next(Coords{X: math.MaxInt})
	assert.False(t, ok)
}
