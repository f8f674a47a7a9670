package world

import "github.com/annel0/voxel-store/internal/vec"

// ChunkIterator лениво обходит чанки выделения в пространстве чанков:
// X растёт быстрее всего, затем Y, затем Z. Итератор однопроходный.
//
// Каждая посещённая позиция проходит через VoxelMap.ChunkAt, поэтому
// обход даже "только для чтения" создаёт отсутствующие чанки.
//
//	it := m.SelectChunks(sel)
//	for it.Next() {
//		c := it.Chunk()
//	}
type ChunkIterator struct {
	m       *VoxelMap
	sel     vec.Selection
	cursor  vec.Coords
	done    bool
	current Chunk
}

func newChunkIterator(m *VoxelMap, sel vec.Selection) *ChunkIterator {
	return &ChunkIterator{
		m:      m,
		sel:    sel,
		cursor: sel.Src,
		done:   sel.Empty(),
	}
}

// Next переходит к следующему чанку. Возвращает false, когда обход закончен.
func (it *ChunkIterator) Next() bool {
	if it.done {
		return false
	}

	it.current = it.m.ChunkAt(it.cursor)

	next, ok := it.sel.Next(it.cursor)
	it.cursor = next
	it.done = !ok
	return true
}

// Chunk возвращает текущий чанк (после успешного Next)
func (it *ChunkIterator) Chunk() Chunk {
	return it.current
}

// Selection возвращает обходимое выделение в пространстве чанков
func (it *ChunkIterator) Selection() vec.Selection {
	return it.sel
}
