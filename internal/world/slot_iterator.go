package world

import "github.com/annel0/voxel-store/internal/vec"

// SlotIterator лениво обходит все ячейки глобального выделения, чанк за чанком.
// Для каждого чанка берётся только пересечение его границ с выделением,
// поэтому каждая точка выделения выдаётся ровно один раз, где бы ни
// проходили границы чанков. Внутри чанка порядок обхода X, Y, Z.
type SlotIterator struct {
	chunks *ChunkIterator
	sel    vec.Selection

	chunk  Chunk
	rel    vec.Selection // пересечение в локальных координатах текущего чанка
	cursor vec.Coords
	active bool

	current Slot
}

func newSlotIterator(m *VoxelMap, sel vec.Selection) *SlotIterator {
	chunkSel := m.ToChunkSelection(sel)
	if sel.Empty() {
		// Пустое глобальное выделение может спроецироваться в непустое
		// выделение чанков; не создаём чанки впустую.
		chunkSel = vec.Selection{Src: vec.Coords{X: 1}, Dest: vec.Coords{}}
	}
	return &SlotIterator{
		chunks: newChunkIterator(m, chunkSel),
		sel:    sel,
	}
}

// Next переходит к следующей ячейке. Возвращает false, когда обход закончен.
func (it *SlotIterator) Next() bool {
	for !it.active {
		if !it.chunks.Next() {
			return false
		}
		it.chunk = it.chunks.Chunk()
		it.rel = it.chunk.m.relativeSelection(it.chunk.coords, it.sel)
		if it.rel.Empty() {
			continue
		}
		it.cursor = it.rel.Src
		it.active = true
	}

	it.current = Slot{local: it.cursor, chunk: it.chunk}
	it.cursor, it.active = it.rel.Next(it.cursor)
	it.chunk.m.metrics.slotVisited()
	return true
}

// Slot возвращает текущую ячейку (после успешного Next)
func (it *SlotIterator) Slot() Slot {
	return it.current
}

// Selection возвращает обходимое глобальное выделение
func (it *SlotIterator) Selection() vec.Selection {
	return it.sel
}
