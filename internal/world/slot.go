package world

import (
	"fmt"

	"github.com/annel0/voxel-store/internal/vec"
	"github.com/annel0/voxel-store/internal/world/block"
)

// Slot - адрес одной ячейки: чанк и локальные координаты внутри него
type Slot struct {
	local vec.Coords
	chunk Chunk
}

// Coords возвращает глобальные координаты ячейки: chunk.coords * size + local
func (s Slot) Coords() vec.Coords {
	return s.chunk.Origin().Add(s.local)
}

// Local возвращает координаты ячейки внутри чанка
func (s Slot) Local() vec.Coords {
	return s.local
}

// Chunk возвращает чанк, которому принадлежит ячейка
func (s Slot) Chunk() Chunk {
	return s.chunk
}

// Get читает воксель ячейки на слое layer
func (s Slot) Get(layer int) (block.BlockID, error) {
	return s.chunk.Get(s.local, layer)
}

// Set записывает воксель ячейки на слое layer
func (s Slot) Set(layer int, id block.BlockID) error {
	return s.chunk.Set(s.local, layer, id)
}

func (s Slot) String() string {
	return fmt.Sprintf("Slot%s", s.Coords())
}
