package world

import (
	"fmt"

	"github.com/annel0/voxel-store/internal/vec"
	"github.com/annel0/voxel-store/internal/world/block"
)

// Chunk - позиционированное представление чанка: координаты в пространстве
// чанков, размер и индекс сырого хранилища в арене карты.
//
// Представление не держит указатель на RawChunk: каждое обращение заново
// находит чанк в арене, поэтому рост арены или стека слоёв не делает
// представление недействительным. Представление действительно только для
// карты, которая его выдала.
type Chunk struct {
	coords vec.Coords
	m      *VoxelMap
	idx    int
}

// Coords возвращает координаты чанка в пространстве чанков
func (c Chunk) Coords() vec.Coords {
	return c.coords
}

// Size возвращает размер чанка
func (c Chunk) Size() vec.Size {
	if c.m == nil {
		return vec.Size{}
	}
	return c.m.chunkSize
}

// Origin возвращает глобальные координаты ячейки (0,0,0) чанка
func (c Chunk) Origin() vec.Coords {
	return c.coords.Scale(c.Size())
}

// Bounds возвращает глобальное выделение, занимаемое чанком
func (c Chunk) Bounds() vec.Selection {
	origin := c.Origin()
	return vec.Selection{Src: origin, Dest: origin.Add(c.Size().Max())}
}

// LayerCount возвращает количество существующих слоёв
func (c Chunk) LayerCount() int {
	if c.m == nil {
		return 0
	}
	return c.m.raw(c.idx).Layers()
}

// Get возвращает воксель по локальным координатам и слою.
// Слой, которого ещё нет, читается как пустой и не создаётся.
func (c Chunk) Get(local vec.Coords, layer int) (block.BlockID, error) {
	offset, err := c.offset(local, layer)
	if err != nil {
		return block.AirBlockID, err
	}
	return c.m.raw(c.idx).get(offset, layer), nil
}

// Set записывает воксель по локальным координатам и слою,
// при необходимости наращивая стек слоёв до layer+1.
// Размер стека ничем не ограничен: разумные индексы слоёв - ответственность вызывающего.
func (c Chunk) Set(local vec.Coords, layer int, id block.BlockID) error {
	offset, err := c.offset(local, layer)
	if err != nil {
		return err
	}

	rc := c.m.raw(c.idx)
	if added := rc.Grow(layer+1, c.m.chunkSize.Volume()); added > 0 {
		c.m.metrics.layersGrown(added)
		c.m.logger.Debug("карта %s: чанк %s вырос до %d слоёв", c.m.id, c.coords, rc.Layers())
	}
	rc.layers[layer][offset] = id
	return nil
}

// offset проверяет координаты и слой и возвращает смещение в слое
func (c Chunk) offset(local vec.Coords, layer int) (int, error) {
	if c.m == nil {
		return 0, ErrDetachedView
	}
	if layer < 0 {
		return 0, fmt.Errorf("%w: %d", ErrInvalidLayer, layer)
	}
	if !c.m.chunkSize.Contains(local) {
		c.m.metrics.outOfBounds()
		return 0, fmt.Errorf("%w: %s в чанке %s размером %s", ErrOutOfBounds, local, c.coords, c.m.chunkSize)
	}
	return c.m.chunkSize.Index(local), nil
}

func (c Chunk) String() string {
	return fmt.Sprintf("Chunk%s", c.coords)
}
