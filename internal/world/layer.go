package world

import "github.com/annel0/voxel-store/internal/world/block"

// Layer - плотный массив идентификаторов вокселей размером с объём одного чанка.
// Индексация: z*w*h + y*w + x (см. vec.Size.Index).
type Layer []block.BlockID

// NewLayer создаёт слой заданного объёма, заполненный пустыми вокселями
func NewLayer(volume int) Layer {
	l := make(Layer, volume)
	l.Fill(block.AirBlockID)
	return l
}

// Len возвращает количество ячеек слоя
func (l Layer) Len() int {
	return len(l)
}

// Get возвращает воксель по смещению
func (l Layer) Get(i int) block.BlockID {
	return l[i]
}

// Set записывает воксель по смещению
func (l Layer) Set(i int, id block.BlockID) {
	l[i] = id
}

// Fill заполняет весь слой одним вокселем
func (l Layer) Fill(id block.BlockID) {
	for i := range l {
		l[i] = id
	}
}

// Count возвращает количество ячеек, удовлетворяющих pred
func (l Layer) Count(pred func(block.BlockID) bool) int {
	n := 0
	for _, id := range l {
		if pred(id) {
			n++
		}
	}
	return n
}
