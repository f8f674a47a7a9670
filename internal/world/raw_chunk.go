package world

import "github.com/annel0/voxel-store/internal/world/block"

// RawChunk - сырое хранилище одного чанка: упорядоченный стек слоёв.
// Новый чанк не содержит слоёв; слои добавляются лениво и никогда не удаляются.
// Принадлежит только таблице чанков VoxelMap.
type RawChunk struct {
	layers []Layer
}

// Layers возвращает текущее количество слоёв
func (rc *RawChunk) Layers() int {
	return len(rc.layers)
}

// Layer возвращает слой k или nil, если слоя ещё нет
func (rc *RawChunk) Layer(k int) Layer {
	if k < 0 || k >= len(rc.layers) {
		return nil
	}
	return rc.layers[k]
}

// Grow наращивает стек до n слоёв, каждый новый слой заполняется пустыми вокселями.
// Возвращает количество добавленных слоёв.
func (rc *RawChunk) Grow(n, volume int) int {
	added := 0
	for len(rc.layers) < n {
		rc.layers = append(rc.layers, NewLayer(volume))
		added++
	}
	return added
}

// get читает воксель; отсутствующий слой читается как пустой
func (rc *RawChunk) get(offset, layer int) block.BlockID {
	if layer >= len(rc.layers) {
		return block.AirBlockID
	}
	return rc.layers[layer][offset]
}
