package world

import (
	"fmt"
	"sort"

	"github.com/annel0/voxel-store/internal/logging"
	"github.com/annel0/voxel-store/internal/vec"
	"github.com/google/uuid"
)

// VoxelMap - разреженная трёхмерная сетка вокселей, разбитая на чанки
// фиксированного размера. Чанки создаются лениво при первом обращении
// и живут до конца жизни карты.
//
// Сырые чанки хранятся в арене: index отображает координаты чанка в
// стабильный индекс в arena. Chunk и Slot держат только этот индекс.
//
// Карта не потокобезопасна: ею владеет и её изменяет один логический
// владелец. Итерация по области, где чанков ещё нет, создаёт их
// (см. SelectChunks); для чтения без создания используйте HasChunk,
// PeekChunk, Occupancy и OccupiedCells.
type VoxelMap struct {
	id        uuid.UUID
	chunkSize vec.Size
	index     map[vec.Coords]int
	arena     []RawChunk
	coords    []vec.Coords // arena index -> координаты чанка

	metrics *Metrics
	logger  *logging.Logger
}

// Option настраивает VoxelMap при создании
type Option func(*VoxelMap)

// WithMetrics подключает Prometheus-метрики
func WithMetrics(m *Metrics) Option {
	return func(vm *VoxelMap) {
		vm.metrics = m
	}
}

// WithLogger задаёт логгер карты (по умолчанию logging.Default())
func WithLogger(l *logging.Logger) Option {
	return func(vm *VoxelMap) {
		vm.logger = l
	}
}

// NewVoxelMap создаёт пустую карту с фиксированным размером чанка
func NewVoxelMap(chunkSize vec.Size, opts ...Option) (*VoxelMap, error) {
	if chunkSize.IsZero() {
		return nil, fmt.Errorf("%w: %s", ErrInvalidChunkSize, chunkSize)
	}

	m := &VoxelMap{
		id:        uuid.New(),
		chunkSize: chunkSize,
		index:     make(map[vec.Coords]int),
		logger:    logging.Default(),
	}
	for _, opt := range opts {
		opt(m)
	}

	m.logger.Debug("карта %s создана, размер чанка %s", m.id, chunkSize)
	return m, nil
}

// ID возвращает идентификатор экземпляра карты (для логов)
func (m *VoxelMap) ID() uuid.UUID {
	return m.id
}

// ChunkSize возвращает размер чанка
func (m *VoxelMap) ChunkSize() vec.Size {
	return m.chunkSize
}

// ChunkCount возвращает количество созданных чанков
func (m *VoxelMap) ChunkCount() int {
	return len(m.arena)
}

// ToChunkCoords переводит глобальные координаты в координаты чанка (деление с округлением вниз)
func (m *VoxelMap) ToChunkCoords(global vec.Coords) vec.Coords {
	return global.ToChunkCoords(m.chunkSize)
}

// ToChunkSelection переводит глобальное выделение в пространство чанков
func (m *VoxelMap) ToChunkSelection(sel vec.Selection) vec.Selection {
	return sel.ToChunkSelection(m.chunkSize)
}

// ChunkOrigin возвращает глобальные координаты начала чанка
func (m *VoxelMap) ChunkOrigin(chunk vec.Coords) vec.Coords {
	return chunk.Scale(m.chunkSize)
}

// ChunkBounds возвращает глобальное выделение, занимаемое чанком
func (m *VoxelMap) ChunkBounds(chunk vec.Coords) vec.Selection {
	origin := m.ChunkOrigin(chunk)
	return vec.Selection{Src: origin, Dest: origin.Add(m.chunkSize.Max())}
}

// ChunkAt возвращает чанк по координатам, создавая пустой чанк при отсутствии
func (m *VoxelMap) ChunkAt(chunk vec.Coords) Chunk {
	idx, ok := m.index[chunk]
	if !ok {
		idx = len(m.arena)
		m.arena = append(m.arena, RawChunk{})
		m.coords = append(m.coords, chunk)
		m.index[chunk] = idx

		m.metrics.chunkMaterialized()
		m.logger.Trace("карта %s: создан чанк %s (всего %d)", m.id, chunk, len(m.arena))
	}
	return Chunk{coords: chunk, m: m, idx: idx}
}

// HasChunk проверяет существование чанка без его создания
func (m *VoxelMap) HasChunk(chunk vec.Coords) bool {
	_, ok := m.index[chunk]
	return ok
}

// PeekChunk возвращает чанк, только если он уже существует
func (m *VoxelMap) PeekChunk(chunk vec.Coords) (Chunk, bool) {
	idx, ok := m.index[chunk]
	if !ok {
		return Chunk{}, false
	}
	return Chunk{coords: chunk, m: m, idx: idx}, true
}

// LoadedChunks возвращает координаты всех созданных чанков, отсортированные по Z, Y, X
func (m *VoxelMap) LoadedChunks() []vec.Coords {
	result := make([]vec.Coords, len(m.coords))
	copy(result, m.coords)
	sort.Slice(result, func(i, j int) bool {
		a, b := result[i], result[j]
		if a.Z != b.Z {
			return a.Z < b.Z
		}
		if a.Y != b.Y {
			return a.Y < b.Y
		}
		return a.X < b.X
	})
	return result
}

// SelectChunks возвращает ленивый итератор по чанкам выделения в пространстве чанков.
// Внимание: каждый посещённый чанк создаётся, если его ещё не было.
func (m *VoxelMap) SelectChunks(sel vec.Selection) *ChunkIterator {
	return newChunkIterator(m, sel)
}

// SelectSlots возвращает ленивый итератор по ячейкам глобального выделения.
// Как и SelectChunks, создаёт чанки, которые затрагивает выделение.
func (m *VoxelMap) SelectSlots(sel vec.Selection) *SlotIterator {
	return newSlotIterator(m, sel)
}

// SlotAt возвращает слот для глобальных координат, создавая чанк при необходимости
func (m *VoxelMap) SlotAt(global vec.Coords) Slot {
	return Slot{
		local: global.LocalInChunk(m.chunkSize),
		chunk: m.ChunkAt(global.ToChunkCoords(m.chunkSize)),
	}
}

// SlotIn возвращает слот по координатам чанка и локальным координатам внутри него
func (m *VoxelMap) SlotIn(chunk, local vec.Coords) (Slot, error) {
	if !m.chunkSize.Contains(local) {
		m.metrics.outOfBounds()
		return Slot{}, fmt.Errorf("%w: %s в чанке %s размером %s", ErrOutOfBounds, local, chunk, m.chunkSize)
	}
	return Slot{local: local, chunk: m.ChunkAt(chunk)}, nil
}

// ForEachSlot вызывает fn для каждой ячейки выделения и останавливается на первой ошибке
func (m *VoxelMap) ForEachSlot(sel vec.Selection, fn func(Slot) error) error {
	it := m.SelectSlots(sel)
	for it.Next() {
		if err := fn(it.Slot()); err != nil {
			return err
		}
	}
	return nil
}

// raw возвращает сырой чанк по индексу арены. Указатель нельзя сохранять:
// следующий append в арену может переместить данные.
func (m *VoxelMap) raw(idx int) *RawChunk {
	return &m.arena[idx]
}

// relativeSelection возвращает часть глобального выделения sel, лежащую в чанке,
// в локальных координатах этого чанка. Может быть пустой.
func (m *VoxelMap) relativeSelection(chunk vec.Coords, sel vec.Selection) vec.Selection {
	origin := m.ChunkOrigin(chunk)
	return m.ChunkBounds(chunk).Intersect(sel).Translate(vec.Coords{X: -origin.X, Y: -origin.Y, Z: -origin.Z})
}
