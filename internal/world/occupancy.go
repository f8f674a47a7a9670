package world

import (
	"fmt"

	"github.com/annel0/voxel-store/internal/vec"
	"github.com/annel0/voxel-store/internal/world/block"
)

// OccupancyReport - сводка по занятости области на одном слое.
// Строится без создания чанков: отсутствующие чанки считаются пустыми.
type OccupancyReport struct {
	Selection     vec.Selection
	Layer         int
	Cells         int          // адресуемых ячеек в выделении
	Occupied      int          // непустых ячеек
	Solid         int          // из них твёрдых (block.IsSolid)
	LoadedChunks  []vec.Coords // существующие чанки, пересекающие выделение
	MissingChunks int          // чанки выделения, которых ещё нет
}

// OccupiedCells перечисляет непустые ячейки выделения на слое layer в порядке
// обхода чанков (X, Y, Z), а внутри чанка - в порядке X, Y, Z.
// Чанки не создаются. Обход прекращается, если fn вернула false.
func (m *VoxelMap) OccupiedCells(sel vec.Selection, layer int, fn func(global vec.Coords, id block.BlockID) bool) error {
	if layer < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidLayer, layer)
	}
	if sel.Empty() {
		return nil
	}

	stopped := false
	m.ToChunkSelection(sel).Walk(func(cc vec.Coords) bool {
		idx, ok := m.index[cc]
		if !ok {
			return true
		}
		rc := m.raw(idx)
		l := rc.Layer(layer)
		if l == nil {
			return true
		}

		origin := m.ChunkOrigin(cc)
		m.relativeSelection(cc, sel).Walk(func(local vec.Coords) bool {
			id := l.Get(m.chunkSize.Index(local))
			if block.IsEmpty(id) {
				return true
			}
			if !fn(origin.Add(local), id) {
				stopped = true
				return false
			}
			return true
		})
		return !stopped
	})
	return nil
}

// Occupancy считает занятость выделения на слое layer без создания чанков
func (m *VoxelMap) Occupancy(sel vec.Selection, layer int) (OccupancyReport, error) {
	report := OccupancyReport{
		Selection: sel,
		Layer:     layer,
		Cells:     sel.Volume(),
	}
	if layer < 0 {
		return report, fmt.Errorf("%w: %d", ErrInvalidLayer, layer)
	}
	if sel.Empty() {
		return report, nil
	}

	m.ToChunkSelection(sel).Walk(func(cc vec.Coords) bool {
		if m.HasChunk(cc) {
			report.LoadedChunks = append(report.LoadedChunks, cc)
		} else {
			report.MissingChunks++
		}
		return true
	})

	err := m.OccupiedCells(sel, layer, func(_ vec.Coords, id block.BlockID) bool {
		report.Occupied++
		if block.IsSolid(id) {
			report.Solid++
		}
		return true
	})
	return report, err
}
