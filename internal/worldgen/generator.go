package worldgen

import (
	"math"

	"github.com/annel0/voxel-store/internal/logging"
	"github.com/annel0/voxel-store/internal/util"
	"github.com/annel0/voxel-store/internal/vec"
	"github.com/annel0/voxel-store/internal/world"
	"github.com/annel0/voxel-store/internal/world/block"
)

// TerrainLayer - слой, в который пишется ландшафт
const TerrainLayer = 0

// Generator заполняет область карты ландшафтом по карте высот из шума Перлина.
// Ось Y - вертикаль.
type Generator struct {
	Seed        int64
	NoiseScale  float64 // Масштаб шума (сглаженность ландшафта)
	BaseHeight  int     // Высота при значении шума 0
	Amplitude   int     // Перепад высот
	SeaLevel    int     // Ниже этого уровня пустота заполняется водой
	DirtDepth   int     // Толщина слоя земли под травой
	noise       *util.Noise
	logger      *logging.Logger
	heightCache map[[2]int]int
}

// NewGenerator создаёт генератор с настройками по умолчанию
func NewGenerator(seed int64) *Generator {
	return &Generator{
		Seed:        seed,
		NoiseScale:  0.05,
		BaseHeight:  -8,
		Amplitude:   24,
		SeaLevel:    0,
		DirtDepth:   3,
		noise:       util.NewNoise(seed),
		logger:      logging.Default(),
		heightCache: make(map[[2]int]int),
	}
}

// SetLogger задаёт логгер генератора
func (g *Generator) SetLogger(l *logging.Logger) {
	g.logger = l
}

// HeightAt возвращает высоту поверхности в колонке (x, z)
func (g *Generator) HeightAt(x, z int) int {
	key := [2]int{x, z}
	if h, ok := g.heightCache[key]; ok {
		return h
	}
	n := g.noise.Noise2D(float64(x)*g.NoiseScale, float64(z)*g.NoiseScale)
	h := g.BaseHeight + int(math.Round(n*float64(g.Amplitude)))
	g.heightCache[key] = h
	return h
}

// BlockAt возвращает воксель ландшафта в глобальной точке
func (g *Generator) BlockAt(p vec.Coords) block.BlockID {
	h := g.HeightAt(p.X, p.Z)
	switch {
	case p.Y > h:
		if p.Y <= g.SeaLevel {
			return block.WaterBlockID
		}
		return block.AirBlockID
	case p.Y == h:
		if h < g.SeaLevel {
			return block.SandBlockID
		}
		return block.GrassBlockID
	case p.Y > h-g.DirtDepth:
		return block.DirtBlockID
	default:
		return block.StoneBlockID
	}
}

// Fill записывает ландшафт во все ячейки выделения на TerrainLayer.
// Пустые ячейки не записываются, но чанки выделения всё равно создаются.
// Возвращает количество записанных вокселей.
func (g *Generator) Fill(m *world.VoxelMap, sel vec.Selection) (int, error) {
	written := 0
	err := m.ForEachSlot(sel, func(s world.Slot) error {
		id := g.BlockAt(s.Coords())
		if block.IsEmpty(id) {
			return nil
		}
		written++
		return s.Set(TerrainLayer, id)
	})
	if err != nil {
		return written, err
	}

	g.logger.Debug("ландшафт %s: записано %d вокселей, чанков в карте %d", sel, written, m.ChunkCount())
	return written, nil
}
