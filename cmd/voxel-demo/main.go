package main

import (
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"sort"
	"syscall"
	"time"

	"github.com/annel0/voxel-store/internal/config"
	"github.com/annel0/voxel-store/internal/logging"
	"github.com/annel0/voxel-store/internal/vec"
	"github.com/annel0/voxel-store/internal/world"
	"github.com/annel0/voxel-store/internal/world/block"
	"github.com/annel0/voxel-store/internal/worldgen"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	configPath := flag.String("config", "", "путь к YAML-конфигурации (или VOXEL_CONFIG)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("❌ Ошибка загрузки конфигурации: %v", err)
	}

	level, _ := cfg.Logging.LogLevel() // уровень уже проверен в Validate
	worldLogger := logging.NewConsoleLogger("world", os.Stdout, level)
	if cfg.Logging.ToFile {
		if err := logging.InitDefaultLogger("voxel-demo"); err != nil {
			log.Fatalf("❌ Ошибка инициализации логирования: %v", err)
		}
		defer logging.CloseDefaultLogger()
		worldLogger = logging.GetWorldLogger()
		defer logging.GetLoggerManager().CloseAll()
	}
	logging.Default().SetLevel(level, logging.TRACE)
	worldLogger.SetLevel(level, logging.TRACE)

	if cfg.World.Palette != "" {
		n, err := block.LoadPalette(cfg.World.Palette)
		if err != nil {
			log.Fatalf("❌ Ошибка загрузки палитры: %v", err)
		}
		logging.Info("🎨 Загружено %d вокселей из палитры %s", n, cfg.World.Palette)
	}

	metrics := world.NewMetrics(prometheus.DefaultRegisterer)
	if cfg.Metrics.Enabled {
		addr := cfg.Metrics.Addr()
		go func() {
			logging.Info("📈 Prometheus /metrics доступен по адресу %s", addr)
			if err := http.ListenAndServe(addr, promhttp.Handler()); err != nil {
				logging.Error("Ошибка Prometheus HTTP сервера: %v", err)
			}
		}()
	}

	m, err := world.NewVoxelMap(cfg.World.ChunkSize(), world.WithMetrics(metrics), world.WithLogger(worldLogger))
	if err != nil {
		log.Fatalf("❌ Ошибка создания карты: %v", err)
	}
	logging.Info("🧊 Карта %s, размер чанка %s", m.ID(), m.ChunkSize())

	gen := worldgen.NewGenerator(cfg.Generator.Seed)
	if cfg.Generator.NoiseScale > 0 {
		gen.NoiseScale = cfg.Generator.NoiseScale
	}
	gen.SetLogger(worldLogger)

	region := cfg.Generator.Region()
	start := time.Now()
	written, err := gen.Fill(m, region)
	if err != nil {
		log.Fatalf("❌ Ошибка генерации: %v", err)
	}
	logging.Info("⛰️  Область %s: записано %d из %d ячеек за %v, чанков %d",
		region, written, region.Volume(), time.Since(start), m.ChunkCount())

	report, err := m.Occupancy(region, worldgen.TerrainLayer)
	if err != nil {
		log.Fatalf("❌ Ошибка подсчёта занятости: %v", err)
	}
	logging.Info("📊 Занятость: %d/%d ячеек, твёрдых %d, чанков загружено %d, отсутствует %d",
		report.Occupied, report.Cells, report.Solid, len(report.LoadedChunks), report.MissingChunks)

	logHistogram(m, region)

	// Пример чтения без создания чанков: область далеко за пределами ландшафта
	far := vec.Selection{Src: vec.Coords{X: 10000, Y: 0, Z: 10000}, Dest: vec.Coords{X: 10063, Y: 63, Z: 10063}}
	before := m.ChunkCount()
	if _, err := m.Occupancy(far, worldgen.TerrainLayer); err == nil {
		logging.Info("🔍 Запрос занятости %s не создал чанков: %d -> %d", far, before, m.ChunkCount())
	}

	logProcessStats()

	if !cfg.Metrics.Enabled {
		return
	}

	// Канал для получения сигналов ОС
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigCh
	logging.Info("📡 Получен сигнал %v, завершение работы...", sig)
}

// logHistogram выводит количество вокселей каждого типа в области
func logHistogram(m *world.VoxelMap, region vec.Selection) {
	counts := make(map[block.BlockID]int)
	err := m.OccupiedCells(region, worldgen.TerrainLayer, func(_ vec.Coords, id block.BlockID) bool {
		counts[id]++
		return true
	})
	if err != nil {
		logging.Warn("Не удалось построить гистограмму вокселей: %v", err)
		return
	}

	ids := make([]block.BlockID, 0, len(counts))
	for id := range counts {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	for _, id := range ids {
		logging.Info("   %-10s %d", block.Name(id), counts[id])
	}
}
