package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/annel0/voxel-store/internal/logging"
	"github.com/annel0/voxel-store/internal/vec"
	"gopkg.in/yaml.v3"
)

// Config корневая структура конфигурации приложения.
type Config struct {
	World     WorldConfig     `yaml:"world"`
	Generator GeneratorConfig `yaml:"generator"`
	Logging   LoggingConfig   `yaml:"logging"`
	Metrics   MetricsConfig   `yaml:"metrics"`
}

type WorldConfig struct {
	ChunkWidth  uint32 `yaml:"chunk_width"`
	ChunkHeight uint32 `yaml:"chunk_height"`
	ChunkDepth  uint32 `yaml:"chunk_depth"`
	Palette     string `yaml:"palette"` // путь к YAML-палитре вокселей, опционально
}

type GeneratorConfig struct {
	Seed       int64   `yaml:"seed"`
	NoiseScale float64 `yaml:"noise_scale"`
	Radius     int     `yaml:"radius"` // полуразмер заполняемой области по X/Z
	MinY       int     `yaml:"min_y"`
	MaxY       int     `yaml:"max_y"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	ToFile bool   `yaml:"to_file"`
}

type MetricsConfig struct {
	Enabled bool `yaml:"enabled"`
	Port    int  `yaml:"port"`
}

// Default возвращает конфигурацию по умолчанию
func Default() *Config {
	return &Config{
		World: WorldConfig{ChunkWidth: 32, ChunkHeight: 32, ChunkDepth: 32},
		Generator: GeneratorConfig{
			Seed:       12345,
			NoiseScale: 0.05,
			Radius:     48,
			MinY:       -32,
			MaxY:       31,
		},
		Logging: LoggingConfig{Level: "INFO"},
	}
}

// ChunkSize возвращает размер чанка из конфигурации
func (w WorldConfig) ChunkSize() vec.Size {
	return vec.Size{Width: w.ChunkWidth, Height: w.ChunkHeight, Depth: w.ChunkDepth}
}

// Region возвращает заполняемую генератором область
func (g GeneratorConfig) Region() vec.Selection {
	return vec.NewSelection(
		vec.Coords{X: -g.Radius, Y: g.MinY, Z: -g.Radius},
		vec.Coords{X: g.Radius - 1, Y: g.MaxY, Z: g.Radius - 1},
	)
}

// LogLevel разбирает уровень логирования
func (l LoggingConfig) LogLevel() (logging.LogLevel, error) {
	return logging.ParseLevel(l.Level)
}

// GetPort возвращает порт метрик с поддержкой fallback значений
func (m MetricsConfig) GetPort() int {
	return getPortWithEnvFallback(m.Port, "VOXEL_METRICS_PORT", 2112)
}

// Addr возвращает адрес HTTP-эндпоинта метрик
func (m MetricsConfig) Addr() string {
	return fmt.Sprintf(":%d", m.GetPort())
}

// getPortWithEnvFallback возвращает порт с приоритетом: config -> env -> default
func getPortWithEnvFallback(configPort int, envVar string, defaultPort int) int {
	// Если порт задан в конфиге и больше 0, используем его
	if configPort > 0 {
		return configPort
	}

	// Пробуем прочитать из environment variable
	if envVal := os.Getenv(envVar); envVal != "" {
		if port, err := strconv.Atoi(envVal); err == nil && port > 0 {
			return port
		}
	}

	// Используем дефолтное значение
	return defaultPort
}

// Validate проверяет конфигурацию
func (c *Config) Validate() error {
	if c.World.ChunkSize().IsZero() {
		return fmt.Errorf("world: размер чанка должен быть положительным, получено %s", c.World.ChunkSize())
	}
	if c.Generator.Radius < 0 {
		return fmt.Errorf("generator: radius не может быть отрицательным: %d", c.Generator.Radius)
	}
	if c.Generator.MinY > c.Generator.MaxY {
		return fmt.Errorf("generator: min_y (%d) больше max_y (%d)", c.Generator.MinY, c.Generator.MaxY)
	}
	if _, err := c.Logging.LogLevel(); err != nil {
		return fmt.Errorf("logging: %w", err)
	}
	return nil
}

// Load читает YAML файл конфигурации поверх значений по умолчанию.
// Если path == "", пытается прочитать из ENV VOXEL_CONFIG; если и он пуст,
// возвращает конфигурацию по умолчанию.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path == "" {
		path = os.Getenv("VOXEL_CONFIG")
		if path == "" {
			return cfg, nil // конфиг не задан — использовать дефолты
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("ошибка разбора %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
