package block

import (
	"fmt"
	"os"
	"sort"
	"sync"

	"gopkg.in/yaml.v3"
)

// BlockID представляет идентификатор вокселя
type BlockID uint16

// Константы ID блоков
const (
	// AirBlockID - "пустой" воксель: им заполняются новые слои,
	// его же возвращает чтение несуществующего слоя.
	AirBlockID   BlockID = iota // 0
	StoneBlockID                // 1
	GrassBlockID                // 2
	WaterBlockID                // 3
	SandBlockID                 // 4
	DirtBlockID                 // 5
)

// Info описывает зарегистрированный тип вокселя
type Info struct {
	ID    BlockID `yaml:"id"`
	Name  string  `yaml:"name"`
	Solid bool    `yaml:"solid"`
}

var (
	registryMu sync.RWMutex
	registry   = make(map[BlockID]Info)
)

func init() {
	Register(Info{ID: AirBlockID, Name: "air"})
	Register(Info{ID: StoneBlockID, Name: "stone", Solid: true})
	Register(Info{ID: GrassBlockID, Name: "grass", Solid: true})
	Register(Info{ID: WaterBlockID, Name: "water"})
	Register(Info{ID: SandBlockID, Name: "sand", Solid: true})
	Register(Info{ID: DirtBlockID, Name: "dirt", Solid: true})
}

// Register добавляет (или заменяет) описание вокселя в регистре
func Register(info Info) {
	registryMu.Lock()
	defer registryMu.Unlock()
	registry[info.ID] = info
}

// Get возвращает описание для указанного ID
func Get(id BlockID) (Info, bool) {
	registryMu.RLock()
	defer registryMu.RUnlock()
	info, exists := registry[id]
	return info, exists
}

// IsValidBlockID проверяет, является ли ID зарегистрированным
func IsValidBlockID(id BlockID) bool {
	_, exists := Get(id)
	return exists
}

// IsEmpty сообщает, что воксель пустой
func IsEmpty(id BlockID) bool {
	return id == AirBlockID
}

// IsSolid возвращает true для зарегистрированных твёрдых вокселей.
// Незарегистрированные ненулевые ID считаются твёрдыми.
func IsSolid(id BlockID) bool {
	if id == AirBlockID {
		return false
	}
	info, ok := Get(id)
	return !ok || info.Solid
}

// Name возвращает имя вокселя или "unknown(N)"
func Name(id BlockID) string {
	if info, ok := Get(id); ok {
		return info.Name
	}
	return fmt.Sprintf("unknown(%d)", id)
}

// All возвращает все зарегистрированные описания, отсортированные по ID
func All() []Info {
	registryMu.RLock()
	defer registryMu.RUnlock()

	result := make([]Info, 0, len(registry))
	for _, info := range registry {
		result = append(result, info)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result
}

// palette - формат YAML-файла с дополнительными вокселями
type palette struct {
	Blocks []Info `yaml:"blocks"`
}

// LoadPalette читает YAML-палитру и регистрирует все описанные воксели.
// Переопределять AirBlockID нельзя.
func LoadPalette(path string) (int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, err
	}

	var p palette
	if err := yaml.Unmarshal(data, &p); err != nil {
		return 0, fmt.Errorf("ошибка разбора палитры %s: %w", path, err)
	}

	for _, info := range p.Blocks {
		if info.ID == AirBlockID {
			return 0, fmt.Errorf("палитра %s: ID 0 зарезервирован для воздуха", path)
		}
		if info.Name == "" {
			return 0, fmt.Errorf("палитра %s: у ID %d нет имени", path, info.ID)
		}
	}
	for _, info := range p.Blocks {
		Register(info)
	}
	return len(p.Blocks), nil
}
