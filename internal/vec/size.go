package vec

import "fmt"

// Size задаёт размеры чанка по осям. Одинаков для всех чанков одной карты.
type Size struct {
	Width  uint32
	Height uint32
	Depth  uint32
}

// Volume возвращает количество ячеек в объёме
func (s Size) Volume() int {
	return int(s.Width) * int(s.Height) * int(s.Depth)
}

// IsZero сообщает, что хотя бы одна ось имеет нулевую длину
func (s Size) IsZero() bool {
	return s.Width == 0 || s.Height == 0 || s.Depth == 0
}

// Contains проверяет, что локальные координаты лежат в [0, size) по каждой оси
func (s Size) Contains(local Coords) bool {
	return local.X >= 0 && local.X < int(s.Width) &&
		local.Y >= 0 && local.Y < int(s.Height) &&
		local.Z >= 0 && local.Z < int(s.Depth)
}

// Index возвращает смещение в плоском массиве: z*w*h + y*w + x
func (s Size) Index(local Coords) int {
	w, h := int(s.Width), int(s.Height)
	return local.Z*w*h + local.Y*w + local.X
}

// Max возвращает максимальные локальные координаты (size - 1)
func (s Size) Max() Coords {
	return Coords{X: int(s.Width) - 1, Y: int(s.Height) - 1, Z: int(s.Depth) - 1}
}

func (s Size) String() string {
	return fmt.Sprintf("%dx%dx%d", s.Width, s.Height, s.Depth)
}
