package vec

import "fmt"

// Coords представляет трехмерные целочисленные координаты.
// В зависимости от контекста это либо глобальная позиция вокселя,
// либо координаты чанка. Значения могут быть отрицательными.
type Coords struct {
	X int
	Y int
	Z int
}

// Add складывает два вектора
func (c Coords) Add(other Coords) Coords {
	return Coords{
		X: c.X + other.X,
		Y: c.Y + other.Y,
		Z: c.Z + other.Z,
	}
}

// Sub вычитает вектор
func (c Coords) Sub(other Coords) Coords {
	return Coords{
		X: c.X - other.X,
		Y: c.Y - other.Y,
		Z: c.Z - other.Z,
	}
}

// Scale умножает координаты на размер по каждой оси (чанк -> глобальные координаты начала чанка)
func (c Coords) Scale(size Size) Coords {
	return Coords{
		X: c.X * int(size.Width),
		Y: c.Y * int(size.Height),
		Z: c.Z * int(size.Depth),
	}
}

// Equals проверяет равенство векторов
func (c Coords) Equals(other Coords) bool {
	return c == other
}

func (c Coords) String() string {
	return fmt.Sprintf("(%d,%d,%d)", c.X, c.Y, c.Z)
}

// FloorDiv делит a на положительный b с округлением вниз.
// Результат совпадает с (a - b + 1) / b для отрицательных a, но без
// переполнения вблизи math.MinInt.
func FloorDiv(a, b int) int {
	q := a / b
	if a < 0 && a%b != 0 {
		q--
	}
	return q
}

// FloorMod возвращает неотрицательный остаток от деления a на положительный b.
func FloorMod(a, b int) int {
	m := a % b
	if m < 0 {
		m += b
	}
	return m
}

// ToChunkCoords преобразует глобальные координаты в координаты чанка
func (c Coords) ToChunkCoords(size Size) Coords {
	return Coords{
		X: FloorDiv(c.X, int(size.Width)),
		Y: FloorDiv(c.Y, int(size.Height)),
		Z: FloorDiv(c.Z, int(size.Depth)),
	}
}

// LocalInChunk возвращает локальные координаты внутри чанка
func (c Coords) LocalInChunk(size Size) Coords {
	return Coords{
		X: FloorMod(c.X, int(size.Width)),
		Y: FloorMod(c.Y, int(size.Height)),
		Z: FloorMod(c.Z, int(size.Depth)),
	}
}
