package vec

import "fmt"

// Selection задаёт прямоугольную область [Src..Dest] включительно по всем осям.
// Если Src > Dest хотя бы по одной оси, выделение пустое (ноль элементов),
// это не ошибка.
type Selection struct {
	Src  Coords
	Dest Coords
}

// NewSelection создаёт выделение по двум противоположным углам в любом порядке
func NewSelection(a, b Coords) Selection {
	return Selection{
		Src:  Coords{X: min(a.X, b.X), Y: min(a.Y, b.Y), Z: min(a.Z, b.Z)},
		Dest: Coords{X: max(a.X, b.X), Y: max(a.Y, b.Y), Z: max(a.Z, b.Z)},
	}
}

// Intersect возвращает пересечение двух выделений. Для непересекающихся
// выделений результат пустой.
func (s Selection) Intersect(other Selection) Selection {
	return Selection{
		Src: Coords{
			X: max(s.Src.X, other.Src.X),
			Y: max(s.Src.Y, other.Src.Y),
			Z: max(s.Src.Z, other.Src.Z),
		},
		Dest: Coords{
			X: min(s.Dest.X, other.Dest.X),
			Y: min(s.Dest.Y, other.Dest.Y),
			Z: min(s.Dest.Z, other.Dest.Z),
		},
	}
}

// Empty сообщает, что выделение не содержит ни одной точки
func (s Selection) Empty() bool {
	return s.Src.X > s.Dest.X || s.Src.Y > s.Dest.Y || s.Src.Z > s.Dest.Z
}

// Volume возвращает количество точек в выделении
func (s Selection) Volume() int {
	if s.Empty() {
		return 0
	}
	return (s.Dest.X - s.Src.X + 1) * (s.Dest.Y - s.Src.Y + 1) * (s.Dest.Z - s.Src.Z + 1)
}

// Contains проверяет принадлежность точки выделению
func (s Selection) Contains(p Coords) bool {
	return p.X >= s.Src.X && p.X <= s.Dest.X &&
		p.Y >= s.Src.Y && p.Y <= s.Dest.Y &&
		p.Z >= s.Src.Z && p.Z <= s.Dest.Z
}

// Translate сдвигает оба конца выделения на d
func (s Selection) Translate(d Coords) Selection {
	return Selection{Src: s.Src.Add(d), Dest: s.Dest.Add(d)}
}

// ToChunkSelection переводит глобальное выделение в пространство чанков
func (s Selection) ToChunkSelection(size Size) Selection {
	return Selection{
		Src:  s.Src.ToChunkCoords(size),
		Dest: s.Dest.ToChunkCoords(size),
	}
}

func (s Selection) String() string {
	return fmt.Sprintf("[%s..%s]", s.Src, s.Dest)
}

// Next возвращает точку, следующую за c при обходе выделения:
// сначала растёт X, затем Y, затем Z. Второе значение false, если обход закончен.
// Сравнение выполняется до инкремента, поэтому Dest == math.MaxInt не переполняется.
func (s Selection) Next(c Coords) (Coords, bool) {
	if c.X < s.Dest.X {
		c.X++
		return c, true
	}
	c.X = s.Src.X
	if c.Y < s.Dest.Y {
		c.Y++
		return c, true
	}
	c.Y = s.Src.Y
	if c.Z < s.Dest.Z {
		c.Z++
		return c, true
	}
	return c, false
}

// Walk обходит все точки выделения в порядке X, Y, Z.
// Обход прекращается, если fn вернула false.
func (s Selection) Walk(fn func(Coords) bool) {
	if s.Empty() {
		return
	}
	for c, ok := s.Src, true; ok; c, ok = s.Next(c) {
		if !fn(c) {
			return
		}
	}
}
