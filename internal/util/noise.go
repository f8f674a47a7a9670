package util

import (
	"github.com/aquilax/go-perlin"
)

// Параметры шума по умолчанию
const (
	NoiseAlpha   = 2.0 // Сглаживание шума
	NoiseBeta    = 2.0 // Частота шума
	NoiseOctaves = 3   // Количество октав
)

// Noise - генератор шума Перлина с фиксированным сидом
type Noise struct {
	seed int64
	p    *perlin.Perlin
}

// NewNoise создаёт генератор шума Перлина с указанным сидом
func NewNoise(seed int64) *Noise {
	return &Noise{
		seed: seed,
		p:    perlin.NewPerlin(NoiseAlpha, NoiseBeta, NoiseOctaves, seed),
	}
}

// Seed возвращает сид генератора
func (n *Noise) Seed() int64 {
	return n.seed
}

// Noise2D возвращает значение шума для указанных координат в диапазоне [0, 1]
func (n *Noise) Noise2D(x, y float64) float64 {
	// Значение шума лежит примерно в [-1, 1]
	v := (n.p.Noise2D(x, y) + 1.0) / 2.0
	return Clamp01(v)
}

// Clamp01 ограничивает значение диапазоном [0, 1]
func Clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
