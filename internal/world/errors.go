package world

import "errors"

var (
	// ErrOutOfBounds возвращается при обращении к локальным координатам вне размеров чанка
	ErrOutOfBounds = errors.New("локальные координаты вне чанка")

	// ErrInvalidLayer возвращается для отрицательного индекса слоя
	ErrInvalidLayer = errors.New("недопустимый индекс слоя")

	// ErrInvalidChunkSize возвращается при создании карты с нулевым размером чанка
	ErrInvalidChunkSize = errors.New("размер чанка должен быть положительным по всем осям")

	// ErrDetachedView возвращается при работе с нулевым значением Chunk или Slot
	ErrDetachedView = errors.New("представление не привязано к карте")
)
