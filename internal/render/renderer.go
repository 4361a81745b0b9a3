package render

import (
	"image/color"
	"time"
)

type Renderer interface {
	Init() error
	Deinit() error

	// Size is the terminal size in cells.
	Size() (rows, cols uint16)
	// Project maps a point of the game window onto a cell.
	Project(x, y float64) (row, col uint16, ok bool)

	AddDecoration(row, col uint16, content string, frames int)
	RenderLoop(period time.Duration, render func(frame uint64) bool)
	Fill(row, column uint16, message string)
	FillColor(row, column uint16, color color.RGBA, message string)
	// Text writes message centred on row.
	Text(row uint16, color color.RGBA, message string)
}
