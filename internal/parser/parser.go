package parser

import (
	"io"

	"git.lost.host/meutraa/shadowdance/internal/game"
)

type Parser interface {
	Parse(r io.Reader) ([]Declaration, error)
}

// Declaration is one line of a level: either a lane at a screen x, or a
// note of a variant in the lane of the same kind.
type Declaration struct {
	Line int

	IsLane bool
	Kind   game.LaneKind
	X      int

	Variant game.Variant
	Frame   int
}
