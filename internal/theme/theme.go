package theme

import (
	"image/color"

	"git.lost.host/meutraa/shadowdance/internal/game"
	"git.lost.host/meutraa/shadowdance/internal/score"
)

type Theme interface {
	Note(v game.Variant, lane game.LaneKind) (string, color.RGBA)
	HoldBody() string
	Lane(kind game.LaneKind) (string, color.RGBA)
	TargetLine() string
	Guardian() (string, color.RGBA)
	Arrow() (string, color.RGBA)
	Enemy() (string, color.RGBA)
	Tier(t score.Tier) color.RGBA
	Text() color.RGBA
}
