package theme

import (
	"image/color"

	"git.lost.host/meutraa/shadowdance/internal/game"
	"git.lost.host/meutraa/shadowdance/internal/score"
)

type DefaultTheme struct {
}

func (t *DefaultTheme) Note(v game.Variant, lane game.LaneKind) (string, color.RGBA) {
	if v == game.Normal || v == game.Hold {
		return laneSyms[lane], noteColors[v]
	}
	return noteSyms[v], noteColors[v]
}

func (t *DefaultTheme) HoldBody() string {
	return holdSym
}

func (t *DefaultTheme) Lane(kind game.LaneKind) (string, color.RGBA) {
	return laneSyms[kind], laneColor
}

func (t *DefaultTheme) TargetLine() string {
	return targetSym
}

func (t *DefaultTheme) Guardian() (string, color.RGBA) {
	return guardianSym, color.RGBA{236, 195, 0, 255}
}

func (t *DefaultTheme) Arrow() (string, color.RGBA) {
	return arrowSym, color.RGBA{255, 255, 255, 255}
}

func (t *DefaultTheme) Enemy() (string, color.RGBA) {
	return enemySym, color.RGBA{236, 30, 0, 255}
}

func (t *DefaultTheme) Tier(tier score.Tier) color.RGBA {
	col, ok := tierColors[tier]
	if !ok {
		return textColor
	}
	return col
}

func (t *DefaultTheme) Text() color.RGBA {
	return textColor
}

const (
	holdSym     = "┃"
	targetSym   = "═"
	guardianSym = "♜"
	arrowSym    = "•"
	enemySym    = "☠"
)

var (
	laneSyms = map[game.LaneKind]string{
		game.LaneLeft:    "◀",
		game.LaneRight:   "▶",
		game.LaneUp:      "▲",
		game.LaneDown:    "▼",
		game.LaneSpecial: "◆",
	}
	noteSyms = map[game.Variant]string{
		game.SpeedUp:     "»",
		game.SlowDown:    "«",
		game.DoubleScore: "2",
		game.Bomb:        "✹",
	}
	noteColors = map[game.Variant]color.RGBA{
		game.Normal:      {0, 118, 236, 255}, // blue
		game.Hold:        {106, 0, 236, 255}, // purple
		game.SpeedUp:     {0, 236, 128, 255}, // green
		game.SlowDown:    {236, 128, 0, 255}, // orange
		game.DoubleScore: {236, 195, 0, 255}, // yellow
		game.Bomb:        {236, 30, 0, 255},  // red
	}
	tierColors = map[score.Tier]color.RGBA{
		score.Perfect: {173, 236, 236, 255},
		score.Good:    {0, 236, 128, 255},
		score.Bad:     {236, 128, 0, 255},
		score.Miss:    {236, 30, 0, 255},
	}
	laneColor = color.RGBA{106, 106, 106, 255}
	textColor = color.RGBA{255, 255, 255, 255}
)
