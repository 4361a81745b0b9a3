package session

import (
	"fmt"

	"git.lost.host/meutraa/shadowdance/internal/game"
	"git.lost.host/meutraa/shadowdance/internal/render"
	"git.lost.host/meutraa/shadowdance/internal/score"
	"git.lost.host/meutraa/shadowdance/internal/theme"
)

const flashFrames = 6

// Draw renders the current screen.
func (s *Session) Draw(r render.Renderer, th theme.Theme) {
	switch s.state.Current() {
	case StateTitle:
		s.drawTitle(r, th)
	case StatePlaying, StatePaused:
		s.drawLevel(r, th)
	case StateFinished:
		s.drawEnd(r, th)
	}
}

func (s *Session) drawTitle(r render.Renderer, th theme.Theme) {
	rows, _ := r.Size()
	row := rows / 3
	r.Text(row, th.Text(), "SHADOW DANCE")
	r.Text(row+2, th.Text(), "SELECT LEVELS WITH NUMBER KEYS")
	for i, e := range s.manifest.Levels {
		r.Text(row+4+uint16(i), th.Text(), fmt.Sprintf("%d  %s", i+1, e.Name))
	}
}

func (s *Session) drawLevel(r render.Renderer, th theme.Theme) {
	if row, _, ok := r.Project(0, game.TargetHeight); ok {
		_, cols := r.Size()
		line := th.TargetLine()
		for c := uint16(1); c <= cols; c++ {
			r.Fill(row, c, line)
		}
	}

	for _, l := range s.lanes {
		s.drawLane(r, th, l)
	}
	for _, l := range s.pressed {
		if row, col, ok := r.Project(float64(l.X), game.TargetHeight); ok {
			sym, _ := th.Lane(l.Kind)
			r.AddDecoration(row, col, sym, flashFrames)
		}
	}
	s.pressed = s.pressed[:0]

	if nil != s.combat {
		s.drawCombat(r, th)
	}

	r.FillColor(1, 1, th.Text(), fmt.Sprintf("Score: %d", s.score))
	if m := s.pace.Multiplier(); m > 1 {
		r.FillColor(2, 1, th.Tier(score.Perfect), fmt.Sprintf("x%d  %d", m, s.pace.Remaining()))
	}
	if label, ok := s.eval.Label(); ok {
		rows, _ := r.Size()
		r.Text(rows/2, th.Tier(s.labelTier(label)), label)
	}
	if s.state.Is(StatePaused) {
		rows, _ := r.Size()
		r.Text(rows/3, th.Text(), "PAUSED")
	}
}

func (s *Session) labelTier(label string) score.Tier {
	for _, t := range score.Tiers {
		if t.String() == label {
			return t
		}
	}
	return score.NotScored
}

func (s *Session) drawLane(r render.Renderer, th theme.Theme, l *game.Lane) {
	if row, col, ok := r.Project(float64(l.X), game.TargetHeight); ok {
		sym, c := th.Lane(l.Kind)
		r.FillColor(row, col, c, sym)
	}

	l.Active(func(n *game.Note) {
		sym, c := th.Note(n.Variant, l.Kind)
		if n.Variant == game.Hold {
			top, bottom := n.Edges()
			topRow, col, topOk := r.Project(float64(l.X), float64(top))
			bottomRow, _, bottomOk := r.Project(float64(l.X), float64(bottom))
			if !topOk {
				topRow = 1
			}
			if !bottomOk {
				bottomRow, _ = r.Size()
			}
			if !topOk && !bottomOk {
				return
			}
			for row := topRow + 1; row < bottomRow; row++ {
				r.FillColor(row, col, c, th.HoldBody())
			}
			if topOk {
				r.FillColor(topRow, col, c, sym)
			}
			if bottomOk {
				r.FillColor(bottomRow, col, c, sym)
			}
			return
		}
		if row, col, ok := r.Project(float64(l.X), float64(n.Y())); ok {
			r.FillColor(row, col, c, sym)
		}
	})
}

func (s *Session) drawCombat(r render.Renderer, th theme.Theme) {
	g := s.combat.Guardian
	if row, col, ok := r.Project(g.Pos.X, g.Pos.Y); ok {
		sym, c := th.Guardian()
		r.FillColor(row, col, c, sym)
	}
	sym, c := th.Arrow()
	for _, a := range g.Arrows() {
		if row, col, ok := r.Project(a.Pos.X, a.Pos.Y); ok {
			r.FillColor(row, col, c, sym)
		}
	}
	sym, c = th.Enemy()
	for _, e := range s.combat.Enemies() {
		if row, col, ok := r.Project(e.Pos.X, e.Pos.Y); ok {
			r.FillColor(row, col, c, sym)
		}
	}
}

func (s *Session) drawEnd(r render.Renderer, th theme.Theme) {
	rows, _ := r.Size()
	row := rows / 3

	if s.Cleared() {
		r.Text(row, th.Tier(score.Perfect), "CLEAR!")
	} else {
		r.Text(row, th.Tier(score.Miss), "TRY AGAIN")
	}
	r.Text(row+2, th.Text(), fmt.Sprintf("%s  Score: %d / %d", s.Level().Name, s.score, s.Level().ClearScore))

	row += 4
	if nil != s.summary.Counts {
		for i, t := range score.Tiers {
			r.Text(row+uint16(i), th.Tier(t), fmt.Sprintf("%-8s %4d", t, s.summary.Counts[t]))
		}
		row += uint16(len(score.Tiers)) + 1
		if s.summary.Hits > 0 {
			r.Text(row, th.Text(), fmt.Sprintf("Mean %.1f  Stdev %.1f", s.summary.Mean, s.summary.Stdev))
			row++
		}
		row++
	}
	r.Text(row, th.Text(), "PRESS SPACE TO RETURN TO LEVEL SELECTION")
}
