package level

import (
	"sort"

	"git.lost.host/meutraa/shadowdance/internal/game"
	"git.lost.host/meutraa/shadowdance/internal/parser"
	"github.com/pkg/errors"
)

var (
	ErrDuplicateLane = errors.New("lane declared twice")
	ErrNoLane        = errors.New("note references an undeclared lane")
	ErrEmpty         = errors.New("level declares no lanes")
)

// Build turns declarations into lanes, in declaration order except that
// special lanes come last so their power-ups take effect after the
// directional lanes have scored the frame. Notes keep
// their declaration order within their variant. Any declaration that
// cannot be resolved fails the whole level.
func Build(decls []parser.Declaration, policy game.Policy) ([]*game.Lane, error) {
	lanes := []*game.Lane{}
	byKind := map[game.LaneKind]*game.Lane{}

	for _, d := range decls {
		if d.IsLane {
			if _, ok := byKind[d.Kind]; ok {
				return nil, errors.Wrapf(ErrDuplicateLane, "line %d: %v", d.Line, d.Kind)
			}
			l := game.NewLane(d.Kind, d.X)
			l.Policy = policy
			byKind[d.Kind] = l
			lanes = append(lanes, l)
			continue
		}

		l, ok := byKind[d.Kind]
		if !ok {
			return nil, errors.Wrapf(ErrNoLane, "line %d: %v %v", d.Line, d.Kind, d.Variant)
		}
		l.Add(game.NewNote(d.Variant, d.Frame))
	}

	if len(lanes) == 0 {
		return nil, ErrEmpty
	}
	sort.SliceStable(lanes, func(i, j int) bool {
		return lanes[i].Kind != game.LaneSpecial && lanes[j].Kind == game.LaneSpecial
	})
	return lanes, nil
}
