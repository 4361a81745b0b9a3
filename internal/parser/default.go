package parser

import (
	"encoding/csv"
	"io"
	"strconv"
	"strings"

	"git.lost.host/meutraa/shadowdance/internal/game"
	"github.com/pkg/errors"
)

const laneTag = "Lane"

// DefaultParser reads levels as comma separated lines:
//
//	Lane,<kind>,<x>
//	<kind>,<variant>,<frame>
type DefaultParser struct{}

func (p *DefaultParser) Parse(r io.Reader) ([]Declaration, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true
	cr.Comment = '#'

	decls := []Declaration{}
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if nil != err {
			return nil, errors.Wrap(err, "unable to read level")
		}
		line, _ := cr.FieldPos(0)

		decl, err := p.parseRecord(record)
		if nil != err {
			return nil, errors.Wrapf(err, "line %d", line)
		}
		decl.Line = line
		decls = append(decls, decl)
	}
	return decls, nil
}

func (p *DefaultParser) parseRecord(record []string) (Declaration, error) {
	if len(record) != 3 {
		return Declaration{}, errors.Errorf("expected 3 fields, got %d", len(record))
	}
	for i := range record {
		record[i] = strings.TrimSpace(record[i])
	}

	if record[0] == laneTag {
		kind, err := game.ParseLaneKind(record[1])
		if nil != err {
			return Declaration{}, err
		}
		x, err := p.parseInt(record[2], "lane position")
		if nil != err {
			return Declaration{}, err
		}
		return Declaration{IsLane: true, Kind: kind, X: x}, nil
	}

	kind, err := game.ParseLaneKind(record[0])
	if nil != err {
		return Declaration{}, err
	}
	variant, err := game.ParseVariant(record[1])
	if nil != err {
		return Declaration{}, err
	}
	frame, err := p.parseInt(record[2], "appearance frame")
	if nil != err {
		return Declaration{}, err
	}
	return Declaration{Kind: kind, Variant: variant, Frame: frame}, nil
}

func (p *DefaultParser) parseInt(s, what string) (int, error) {
	v, err := strconv.Atoi(s)
	if nil != err {
		return 0, errors.Wrapf(err, "invalid %s %q", what, s)
	}
	if v < 0 {
		return 0, errors.Errorf("negative %s %d", what, v)
	}
	return v, nil
}
