// Package session runs the game from level selection to the end screen,
// one frame at a time.
package session

import (
	"context"
	"math/rand"

	"git.lost.host/meutraa/shadowdance/internal/game"
	"git.lost.host/meutraa/shadowdance/internal/input"
	"git.lost.host/meutraa/shadowdance/internal/level"
	"git.lost.host/meutraa/shadowdance/internal/parser"
	"git.lost.host/meutraa/shadowdance/internal/score"
	"git.lost.host/meutraa/shadowdance/internal/sfx"
	"github.com/looplab/fsm"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

// Screen states.
const (
	StateTitle    = "title"
	StatePlaying  = "playing"
	StatePaused   = "paused"
	StateFinished = "finished"
)

const (
	eventStart  = "start"
	eventPause  = "pause"
	eventResume = "resume"
	eventFinish = "finish"
	eventLeave  = "leave"
)

type Options struct {
	Log      zerolog.Logger
	Manifest *level.Manifest
	Parser   parser.Parser
	Policy   game.Policy
	// Journal, if set, records every judgement of a run.
	Journal score.Journal
	Player  sfx.Player
	// Rand drives enemy spawns. Seeded from the clock when nil.
	Rand *rand.Rand
}

type Session struct {
	log      zerolog.Logger
	manifest *level.Manifest
	parser   parser.Parser
	policy   game.Policy
	journal  score.Journal
	player   sfx.Player
	rng      *rand.Rand

	state *fsm.FSM

	index   int
	lanes   []*game.Lane
	pace    *game.Pace
	eval    *score.Evaluator
	combat  *game.Combat
	frame   int
	score   int
	summary score.Summary

	// lanes whose key went down this frame, for the renderer
	pressed []*game.Lane
}

func New(opts Options) *Session {
	s := &Session{
		log:      opts.Log,
		manifest: opts.Manifest,
		parser:   opts.Parser,
		policy:   opts.Policy,
		journal:  opts.Journal,
		player:   opts.Player,
		rng:      opts.Rand,
		pace:     game.NewPace(),
		eval:     score.NewEvaluator(game.WindowHeight),
	}
	if nil == s.parser {
		s.parser = &parser.DefaultParser{}
	}
	if nil == s.player {
		s.player = sfx.Nop{}
	}
	if nil == s.rng {
		s.rng = rand.New(rand.NewSource(rand.Int63()))
	}
	s.eval.OnJudge = s.judged

	s.state = fsm.NewFSM(
		StateTitle,
		fsm.Events{
			{Name: eventStart, Src: []string{StateTitle}, Dst: StatePlaying},
			{Name: eventPause, Src: []string{StatePlaying}, Dst: StatePaused},
			{Name: eventResume, Src: []string{StatePaused}, Dst: StatePlaying},
			{Name: eventFinish, Src: []string{StatePlaying}, Dst: StateFinished},
			{Name: eventLeave, Src: []string{StateFinished}, Dst: StateTitle},
		},
		fsm.Callbacks{
			"enter_state": func(_ context.Context, e *fsm.Event) {
				s.log.Debug().Str("from", e.Src).Str("to", e.Dst).Msg("screen")
			},
		},
	)
	return s
}

func (s *Session) fire(event string) {
	if s.state.Can(event) {
		_ = s.state.Event(context.Background(), event)
	}
}

func (s *Session) judged(j score.Judgement) {
	s.player.Play(j.Tier)
	if nil == s.journal {
		return
	}
	if err := s.journal.Record(s.frame, s.pace.Multiplier(), j); nil != err {
		s.log.Warn().Err(err).Msg("unable to record judgement")
	}
}

// Start loads level i and begins playing it from frame zero. A level that
// fails to load leaves the session on the title screen.
func (s *Session) Start(i int) error {
	if !s.state.Is(StateTitle) {
		return errors.Errorf("cannot start a level from %s", s.state.Current())
	}
	lanes, err := s.manifest.Load(i, s.parser, s.policy)
	if nil != err {
		return errors.Wrapf(err, "unable to load level %d", i+1)
	}
	entry := s.manifest.Levels[i]

	s.index = i
	s.lanes = lanes
	s.pace.Reset()
	s.eval.Reset()
	s.frame = 0
	s.score = 0
	s.summary = score.Summary{Level: entry.Name}
	s.combat = nil
	if entry.Combat {
		s.combat = game.NewCombat(s.rng)
	}
	if nil != s.journal {
		if err := s.journal.Begin(entry.Name); nil != err {
			s.log.Warn().Err(err).Msg("unable to begin journal run")
		}
	}

	notes := 0
	for _, l := range lanes {
		notes += l.Len()
	}
	s.log.Info().
		Str("level", entry.Name).
		Int("lanes", len(lanes)).
		Int("notes", notes).
		Bool("combat", entry.Combat).
		Msg("level started")

	s.fire(eventStart)
	return nil
}

// Step advances the session by one frame of input.
func (s *Session) Step(in input.Frame) error {
	switch s.state.Current() {
	case StateTitle:
		for i := range s.manifest.Levels {
			k, ok := input.LevelKey(i)
			if ok && in.Pressed(k) {
				return s.Start(i)
			}
		}
	case StatePlaying:
		s.play(in)
		if s.state.Is(StatePlaying) && in.Pressed(input.Pause) {
			s.fire(eventPause)
		}
	case StatePaused:
		if in.Pressed(input.Pause) {
			s.fire(eventResume)
		}
	case StateFinished:
		if in.Pressed(input.Special) {
			s.lanes = nil
			s.combat = nil
			s.fire(eventLeave)
		}
	}
	return nil
}

func (s *Session) play(in input.Frame) {
	s.frame++
	s.pressed = s.pressed[:0]

	for _, l := range s.lanes {
		if in.Pressed(l.Key) {
			s.pressed = append(s.pressed, l)
		}
		s.score += l.Update(in, s.frame, s.eval, s.pace) * s.pace.Multiplier()
	}
	if nil != s.combat {
		if struck := s.combat.Update(in, s.frame, s.lanes, s.pace); struck > 0 {
			s.log.Debug().Int("frame", s.frame).Int("notes", struck).Msg("enemy struck")
		}
	}
	s.pace.Tick()
	s.eval.Tick()

	for _, l := range s.lanes {
		if !l.IsFinished() {
			return
		}
	}
	s.finish()
}

func (s *Session) finish() {
	if nil != s.journal {
		summary, err := s.journal.Summary()
		if nil != err {
			s.log.Warn().Err(err).Msg("unable to summarise run")
		} else {
			s.summary = summary
		}
	}
	s.log.Info().
		Str("level", s.Level().Name).
		Int("score", s.score).
		Int("frames", s.frame).
		Bool("cleared", s.Cleared()).
		Float64("mean", s.summary.Mean).
		Float64("stdev", s.summary.Stdev).
		Msg("level finished")
	s.fire(eventFinish)
}

func (s *Session) State() string {
	return s.state.Current()
}

// Frame is the number of frames played on the current level.
func (s *Session) Frame() int {
	return s.frame
}

func (s *Session) Score() int {
	return s.score
}

func (s *Session) Multiplier() int {
	return s.pace.Multiplier()
}

func (s *Session) Pace() *game.Pace {
	return s.pace
}

func (s *Session) Evaluator() *score.Evaluator {
	return s.eval
}

func (s *Session) Lanes() []*game.Lane {
	return s.lanes
}

// Combat is nil unless the level has combat.
func (s *Session) Combat() *game.Combat {
	return s.combat
}

func (s *Session) Levels() []level.Entry {
	return s.manifest.Levels
}

// Level is the level last started.
func (s *Session) Level() level.Entry {
	return s.manifest.Levels[s.index]
}

// Cleared reports whether the score reached the level's clear score.
func (s *Session) Cleared() bool {
	return s.score >= s.Level().ClearScore
}

// Summary of the last finished run. Only the level name is set when no
// journal is attached.
func (s *Session) Summary() score.Summary {
	return s.summary
}
