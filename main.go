package main

import (
	"io"
	"math/rand"
	"os"
	"time"

	"git.lost.host/meutraa/shadowdance/internal/config"
	"git.lost.host/meutraa/shadowdance/internal/game"
	"git.lost.host/meutraa/shadowdance/internal/input"
	"git.lost.host/meutraa/shadowdance/internal/level"
	"git.lost.host/meutraa/shadowdance/internal/parser"
	"git.lost.host/meutraa/shadowdance/internal/render"
	"git.lost.host/meutraa/shadowdance/internal/score"
	"git.lost.host/meutraa/shadowdance/internal/session"
	"git.lost.host/meutraa/shadowdance/internal/sfx"
	"git.lost.host/meutraa/shadowdance/internal/theme"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
	if err := run(os.Args[1:]); nil != err {
		log.Fatal().Err(err).Msg("shadowdance")
	}
}

// newLogger writes to the log file, if one was given. The terminal belongs
// to the renderer while playing.
func newLogger(cfg *config.Config) (zerolog.Logger, io.Closer, error) {
	if cfg.LogFile == "" {
		return zerolog.Nop(), nil, nil
	}
	lvl, err := zerolog.ParseLevel(cfg.LogLevel)
	if nil != err {
		return zerolog.Nop(), nil, errors.Wrap(err, "unable to parse log level")
	}
	f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if nil != err {
		return zerolog.Nop(), nil, errors.Wrap(err, "unable to open log file")
	}
	return zerolog.New(f).Level(lvl).With().Timestamp().Logger(), f, nil
}

func run(args []string) error {
	cfg, err := config.Parse(args)
	if nil != err {
		return err
	}

	logger, closer, err := newLogger(cfg)
	if nil != err {
		return err
	}
	if nil != closer {
		defer closer.Close()
	}

	var manifest *level.Manifest
	if cfg.Levels == "" {
		manifest, err = level.Builtin()
	} else {
		manifest, err = level.Dir(cfg.Levels)
	}
	if nil != err {
		return err
	}
	if cfg.Level > len(manifest.Levels) {
		return errors.Errorf("no level %d, there are %d", cfg.Level, len(manifest.Levels))
	}

	policy, err := game.ParsePolicy(cfg.Policy)
	if nil != err {
		return err
	}

	journal, err := score.OpenJournal(score.MemoryDSN)
	if nil != err {
		return err
	}
	defer journal.Close()

	var player sfx.Player = sfx.Nop{}
	if cfg.Sound {
		speaker, err := sfx.NewSpeaker(sfx.SampleRate, cfg.Volume)
		if nil != err {
			logger.Warn().Err(err).Msg("playing without sound")
		} else {
			player = speaker
		}
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	logger.Info().Int64("seed", seed).Str("policy", policy.String()).Msg("starting")

	s := session.New(session.Options{
		Log:      logger,
		Manifest: manifest,
		Parser:   &parser.DefaultParser{},
		Policy:   policy,
		Journal:  journal,
		Player:   player,
		Rand:     rand.New(rand.NewSource(seed)),
	})
	if cfg.Level > 0 {
		if err := s.Start(cfg.Level - 1); nil != err {
			return err
		}
	}

	bindings := input.DefaultBindings()
	bindings.Bind(cfg.Fire, input.Fire)
	kb, err := input.OpenKeyboard(bindings)
	if nil != err {
		return err
	}
	defer kb.Close()

	r, err := render.NewTerminalRenderer(game.WindowWidth, game.WindowHeight)
	if nil != err {
		return err
	}
	if err := r.Init(); nil != err {
		return err
	}
	defer r.Deinit()

	var th theme.Theme = &theme.DefaultTheme{}
	tracker := input.NewTracker(cfg.HoldFrames)

	var loopErr error
	r.RenderLoop(cfg.FramePeriod(), func(frame uint64) bool {
		if err := kb.Drain(tracker); nil != err {
			loopErr = err
			return false
		}
		in := tracker.Next()
		if in.Pressed(input.Escape) {
			return false
		}
		if err := s.Step(in); nil != err {
			loopErr = err
			return false
		}
		s.Draw(r, th)
		return true
	})
	return loopErr
}
