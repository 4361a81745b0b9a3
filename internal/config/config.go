package config

import (
	"math"
	"time"

	"github.com/pkg/errors"
	"gopkg.in/alecthomas/kingpin.v2"
)

const Version = "0.3.0"

// RepeatDelay is the longest keyboard auto-repeat delay a held key has to
// survive. X11 defaults to 660ms.
const RepeatDelay = 700 * time.Millisecond

type Config struct {
	Levels     string
	Level      int
	FPS        float64
	HoldFrames int
	Fire       rune
	Policy     string
	Sound      bool
	Volume     float64
	LogFile    string
	LogLevel   string
	Seed       int64
}

// FramePeriod is the wall clock time of one simulation frame.
func (c *Config) FramePeriod() time.Duration {
	return time.Duration(float64(time.Second) / c.FPS)
}

func Parse(args []string) (*Config, error) {
	app := kingpin.New("shadowdance", "Lane based rhythm game for the terminal.")
	app.Version(Version)

	var (
		levels     = app.Flag("levels", "Directory holding levels.yaml and its level files").Short('l').ExistingDir()
		level      = app.Flag("level", "Start straight into this level, counting from 1").Default("0").Short('L').Int()
		fps        = app.Flag("fps", "Simulation frames per second").Default("60").Short('f').Float64()
		holdFrames = app.Flag("hold-frames", "Frames a key stays down after its last terminal key event, 0 covers the repeat delay at the chosen fps").Default("0").Int()
		fire       = app.Flag("fire", "Key that fires the guardian's arrows").Default("z").String()
		policy     = app.Flag("policy", "How many notes a lane may score per frame").Default("priority").Enum("priority", "summed")
		sound      = app.Flag("sound", "Play judgement tones").Default("true").Bool()
		volume     = app.Flag("volume", "Tone volume, in powers of two").Default("-1").Float64()
		logFile    = app.Flag("log-file", "Write logs to this file").String()
		logLevel   = app.Flag("log-level", "Minimum log level").Default("info").Enum("debug", "info", "warn", "error")
		seed       = app.Flag("seed", "Random seed for enemy spawns, 0 picks one").Default("0").Int64()
	)

	if _, err := app.Parse(args); nil != err {
		return nil, err
	}

	if *fps <= 0 {
		return nil, errors.Errorf("fps must be positive, got %v", *fps)
	}
	if *holdFrames < 0 {
		return nil, errors.Errorf("hold-frames must not be negative, got %d", *holdFrames)
	}
	if *holdFrames == 0 {
		*holdFrames = int(math.Ceil(RepeatDelay.Seconds() * *fps))
	}
	if *level < 0 {
		return nil, errors.Errorf("no level %d", *level)
	}
	runes := []rune(*fire)
	if len(runes) != 1 {
		return nil, errors.Errorf("fire must be a single key, got %q", *fire)
	}

	return &Config{
		Levels:     *levels,
		Level:      *level,
		FPS:        *fps,
		HoldFrames: *holdFrames,
		Fire:       runes[0],
		Policy:     *policy,
		Sound:      *sound,
		Volume:     *volume,
		LogFile:    *logFile,
		LogLevel:   *logLevel,
		Seed:       *seed,
	}, nil
}
