// Package sfx plays short feedback tones for judgements.
package sfx

import (
	"math"
	"time"

	"git.lost.host/meutraa/shadowdance/internal/score"
	"github.com/faiface/beep"
	"github.com/faiface/beep/effects"
	"github.com/faiface/beep/speaker"
	"github.com/pkg/errors"
)

const (
	SampleRate   = beep.SampleRate(44100)
	toneDuration = 60 * time.Millisecond
)

var frequencies = map[score.Tier]float64{
	score.Perfect: 880,
	score.Good:    660,
	score.Bad:     440,
	score.Miss:    220,
}

type Player interface {
	Play(t score.Tier)
}

// Nop plays nothing.
type Nop struct{}

func (Nop) Play(score.Tier) {}

// Speaker plays tones on the default audio device.
type Speaker struct {
	sr     beep.SampleRate
	volume float64
}

// NewSpeaker opens the audio device. volume is relative, in powers of two;
// 0 leaves tones unchanged.
func NewSpeaker(sr beep.SampleRate, volume float64) (*Speaker, error) {
	if err := speaker.Init(sr, sr.N(time.Second/30)); nil != err {
		return nil, errors.Wrap(err, "unable to open speaker")
	}
	return &Speaker{sr: sr, volume: volume}, nil
}

func (s *Speaker) Play(t score.Tier) {
	freq, ok := frequencies[t]
	if !ok {
		return
	}
	speaker.Play(&effects.Volume{
		Streamer: Tone(s.sr, freq, toneDuration),
		Base:     2,
		Volume:   s.volume,
	})
}

// Tone is a sine wave of freq lasting d that fades out linearly.
func Tone(sr beep.SampleRate, freq float64, d time.Duration) beep.Streamer {
	total := sr.N(d)
	step := 2 * math.Pi * freq / float64(sr)
	pos := 0
	return beep.Take(total, beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		for i := range samples {
			gain := 0.0
			if pos < total {
				gain = 1 - float64(pos)/float64(total)
			}
			v := gain * math.Sin(step*float64(pos))
			samples[i][0], samples[i][1] = v, v
			pos++
		}
		return len(samples), true
	}))
}
