package audio

import (
	"time"

	"github.com/gopxl/beep"

	"github.com/vovakirdan/flap/internal/games/flappy"
)

// generators builds the streamer of each known cue at unity gain.
var generators = map[string]func(rate beep.SampleRate) beep.Streamer{
	flappy.CueWing:   wingSound,
	flappy.CuePoint:  pointSound,
	flappy.CueHit:    hitSound,
	flappy.CueSwoosh: swooshSound,
}

// Cues lists the names of every synthesized cue.
func Cues() []string {
	return []string{flappy.CueWing, flappy.CuePoint, flappy.CueHit, flappy.CueSwoosh}
}

// wingSound is a short rising chirp.
func wingSound(rate beep.SampleRate) beep.Streamer {
	return gain(tone(420, 880, 90*time.Millisecond, WaveTriangle, 60*time.Millisecond, rate), 0.6)
}

// pointSound is a two-note chime, B5 then E6.
func pointSound(rate beep.SampleRate) beep.Streamer {
	first := tone(987.77, 987.77, 80*time.Millisecond, WaveSquare, 30*time.Millisecond, rate)
	second := tone(1318.51, 1318.51, 220*time.Millisecond, WaveSquare, 180*time.Millisecond, rate)
	return gain(beep.Seq(first, second), 0.35)
}

// hitSound is a burst of noise over a falling thump.
func hitSound(rate beep.SampleRate) beep.Streamer {
	d := 250 * time.Millisecond
	noise := tone(0, 0, d, WaveNoise, 200*time.Millisecond, rate)
	thump := tone(160, 40, d, WaveSine, 150*time.Millisecond, rate)
	return beep.Mix(gain(noise, 0.4), gain(thump, 0.6))
}

// swooshSound is filtered-sounding noise shaped by a slow rise and fall.
func swooshSound(rate beep.SampleRate) beep.Streamer {
	d := 300 * time.Millisecond
	noise := newEnvelope(newSweep(0, 0, d, WaveNoise, rate), d, 120*time.Millisecond, 160*time.Millisecond, rate)
	air := tone(300, 900, d, WaveSine, 160*time.Millisecond, rate)
	return beep.Mix(gain(noise, 0.25), gain(air, 0.15))
}
