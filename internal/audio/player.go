// Package audio plays the game's sound cues through the system speaker.
// Cues are synthesized at startup, so the binary ships no sound files.
package audio

import (
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/flap/internal/config"
)

// Player plays named cues. Without a working audio device it stays
// silent; the game never waits on it.
type Player struct {
	mu      sync.Mutex
	cache   *cache
	volume  float64
	ready   bool
	logger  *log.Logger
	started bool
}

// NewPlayer prepares the cue cache and, if audio is enabled, opens the
// speaker. A speaker that fails to open is logged and leaves the player
// silent.
func NewPlayer(cfg config.Audio, logger *log.Logger) *Player {
	rate := beep.SampleRate(cfg.SampleRate)
	p := &Player{
		cache:  newCache(rate),
		volume: cfg.Volume,
		logger: logger,
	}
	if !cfg.Enabled {
		logger.Debug("audio disabled")
		return p
	}

	if err := speaker.Init(rate, rate.N(100*time.Millisecond)); err != nil {
		logger.Warn("audio unavailable, continuing without sound", "error", err)
		return p
	}
	p.cache.preload()
	p.ready = true
	p.started = true
	logger.Debug("audio ready", "sample_rate", cfg.SampleRate, "volume", cfg.Volume)
	return p
}

// Enabled reports whether cues reach the speaker.
func (p *Player) Enabled() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.ready
}

// SetMuted silences or restores playback without closing the speaker.
func (p *Player) SetMuted(muted bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.ready = p.started && !muted
}

// Play starts a cue and returns immediately. Unknown cues are skipped.
func (p *Player) Play(cue string) {
	p.mu.Lock()
	ready := p.ready
	p.mu.Unlock()
	if !ready {
		return
	}

	buf := p.cache.get(cue)
	if buf == nil {
		p.logger.Debug("unknown audio cue", "cue", cue)
		return
	}
	speaker.Play(gain(buf.Streamer(0, buf.Len()), p.volume))
}

// Close stops everything that is playing.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.started {
		return
	}
	speaker.Clear()
	p.ready = false
	p.started = false
}
