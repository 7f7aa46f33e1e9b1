package audio

import (
	"sync"

	"github.com/gopxl/beep"
)

// cache stores rendered cue buffers, generating them on first use.
type cache struct {
	mu     sync.RWMutex
	format beep.Format
	store  map[string]*beep.Buffer
}

func newCache(rate beep.SampleRate) *cache {
	return &cache{
		format: beep.Format{SampleRate: rate, NumChannels: 2, Precision: 2},
		store:  make(map[string]*beep.Buffer),
	}
}

// get returns the buffer of a cue, or nil for an unknown cue.
func (c *cache) get(cue string) *beep.Buffer {
	c.mu.RLock()
	buf, ok := c.store[cue]
	c.mu.RUnlock()
	if ok {
		return buf
	}

	gen, known := generators[cue]
	if !known {
		return nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	// Double-check after acquiring write lock
	if buf, ok := c.store[cue]; ok {
		return buf
	}
	buf = beep.NewBuffer(c.format)
	buf.Append(gen(c.format.SampleRate))
	c.store[cue] = buf
	return buf
}

// preload renders every known cue.
func (c *cache) preload() {
	for _, cue := range Cues() {
		c.get(cue)
	}
}
