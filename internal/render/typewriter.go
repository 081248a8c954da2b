package render

import (
	"sync"
	"time"
)

// Default reveal pacing. Purely a UX tuning choice; override with the
// options below.
const (
	DefaultRevealInterval = 12 * time.Millisecond
	DefaultRevealChunk    = 6
)

// RevealOption configures a Reveal.
type RevealOption func(*revealConfig)

type revealConfig struct {
	interval time.Duration
	chunk    int
}

// WithInterval sets the tick cadence.
func WithInterval(d time.Duration) RevealOption {
	return func(c *revealConfig) {
		if d > 0 {
			c.interval = d
		}
	}
}

// WithChunkSize sets how many characters each tick reveals.
func WithChunkSize(n int) RevealOption {
	return func(c *revealConfig) {
		if n > 0 {
			c.chunk = n
		}
	}
}

// Reveal is a cancellable typewriter task. Successive prefixes of the
// text arrive on C; the channel closes once the full text has been
// emitted or the reveal is cancelled. The actual backend call is not
// streaming; this only paces the visual appearance of text that has
// already arrived.
//
// Callers own the handle: acquire a new Reveal when the source text
// changes and Cancel the previous one unconditionally, so no stale ticker
// ever races a newer text value.
type Reveal struct {
	// C carries successive display states of the text.
	C <-chan string

	cancel chan struct{}
	once   sync.Once
}

// NewReveal starts a reveal of text. With enabled=false the full text is
// emitted as the only value, still asynchronously so the caller never
// observes the emission inside its own call frame.
func NewReveal(text string, enabled bool, opts ...RevealOption) *Reveal {
	cfg := revealConfig{interval: DefaultRevealInterval, chunk: DefaultRevealChunk}
	for _, opt := range opts {
		opt(&cfg)
	}

	ch := make(chan string)
	r := &Reveal{C: ch, cancel: make(chan struct{})}
	go r.run(ch, text, enabled, cfg)
	return r
}

// Cancel stops the reveal and releases its ticker. Safe to call more
// than once and after completion.
func (r *Reveal) Cancel() {
	r.once.Do(func() { close(r.cancel) })
}

func (r *Reveal) run(ch chan<- string, text string, enabled bool, cfg revealConfig) {
	defer close(ch)

	if !enabled {
		r.emit(ch, text)
		return
	}
	if text == "" {
		return
	}

	// Chunks advance over characters, not bytes, so multi-byte runes are
	// never torn mid-sequence.
	runes := []rune(text)

	ticker := time.NewTicker(cfg.interval)
	defer ticker.Stop()

	cursor := 0
	for {
		select {
		case <-r.cancel:
			return
		case <-ticker.C:
			cursor += cfg.chunk
			if cursor >= len(runes) {
				r.emit(ch, text)
				return
			}
			if !r.emit(ch, string(runes[:cursor])) {
				return
			}
		}
	}
}

// emit sends one display state, giving up if the reveal is cancelled
// while the consumer is not reading.
func (r *Reveal) emit(ch chan<- string, s string) bool {
	select {
	case ch <- s:
		return true
	case <-r.cancel:
		return false
	}
}
