package quit

import (
	"sync"
	"time"

	"github.com/Oussamaberchi/Quickkt/internal"
)

// Ticker emits the current instant on a channel at a fixed period. It exists
// so the engine subscribes to ticks instead of owning a timer itself.
type Ticker struct {
	C    <-chan time.Time
	t    *time.Ticker
	stop chan struct{}
	once sync.Once
}

func NewTicker(period time.Duration) *Ticker {
	t := time.NewTicker(period)
	return &Ticker{C: t.C, t: t, stop: make(chan struct{})}
}

// Stop releases the underlying timer. Safe to call more than once.
func (tk *Ticker) Stop() {
	tk.once.Do(func() {
		tk.t.Stop()
		close(tk.stop)
	})
}

// SnapshotSource supplies the latest persisted profile and settings to the
// tick path. Implementations must be safe for concurrent reads; the tick path
// never mutates anything through it.
type SnapshotSource interface {
	CurrentProfile() *internal.Profile
	CurrentLanguage() string
}

// Engine recomputes the full StatsSnapshot on every tick and publishes the
// latest value. A pending coach request or storage write never blocks it;
// the engine reads a profile pointer and computes.
type Engine struct {
	source SnapshotSource
	ticker *Ticker
	logger internal.Logger

	mu     sync.RWMutex
	latest *StatsSnapshot

	done chan struct{}
	once sync.Once
}

func NewEngine(source SnapshotSource, ticker *Ticker, logger internal.Logger) *Engine {
	return &Engine{
		source: source,
		ticker: ticker,
		logger: logger,
		done:   make(chan struct{}),
	}
}

// Run consumes ticks until Stop is called. Call it on its own goroutine.
func (e *Engine) Run() {
	for {
		select {
		case now := <-e.ticker.C:
			e.evaluate(now)
		case <-e.done:
			return
		}
	}
}

// Stop unsubscribes from the ticker so no recurring timer leaks.
func (e *Engine) Stop() {
	e.once.Do(func() {
		close(e.done)
		e.ticker.Stop()
	})
}

func (e *Engine) evaluate(now time.Time) {
	p := e.source.CurrentProfile()
	if p == nil {
		e.mu.Lock()
		e.latest = nil
		e.mu.Unlock()
		return
	}
	snap := ComputeStats(now, p, e.source.CurrentLanguage())
	e.mu.Lock()
	e.latest = snap
	e.mu.Unlock()
}

// Latest returns the most recent snapshot, or nil when no profile is set or
// no tick has fired yet.
func (e *Engine) Latest() *StatsSnapshot {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.latest
}
