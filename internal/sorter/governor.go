package sorter

import (
	"context"
	"sync"

	"golang.org/x/time/rate"

	"ordina/internal/application"
)

// Governor enforces the run's cost ceilings: one shared AI-call counter
// for title and content calls combined, a per-file byte ceiling checked
// before download, and text truncation before prompt construction. It is
// shared by all workers, so the counter is guarded.
type Governor struct {
	mu       sync.Mutex
	calls    int
	maxCalls int
	maxBytes int64
	textMax  int
	limiter  *rate.Limiter // nil when no per-minute rate is configured
}

// NewGovernor builds a governor. callsPerMinute <= 0 disables rate
// limiting; maxBytes < 0 disables the size ceiling.
func NewGovernor(maxCalls int, maxBytes int64, textMax, callsPerMinute int) *Governor {
	g := &Governor{maxCalls: maxCalls, maxBytes: maxBytes, textMax: textMax}
	if callsPerMinute > 0 {
		g.limiter = rate.NewLimiter(rate.Limit(float64(callsPerMinute)/60.0), 1)
	}
	return g
}

// ReserveAICall claims one AI call slot, waiting on the rate limiter if
// one is configured. Returns a LimitError once the ceiling is reached;
// the slot is released again if the wait is cancelled.
func (g *Governor) ReserveAICall(ctx context.Context) error {
	g.mu.Lock()
	if g.calls >= g.maxCalls {
		g.mu.Unlock()
		return &application.LimitError{Limit: "ai_calls"}
	}
	g.calls++
	g.mu.Unlock()

	if g.limiter != nil {
		if err := g.limiter.Wait(ctx); err != nil {
			g.mu.Lock()
			g.calls--
			g.mu.Unlock()
			return err
		}
	}
	return nil
}

// Calls reports how many AI calls have been reserved so far.
func (g *Governor) Calls() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.calls
}

// CheckSize rejects files over the byte ceiling before they are
// downloaded.
func (g *Governor) CheckSize(size int64) error {
	if g.maxBytes >= 0 && size > g.maxBytes {
		return &application.LimitError{Limit: "file_bytes"}
	}
	return nil
}

// Truncate caps extracted text at the configured rune count. Truncation,
// not rejection: an oversized extraction still yields a usable prompt.
func (g *Governor) Truncate(text string) string {
	if g.textMax <= 0 {
		return text
	}
	runes := []rune(text)
	if len(runes) <= g.textMax {
		return text
	}
	return string(runes[:g.textMax])
}
