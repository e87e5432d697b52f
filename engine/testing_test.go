package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// stubData is component data that counts releases
type stubData struct {
	kind     string
	released *int
}

func (p *stubData) Kind() string { return p.kind }

func (p *stubData) Release() {
	if p.released != nil {
		*p.released++
	}
}

var testEpoch = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

// newTestGame creates an initialized, uncapped headless game with a 16ms stepping clock
func newTestGame(t *testing.T, frames int) (*Game, *HeadlessPlatform) {
	t.Helper()
	p := NewHeadlessPlatform(frames)
	cfg := DefaultConfig()
	cfg.FrameRate = 0
	g, err := New(cfg,
		WithPlatform(p),
		WithClock(NewSteppingTimeProvider(testEpoch, 16*time.Millisecond)))
	require.NoError(t, err)
	t.Cleanup(g.Exit)
	return g, p
}

// recorder appends a label on every update it is attached to
func recorder(log *[]string, label string) UpdateFunc {
	return func(*Component, *Frame) { *log = append(*log, label) }
}
