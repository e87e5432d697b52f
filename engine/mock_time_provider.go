package engine

import (
	"time"
)

// MockTimeProvider provides a controllable time source for testing
// With a non-zero step every Now call advances the clock, simulating fixed frame pacing
type MockTimeProvider struct {
	currentTime time.Time
	step        time.Duration
}

// NewMockTimeProvider creates a new mock time provider with the given start time
func NewMockTimeProvider(startTime time.Time) *MockTimeProvider {
	return &MockTimeProvider{
		currentTime: startTime,
	}
}

// NewSteppingTimeProvider creates a mock that advances by step after each Now call
func NewSteppingTimeProvider(startTime time.Time, step time.Duration) *MockTimeProvider {
	return &MockTimeProvider{
		currentTime: startTime,
		step:        step,
	}
}

// Now returns the current mocked time, then applies the step if set
func (m *MockTimeProvider) Now() time.Time {
	now := m.currentTime
	m.currentTime = m.currentTime.Add(m.step)
	return now
}

// SetTime sets the current time for the mock
func (m *MockTimeProvider) SetTime(t time.Time) {
	m.currentTime = t
}

// Advance advances the current time by the given duration
func (m *MockTimeProvider) Advance(d time.Duration) {
	m.currentTime = m.currentTime.Add(d)
}
