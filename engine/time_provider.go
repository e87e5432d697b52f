package engine

import "time"

// TimeProvider is the frame time source
type TimeProvider interface {
	Now() time.Time
}

// MonotonicTimeProvider provides the real system time with monotonic clock readings
type MonotonicTimeProvider struct{}

// NewMonotonicTimeProvider creates a new monotonic time provider
func NewMonotonicTimeProvider() *MonotonicTimeProvider {
	return &MonotonicTimeProvider{}
}

// Now returns the current time with monotonic clock reading
func (p *MonotonicTimeProvider) Now() time.Time {
	return time.Now()
}

// ElapsedSecondsSince returns seconds elapsed between t and the provider's now
func ElapsedSecondsSince(tp TimeProvider, t time.Time) float32 {
	return float32(tp.Now().Sub(t).Seconds())
}
