package engine

import (
	"sync"
	"time"
)

// MockTimeProvider is a controllable clock for tests and headless runs
// With a non-zero step every Now call advances the clock by step after reading
type MockTimeProvider struct {
	mu          sync.RWMutex
	currentTime time.Time
	step        time.Duration
}

// NewMockTimeProvider creates a mock clock frozen at startTime
func NewMockTimeProvider(startTime time.Time) *MockTimeProvider {
	return &MockTimeProvider{
		currentTime: startTime,
	}
}

// NewSteppingTimeProvider creates a mock clock that ticks by step on each read
func NewSteppingTimeProvider(startTime time.Time, step time.Duration) *MockTimeProvider {
	return &MockTimeProvider{
		currentTime: startTime,
		step:        step,
	}
}

// Now returns the mocked time
func (m *MockTimeProvider) Now() time.Time {
	if m.step == 0 {
		m.mu.RLock()
		defer m.mu.RUnlock()
		return m.currentTime
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	now := m.currentTime
	m.currentTime = now.Add(m.step)
	return now
}

// SetTime jumps the clock to t
func (m *MockTimeProvider) SetTime(t time.Time) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.currentTime = t
}

// Advance moves the clock forward by d
func (m *MockTimeProvider) Advance(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.currentTime = m.currentTime.Add(d)
}
