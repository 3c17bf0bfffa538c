// Package clock abstracts time.Now so time-sensitive commands can be tested
// at a fixed instant.
package clock

import "time"

type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func NewRealClock() Clock {
	return systemClock{}
}

func (systemClock) Now() time.Time {
	return time.Now()
}

// MockClock stands still until moved with Set or Add.
type MockClock struct {
	now time.Time
}

func NewMockClock(t time.Time) *MockClock {
	return &MockClock{now: t}
}

func (c *MockClock) Now() time.Time {
	return c.now
}

func (c *MockClock) Set(t time.Time) {
	c.now = t
}

func (c *MockClock) Add(d time.Duration) {
	c.now = c.now.Add(d)
}
