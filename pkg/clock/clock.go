// Package clock is the time source of the contract host.
package clock

import (
	"sync"
	"time"
)

type Clock interface {
	Now() time.Time

	// UnixMilli returns the current timestamp in milliseconds, the unit used by
	// every contract.
	UnixMilli() uint64
}

type systemClock struct{}

func NewSystemClock() Clock {
	return systemClock{}
}

func (systemClock) Now() time.Time {
	return time.Now()
}

func (systemClock) UnixMilli() uint64 {
	return uint64(time.Now().UnixMilli())
}

// MockClock only moves when told to.
type MockClock struct {
	mutex   sync.Mutex
	current time.Time
}

func NewMockClock(initial time.Time) *MockClock {
	return &MockClock{current: initial}
}

func (c *MockClock) Now() time.Time {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	return c.current
}

func (c *MockClock) UnixMilli() uint64 {
	return uint64(c.Now().UnixMilli())
}

func (c *MockClock) Advance(d time.Duration) {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	c.current = c.current.Add(d)
}

func (c *MockClock) Set(t time.Time) {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	c.current = t
}
