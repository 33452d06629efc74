// SPDX-License-Identifier: MIT

package socialnet

import "time"

// Clock hands out post creation keys. Successive calls must return strictly
// increasing values.
type Clock interface {
	Next() int64
}

// CounterClock is a Clock counting 1, 2, 3, ...
type CounterClock struct {
	last int64
}

// NewCounterClock returns a counter starting at 1.
func NewCounterClock() *CounterClock { return &CounterClock{} }

// Next returns the next counter value.
func (c *CounterClock) Next() int64 {
	c.last++
	return c.last
}

// MonotonicClock derives keys from wall-clock nanoseconds, bumping by one
// whenever the clock reading does not advance past the previous key.
type MonotonicClock struct {
	now  func() time.Time
	last int64
}

// NewMonotonicClock returns a Clock backed by time.Now.
func NewMonotonicClock() *MonotonicClock {
	return &MonotonicClock{now: time.Now}
}

// Next returns max(now, last+1).
func (c *MonotonicClock) Next() int64 {
	v := c.now().UnixNano()
	if v <= c.last {
		v = c.last + 1
	}
	c.last = v

	return v
}
