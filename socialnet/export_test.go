// SPDX-License-Identifier: MIT

package socialnet

import (
	"time"

	"github.com/katalvlaran/socialnet/core"
)

// NewMonotonicClockAt returns a MonotonicClock reading now instead of time.Now.
func NewMonotonicClockAt(now func() time.Time) *MonotonicClock {
	return &MonotonicClock{now: now}
}

// RegisterGraphOnly adds name to the graph without creating its timeline.
func RegisterGraphOnly(n *Network, name string) (core.UserID, error) {
	return n.graph.RegisterUser(name)
}
