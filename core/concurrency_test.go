// SPDX-License-Identifier: MIT
// Package core_test verifies that friendship insertion stays atomic under concurrent readers.
package core_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/socialnet/core"
)

// TestConcurrentAddFriendship adds a star of friendships from many goroutines
// while readers check that no half-edge is ever visible on its own.
func TestConcurrentAddFriendship(t *testing.T) {
	const num = 200
	g := core.NewGraph(core.WithCapacity(num + 1))
	hub, err := g.RegisterUser("hub")
	require.NoError(t, err)
	spokes := make([]core.UserID, num)
	for i := range spokes {
		spokes[i], err = g.RegisterUser(fmt.Sprintf("u%d", i))
		require.NoError(t, err)
	}

	var wg sync.WaitGroup
	errs := make(chan error, num)
	broken := make(chan core.UserID, num)
	wg.Add(2 * num)
	for i := 0; i < num; i++ {
		go func(id core.UserID) {
			defer wg.Done()
			errs <- g.AddFriendship(hub, id)
		}(spokes[i])

		go func(id core.UserID) {
			defer wg.Done()
			// if the spoke sees the hub, the hub must already see the spoke
			for _, f := range g.Neighbors(id) {
				if f == hub && !g.AreFriends(hub, id) {
					broken <- id
				}
			}
		}(spokes[i])
	}
	wg.Wait()
	close(errs)
	close(broken)

	for e := range errs {
		require.NoError(t, e)
	}
	require.Empty(t, broken)
	require.Len(t, g.Neighbors(hub), num)
	require.Equal(t, num, g.FriendshipCount())
}
