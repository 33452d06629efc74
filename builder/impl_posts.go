// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"

	"github.com/katalvlaran/socialnet/core"
	"github.com/katalvlaran/socialnet/socialnet"
)

const (
	methodPosts  = "Posts"
	minPostCount = 1
)

// PostContent is the text of the k-th post (0-based) generated for name.
func PostContent(name string, k int) string {
	return fmt.Sprintf("post %d by %s", k, name)
}

// Posts returns a Constructor that adds perUser posts to every user already
// registered, round-robin: post 0 of every user, then post 1, and so on.
// Post bodies come from PostContent, so after lower-casing they stay unique.
func Posts(perUser int) Constructor {
	return func(net *socialnet.Network, _ builderConfig) error {
		if perUser < minPostCount {
			return fmt.Errorf("%s: perUser=%d < min=%d: %w", methodPosts, perUser, minPostCount, ErrTooFewUsers)
		}
		users := net.Stats().Users
		for k := 0; k < perUser; k++ {
			for u := 0; u < users; u++ {
				id := core.UserID(u)
				if err := net.AddPost(id, PostContent(net.DisplayName(id), k)); err != nil {
					return fmt.Errorf("%s: AddPost(%d): %w: %w", methodPosts, u, ErrConstructFailed, err)
				}
			}
		}

		return nil
	}
}
