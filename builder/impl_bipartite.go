// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"

	"github.com/katalvlaran/socialnet/socialnet"
)

const (
	methodCompleteBipartite = "CompleteBipartite"
	minPartition            = 1
)

// CompleteBipartite returns a Constructor for K_{n1,n2}: users 0..n1-1 form
// the left side, n1..n1+n2-1 the right, and every left user befriends every
// right user. Within a side nobody is friends, so any two same-side users
// share all users of the other side as mutual friends.
//
// Complexity: O(n1+n2) users + O(n1*n2) friendships.
func CompleteBipartite(n1, n2 int) Constructor {
	return func(net *socialnet.Network, cfg builderConfig) error {
		if n1 < minPartition || n2 < minPartition {
			return fmt.Errorf("%s: n1=%d, n2=%d < min=%d: %w",
				methodCompleteBipartite, n1, n2, minPartition, ErrTooFewUsers)
		}
		left, err := ensureUsers(net, cfg, methodCompleteBipartite, 0, n1)
		if err != nil {
			return err
		}
		right, err := ensureUsers(net, cfg, methodCompleteBipartite, n1, n2)
		if err != nil {
			return err
		}
		for _, u := range left {
			for _, v := range right {
				if err = befriend(net, methodCompleteBipartite, u, v); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
