// SPDX-License-Identifier: MIT

package suggest

import (
	"errors"
	"fmt"
	"sort"

	"github.com/katalvlaran/socialnet/core"
)

var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("suggest: graph is nil")

	// ErrInvalidTopN is returned when topN is not a positive integer.
	ErrInvalidTopN = errors.New("suggest: topN must be positive")
)

// Suggestion is one ranked candidate.
type Suggestion struct {
	User   core.UserID
	Mutual int // friends shared with the querying user
}

// Suggest returns up to topN users at distance two from user, ranked by
// mutual friend count descending, ties broken by ascending UserID.
func Suggest(g *core.Graph, user core.UserID, topN int) ([]Suggestion, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if topN <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidTopN, topN)
	}
	if !g.Valid(user) {
		return nil, fmt.Errorf("%w: %d", core.ErrUserNotFound, user)
	}

	friends := g.Neighbors(user)
	excluded := make(map[core.UserID]struct{}, len(friends)+1)
	excluded[user] = struct{}{}
	for _, f := range friends {
		excluded[f] = struct{}{}
	}

	mutual := make(map[core.UserID]int)
	for _, f := range friends {
		for _, c := range g.Neighbors(f) {
			if _, skip := excluded[c]; skip {
				continue
			}
			mutual[c]++
		}
	}

	out := make([]Suggestion, 0, len(mutual))
	for id, n := range mutual {
		out = append(out, Suggestion{User: id, Mutual: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Mutual != out[j].Mutual {
			return out[i].Mutual > out[j].Mutual
		}
		return out[i].User < out[j].User
	})
	if len(out) > topN {
		out = out[:topN]
	}

	return out, nil
}
