// SPDX-License-Identifier: MIT

package postindex

import "fmt"

// CheckInvariants walks the whole tree and reports the first violation of
// BST ordering, cached heights, or the AVL balance bound.
func (ix *Index) CheckInvariants() error {
	_, err := ix.check(ix.root, nil, nil)
	return err
}

func (ix *Index) check(at int32, lo, hi *int64) (int32, error) {
	if at == nilNode {
		return 0, nil
	}
	n := ix.nodes[at]
	if lo != nil && n.post.Key <= *lo {
		return 0, fmt.Errorf("key %d not above lower bound %d", n.post.Key, *lo)
	}
	if hi != nil && n.post.Key >= *hi {
		return 0, fmt.Errorf("key %d not below upper bound %d", n.post.Key, *hi)
	}
	lh, err := ix.check(n.left, lo, &n.post.Key)
	if err != nil {
		return 0, err
	}
	rh, err := ix.check(n.right, &n.post.Key, hi)
	if err != nil {
		return 0, err
	}
	if d := lh - rh; d > 1 || d < -1 {
		return 0, fmt.Errorf("node %d unbalanced: left=%d right=%d", n.post.Key, lh, rh)
	}
	h := 1 + max(lh, rh)
	if h != n.height {
		return 0, fmt.Errorf("node %d cached height %d, actual %d", n.post.Key, n.height, h)
	}

	return h, nil
}
