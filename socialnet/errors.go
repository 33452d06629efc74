// SPDX-License-Identifier: MIT

package socialnet

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/socialnet/bfs"
	"github.com/katalvlaran/socialnet/core"
	"github.com/katalvlaran/socialnet/suggest"
)

// Error kinds returned by Network operations.
var (
	// ErrDuplicateUser is returned when a username is already taken, in any casing.
	ErrDuplicateUser = errors.New("socialnet: user already exists")

	// ErrInvalidUser is returned for an unknown username or identifier, or an empty name.
	ErrInvalidUser = errors.New("socialnet: invalid user")

	// ErrSelfFriendship is returned when a user is asked to befriend themselves.
	ErrSelfFriendship = errors.New("socialnet: cannot befriend oneself")

	// ErrDuplicateFriendship is returned when the two users are already friends.
	ErrDuplicateFriendship = errors.New("socialnet: friendship already exists")

	// ErrInvalidArgument is returned for a count outside its accepted range.
	ErrInvalidArgument = errors.New("socialnet: invalid argument")
)

// Unreachable is the separation reported for users with no connecting path.
const Unreachable = bfs.Unreachable

// classify wraps an engine error with its Network error kind. Both the kind
// and the original sentinel stay visible to errors.Is.
func classify(err error) error {
	var kind error
	switch {
	case err == nil:
		return nil
	case errors.Is(err, core.ErrDuplicateUser):
		kind = ErrDuplicateUser
	case errors.Is(err, core.ErrUserNotFound), errors.Is(err, core.ErrEmptyUsername):
		kind = ErrInvalidUser
	case errors.Is(err, core.ErrSelfFriendship):
		kind = ErrSelfFriendship
	case errors.Is(err, core.ErrDuplicateFriendship):
		kind = ErrDuplicateFriendship
	case errors.Is(err, suggest.ErrInvalidTopN), errors.Is(err, bfs.ErrOptionViolation):
		kind = ErrInvalidArgument
	default:
		return err
	}

	return fmt.Errorf("%w: %w", kind, err)
}
