// SPDX-License-Identifier: MIT

package socialnet

import (
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/katalvlaran/socialnet/bfs"
	"github.com/katalvlaran/socialnet/core"
	"github.com/katalvlaran/socialnet/postindex"
	"github.com/katalvlaran/socialnet/suggest"
)

// Option configures a Network.
type Option func(*Network)

// WithLogger sets the logger used for mutation traces. Defaults to zap.NewNop.
func WithLogger(l *zap.Logger) Option {
	return func(n *Network) {
		if l != nil {
			n.log = l
		}
	}
}

// WithClock sets the source of post creation keys. Defaults to a CounterClock.
func WithClock(c Clock) Option {
	return func(n *Network) {
		if c != nil {
			n.clock = c
		}
	}
}

// Suggestion is a ranked friend suggestion, resolved to a display name.
type Suggestion struct {
	User   core.UserID
	Name   string
	Mutual int
}

// Stats is a point-in-time size summary of a Network.
type Stats struct {
	Users       int
	Friendships int
	Posts       int
}

// Network is the running simulator state.
// posts[id] is the post index of user id; len(posts) == graph.UserCount().
type Network struct {
	graph     *core.Graph
	posts     []*postindex.Index
	postCount int

	clock Clock
	log   *zap.Logger
}

// New returns an empty Network.
func New(opts ...Option) *Network {
	n := &Network{
		graph: core.NewGraph(),
		clock: NewCounterClock(),
		log:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(n)
	}

	return n
}

// GraphView is the read-only face of a Network's friendship graph.
type GraphView interface {
	UserCount() int
	AreFriends(u, v core.UserID) bool
	DisplayName(id core.UserID) string
	// Neighbors returns a copy of u's friends in insertion order, nil for an unknown u.
	Neighbors(u core.UserID) []core.UserID
}

// graphView hides the mutating methods of *core.Graph.
type graphView struct{ g *core.Graph }

func (v graphView) UserCount() int                    { return v.g.UserCount() }
func (v graphView) AreFriends(a, b core.UserID) bool  { return v.g.AreFriends(a, b) }
func (v graphView) DisplayName(id core.UserID) string { return v.g.DisplayName(id) }

func (v graphView) Neighbors(u core.UserID) []core.UserID {
	friends, err := v.g.Friends(u)
	if err != nil {
		return nil
	}

	return friends
}

// Graph exposes the friendship graph for read-only queries.
func (n *Network) Graph() GraphView { return graphView{g: n.graph} }

// RegisterUser adds a user under displayName and creates its empty post index.
func (n *Network) RegisterUser(displayName string) (core.UserID, error) {
	id, err := n.graph.RegisterUser(displayName)
	if err != nil {
		return core.NoUser, classify(err)
	}
	n.posts = append(n.posts, postindex.New())
	n.log.Debug("user registered", zap.Int("id", int(id)), zap.String("name", displayName))

	return id, nil
}

// ResolveUser maps a username (any casing) to its identifier.
func (n *Network) ResolveUser(name string) (core.UserID, error) {
	id, err := n.graph.Resolve(name)
	if err != nil {
		return core.NoUser, classify(err)
	}

	return id, nil
}

// DisplayName returns the registered spelling of id, or "" if id is invalid.
func (n *Network) DisplayName(id core.UserID) string { return n.graph.DisplayName(id) }

// AddFriendship makes a and b friends.
func (n *Network) AddFriendship(a, b core.UserID) error {
	if err := n.graph.AddFriendship(a, b); err != nil {
		return classify(err)
	}
	n.log.Debug("friendship added", zap.Int("a", int(a)), zap.Int("b", int(b)))

	return nil
}

// ListFriends returns the display names of id's friends in the order the
// friendships were made. Presentation order is the caller's choice.
func (n *Network) ListFriends(id core.UserID) ([]string, error) {
	friends, err := n.graph.Friends(id)
	if err != nil {
		return nil, classify(err)
	}
	names := make([]string, 0, len(friends))
	for _, f := range friends {
		names = append(names, n.graph.DisplayName(f))
	}

	return names, nil
}

// SuggestFriends returns up to topN friend-of-friend candidates for id,
// most mutual friends first, ties by identifier.
func (n *Network) SuggestFriends(id core.UserID, topN int) ([]Suggestion, error) {
	if topN <= 0 {
		return nil, fmt.Errorf("%w: topN must be positive, got %d", ErrInvalidArgument, topN)
	}
	ranked, err := suggest.Suggest(n.graph, id, topN)
	if err != nil {
		return nil, classify(err)
	}
	out := make([]Suggestion, 0, len(ranked))
	for _, s := range ranked {
		out = append(out, Suggestion{User: s.User, Name: n.graph.DisplayName(s.User), Mutual: s.Mutual})
	}

	return out, nil
}

// DegreesOfSeparation returns the hop count between a and b, 0 when a == b,
// or Unreachable (with a nil error) when no path exists.
func (n *Network) DegreesOfSeparation(a, b core.UserID) (int, error) {
	d, err := bfs.Distance(n.graph, a, b)
	if err != nil {
		return Unreachable, classify(err)
	}

	return d, nil
}

// errReached stops a walk once the destination has been visited.
var errReached = errors.New("socialnet: destination reached")

// SeparationPath returns the display names along one shortest friendship
// path from a to b, both ends included. It returns nil with a nil error when
// b cannot be reached from a.
func (n *Network) SeparationPath(a, b core.UserID) ([]string, error) {
	if !n.graph.Valid(b) {
		return nil, classify(fmt.Errorf("%w: %d", core.ErrUserNotFound, b))
	}
	res, err := bfs.BFS(n.graph, a, bfs.WithOnVisit(func(id core.UserID, _ int) error {
		if id == b {
			return errReached
		}
		return nil
	}))
	if err != nil && !errors.Is(err, errReached) {
		return nil, classify(err)
	}
	ids, err := res.PathTo(b)
	if err != nil {
		return nil, nil
	}
	names := make([]string, len(ids))
	for i, id := range ids {
		names[i] = n.graph.DisplayName(id)
	}

	return names, nil
}

// AddPost stores content (lower-cased) on id's timeline under the next
// creation key. A key collision keeps the earlier post and is not an error.
func (n *Network) AddPost(id core.UserID, content string) error {
	timeline, err := n.timeline(id)
	if err != nil {
		return err
	}
	key := n.clock.Next()
	if !timeline.Insert(key, strings.ToLower(content)) {
		n.log.Debug("post dropped on creation key collision", zap.Int("user", int(id)), zap.Int64("key", key))
		return nil
	}
	n.postCount++
	n.log.Debug("post added", zap.Int("user", int(id)), zap.Int64("key", key))

	return nil
}

// RecentPosts returns the content of id's newest posts, newest first.
// count must be positive, or postindex.Unbounded (-1) for all posts.
func (n *Network) RecentPosts(id core.UserID, count int) ([]string, error) {
	if count == 0 || count < postindex.Unbounded {
		return nil, fmt.Errorf("%w: count must be positive or %d, got %d", ErrInvalidArgument, postindex.Unbounded, count)
	}
	timeline, err := n.timeline(id)
	if err != nil {
		return nil, err
	}
	posts := timeline.MostRecent(count)
	out := make([]string, len(posts))
	for i, p := range posts {
		out[i] = p.Content
	}

	return out, nil
}

// timeline returns the post index of id. A user the graph knows but the
// Network never registered has no timeline and is reported as invalid.
func (n *Network) timeline(id core.UserID) (*postindex.Index, error) {
	if !n.graph.Valid(id) || int(id) >= len(n.posts) {
		return nil, fmt.Errorf("%w: %w: %d", ErrInvalidUser, core.ErrUserNotFound, id)
	}

	return n.posts[id], nil
}

// Stats reports the current number of users, friendships and stored posts.
func (n *Network) Stats() Stats {
	return Stats{
		Users:       n.graph.UserCount(),
		Friendships: n.graph.FriendshipCount(),
		Posts:       n.postCount,
	}
}
