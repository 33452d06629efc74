// SPDX-License-Identifier: MIT

package command

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"

	"go.uber.org/zap"

	"github.com/katalvlaran/socialnet/metrics"
	"github.com/katalvlaran/socialnet/socialnet"
)

// maxLineBytes bounds a single input line (long posts included).
const maxLineBytes = 1 << 20

// Option configures an Executor.
type Option func(*Executor)

// WithLogger sets the logger for per-command traces. Defaults to zap.NewNop.
func WithLogger(l *zap.Logger) Option {
	return func(e *Executor) {
		if l != nil {
			e.log = l
		}
	}
}

// WithRecorder counts commands and tracks network sizes in r.
func WithRecorder(r *metrics.Recorder) Option {
	return func(e *Executor) { e.rec = r }
}

// Executor runs text commands against one Network and writes the replies to out.
type Executor struct {
	net *socialnet.Network
	out io.Writer
	log *zap.Logger
	rec *metrics.Recorder

	werr error // first write error, surfaced by Run
}

// NewExecutor returns an Executor bound to net and out.
func NewExecutor(net *socialnet.Network, out io.Writer, opts ...Option) *Executor {
	e := &Executor{net: net, out: out, log: zap.NewNop()}
	for _, opt := range opts {
		opt(e)
	}

	return e
}

// Run executes every non-blank line of r in order. It returns a read or
// write error; command failures are printed and never stop the loop.
func (e *Executor) Run(r io.Reader) error {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	for sc.Scan() {
		line := strings.TrimRight(sc.Text(), "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		e.Execute(line)
		if e.werr != nil {
			return fmt.Errorf("command: write output: %w", e.werr)
		}
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("command: read input: %w", err)
	}

	return nil
}

// Execute runs a single line.
func (e *Executor) Execute(line string) {
	cmd, err := Parse(line)
	if err != nil {
		e.renderParseError(err)
		e.done(cmd.Name, metrics.OutcomeInvalid, err)
		return
	}

	var outcome string
	switch cmd.Name {
	case AddUser:
		outcome, err = e.addUser(cmd.Args[0])
	case AddFriend:
		outcome, err = e.addFriend(cmd.Args[0], cmd.Args[1])
	case ListFriends:
		outcome, err = e.listFriends(cmd.Args[0])
	case SuggestFriends:
		outcome, err = e.suggestFriends(cmd.Args[0], cmd.Args[1])
	case DegreesOfSeparation:
		outcome, err = e.degrees(cmd.Args[0], cmd.Args[1])
	case AddPost:
		outcome, err = e.addPost(cmd.Args[0], cmd.Args[1])
	case OutputPosts:
		outcome, err = e.outputPosts(cmd.Args[0], cmd.Args[1])
	}
	e.done(cmd.Name, outcome, err)
}

func (e *Executor) renderParseError(err error) {
	var syn *SyntaxError
	switch {
	case errors.As(err, &syn) && syn.Detail != "":
		e.println("Error: Invalid syntax for %s. %s", Label(syn.Command), syn.Detail)
	case errors.As(err, &syn):
		e.println("Error: Invalid syntax for %s.", Label(syn.Command))
	default:
		e.println("Error: Unknown command.")
	}
}

func (e *Executor) addUser(name string) (string, error) {
	if _, err := e.net.RegisterUser(name); err != nil {
		e.println("Error: User %s already exists.", name)
		return metrics.OutcomeRejected, err
	}
	e.println("User %s added.", name)

	return metrics.OutcomeOK, nil
}

func (e *Executor) addFriend(a, b string) (string, error) {
	idA, errA := e.net.ResolveUser(a)
	idB, errB := e.net.ResolveUser(b)
	if err := errors.Join(errA, errB); err != nil {
		e.println("Error: One or both users do not exist.")
		return metrics.OutcomeRejected, err
	}

	err := e.net.AddFriendship(idA, idB)
	switch {
	case err == nil:
		e.println("Friendship added between %s and %s.", a, b)
		return metrics.OutcomeOK, nil
	case errors.Is(err, socialnet.ErrSelfFriendship):
		e.println("Error: Cannot add yourself as a friend.")
	case errors.Is(err, socialnet.ErrDuplicateFriendship):
		e.println("Error: Friendship already exists.")
	default:
		e.println("Error: One or both users do not exist.")
	}

	return metrics.OutcomeRejected, err
}

func (e *Executor) listFriends(name string) (string, error) {
	id, err := e.net.ResolveUser(name)
	if err != nil {
		e.println("Error: User %s does not exist.", name)
		return metrics.OutcomeRejected, err
	}
	friends, err := e.net.ListFriends(id)
	if err != nil {
		e.println("Error: User %s does not exist.", name)
		return metrics.OutcomeRejected, err
	}
	if len(friends) == 0 {
		e.println("%s has no friends.", name)
		return metrics.OutcomeOK, nil
	}

	sort.Strings(friends)
	e.println("Friends of %s:", name)
	for _, f := range friends {
		e.println("%s", f)
	}

	return metrics.OutcomeOK, nil
}

func (e *Executor) suggestFriends(name, rawN string) (string, error) {
	id, err := e.net.ResolveUser(name)
	if err != nil {
		e.println("Error: User %s does not exist.", name)
		return metrics.OutcomeRejected, err
	}
	n, err := e.count(SuggestFriends, rawN)
	if err != nil {
		return metrics.OutcomeInvalid, err
	}
	if n <= 0 {
		e.println("Error: N must be a positive number.")
		return metrics.OutcomeInvalid, fmt.Errorf("%w: N=%d", socialnet.ErrInvalidArgument, n)
	}

	list, err := e.net.SuggestFriends(id, n)
	if err != nil {
		e.println("Error: User %s does not exist.", name)
		return metrics.OutcomeRejected, err
	}
	if len(list) == 0 {
		e.println("No friend suggestions for %s.", name)
		return metrics.OutcomeOK, nil
	}

	e.println("Friend suggestions for %s:", name)
	for _, s := range list {
		e.println("%s (Mutual friends: %d)", s.Name, s.Mutual)
	}

	return metrics.OutcomeOK, nil
}

func (e *Executor) degrees(a, b string) (string, error) {
	idA, errA := e.net.ResolveUser(a)
	idB, errB := e.net.ResolveUser(b)
	if err := errors.Join(errA, errB); err != nil {
		e.println("Error: One or both users do not exist.")
		return metrics.OutcomeRejected, err
	}

	d, err := e.net.DegreesOfSeparation(idA, idB)
	if err != nil {
		e.println("Error: One or both users do not exist.")
		return metrics.OutcomeRejected, err
	}
	if d == socialnet.Unreachable {
		e.println("Degrees of separation: -1 (No path found)")
		return metrics.OutcomeOK, nil
	}
	e.println("Degrees of separation: %d", d)
	if ce := e.log.Check(zap.DebugLevel, "separation path"); ce != nil {
		if path, err := e.net.SeparationPath(idA, idB); err == nil {
			ce.Write(zap.Strings("path", path))
		}
	}

	return metrics.OutcomeOK, nil
}

func (e *Executor) addPost(name, content string) (string, error) {
	id, err := e.net.ResolveUser(name)
	if err == nil {
		err = e.net.AddPost(id, content)
	}
	if err != nil {
		e.println("Error: User %s does not exist.", name)
		return metrics.OutcomeRejected, err
	}
	e.println("Post added by %s.", name)

	return metrics.OutcomeOK, nil
}

func (e *Executor) outputPosts(name, rawN string) (string, error) {
	id, err := e.net.ResolveUser(name)
	if err != nil {
		e.println("Error: User %s does not exist.", name)
		return metrics.OutcomeRejected, err
	}
	n, err := e.count(OutputPosts, rawN)
	if err != nil {
		return metrics.OutcomeInvalid, err
	}

	posts, err := e.net.RecentPosts(id, n)
	switch {
	case errors.Is(err, socialnet.ErrInvalidArgument):
		e.println("Error: N must be a positive number or -1.")
		return metrics.OutcomeInvalid, err
	case err != nil:
		e.println("Error: User %s does not exist.", name)
		return metrics.OutcomeRejected, err
	}
	if len(posts) == 0 {
		e.println("No posts by %s.", name)
		return metrics.OutcomeOK, nil
	}

	e.println("Posts by %s:", name)
	for _, p := range posts {
		e.println("%s", p)
	}

	return metrics.OutcomeOK, nil
}

// count parses a numeric argument and prints the matching error message.
func (e *Executor) count(cmd, raw string) (int, error) {
	n, err := ParseCount(raw)
	switch {
	case errors.Is(err, ErrNumberRange):
		e.println("Error: Number out of range for %s.", Label(cmd))
	case err != nil:
		e.println("Error: Invalid number argument for %s.", Label(cmd))
	}

	return n, err
}

// done logs and records the outcome of one command.
func (e *Executor) done(name, outcome string, err error) {
	if name == "" {
		name = "unknown"
	} else if _, known := arity[name]; !known {
		// keep label cardinality bounded
		name = "unknown"
	}
	if err != nil {
		e.log.Info("command failed", zap.String("command", name), zap.String("outcome", outcome), zap.Error(err))
	} else {
		e.log.Debug("command done", zap.String("command", name))
	}

	e.rec.Command(name, outcome)
	st := e.net.Stats()
	e.rec.Sizes(st.Users, st.Friendships, st.Posts)
}

func (e *Executor) println(format string, args ...any) {
	if e.werr != nil {
		return
	}
	if _, err := fmt.Fprintf(e.out, format+"\n", args...); err != nil {
		e.werr = err
	}
}
