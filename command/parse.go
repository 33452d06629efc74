// SPDX-License-Identifier: MIT

package command

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Command names.
const (
	AddUser             = "ADD_USER"
	AddFriend           = "ADD_FRIEND"
	ListFriends         = "LIST_FRIENDS"
	SuggestFriends      = "SUGGEST_FRIENDS"
	DegreesOfSeparation = "DEGREES_OF_SEPARATION"
	AddPost             = "ADD_POST"
	OutputPosts         = "OUTPUT_POSTS"
)

// arity is the number of positional arguments each command needs.
// ADD_POST takes a username token plus quoted content.
var arity = map[string]int{
	AddUser:             1,
	AddFriend:           2,
	ListFriends:         1,
	SuggestFriends:      2,
	DegreesOfSeparation: 2,
	AddPost:             1,
	OutputPosts:         2,
}

// Parse errors.
var (
	ErrEmptyLine      = errors.New("command: empty line")
	ErrUnknownCommand = errors.New("command: unknown command")
	ErrNumberSyntax   = errors.New("command: invalid number")
	ErrNumberRange    = errors.New("command: number out of range")
)

// SyntaxError reports missing arguments (or missing quotes for ADD_POST).
type SyntaxError struct {
	Command string
	Detail  string // optional hint, e.g. "Content must be in quotes."
}

func (e *SyntaxError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("command: invalid syntax for %s: %s", e.Command, e.Detail)
	}

	return "command: invalid syntax for " + e.Command
}

// Label is the human form of a command name ("ADD_USER" → "ADD USER").
func Label(name string) string { return strings.ReplaceAll(name, "_", " ") }

// Command is one parsed input line.
type Command struct {
	Name string
	// Args holds the positional arguments; for ADD_POST, Args[1] is the
	// unquoted content.
	Args []string
}

// Parse splits line into a Command.
func Parse(line string) (Command, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return Command{}, ErrEmptyLine
	}
	name := fields[0]
	want, ok := arity[name]
	if !ok {
		return Command{Name: name}, fmt.Errorf("%w: %q", ErrUnknownCommand, name)
	}

	args := fields[1:]
	if name == AddPost {
		return parsePost(line, args)
	}
	if len(args) < want {
		return Command{Name: name}, &SyntaxError{Command: name}
	}

	return Command{Name: name, Args: args[:want]}, nil
}

func parsePost(line string, args []string) (Command, error) {
	first := strings.IndexByte(line, '"')
	last := strings.LastIndexByte(line, '"')
	if len(args) == 0 || first < 0 || first >= last {
		return Command{Name: AddPost}, &SyntaxError{Command: AddPost, Detail: "Content must be in quotes."}
	}

	return Command{Name: AddPost, Args: []string{args[0], line[first+1 : last]}}, nil
}

// ParseCount parses a base-10 count in the 32-bit signed range.
// Non-numeric input yields ErrNumberSyntax, overflow yields ErrNumberRange.
func ParseCount(s string) (int, error) {
	v, err := strconv.ParseInt(s, 10, 32)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return 0, fmt.Errorf("%w: %q", ErrNumberRange, s)
		}
		return 0, fmt.Errorf("%w: %q", ErrNumberSyntax, s)
	}

	return int(v), nil
}
