// SPDX-License-Identifier: MIT

package command_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/katalvlaran/socialnet/command"
	"github.com/katalvlaran/socialnet/metrics"
	"github.com/katalvlaran/socialnet/socialnet"
)

// run feeds script to a fresh Executor and returns the printed lines.
func run(t *testing.T, script string, opts ...command.Option) []string {
	t.Helper()
	var out bytes.Buffer
	ex := command.NewExecutor(socialnet.New(), &out, opts...)
	require.NoError(t, ex.Run(strings.NewReader(script)))

	return strings.Split(strings.TrimSuffix(out.String(), "\n"), "\n")
}

func TestExecutor_Users(t *testing.T) {
	got := run(t, `
ADD_USER Alice
ADD_USER alice
ADD_USER
LIST_FRIENDS ALICE
LIST_FRIENDS bob
`)
	require.Equal(t, []string{
		"User Alice added.",
		"Error: User alice already exists.",
		"Error: Invalid syntax for ADD USER.",
		"ALICE has no friends.",
		"Error: User bob does not exist.",
	}, got)
}

func TestExecutor_Friendships(t *testing.T) {
	got := run(t, `ADD_USER Alice
ADD_USER Bob
ADD_USER Carol
ADD_FRIEND alice BOB
ADD_FRIEND Bob Alice
ADD_FRIEND Alice alice
ADD_FRIEND Alice Zed
ADD_FRIEND Alice
ADD_FRIEND Carol Alice
LIST_FRIENDS alice
`)
	require.Equal(t, []string{
		"User Alice added.",
		"User Bob added.",
		"User Carol added.",
		"Friendship added between alice and BOB.",
		"Error: Friendship already exists.",
		"Error: Cannot add yourself as a friend.",
		"Error: One or both users do not exist.",
		"Error: Invalid syntax for ADD FRIEND.",
		"Friendship added between Carol and Alice.",
		"Friends of alice:",
		"Bob",
		"Carol",
	}, got)
}

func TestExecutor_ListFriendsSorted(t *testing.T) {
	got := run(t, `ADD_USER hub
ADD_USER zoe
ADD_USER Mia
ADD_USER adam
ADD_FRIEND hub zoe
ADD_FRIEND hub Mia
ADD_FRIEND hub adam
LIST_FRIENDS hub
`)
	// byte order: upper case sorts before lower case
	require.Equal(t, []string{"Friends of hub:", "Mia", "adam", "zoe"}, got[len(got)-4:])
}

func TestExecutor_SuggestFriends(t *testing.T) {
	setup := `ADD_USER A
ADD_USER B
ADD_USER C
ADD_USER D
ADD_USER E
ADD_FRIEND A B
ADD_FRIEND A C
ADD_FRIEND B D
ADD_FRIEND C D
ADD_FRIEND C E
`
	got := run(t, setup+`SUGGEST_FRIENDS a 5
SUGGEST_FRIENDS A 1
SUGGEST_FRIENDS E 0
SUGGEST_FRIENDS E -3
SUGGEST_FRIENDS E x
SUGGEST_FRIENDS E 99999999999
SUGGEST_FRIENDS Zed 2
SUGGEST_FRIENDS A
`)
	require.Equal(t, []string{
		"Friend suggestions for a:",
		"D (Mutual friends: 2)",
		"E (Mutual friends: 1)",
		"Friend suggestions for A:",
		"D (Mutual friends: 2)",
		"Error: N must be a positive number.",
		"Error: N must be a positive number.",
		"Error: Invalid number argument for SUGGEST FRIENDS.",
		"Error: Number out of range for SUGGEST FRIENDS.",
		"Error: User Zed does not exist.",
		"Error: Invalid syntax for SUGGEST FRIENDS.",
	}, got[10:])

	got = run(t, "ADD_USER Solo\nSUGGEST_FRIENDS solo 3\n")
	require.Equal(t, []string{"User Solo added.", "No friend suggestions for solo."}, got)
}

func TestExecutor_DegreesOfSeparation(t *testing.T) {
	got := run(t, `ADD_USER A
ADD_USER B
ADD_USER C
ADD_USER D
ADD_FRIEND A B
ADD_FRIEND B C
DEGREES_OF_SEPARATION A C
DEGREES_OF_SEPARATION c a
DEGREES_OF_SEPARATION A A
DEGREES_OF_SEPARATION A D
DEGREES_OF_SEPARATION A Zed
DEGREES_OF_SEPARATION A
`)
	require.Equal(t, []string{
		"Degrees of separation: 2",
		"Degrees of separation: 2",
		"Degrees of separation: 0",
		"Degrees of separation: -1 (No path found)",
		"Error: One or both users do not exist.",
		"Error: Invalid syntax for DEGREES OF SEPARATION.",
	}, got[6:])
}

func TestExecutor_Posts(t *testing.T) {
	got := run(t, `ADD_USER Alice
OUTPUT_POSTS alice -1
ADD_POST alice "Hello World"
ADD_POST Alice "Second Post"
ADD_POST alice "Third"
ADD_POST alice no quotes
ADD_POST Zed "x"
OUTPUT_POSTS ALICE 2
OUTPUT_POSTS alice -1
OUTPUT_POSTS alice 10
OUTPUT_POSTS alice 0
OUTPUT_POSTS alice -2
OUTPUT_POSTS alice many
OUTPUT_POSTS alice 3000000000
OUTPUT_POSTS Zed 1
`)
	require.Equal(t, []string{
		"User Alice added.",
		"No posts by alice.",
		"Post added by alice.",
		"Post added by Alice.",
		"Post added by alice.",
		"Error: Invalid syntax for ADD POST. Content must be in quotes.",
		"Error: User Zed does not exist.",
		"Posts by ALICE:",
		"third",
		"second post",
		"Posts by alice:",
		"third",
		"second post",
		"hello world",
		"Posts by alice:",
		"third",
		"second post",
		"hello world",
		"Error: N must be a positive number or -1.",
		"Error: N must be a positive number or -1.",
		"Error: Invalid number argument for OUTPUT POSTS.",
		"Error: Number out of range for OUTPUT POSTS.",
		"Error: User Zed does not exist.",
	}, got)
}

func TestExecutor_UnknownAndBlank(t *testing.T) {
	got := run(t, "\n   \nHELLO world\nadd_user x\r\nADD_USER Crlf\r\n")
	require.Equal(t, []string{
		"Error: Unknown command.",
		"Error: Unknown command.",
		"User Crlf added.",
	}, got)
}

func TestExecutor_Metrics(t *testing.T) {
	rec := metrics.NewRecorder("")
	run(t, `ADD_USER a
ADD_USER b
ADD_USER a
ADD_FRIEND a b
ADD_POST a "p"
NOPE
SUGGEST_FRIENDS a x
`, command.WithRecorder(rec))

	expected := `
# HELP socialnet_commands_total Commands processed, by command name and outcome.
# TYPE socialnet_commands_total counter
socialnet_commands_total{command="ADD_FRIEND",outcome="ok"} 1
socialnet_commands_total{command="ADD_POST",outcome="ok"} 1
socialnet_commands_total{command="ADD_USER",outcome="ok"} 2
socialnet_commands_total{command="ADD_USER",outcome="rejected"} 1
socialnet_commands_total{command="SUGGEST_FRIENDS",outcome="invalid"} 1
socialnet_commands_total{command="unknown",outcome="invalid"} 1
# HELP socialnet_friendships Friendships (undirected edges).
# TYPE socialnet_friendships gauge
socialnet_friendships 1
# HELP socialnet_posts Stored posts across all users.
# TYPE socialnet_posts gauge
socialnet_posts 1
# HELP socialnet_users Registered users.
# TYPE socialnet_users gauge
socialnet_users 2
`
	require.NoError(t, testutil.GatherAndCompare(rec.Registry(), strings.NewReader(expected)))
}

func TestExecutor_LogsFailures(t *testing.T) {
	obsCore, logs := observer.New(zapcore.InfoLevel)
	run(t, "ADD_USER a\nADD_USER A\n", command.WithLogger(zap.New(obsCore)))

	entries := logs.FilterMessage("command failed").All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	require.Equal(t, command.AddUser, fields["command"])
	require.Equal(t, metrics.OutcomeRejected, fields["outcome"])
}

type failingWriter struct{}

var errSink = errors.New("sink closed")

func (failingWriter) Write([]byte) (int, error) { return 0, errSink }

func TestExecutor_LogsSeparationPath(t *testing.T) {
	obsCore, logs := observer.New(zapcore.DebugLevel)
	run(t, "ADD_USER a\nADD_USER b\nADD_USER c\nADD_FRIEND a b\nADD_FRIEND b c\nDEGREES_OF_SEPARATION A c\n",
		command.WithLogger(zap.New(obsCore)))

	entries := logs.FilterMessage("separation path").All()
	require.Len(t, entries, 1)
	require.Equal(t, []any{"a", "b", "c"}, entries[0].ContextMap()["path"])
}

func TestExecutor_RunWriteError(t *testing.T) {
	ex := command.NewExecutor(socialnet.New(), failingWriter{})
	err := ex.Run(strings.NewReader("ADD_USER a\nADD_USER b\n"))
	require.ErrorIs(t, err, errSink)
}
