// SPDX-License-Identifier: MIT

// Package command is the text front end of the simulator: it splits input
// lines into commands, parses numeric arguments without panicking, calls the
// socialnet.Network, and renders each outcome as one or more output lines.
//
// Grammar (one command per line, tokens separated by whitespace):
//
//	ADD_USER <name>
//	ADD_FRIEND <name> <name>
//	LIST_FRIENDS <name>
//	SUGGEST_FRIENDS <name> <N>
//	DEGREES_OF_SEPARATION <name> <name>
//	ADD_POST <name> "<content>"
//	OUTPUT_POSTS <name> <N>
//
// Extra trailing tokens are ignored. Post content is everything between the
// first and the last double quote of the line. Usernames are matched
// case-insensitively and echoed back as typed.
//
// A failing command prints an "Error: ..." line and never stops the loop.
package command
