// SPDX-License-Identifier: MIT

package command_test

import (
	"io"
	"testing"

	"github.com/katalvlaran/socialnet/builder"
	"github.com/katalvlaran/socialnet/command"
)

func BenchmarkExecutor_Execute(b *testing.B) {
	n, err := builder.BuildNetwork(nil, nil, builder.CompleteBipartite(50, 50), builder.Posts(5))
	if err != nil {
		b.Fatal(err)
	}
	ex := command.NewExecutor(n, io.Discard)
	lines := []string{
		"SUGGEST_FRIENDS user0 5",
		"DEGREES_OF_SEPARATION user0 user99",
		"OUTPUT_POSTS user3 -1",
		"LIST_FRIENDS user60",
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		ex.Execute(lines[i%len(lines)])
	}
}
