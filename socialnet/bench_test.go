// SPDX-License-Identifier: MIT

package socialnet_test

import (
	"testing"

	"github.com/katalvlaran/socialnet/builder"
	"github.com/katalvlaran/socialnet/socialnet"
)

func benchNetwork(b *testing.B) *socialnet.Network {
	b.Helper()
	n, err := builder.BuildNetwork(nil,
		[]builder.BuilderOption{builder.WithSeed(42)},
		builder.RandomSparse(2000, 0.004),
		builder.Posts(20),
	)
	if err != nil {
		b.Fatal(err)
	}
	return n
}

func BenchmarkNetwork_SuggestFriends(b *testing.B) {
	n := benchNetwork(b)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := n.SuggestFriends(0, 10); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkNetwork_DegreesOfSeparation(b *testing.B) {
	n := benchNetwork(b)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := n.DegreesOfSeparation(0, 1999); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkNetwork_RecentPosts(b *testing.B) {
	n := benchNetwork(b)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := n.RecentPosts(7, 5); err != nil {
			b.Fatal(err)
		}
	}
}
