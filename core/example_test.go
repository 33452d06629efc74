// SPDX-License-Identifier: MIT

package core_test

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/socialnet/core"
)

// ExampleGraph demonstrates registration, case-insensitive lookup and friendships.
func ExampleGraph() {
	g := core.NewGraph()
	alice, _ := g.RegisterUser("Alice")
	bob, _ := g.RegisterUser("Bob")
	carol, _ := g.RegisterUser("Carol")

	_, err := g.RegisterUser("alice")
	fmt.Println("register alice again:", err)

	_ = g.AddFriendship(alice, carol)
	_ = g.AddFriendship(alice, bob)
	fmt.Println("self:", g.AddFriendship(bob, bob))
	fmt.Println("again:", g.AddFriendship(bob, alice))

	id, _ := g.Resolve("ALICE")
	names := []string{}
	for _, f := range g.Neighbors(id) {
		names = append(names, g.DisplayName(f))
	}
	sort.Strings(names)
	fmt.Println("friends of", g.DisplayName(id), names)
	// Output:
	// register alice again: core: user already exists
	// self: core: self-friendship not allowed
	// again: core: friendship already exists
	// friends of Alice [Bob Carol]
}
