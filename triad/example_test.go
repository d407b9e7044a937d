// Package triad_test provides runnable examples of the matching engine.
package triad_test

import (
	"fmt"

	"github.com/katalvlaran/triad/triad"
)

// ExampleMatcher_Run partitions six individuals who all rank the others by id.
// Individual 0 immediately seats its favourite pair; 3 is turned down by the
// settled team until it pairs with the two remaining free individuals.
func ExampleMatcher_Run() {
	orders := [][]int{
		{1, 2, 3, 4, 5},
		{0, 2, 3, 4, 5},
		{0, 1, 3, 4, 5},
		{0, 1, 2, 4, 5},
		{0, 1, 2, 3, 5},
		{0, 1, 2, 3, 4},
	}
	m, err := triad.New(triad.WithPreferences(orders))
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	res, err := m.Run()
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for slot, team := range res.Teams {
		fmt.Printf("team %d: %v\n", slot, team)
	}
	fmt.Println("proposals:", res.Proposals)
	// Output:
	// team 0: [0 1 2]
	// team 1: [3 4 5]
	// proposals: 11
}

// ExampleObserverFunc traces each attempt of a three-person run.
func ExampleObserverFunc() {
	trace := triad.ObserverFunc(func(e triad.Event) {
		switch e.Kind {
		case triad.ProposalAttempted:
			fmt.Printf("%d proposes %s accepted=%t\n", e.Proposer, e.Pair, e.Accepted())
		case triad.TeamFormed:
			fmt.Printf("slot %d seated %v\n", e.Slot, e.Members)
		}
	})
	m, _ := triad.New(triad.WithPreferences([][]int{{2, 1}, {0, 2}, {1, 0}}), triad.WithObserver(trace))
	_, _ = m.Run()
	// Output:
	// 0 proposes (2,1) accepted=true
	// slot 0 seated [0 2 1]
}
