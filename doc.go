// Package triad is a stable-matching engine that partitions a population
// into teams of exactly three.
//
// Every individual ranks all others. Free individuals propose to pairs of
// candidates in their own order of preference; a proposal succeeds when both
// candidates prefer the new team to the one they are in, in which case their
// old teams dissolve and the three are seated together. The run stops when no
// free individual has a pair left to try.
//
// Layout:
//
//	preference/ - ranked orders, pair comparison, per-individual candidate queues
//	roster/     - slot-indexed team storage with atomic form/dissolve transitions
//	triad/      - the proposal protocol, the scheduler and the run loop (Matcher)
//	observe/    - event observers: recorder, structured logging, Prometheus metrics
//	cmd/triad   - command-line front end (trace, report, metrics export)
//
// Quick example:
//
//	m, err := triad.New(triad.WithPopulation(30), triad.WithSeed(42))
//	if err != nil { ... }
//	res, err := m.Run()
//	for slot, team := range res.Teams {
//		fmt.Println(slot, team)
//	}
//
// A Matcher is single-threaded and not safe for concurrent use.
//
//	go install github.com/katalvlaran/triad/cmd/triad@latest
package triad
