// SPDX-License-Identifier: MIT

// Package triad partitions a population of N individuals (N a multiple of 3)
// into N/3 teams of three with an iterative proposal/acceptance process, a
// generalization of stable matching from pairs to triads.
//
// Overview:
//
//   - Every individual ranks all others (preference.Model) and derives a
//     ranked queue of candidate pairs from that ranking.
//   - The driver repeatedly picks the lowest-id individual that is free and
//     still has untried pairs, and lets it propose its next pair (a,b).
//   - a must accept the arrangement (b,p) and b must accept (a,p). An
//     individual accepts when it is free, when its team is not complete, or
//     when it ranks the proposed pair strictly above its current teammates.
//   - On mutual acceptance the teams of a and b are dissolved and (p,a,b) is
//     seated in the first open slot. On rejection nothing changes.
//   - The run stops at the fixed point where no free individual has an
//     untried pair left.
//
// Termination:
//
//   - Each queue only shrinks and every attempt pops exactly one pair, so a run
//     makes at most Σ len(queue_i) = N·C(N-1,2) attempts. Run enforces this
//     bound and reports ErrNoProgress should it ever be exceeded.
//
// Error handling (sentinel errors):
//
//   - ErrPopulationMismatch: WithPopulation disagrees with WithPreferences.
//   - ErrNotEligible:        Propose for an individual that is seated or exhausted.
//   - ErrProposalLimit:      WithMaxProposals cap reached before the fixed point.
//   - ErrNoProgress:         attempt bound exceeded (defect signal).
//   - ErrAborted:            the matcher hit a fatal error earlier and refuses to continue.
//   - Fatal defects from below (roster.ErrBadState, roster.ErrNoOpenSlot,
//     preference.ErrUnknownPreference) abort the run and are returned wrapped.
//
// Events:
//
//   - Every attempt, formation and dissolution is reported to an Observer as a
//     structured Event. Rendering and logging live outside this package.
//
// Thread safety:
//
//   - A Matcher is single-threaded and not safe for concurrent use.
//
// Example:
//
//	m, err := triad.New(triad.WithPopulation(30), triad.WithSeed(7))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	res, err := m.Run()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(res.Proposals, res.Teams)
package triad
