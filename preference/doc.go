// SPDX-License-Identifier: MIT

// Package preference models how a single individual ranks everybody else
// and, derived from that, every unordered pair of partners it could team up with.
//
// Overview:
//
//   - An Order is a strict total ranking of the other N-1 individuals.
//     Ties are impossible by construction: orders come from a uniform shuffle
//     (see Shuffled / Generate) or are supplied verbatim by the caller.
//
//   - The candidate queue is the C(N-1,2) pairs of others, ranked
//     lexicographically by (rank of first, rank of second). The single
//     most-preferred partner dominates and the second partner breaks ties.
//     The queue is consumed front-to-back and never refilled.
//
//   - Prefers compares two optional individuals; None always loses against a
//     present individual, and two absent individuals yield NoPreference.
//
// For example:
//
//	p : a > b > c > d
//	p : (a,b) > (a,c) > (a,d) > (b,c) > (b,d) > (c,d)
//
// Complexity:
//
//   - NewModel: O(N²) time and space (the queue itself is C(N-1,2) pairs).
//   - Prefers, Canonical, Outranks: O(1) via a dense rank index.
//   - Pop, Peek, Len: O(1).
//
// Error handling (sentinel errors):
//
//   - ErrBadPopulation:     population is not a positive multiple of three.
//   - ErrEmptyOrder:        an order with fewer than two entries.
//   - ErrSelfReference:     an order lists its own owner.
//   - ErrOutOfRange:        an order lists an id outside [0, N).
//   - ErrDuplicate:         an order lists the same id twice.
//   - ErrNilSource:         Shuffled/Generate called without a Source.
//   - ErrUnknownPreference: a comparison that cannot be resolved; for orders
//     built by this package this signals a defect and is never expected.
//
// Thread safety:
//
//   - A Model is not safe for concurrent mutation (Pop). Concurrent read-only
//     use of Prefers/Outranks is fine once construction has finished.
package preference
