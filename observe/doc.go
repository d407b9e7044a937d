// SPDX-License-Identifier: MIT

// Package observe provides ready-made triad.Observer implementations:
//
//   - Recorder collects every event in memory (tests, replay, rendering).
//   - LogObserver writes each event as a structured log record.
//   - Metrics counts attempts, outcomes and team transitions as Prometheus
//     collectors that can be scraped or exported to a textfile.
//   - Multi fans a single event stream out to several observers.
//
// Observers run synchronously inside the matcher's loop; none of them
// calls back into the Matcher.
package observe
