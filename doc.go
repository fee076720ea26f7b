// Package watchlist provides the types and logic for tracking financial
// instruments (stocks, crypto, FX pairs) against a personal start/target
// price range. It is designed to be local-first: the whole state lives in a
// plain-file store directory that the user owns and can read, diff or back
// up.
//
// The core functionalities include:
//   - Tracker Management: A list of user-defined trackers, each pairing a
//     symbol with a start price and a target price, and carrying the last
//     fetched live price state.
//   - Price Ingestion: A batched quote lookup over a generative AI search
//     endpoint, with layered parsing so a sloppy model response degrades per
//     symbol instead of failing the whole batch.
//   - Reconciliation: Merging quote batches back into tracker state with a
//     single-slot refresh gate and a time-based staleness policy.
//   - Data Persistence: Encoding and decoding tracker state to and from
//     human-readable formats (JSONL for the store, indented JSON for
//     import/export).
//
// This package serves as the foundational logic for the `wl` command-line
// tool.
package watchlist
