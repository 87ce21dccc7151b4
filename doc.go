// Package ledger provides the core of a local-first personal finance
// ledger. It holds five record collections (assets, cards, fixed expenses,
// receivables, transactions), persists them durably after every mutation,
// and derives monthly and all-time financial analytics from them.
//
// The core functionalities include:
//   - Ledger Store: owning the collections and the active month, with
//     add/delete/toggle operations that synchronously rewrite the full
//     durable snapshot on every change.
//   - Migration Engine: recovering a user's data across the superseded
//     storage schemas, scanning a fixed priority list of legacy keys and
//     committing the first readable snapshot under the current key.
//   - Analytics: monthly totals and balance, plus all-time evolution,
//     owner ranking and top-expense statistics, computed with exact
//     decimal arithmetic.
//   - Backup: export and import of the full snapshot as a single
//     human-readable json file.
//
// This package serves as the foundational logic for the `mf` command-line
// tool, ensuring that all operations are consistent and based on a single
// source of truth.
package ledger
