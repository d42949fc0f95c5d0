// Package cashbook implements a personal finance ledger: an in-memory
// store of income and expense transactions, a JSON persistence format,
// and pure aggregation functions deriving balances, monthly and yearly
// statistics, category breakdowns and daily trends from a transaction
// snapshot.
//
// The Ledger owns the canonical transaction set and announces every
// structural mutation to registered observers, synchronously and on the
// same call stack. Statistics functions never touch a Ledger: they
// consume a snapshot (usually Ledger.Transactions) and are pure.
//
// The package performs no locking. A Ledger is meant to be driven from
// a single logical thread of control; callers needing concurrent access
// must serialize it externally.
package cashbook
