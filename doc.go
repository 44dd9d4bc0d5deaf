// Package wealthsense implements a single-user personal finance ledger.
//
// The ledger holds accounts, transactions, bills, recurring templates and
// goals as in-memory collections, and derives every aggregate view (net
// worth, monthly spend, budget progress) by recomputation. State persists
// in a local key/value store, and the whole ledger round-trips through a
// single JSON backup document. An optional PIN gates entry and export.
package wealthsense
