// Package models defines the core domain models for the splitkaro backend.
//
// Models are plain value types; relationships are expressed through ID
// strings rather than pointers to avoid circular references. All monetary
// amounts are int64 minor currency units (paisa) — never floats — so balance
// arithmetic is exact.
//
// The main entities:
//   - User: registered account (email + password auth)
//   - Group: a set of member user IDs that share expenses
//   - Expense: who paid what and how the total was split
//   - Settlement: a real-world payment between two members, with a
//     pending/confirmed/rejected lifecycle
package models
