// Package catalog provides SQLite-backed storage for completed spectrum
// runs.
//
// A run row carries the UUIDv7 run token, the tomography mode, the matrix
// shape, and the canonical-JSON parameter record that produced it; spectrum
// rows carry one (multipole index, column, ell, value) entry each. Tokens
// are time-ordered, so listing by token is listing by creation time.
//
// # Critical patterns
//
// Writes are idempotent: re-writing a run token is a no-op, never a
// partial overwrite. Reads are deterministic: spectrum rows always come
// back ordered by multipole index then column, which is exactly the
// dispatcher's evaluation order.
//
// # Database configuration
//
//   - WAL mode: concurrent reads during writes
//   - synchronous=NORMAL: balance durability/performance
//   - busy_timeout=5000: wait for locks up to 5 seconds
//   - foreign_keys=ON: spectrum rows cannot outlive their run
package catalog
