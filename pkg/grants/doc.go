// Package grants persists event permission grants: one row giving one user
// one role on one event.
//
// The store enforces a single invariant shape at the write boundary: at most
// one grant per (user, event) pair. Upsert overwrites an existing row rather
// than adding a second one, and a later upsert fully replaces an earlier
// grant (last write wins — concurrent writers are not versioned).
//
// Two implementations are provided: MemoryStore for tests and single-process
// deployments, and PGStore backed by PostgreSQL via pgx. Both guarantee
// read-after-write consistency for a single (user, event) key, which the
// access resolver relies on so mutations take effect on the very next
// resolution.
package grants
