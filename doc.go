// Package eventkit provides the building blocks for event-scoped access
// control in attendant scheduling applications: a fixed event role
// hierarchy, a grant store with in-memory and PostgreSQL backends, and a
// resolver that combines the global administrator override with per-event
// grants into one effective permission per request.
//
// The packages under pkg/ are independent and composed by the consuming
// application:
//
//   - pkg/roles — the closed role set, its total order and grant scopes
//   - pkg/grants — permission grant persistence (memory and PostgreSQL)
//   - pkg/access — permission resolution, capability checks, grant
//     mutations and chi route protection
//   - pkg/pg — PostgreSQL pool, migrations and error classification
//   - pkg/config — environment-based configuration loading
//   - pkg/logger — slog factory with context attribute extraction
package eventkit
