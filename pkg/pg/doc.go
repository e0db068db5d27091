// Package pg wires up the PostgreSQL layer backing the grant store: a
// pgx/v5 connection pool with startup retry, schema migrations through
// goose, a health check closure for readiness probes, and helpers for
// classifying common pgx errors.
//
// Configuration comes from environment variables via the Config struct;
// see the field tags for variable names and defaults.
//
// Typical bootstrap:
//
//	var cfg pg.Config
//	config.MustLoad(&cfg)
//
//	pool, err := pg.Connect(ctx, cfg)
//	if err != nil {
//	    return err
//	}
//	defer pool.Close()
//
//	if err := pg.Migrate(ctx, pool, cfg, slog.Default()); err != nil {
//	    return err
//	}
package pg
