// Package config loads application configuration from environment variables
// into tagged structs, with an optional .env file picked up once per process.
//
//	type AppConfig struct {
//	    Port int    `env:"PORT" envDefault:"8080"`
//	    DSN  string `env:"PG_CONN_URL,required"`
//	}
//
//	var cfg AppConfig
//	if err := config.Load(&cfg); err != nil {
//	    return err
//	}
//
// MustLoad panics on failure for configuration the process cannot start
// without.
package config
