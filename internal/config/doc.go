// Package config loads and validates application configuration.
//
// Configuration is layered: an optional YAML file named by the
// CONFIG_FILE environment variable is read first, environment
// variables override file values, and defaults fill anything left
// unset. File values may reference environment variables with
// ${VAR} or ${VAR:-default} syntax.
//
//	cfg, err := config.Load()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if err := cfg.Validate(); err != nil {
//	    log.Fatal(err)
//	}
package config
