// Package config loads runtime configuration for the Tinylink CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  3. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-a string   base URL of the backend HTTP API
//	-i int      link list poll interval (seconds)
//	-d string   path to the local database file
//	-f string   log format: pretty or json
//
// # JSON schema
//
// The JSON loader uses timex.Duration for intervals, so values can be either
// strings like "5s" or integer nanoseconds:
//
//	{
//	  "server_endpoint_addr": "http://localhost:8080",
//	  "poll_interval": "5s",
//	  "database_path": "tinylink.db",
//	  "log_format": "pretty"
//	}
//
// Note: this package does not read environment variables directly; use the
// JSON file or flags to configure values.
package config
