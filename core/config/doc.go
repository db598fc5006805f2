// Package config loads the application configuration.
//
// Values come from environment variables, optionally seeded from a .env file.
// Every field of the nested structs carries a `default` tag; LoadConfig walks
// them by reflection so each key is registered with Viper before the
// environment is consulted. Nested keys map to upper-case variables joined by
// underscores, so source.remote_url is read from SOURCE_REMOTE_URL.
//
// # Sections
//
//   - Server: port, API key and shutdown bound
//   - Source: tabular path or object, remote URL and timeout, merge precedence
//   - Export: default CSV destinations
//   - Storage: MinIO/S3 credentials and bucket
//   - Log: level and format
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    return err
//	}
package config
