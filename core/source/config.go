package source

import "time"

// DefaultRemoteURL is the restcountries endpoint restricted to the fields the
// loader reads.
const DefaultRemoteURL = "https://restcountries.com/v3.1/all?fields=name,population,area,region,continents"

// Config holds configuration for the record sources.
type Config struct {
	// TabularPath is the local CSV file.
	TabularPath string `mapstructure:"tabular_path" default:"countries.csv"`
	// TabularObject, when set and storage is enabled, reads the CSV from the storage bucket instead.
	TabularObject string `mapstructure:"tabular_object" default:""`
	// RemoteURL is the JSON endpoint.
	RemoteURL string `mapstructure:"remote_url" default:"https://restcountries.com/v3.1/all?fields=name,population,area,region,continents"`
	// RemoteEnabled toggles the remote source.
	RemoteEnabled bool `mapstructure:"remote_enabled" default:"true"`
	// TimeoutSeconds bounds the remote fetch.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"20"`
	// PreferTabular keeps the tabular record when both sources share a name.
	PreferTabular bool `mapstructure:"prefer_tabular" default:"true"`
}

// Timeout returns the remote fetch timeout, falling back to 20 seconds.
func (c Config) Timeout() time.Duration {
	if c.TimeoutSeconds <= 0 {
		return 20 * time.Second
	}
	return time.Duration(c.TimeoutSeconds) * time.Second
}
