package export

// Config holds configuration for CSV exports.
type Config struct {
	// Path is the default local destination.
	Path string `mapstructure:"path" default:"export.csv"`
	// Object, when set and storage is enabled, uploads exports to the bucket under this name.
	Object string `mapstructure:"object" default:""`
}
