package config

import (
	"reflect"
	"strings"

	"country-explorer/core/export"
	"country-explorer/core/logger"
	"country-explorer/core/server"
	"country-explorer/core/source"
	"country-explorer/core/storage"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application.
type Config struct {
	// Server holds configuration for the HTTP server.
	Server server.Config `mapstructure:"server"`
	// Source holds configuration for the tabular and remote record sources.
	Source source.Config `mapstructure:"source"`
	// Export holds the default CSV export destinations.
	Export export.Config `mapstructure:"export"`
	// Storage holds configuration for the optional object storage.
	Storage storage.Config `mapstructure:"storage"`
	// Log holds configuration for the logger.
	Log logger.Config `mapstructure:"log"`
}

// LoadConfig loads configuration from the environment, after overlaying the
// .env file found in path if there is one.
func LoadConfig(path string) (*Config, error) {
	envPath := ".env"
	if path != "." && path != "" {
		envPath = path + "/.env"
	}
	// A missing .env is normal outside development.
	_ = godotenv.Overload(envPath)

	v := viper.New()
	bindValues(v, Config{}, "")

	// SOURCE_REMOTE_URL -> source.remote_url
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, err
	}
	return &config, nil
}

// bindValues registers every mapstructure key with its `default` tag so that
// AutomaticEnv can resolve it.
func bindValues(v *viper.Viper, iface any, prefix string) {
	t := reflect.TypeOf(iface)
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		tag := field.Tag.Get("mapstructure")
		if tag == "" {
			continue
		}

		key := tag
		if prefix != "" {
			key = prefix + "." + tag
		}

		if field.Type.Kind() == reflect.Struct {
			bindValues(v, reflect.New(field.Type).Elem().Interface(), key)
			continue
		}

		v.SetDefault(key, field.Tag.Get("default"))
	}
}
