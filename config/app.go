package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment variable read by Load.
const EnvPrefix = "FEEDRANK"

// ServerConfig holds HTTP server options.
type ServerConfig struct {
	Port         string `mapstructure:"port"`
	Mode         string `mapstructure:"mode"` // gin mode: debug, release, test
	MaxBodyBytes int64  `mapstructure:"max_body_bytes"`
}

// LoggingConfig holds logger options.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`  // debug, info, warn, error
	Format string `mapstructure:"format"` // json, console
}

// ClassifyConfig configures the category source.
type ClassifyConfig struct {
	Seed uint64 `mapstructure:"seed"` // 0 seeds from the clock
}

// ChartConfig configures pie chart geometry.
type ChartConfig struct {
	Radius float64 `mapstructure:"radius"`
}

// AppConfig is the full process configuration.
type AppConfig struct {
	Server   ServerConfig   `mapstructure:"server"`
	Logging  LoggingConfig  `mapstructure:"logging"`
	Feed     FeedSettings   `mapstructure:"feed"`
	Classify ClassifyConfig `mapstructure:"classify"`
	Chart    ChartConfig    `mapstructure:"chart"`
}

// SetDefaults registers every key with its default so that environment
// variables are picked up by Unmarshal.
func SetDefaults(v *viper.Viper) {
	feed := DefaultFeedSettings()

	v.SetDefault("server.port", "8080")
	v.SetDefault("server.mode", "release")
	v.SetDefault("server.max_body_bytes", int64(1<<20))
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "json")
	v.SetDefault("feed.post_count", feed.PostCount)
	v.SetDefault("feed.priority_order", categoryStrings(feed.PriorityOrder))
	v.SetDefault("feed.hateful_categories", categoryStrings(feed.HatefulCategories))
	v.SetDefault("classify.seed", uint64(0))
	v.SetDefault("chart.radius", 100.0)
}

// Load reads configuration from defaults, an optional YAML file, and
// FEEDRANK_* environment variables, in increasing precedence. Flags bound to
// v by the caller take precedence over all of them.
// An empty cfgFile searches ./feedrank.yaml and tolerates its absence.
func Load(v *viper.Viper, cfgFile string) (*AppConfig, error) {
	SetDefaults(v)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.AddConfigPath(".")
		v.SetConfigName("feedrank")
		v.SetConfigType("yaml")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
		// Config file not found is OK, we'll use defaults
	}

	var cfg AppConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}

	cfg.Feed.ApplyDefaults()
	if problems := cfg.Feed.Validate(); len(problems) > 0 {
		return nil, fmt.Errorf("invalid feed settings: %s", strings.Join(problems, "; "))
	}

	if cfg.Chart.Radius <= 0 {
		return nil, fmt.Errorf("chart.radius must be positive, got %v", cfg.Chart.Radius)
	}

	return &cfg, nil
}

func categoryStrings[T ~string](in []T) []string {
	out := make([]string, len(in))
	for i, c := range in {
		out[i] = string(c)
	}
	return out
}
