package cli

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/viper"

	"github.com/coregx/condex"
)

// Config is the command-line configuration, read from a config file, CONDEX_*
// environment variables and flags, in increasing order of precedence.
type Config struct {
	// Categories maps a category name to its patterns. Viper folds keys to lower case.
	Categories map[string][]string `mapstructure:"categories"`

	Parallelism       int  `mapstructure:"parallelism"`
	ParallelThreshold int  `mapstructure:"parallel_threshold"`
	Prefilter         bool `mapstructure:"prefilter"`

	// Spans prints byte offsets instead of resolved substrings.
	Spans bool `mapstructure:"spans"`

	// LogLevel is one of DEBUG, INFO, WARN, ERROR.
	LogLevel string `mapstructure:"log_level"`
}

// SetDefaults registers default values for every key.
func SetDefaults(v *viper.Viper) {
	d := condex.DefaultConfig()
	v.SetDefault("parallelism", d.Parallelism)
	v.SetDefault("parallel_threshold", d.ParallelThreshold)
	v.SetDefault("prefilter", d.EnablePrefilter)
	v.SetDefault("spans", false)
	v.SetDefault("log_level", LevelWarn)
}

// Load reads the configuration file, if any, and decodes the merged settings.
// A missing file at one of the default locations is not an error; a missing file
// named explicitly is.
func Load(v *viper.Viper, file string) (*Config, error) {
	SetDefaults(v)

	if file != "" {
		v.SetConfigFile(file)
	} else {
		v.SetConfigName("condex")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/condex")
	}

	v.SetEnvPrefix("CONDEX")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if file != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	return &cfg, nil
}

// AddPatterns merges "category=pattern" specs into the category table.
func (c *Config) AddPatterns(specs []string) error {
	for _, spec := range specs {
		name, src, ok := strings.Cut(spec, "=")
		name = strings.TrimSpace(name)
		if !ok || name == "" {
			return fmt.Errorf("invalid pattern %q: want category=pattern", spec)
		}
		if c.Categories == nil {
			c.Categories = make(map[string][]string)
		}
		c.Categories[name] = append(c.Categories[name], src)
	}
	return nil
}

// MatcherConfig converts the settings into a library configuration.
func (c *Config) MatcherConfig() condex.Config {
	return condex.Config{
		Parallelism:       c.Parallelism,
		ParallelThreshold: c.ParallelThreshold,
		EnablePrefilter:   c.Prefilter,
	}
}

// CategoryNames returns the category names in sorted order.
func (c *Config) CategoryNames() []string {
	names := make([]string, 0, len(c.Categories))
	for name := range c.Categories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
