package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/sirupsen/logrus"
	yamlv3 "gopkg.in/yaml.v3"
)

// EnvPrefix marks environment overrides.
const EnvPrefix = "OCEANAI_"

// Load reads configuration from the given YAML file, then overlays
// environment variable overrides (OCEANAI_*).
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	// Start from defaults.
	cfg := DefaultConfig()

	// Load YAML file if it exists.
	if _, err := os.Stat(path); err == nil {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("accessing config %s: %w", path, err)
	}

	// Overlay environment variables: OCEANAI_SERVER__PORT -> server.port, etc.
	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("loading env overrides: %w", err)
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	return cfg, nil
}

// envKey maps an environment variable name to a config key. A double
// underscore separates nesting levels so keys may contain single ones.
func envKey(s string) string {
	s = strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	return strings.ReplaceAll(s, "__", ".")
}

// Save writes the configuration to the given YAML file path.
func (c *Config) Save(path string) error {
	data, err := yamlv3.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config to %s: %w", path, err)
	}
	return nil
}

// validLogLevels is the set of recognized log_level values.
var validLogLevels = map[LogLevel]bool{
	LogDebug: true,
	LogInfo:  true,
	LogWarn:  true,
	LogError: true,
}

// Validate checks that the configuration contains valid values.
func (c *Config) Validate() error {
	if c.LogLevel != "" && !validLogLevels[c.LogLevel] {
		return fmt.Errorf("invalid log_level %q: must be one of debug, info, warn, error", c.LogLevel)
	}

	if c.DataDir == "" {
		return fmt.Errorf("data_dir is required")
	}

	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be between 1 and 65535, got %d", c.Server.Port)
	}

	if c.Charts.Width <= 0 || c.Charts.Height <= 0 {
		return fmt.Errorf("charts.width and charts.height must be positive")
	}
	if c.Charts.Padding < 0 {
		return fmt.Errorf("charts.padding must be non-negative")
	}
	if 2*c.Charts.Padding >= float64(c.Charts.Width) || 2*c.Charts.Padding >= float64(c.Charts.Height) {
		return fmt.Errorf("charts.padding %.0f leaves no drawable area in %dx%d", c.Charts.Padding, c.Charts.Width, c.Charts.Height)
	}

	intervals := map[string]time.Duration{
		"intervals.resample":          c.Intervals.Resample,
		"intervals.fact_rotation":     c.Intervals.FactRotation,
		"intervals.gallery_rotation":  c.Intervals.GalleryRotation,
		"intervals.particle_spawn":    c.Intervals.ParticleSpawn,
		"intervals.particle_lifetime": c.Intervals.ParticleLifetime,
		"chat.typing_delay":           c.Chat.TypingDelay,
		"chat.reply_delay":            c.Chat.ReplyDelay,
	}
	for name, d := range intervals {
		if d <= 0 {
			return fmt.Errorf("%s must be positive", name)
		}
	}

	if c.Chat.TypingDelay > c.Chat.ReplyDelay {
		return fmt.Errorf("chat.typing_delay must not exceed chat.reply_delay")
	}
	switch c.Chat.Provider {
	case "", ChatScripted, ChatOpenAI:
	default:
		return fmt.Errorf("invalid chat.provider %q: must be scripted or openai", c.Chat.Provider)
	}

	return nil
}

// Level returns the logrus level for LogLevel, defaulting to info.
func (c *Config) Level() logrus.Level {
	lvl, err := logrus.ParseLevel(string(c.LogLevel))
	if err != nil {
		return logrus.InfoLevel
	}
	return lvl
}
