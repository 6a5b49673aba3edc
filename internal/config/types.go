package config

import "time"

// LogLevel is a logrus level name.
type LogLevel string

const (
	LogDebug LogLevel = "debug"
	LogInfo  LogLevel = "info"
	LogWarn  LogLevel = "warn"
	LogError LogLevel = "error"
)

// Config is the top-level oceanai configuration, corresponding to .oceanai.yml.
type Config struct {
	LogLevel  LogLevel        `yaml:"log_level" koanf:"log_level"`
	DataDir   string          `yaml:"data_dir" koanf:"data_dir"`
	Seed      uint64          `yaml:"seed" koanf:"seed"` // 0 seeds from the clock
	Server    ServerConfig    `yaml:"server" koanf:"server"`
	Charts    ChartsConfig    `yaml:"charts" koanf:"charts"`
	Intervals IntervalsConfig `yaml:"intervals" koanf:"intervals"`
	Chat      ChatConfig      `yaml:"chat" koanf:"chat"`
}

// ServerConfig holds HTTP settings.
type ServerConfig struct {
	Port            int      `yaml:"port" koanf:"port"`
	AllowAllOrigins bool     `yaml:"allow_all_origins" koanf:"allow_all_origins"`
	AllowedOrigins  []string `yaml:"allowed_origins" koanf:"allowed_origins"`
}

// ChartsConfig sizes the chart surfaces.
type ChartsConfig struct {
	Width   int     `yaml:"width" koanf:"width"`
	Height  int     `yaml:"height" koanf:"height"`
	Padding float64 `yaml:"padding" koanf:"padding"`
}

// IntervalsConfig holds the periods of every timer on the page.
type IntervalsConfig struct {
	Resample         time.Duration `yaml:"resample" koanf:"resample"`
	FactRotation     time.Duration `yaml:"fact_rotation" koanf:"fact_rotation"`
	GalleryRotation  time.Duration `yaml:"gallery_rotation" koanf:"gallery_rotation"`
	ParticleSpawn    time.Duration `yaml:"particle_spawn" koanf:"particle_spawn"`
	ParticleLifetime time.Duration `yaml:"particle_lifetime" koanf:"particle_lifetime"`
}

// ChatProvider selects who answers in the chat demo.
type ChatProvider string

const (
	ChatScripted ChatProvider = "scripted"
	ChatOpenAI   ChatProvider = "openai"
)

// ChatConfig holds the pacing and backend of the chat demo.
type ChatConfig struct {
	TypingDelay time.Duration `yaml:"typing_delay" koanf:"typing_delay"`
	ReplyDelay  time.Duration `yaml:"reply_delay" koanf:"reply_delay"`
	Provider    ChatProvider  `yaml:"provider" koanf:"provider"`
	Model       string        `yaml:"model,omitempty" koanf:"model"`
	BaseURL     string        `yaml:"base_url,omitempty" koanf:"base_url"`
}
