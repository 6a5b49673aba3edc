package config

import (
	"path/filepath"
	"time"
)

// DefaultPath is the config file looked up in the working directory.
const DefaultPath = ".oceanai.yml"

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		LogLevel: LogInfo,
		DataDir:  ".oceanai",
		Server: ServerConfig{
			Port: 8080,
		},
		Charts: ChartsConfig{
			Width:   600,
			Height:  300,
			Padding: 40,
		},
		Intervals: IntervalsConfig{
			Resample:         5 * time.Second,
			FactRotation:     10 * time.Second,
			GalleryRotation:  4 * time.Second,
			ParticleSpawn:    2 * time.Second,
			ParticleLifetime: 25 * time.Second,
		},
		Chat: ChatConfig{
			TypingDelay: 500 * time.Millisecond,
			ReplyDelay:  time.Second,
			Provider:    ChatScripted,
		},
	}
}

// OpenAIKeyEnvVar holds the API key of the openai chat provider. It is
// never written to the config file.
const OpenAIKeyEnvVar = "OPENAI_API_KEY"

// DBPath returns the SQLite database location inside the data directory.
func (c *Config) DBPath() string {
	return filepath.Join(c.DataDir, "oceanai.db")
}
