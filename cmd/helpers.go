package cmd

import (
	"context"
	"fmt"
	"math/rand/v2"
	"os"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/ziadkadry99/oceanai/internal/chart"
	"github.com/ziadkadry99/oceanai/internal/chat"
	"github.com/ziadkadry99/oceanai/internal/config"
	"github.com/ziadkadry99/oceanai/internal/facts"
	"github.com/ziadkadry99/oceanai/internal/monitor"
	"github.com/ziadkadry99/oceanai/internal/ocean"
)

// Random streams. Each consumer draws from its own PCG stream so a fixed
// seed reproduces every one of them independently.
const (
	streamSampler uint64 = iota + 1
	streamFacts
	streamParticles
	streamChat
)

// loadConfig loads and validates the config, providing a user-friendly error.
// It also applies the configured log level.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w\nRun `oceanai init` to create a config file", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", cfgFile, err)
	}
	if verbose {
		logrus.SetLevel(logrus.DebugLevel)
	} else {
		logrus.SetLevel(cfg.Level())
	}
	return cfg, nil
}

// newSource returns the random source of one stream. A zero seed is
// replaced by the clock.
func newSource(seed, stream uint64) rand.Source {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return rand.NewPCG(seed, stream)
}

// buildMonitor creates the chart surfaces and the monitor drawing into
// them, with the initial windows already rendered.
func buildMonitor(cfg *config.Config) (*monitor.Monitor, error) {
	board := chart.NewBoard()
	if err := monitor.AddSurfaces(board, cfg.Charts.Width, cfg.Charts.Height); err != nil {
		return nil, fmt.Errorf("creating chart surfaces: %w", err)
	}
	renderer := chart.NewRenderer(board, chart.WithPadding(cfg.Charts.Padding))
	sampler := ocean.NewSampler(newSource(cfg.Seed, streamSampler))

	mon := monitor.New(monitor.Config{Interval: cfg.Intervals.Resample}, ocean.NewStore(), sampler, renderer)
	mon.RenderAll()
	return mon, nil
}

// buildIndex embeds the facts and gallery captions for search.
func buildIndex(ctx context.Context) (*facts.Index, error) {
	idx, err := facts.NewIndex(ctx, facts.Facts, facts.Gallery)
	if err != nil {
		return nil, fmt.Errorf("building fact index: %w", err)
	}
	return idx, nil
}

// buildAnswerer returns the chat backend selected by chat.provider. The
// openai provider without an API key falls back to the canned replies.
func buildAnswerer(cfg *config.Config) chat.Answerer {
	responder := chat.NewResponder(newSource(cfg.Seed, streamChat))
	if cfg.Chat.Provider != config.ChatOpenAI {
		return responder
	}
	apiKey := os.Getenv(config.OpenAIKeyEnvVar)
	if apiKey == "" {
		logrus.Warnf("%s is not set, chat uses canned replies", config.OpenAIKeyEnvVar)
		return responder
	}
	return chat.NewAssistant(chat.AssistantConfig{
		APIKey:  apiKey,
		BaseURL: cfg.Chat.BaseURL,
		Model:   cfg.Chat.Model,
	}, responder)
}
