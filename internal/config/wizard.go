package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/manifoldco/promptui"
)

// RunWizard runs an interactive configuration wizard and returns the
// resulting Config. It also saves the config to .oceanai.yml.
func RunWizard() (*Config, error) {
	fmt.Println("Welcome to oceanai! Let's configure the site.")
	fmt.Println()

	cfg := DefaultConfig()

	// 1. Port.
	portPrompt := promptui.Prompt{
		Label:    "HTTP port",
		Default:  strconv.Itoa(cfg.Server.Port),
		Validate: validatePort,
	}
	portStr, err := portPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("port: %w", err)
	}
	cfg.Server.Port, _ = strconv.Atoi(portStr)

	// 2. Log level.
	levelPrompt := promptui.Select{
		Label: "Select log level",
		Items: []string{
			"info  - startup and request logs",
			"debug - also every sensor update",
			"warn  - problems only",
			"error - failures only",
		},
	}
	levelIdx, _, err := levelPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("log level selection: %w", err)
	}
	cfg.LogLevel = []LogLevel{LogInfo, LogDebug, LogWarn, LogError}[levelIdx]

	// 3. Data directory.
	dataPrompt := promptui.Prompt{
		Label:   "Data directory for chat transcripts and the contact inbox",
		Default: cfg.DataDir,
	}
	cfg.DataDir, err = dataPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("data dir: %w", err)
	}

	// 4. CORS origins.
	originsPrompt := promptui.Prompt{
		Label:   "Allowed CORS origins (comma-separated, * for any, blank for none)",
		Default: "",
	}
	originsStr, err := originsPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("allowed origins: %w", err)
	}
	for _, o := range splitAndTrim(originsStr) {
		if o == "*" {
			cfg.Server.AllowAllOrigins = true
			continue
		}
		cfg.Server.AllowedOrigins = append(cfg.Server.AllowedOrigins, o)
	}

	// 5. Chat backend.
	chatPrompt := promptui.Select{
		Label: "Who answers in the chat demo?",
		Items: []string{
			"scripted - canned replies, no network",
			"openai   - chat completions (needs " + OpenAIKeyEnvVar + ")",
		},
	}
	chatIdx, _, err := chatPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("chat provider selection: %w", err)
	}
	cfg.Chat.Provider = []ChatProvider{ChatScripted, ChatOpenAI}[chatIdx]
	if cfg.Chat.Provider == ChatOpenAI {
		fmt.Printf("Remember to export %s before starting the server.\n", OpenAIKeyEnvVar)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	// Save to .oceanai.yml.
	if err := cfg.Save(DefaultPath); err != nil {
		return nil, fmt.Errorf("saving config: %w", err)
	}

	fmt.Printf("\nConfiguration saved to %s\n", DefaultPath)
	return cfg, nil
}

func validatePort(s string) error {
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 || n > 65535 {
		return fmt.Errorf("port must be a number between 1 and 65535")
	}
	return nil
}

// splitAndTrim splits a comma-separated string and trims whitespace.
func splitAndTrim(s string) []string {
	var result []string
	for _, part := range strings.Split(s, ",") {
		if token := strings.TrimSpace(part); token != "" {
			result = append(result, token)
		}
	}
	return result
}
