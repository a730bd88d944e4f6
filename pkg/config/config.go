package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
)

type Configuration struct {
	Rename        RenameConfig        `koanf:"rename"`
	Scraper       ScraperConfig       `koanf:"scraper"`
	Transcriber   TranscriberConfig   `koanf:"transcriber"`
	Notifications NotificationsConfig `koanf:"notifications"`
}

type RenameConfig struct {
	PrefixLength int `koanf:"prefix_length"`
}

type ScraperConfig struct {
	TimeoutSeconds int    `koanf:"timeout_seconds"`
	UserAgent      string `koanf:"user_agent"`
}

type TranscriberConfig struct {
	APIURL       string `koanf:"api_url"`
	APIKey       string `koanf:"api_key"`
	Model        string `koanf:"model"`
	ChunkSeconds int    `koanf:"chunk_seconds"`
}

/* Vars */

var (
	K      = koanf.New(".")
	Config Configuration

	Delimiter = "."
)

/* Public */

// Init loads configuration from defaults, an optional yaml config file and
// FKIT_-prefixed environment variables, in that order of precedence.
func Init(configFilePath string) error {
	K = koanf.New(Delimiter)
	Config = Configuration{}

	defaults := map[string]interface{}{
		"rename.prefix_length":         10,
		"scraper.timeout_seconds":      30,
		"scraper.user_agent":           "fkit",
		"transcriber.api_url":          "https://api.openai.com/v1/audio/transcriptions",
		"transcriber.model":            "whisper-1",
		"transcriber.chunk_seconds":    300,
		"notifications.skip_empty_run": false,
	}

	if err := K.Load(confmap.Provider(defaults, Delimiter), nil); err != nil {
		return fmt.Errorf("load defaults: %w", err)
	}

	if configFilePath != "" {
		if _, err := os.Stat(configFilePath); err == nil {
			if err := K.Load(file.Provider(configFilePath), yaml.Parser()); err != nil {
				return fmt.Errorf("load config file %q: %w", configFilePath, err)
			}
		}
	}

	// FKIT_TRANSCRIBER_API_KEY -> transcriber.api_key
	err := K.Load(env.Provider("FKIT_", Delimiter, func(s string) string {
		return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, "FKIT_")), "_", ".")
	}), nil)
	if err != nil {
		return fmt.Errorf("load env: %w", err)
	}

	if err := K.Unmarshal("", &Config); err != nil {
		return fmt.Errorf("unmarshal config: %w", err)
	}

	if v := os.Getenv("FKIT_TRANSCRIBER_API_KEY"); v != "" {
		Config.Transcriber.APIKey = v
	}

	return nil
}

// GetDefaultConfigDirectory returns the default config folder for the app,
// preferring the OS user config dir and falling back to the home dir.
func GetDefaultConfigDirectory(app string, configFile string) string {
	if dir, err := os.UserConfigDir(); err == nil {
		return filepath.Join(dir, app)
	}

	if home, err := os.UserHomeDir(); err == nil {
		return filepath.Join(home, "."+app)
	}

	// fallback: config file lives beside the binary
	if exe, err := os.Executable(); err == nil {
		return filepath.Dir(exe)
	}

	return "."
}
