package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/sevigo/jenkins-relay/internal/logger"
)

const (
	// ParameterizedSuffix triggers a build and passes the extracted parameters.
	ParameterizedSuffix = "/buildWithParameters"
	// PlainSuffix triggers a build without parameters.
	PlainSuffix = "/build"
)

// Config holds the application's configuration values.
type Config struct {
	Server  ServerConfig
	Logging logger.Config
	AI      AIConfig
	Jenkins JenkinsConfig
	Slack   SlackConfig

	MaxConcurrentCommands int
}

type ServerConfig struct {
	Port           string
	RequestTimeout time.Duration
}

// AIConfig selects and configures the text-understanding provider.
type AIConfig struct {
	LLMProvider  string
	GeminiAPIKey string
	Model        string
	OllamaHost   string
	Timeout      time.Duration
}

// JenkinsConfig describes the build server trigger endpoint.
type JenkinsConfig struct {
	BaseURL string
	User    string
	Token   string
	Suffix  string
	Timeout time.Duration
}

// Parameterized reports whether triggers should carry build parameters.
// Only an explicit "/build" suffix disables them.
func (c JenkinsConfig) Parameterized() bool {
	return strings.TrimRight(c.Suffix, "/") != PlainSuffix
}

type SlackConfig struct {
	SigningSecret string
	BotToken      string
}

// LoadConfig reads configuration from a .env file in the working directory and
// from environment variables, sets defaults, and validates required fields.
func LoadConfig() (*Config, error) {
	return Load(".env")
}

// Load is LoadConfig with an explicit env file path. A missing file is not an
// error; environment variables take precedence over its values.
func Load(envFile string) (*Config, error) {
	cfg, err := Read(envFile)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Read loads configuration like Load but skips Validate. It serves tools that
// only need part of the settings, such as job name previews.
func Read(envFile string) (*Config, error) {
	v := viper.New()
	setDefaults(v)
	v.AutomaticEnv()

	if envFile != "" {
		v.SetConfigFile(envFile)
		v.SetConfigType("env")
		if err := v.ReadInConfig(); err != nil && !errors.Is(err, fs.ErrNotExist) {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("failed to read config file %s: %w", envFile, err)
			}
		}
	}

	cfg := &Config{
		Server: ServerConfig{
			Port:           v.GetString("SERVER_PORT"),
			RequestTimeout: v.GetDuration("REQUEST_TIMEOUT"),
		},
		Logging: logger.Config{
			Level:  strings.ToLower(v.GetString("LOG_LEVEL")),
			Format: v.GetString("LOG_FORMAT"),
			Output: v.GetString("LOG_OUTPUT"),
			File:   v.GetString("LOG_FILE"),
		},
		AI: AIConfig{
			LLMProvider:  strings.ToLower(v.GetString("LLM_PROVIDER")),
			GeminiAPIKey: v.GetString("GEN_AI_API_KEY"),
			Model:        v.GetString("GENAI_MODEL"),
			OllamaHost:   v.GetString("OLLAMA_HOST"),
			Timeout:      v.GetDuration("LLM_TIMEOUT"),
		},
		Jenkins: JenkinsConfig{
			BaseURL: v.GetString("JENKINS_URL"),
			User:    v.GetString("JENKINS_USER"),
			Token:   v.GetString("JENKINS_TOKEN"),
			Suffix:  v.GetString("JENKINS_SUFFIX"),
			Timeout: v.GetDuration("JENKINS_TIMEOUT"),
		},
		Slack: SlackConfig{
			SigningSecret: v.GetString("SLACK_SIGNING_SECRET"),
			BotToken:      v.GetString("SLACK_BOT_TOKEN"),
		},
		MaxConcurrentCommands: v.GetInt("MAX_CONCURRENT_COMMANDS"),
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("SERVER_PORT", "3000")
	v.SetDefault("REQUEST_TIMEOUT", 60*time.Second)
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "text")
	v.SetDefault("LOG_OUTPUT", "stdout")
	v.SetDefault("LLM_PROVIDER", "gemini")
	v.SetDefault("GENAI_MODEL", "gemini-1.5-flash")
	v.SetDefault("OLLAMA_HOST", "http://localhost:11434")
	v.SetDefault("LLM_TIMEOUT", 30*time.Second)
	v.SetDefault("JENKINS_SUFFIX", ParameterizedSuffix)
	v.SetDefault("JENKINS_TIMEOUT", 15*time.Second)
	v.SetDefault("MAX_CONCURRENT_COMMANDS", 5)
}

// Validate checks that every credential needed to serve requests is present,
// so a misconfigured process fails at startup rather than per request.
func (c *Config) Validate() error {
	var errs []error

	if c.Jenkins.BaseURL == "" {
		errs = append(errs, errors.New("JENKINS_URL must be set"))
	}
	if c.Jenkins.User == "" {
		errs = append(errs, errors.New("JENKINS_USER must be set"))
	}
	if c.Jenkins.Token == "" {
		errs = append(errs, errors.New("JENKINS_TOKEN must be set"))
	}

	switch c.AI.LLMProvider {
	case "gemini":
		if c.AI.GeminiAPIKey == "" {
			errs = append(errs, errors.New("GEN_AI_API_KEY must be set for the gemini provider"))
		}
	case "ollama":
		if c.AI.OllamaHost == "" {
			errs = append(errs, errors.New("OLLAMA_HOST must be set for the ollama provider"))
		}
	default:
		errs = append(errs, fmt.Errorf("unsupported LLM provider: %q", c.AI.LLMProvider))
	}

	if c.AI.Model == "" {
		errs = append(errs, errors.New("GENAI_MODEL must not be empty"))
	}
	if c.AI.Timeout <= 0 {
		errs = append(errs, errors.New("LLM_TIMEOUT must be positive"))
	}
	if c.Jenkins.Timeout <= 0 {
		errs = append(errs, errors.New("JENKINS_TIMEOUT must be positive"))
	}
	if c.MaxConcurrentCommands <= 0 {
		slog.Warn("MAX_CONCURRENT_COMMANDS is not positive, defaulting to 1", "provided", c.MaxConcurrentCommands)
		c.MaxConcurrentCommands = 1
	}

	return errors.Join(errs...)
}
