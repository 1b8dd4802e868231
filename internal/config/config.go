package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	envIMAPHost = "MAILSWEEP_IMAP_HOST"
	envIMAPPort = "MAILSWEEP_IMAP_PORT"
	envIMAPUser = "MAILSWEEP_IMAP_USER"
	envIMAPPass = "MAILSWEEP_IMAP_PASS"

	defaultIMAPPort = 993
)

// Config holds non-secret run configuration, loadable from YAML. Zero fields
// fall back to defaults at load time.
type Config struct {
	Rules             []string `yaml:"rules"`
	Folders           []string `yaml:"folders"`
	SkipFolders       []string `yaml:"skip_folders"`
	BatchSize         int      `yaml:"batch_size"`
	RetryAttempts     int      `yaml:"retry_attempts"`
	RetryDelaySeconds float64  `yaml:"retry_delay_seconds"`
}

// IMAPEnv holds the IMAP connection details from environment variables.
type IMAPEnv struct {
	Host string
	Port int
	User string
	Pass string
}

// Default returns the stock configuration: the built-in rule list, INBOX
// only, and the original tool's batching and retry defaults.
func Default() Config {
	return Config{
		Rules:             append([]string(nil), DefaultRules...),
		Folders:           []string{"INBOX"},
		BatchSize:         500,
		RetryAttempts:     4,
		RetryDelaySeconds: 2.0,
	}
}

// Load reads a YAML config file over the defaults. An empty path returns the
// defaults unchanged.
func Load(path string) (Config, error) {
	cfg := Default()
	if strings.TrimSpace(path) == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, err
	}

	if cfg.BatchSize == 0 {
		cfg.BatchSize = 500
	}
	if cfg.RetryAttempts == 0 {
		cfg.RetryAttempts = 4
	}
	if cfg.RetryDelaySeconds == 0 {
		cfg.RetryDelaySeconds = 2.0
	}
	return cfg, nil
}

// Validate performs basic validation on non-secret config.
func Validate(cfg Config) error {
	if len(cfg.Rules) == 0 {
		return errors.New("config must define at least one rule")
	}
	if cfg.BatchSize < 1 {
		return errors.New("batch_size must be positive")
	}
	if cfg.RetryAttempts < 1 {
		return errors.New("retry_attempts must be positive")
	}
	if cfg.RetryDelaySeconds <= 0 {
		return errors.New("retry_delay_seconds must be positive")
	}
	return nil
}

// IMAPEnvFromEnv loads IMAP connection details and validates required
// entries. The port is optional and defaults to 993.
func IMAPEnvFromEnv() (IMAPEnv, error) {
	missing := []string{}

	host := strings.TrimSpace(os.Getenv(envIMAPHost))
	if host == "" {
		missing = append(missing, envIMAPHost)
	}

	user := strings.TrimSpace(os.Getenv(envIMAPUser))
	if user == "" {
		missing = append(missing, envIMAPUser)
	}

	pass := strings.TrimSpace(os.Getenv(envIMAPPass))
	if pass == "" {
		missing = append(missing, envIMAPPass)
	}

	if len(missing) > 0 {
		return IMAPEnv{}, fmt.Errorf("missing required environment variables: %s", strings.Join(missing, ", "))
	}

	port := defaultIMAPPort
	if portRaw := strings.TrimSpace(os.Getenv(envIMAPPort)); portRaw != "" {
		parsed, err := strconv.Atoi(portRaw)
		if err != nil {
			return IMAPEnv{}, fmt.Errorf("invalid %s: %w", envIMAPPort, err)
		}
		port = parsed
	}

	return IMAPEnv{
		Host: host,
		Port: port,
		User: user,
		Pass: pass,
	}, nil
}
