package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"
)

const (
	dirName  = ".delaytext"
	fileName = "config.toml"
)

// Config represents the delaytext configuration
type Config struct {
	// Debounce policy
	DelayTimeoutMS int `toml:"delay_timeout_ms"`
	MinLength      int `toml:"min_length"`

	// Display
	Placeholder string `toml:"placeholder"`
	CharLimit   int    `toml:"char_limit"`

	Theme string `toml:"theme"`

	// Demo data; empty means the built-in list
	WordList string `toml:"word_list"`

	Debug bool `toml:"debug"`
}

// DefaultConfig returns a config with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		DelayTimeoutMS: 500,
		MinLength:      3,
		Placeholder:    "Type to filter...",
		Theme:          "ember",
	}
}

// Delay returns the debounce delay as a duration.
func (c *Config) Delay() time.Duration {
	return time.Duration(c.DelayTimeoutMS) * time.Millisecond
}

// Manager handles configuration loading and saving
type Manager struct {
	configPath string
	config     *Config
}

// NewManager creates a new configuration manager rooted at dir
func NewManager(dir string) *Manager {
	return &Manager{
		configPath: filepath.Join(dir, dirName, fileName),
		config:     DefaultConfig(),
	}
}

// Path returns the config file location.
func (m *Manager) Path() string {
	return m.configPath
}

// Load reads the configuration from disk, creating defaults if needed
func (m *Manager) Load() error {
	if err := os.MkdirAll(filepath.Dir(m.configPath), 0o755); err != nil {
		return fmt.Errorf("failed to create %s directory: %w", dirName, err)
	}

	if err := m.ensureGitignore(); err != nil {
		return fmt.Errorf("failed to create .gitignore: %w", err)
	}

	data, err := os.ReadFile(m.configPath)
	if errors.Is(err, os.ErrNotExist) {
		return m.Save()
	}
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	// Keys missing from the file keep their defaults.
	cfg := DefaultConfig()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("failed to parse config TOML: %w", err)
	}

	m.expandEnvVars(cfg)
	m.config = cfg
	return nil
}

// Save writes the current configuration to disk
func (m *Manager) Save() error {
	data, err := toml.Marshal(m.config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(m.configPath, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Get returns the current configuration
func (m *Manager) Get() *Config {
	return m.config
}

// Set updates a configuration value and saves
func (m *Manager) Set(key, value string) error {
	switch key {
	case "delay_timeout_ms":
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("invalid %s %q: %w", key, value, err)
		}
		m.config.DelayTimeoutMS = n
	case "min_length":
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("invalid %s %q: %w", key, value, err)
		}
		m.config.MinLength = n
	case "char_limit":
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("invalid %s %q: %w", key, value, err)
		}
		m.config.CharLimit = n
	case "placeholder":
		m.config.Placeholder = value
	case "theme":
		m.config.Theme = value
	case "word_list":
		m.config.WordList = value
	case "debug":
		m.config.Debug = value == "true"
	default:
		return fmt.Errorf("unknown config key: %s", key)
	}

	return m.Save()
}

func (m *Manager) ensureGitignore() error {
	gitignorePath := filepath.Join(filepath.Dir(m.configPath), ".gitignore")

	if _, err := os.Stat(gitignorePath); !os.IsNotExist(err) {
		return nil
	}

	content := `# delaytext data directory
*.log
*.tmp

!config.toml
!.gitignore
`
	return os.WriteFile(gitignorePath, []byte(content), 0o644)
}

func (m *Manager) expandEnvVars(cfg *Config) {
	cfg.Placeholder = expandString(cfg.Placeholder)
	cfg.WordList = expandString(cfg.WordList)
}

var envPattern = regexp.MustCompile(`\$\{([^}]+)\}|\$([A-Za-z_][A-Za-z0-9_]*)`)

// expandString expands $VAR and ${VAR}. Unset variables are left as written.
func expandString(s string) string {
	return envPattern.ReplaceAllStringFunc(s, func(match string) string {
		varName := match[1:]
		if strings.HasPrefix(match, "${") {
			varName = match[2 : len(match)-1]
		}
		if value := os.Getenv(varName); value != "" {
			return value
		}
		return match
	})
}
