package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

const (
	DefaultEndpoint = "http://127.0.0.1:5000/api/translate"
	DefaultProfile  = "default"
)

type Profile struct {
	Endpoint string   `json:"endpoint"`
	Timeout  Duration `json:"timeout,omitempty"`
}

type Config struct {
	Profiles       map[string]Profile `json:"profiles"`
	ActiveProfile  string             `json:"active_profile"`
	currentProfile *Profile
	overrides      envOverrides
}

// envOverrides are read after the config file and win over the active profile
type envOverrides struct {
	Endpoint string `env:"GITLINGO_ENDPOINT"`
	LogLevel string `env:"GITLINGO_LOG_LEVEL" envDefault:"info"`
}

// Duration marshals as a Go duration string ("30s") in the config file
type Duration time.Duration

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}

func (d *Duration) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	if s == "" {
		*d = 0
		return nil
	}
	parsed, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("invalid timeout %q: %w", s, err)
	}
	*d = Duration(parsed)
	return nil
}

func LoadConfig() (*Config, error) {
	configPath, err := getConfigPath()
	if err != nil {
		return nil, fmt.Errorf("failed to get config path: %w", err)
	}

	// Ensure config directory exists
	if err := ensureConfigDir(configPath); err != nil {
		return nil, fmt.Errorf("failed to create config directory: %w", err)
	}

	// Load existing config or create default
	config, err := loadConfigFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	// Validate and set current profile
	if err := config.setCurrentProfile(); err != nil {
		return nil, fmt.Errorf("failed to set current profile: %w", err)
	}

	if err := config.loadEnv(); err != nil {
		return nil, fmt.Errorf("failed to read environment: %w", err)
	}

	return config, nil
}

func (c *Config) GetEndpoint() string {
	if c.overrides.Endpoint != "" {
		return c.overrides.Endpoint
	}
	if c.currentProfile == nil || c.currentProfile.Endpoint == "" {
		return DefaultEndpoint
	}
	return c.currentProfile.Endpoint
}

// GetTimeout returns the per-request timeout; zero means none
func (c *Config) GetTimeout() time.Duration {
	if c.currentProfile == nil {
		return 0
	}
	return time.Duration(c.currentProfile.Timeout)
}

func (c *Config) GetLogLevel() string {
	if c.overrides.LogLevel == "" {
		return "info"
	}
	return c.overrides.LogLevel
}

// SetEndpoint overrides the endpoint for this process only
func (c *Config) SetEndpoint(endpoint string) {
	c.overrides.Endpoint = endpoint
}

// SetLogLevel overrides the log level for this process only
func (c *Config) SetLogLevel(level string) {
	c.overrides.LogLevel = level
}

// LogPath is where the terminal UI writes its log
func LogPath() (string, error) {
	configPath, err := getConfigPath()
	if err != nil {
		return "", err
	}
	return filepath.Join(filepath.Dir(configPath), "gitlingo.log"), nil
}

func getConfigPath() (string, error) {
	var configDir string

	// Use GITLINGO_HOME if set, otherwise use user's home directory
	if home := os.Getenv("GITLINGO_HOME"); home != "" {
		configDir = home
	} else {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		configDir = homeDir
	}

	return filepath.Join(configDir, ".gitlingo", "config.json"), nil
}

func ensureConfigDir(configPath string) error {
	configDir := filepath.Dir(configPath)
	return os.MkdirAll(configDir, 0755)
}

func loadConfigFile(configPath string) (*Config, error) {
	// If config file doesn't exist, create default
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return createDefaultConfig(configPath)
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, err
	}

	var config Config
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, err
	}

	return &config, nil
}

func NewDefaultProfile() Profile {
	return Profile{Endpoint: DefaultEndpoint}
}

func createDefaultConfig(configPath string) (*Config, error) {
	config := &Config{
		Profiles: map[string]Profile{
			DefaultProfile: NewDefaultProfile(),
		},
		ActiveProfile: DefaultProfile,
	}

	if err := saveConfig(config, configPath); err != nil {
		return nil, err
	}

	return config, nil
}

func saveConfig(config *Config, configPath string) error {
	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(configPath, data, 0600)
}

func (c *Config) Save() error {
	configPath, err := getConfigPath()
	if err != nil {
		return fmt.Errorf("failed to get config path: %w", err)
	}

	return saveConfig(c, configPath)
}

// loadEnv reads an optional .env from the working directory, then the
// GITLINGO_* variables
func (c *Config) loadEnv() error {
	// .env is optional; real environment variables take precedence
	_ = godotenv.Load()

	return env.Parse(&c.overrides)
}

func (c *Config) setCurrentProfile() error {
	if c.Profiles == nil {
		return fmt.Errorf("no profiles defined")
	}

	profile, exists := c.Profiles[c.ActiveProfile]
	if !exists {
		// If active profile doesn't exist, try to use the first available profile
		for name, p := range c.Profiles {
			c.ActiveProfile = name
			profile = p
			exists = true
			break
		}
	}

	if !exists {
		return fmt.Errorf("no valid profiles found")
	}

	c.currentProfile = &profile
	return nil
}
