package config

import (
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// EnvConfigPath overrides the location of the config file.
const EnvConfigPath = "STOPWATCH_CONFIG"

type Config struct {
	App      AppConfig      `yaml:"app"`
	Database DatabaseConfig `yaml:"database"`
	Log      LogConfig      `yaml:"log"`
	UI       UIConfig       `yaml:"ui"`
}

type AppConfig struct {
	Name         string        `yaml:"name"`
	TickInterval time.Duration `yaml:"tick_interval"`
}

type DatabaseConfig struct {
	Path string `yaml:"path"`
}

type LogConfig struct {
	// Path is the log file. Empty disables logging.
	Path  string `yaml:"path"`
	Level string `yaml:"level"`
}

type UIConfig struct {
	// Language forces the button language, e.g. "pt". Empty follows the
	// system locale.
	Language  string `yaml:"language"`
	AltScreen bool   `yaml:"alt_screen"`
}

// DefaultConfig places the database and log next to the config file in dir.
func DefaultConfig(dir string) *Config {
	return &Config{
		App: AppConfig{
			Name:         "Stopwatch",
			TickInterval: 100 * time.Millisecond,
		},
		Database: DatabaseConfig{
			Path: filepath.Join(dir, "stopwatch.db"),
		},
		Log: LogConfig{
			Path:  filepath.Join(dir, "stopwatch.log"),
			Level: "info",
		},
		UI: UIConfig{
			AltScreen: true,
		},
	}
}

type Manager struct {
	config     *Config
	configPath string
}

// NewManager opens the config at STOPWATCH_CONFIG, or in ~/.stopwatch-tui.
func NewManager() (*Manager, error) {
	if path := os.Getenv(EnvConfigPath); path != "" {
		return NewManagerAt(path)
	}

	configDir, err := getConfigDir()
	if err != nil {
		return nil, err
	}
	return NewManagerAt(filepath.Join(configDir, "config.yaml"))
}

// NewManagerAt loads the config at path, writing defaults there if it is
// missing or unreadable.
func NewManagerAt(path string) (*Manager, error) {
	manager := &Manager{
		configPath: path,
	}

	if err := manager.loadConfig(); err != nil {
		manager.config = DefaultConfig(filepath.Dir(path))
		if err := manager.SaveConfig(); err != nil {
			return nil, err
		}
	}

	return manager, nil
}

func (m *Manager) loadConfig() error {
	data, err := os.ReadFile(m.configPath)
	if err != nil {
		return err
	}

	config := DefaultConfig(filepath.Dir(m.configPath))
	if err := yaml.Unmarshal(data, config); err != nil {
		return err
	}

	m.config = config
	return nil
}

func (m *Manager) SaveConfig() error {
	data, err := yaml.Marshal(m.config)
	if err != nil {
		return err
	}

	configDir := filepath.Dir(m.configPath)
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return err
	}

	return os.WriteFile(m.configPath, data, 0644)
}

func (m *Manager) GetConfig() *Config {
	return m.config
}

func (m *Manager) Path() string {
	return m.configPath
}

func getConfigDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".stopwatch-tui"), nil
}
