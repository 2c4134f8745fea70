package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/thenoetrevino/quoteboard/internal/config/colors"
	"github.com/thenoetrevino/quoteboard/internal/models"
)

// appName names the config, data and log directories
const appName = "quoteboard"

// Remote modes
const (
	ModeSimulated = "simulated"
	ModeSQLite    = "sqlite"
	ModeDaemon    = "daemon"
)

// Pointer activation strategies
const (
	ActivationDistance = "distance"
	ActivationHold     = "hold"
)

// Config represents the application configuration
type Config struct {
	Remote      RemoteConfig       `yaml:"remote"`
	Database    DatabaseConfig     `yaml:"database"`
	Board       BoardConfig        `yaml:"board"`
	Input       InputConfig        `yaml:"input"`
	Logging     LoggingConfig      `yaml:"logging"`
	Layout      LayoutConfig       `yaml:"layout"`
	KeyMappings KeyMappings        `yaml:"key_mappings"`
	ColorScheme colors.ColorScheme `yaml:"theme"`
}

// RemoteConfig selects and tunes the system that owns quote records
type RemoteConfig struct {
	Mode             string         `yaml:"mode"`
	SocketPath       string         `yaml:"socket_path"`
	LatencyMS        *int           `yaml:"latency_ms"`
	FailureRate      float64        `yaml:"failure_rate"`
	FetchFailureRate float64        `yaml:"fetch_failure_rate"`
	Totals           map[string]int `yaml:"totals"`
}

// Latency returns the simulated network delay
func (r RemoteConfig) Latency() time.Duration {
	if r.LatencyMS == nil {
		return 300 * time.Millisecond
	}
	return time.Duration(*r.LatencyMS) * time.Millisecond
}

// StatusTotals returns the generated column sizes keyed by status
func (r RemoteConfig) StatusTotals() map[models.Status]int {
	out := map[models.Status]int{
		models.StatusAccepted: models.DefaultAcceptedTotal,
		models.StatusPending:  models.DefaultPendingTotal,
		models.StatusDeclined: models.DefaultDeclinedTotal,
	}
	for k, v := range r.Totals {
		if st, err := models.ParseStatus(k); err == nil && v >= 0 {
			out[st] = v
		}
	}
	return out
}

// DatabaseConfig locates the SQLite store
type DatabaseConfig struct {
	Path string `yaml:"path"`
}

// BoardConfig tunes column windows and rendering
type BoardConfig struct {
	PageSize int  `yaml:"page_size"`
	Overscan *int `yaml:"overscan"`
}

// OverscanRows returns the configured overscan or the default of 5
func (b BoardConfig) OverscanRows() int {
	if b.Overscan == nil || *b.Overscan < 0 {
		return 5
	}
	return *b.Overscan
}

// InputConfig tunes drag activation
type InputConfig struct {
	PointerActivation string   `yaml:"pointer_activation"`
	DragDistance      float64  `yaml:"drag_distance"`
	HoldDelayMS       int      `yaml:"hold_delay_ms"`
	HoldTolerance     *float64 `yaml:"hold_tolerance"`
}

// HoldDelay returns the press duration needed by the hold sensor
func (i InputConfig) HoldDelay() time.Duration {
	return time.Duration(i.HoldDelayMS) * time.Millisecond
}

// LoggingConfig controls the rotating log file
type LoggingConfig struct {
	Level      string `yaml:"level"`
	File       string `yaml:"file"`
	MaxSizeMB  int    `yaml:"max_size_mb"`
	MaxBackups int    `yaml:"max_backups"`
	MaxAgeDays int    `yaml:"max_age_days"`
	Compress   bool   `yaml:"compress"`
}

// LayoutConfig selects which persisted dashboard layout to use
type LayoutConfig struct {
	DashboardID string `yaml:"dashboard_id"`
}

// Default returns the configuration used when no file exists
func Default() *Config {
	c := &Config{}
	c.applyDefaults()
	return c
}

// loadThemeFile loads and merges theme from QUOTEBOARD_THEME_FILE environment variable
func loadThemeFile(config *Config) {
	themeFile := os.Getenv("QUOTEBOARD_THEME_FILE")
	if themeFile == "" {
		return
	}

	themeData, err := os.ReadFile(themeFile)
	if err != nil {
		return
	}

	var themeConfig struct {
		Theme colors.ColorScheme `yaml:"theme"`
	}

	if yaml.Unmarshal(themeData, &themeConfig) == nil {
		config.ColorScheme.MergeFrom(themeConfig.Theme)
	}
}

// Load loads config from the user's config directory, or from the file
// named by QUOTEBOARD_CONFIG. Returns default config if the file doesn't exist.
func Load() (*Config, error) {
	configPath, err := getConfigPath()
	if err != nil {
		config := Default()
		loadThemeFile(config)
		return config, nil
	}
	return LoadFrom(configPath)
}

// LoadFrom loads config from path. A missing file yields the defaults.
func LoadFrom(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		config := Default()
		loadThemeFile(config)
		return config, nil
	}
	if err != nil {
		return nil, err
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	loadThemeFile(&config)
	config.applyDefaults()

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return &config, nil
}

// Save saves the config to the user's config directory
func (c *Config) Save() error {
	configPath, err := getConfigPath()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(configPath), 0o755); err != nil {
		return err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	return os.WriteFile(configPath, data, 0o644)
}

// Validate reports the first invalid setting
func (c *Config) Validate() error {
	switch c.Remote.Mode {
	case ModeSimulated, ModeSQLite, ModeDaemon:
	default:
		return fmt.Errorf("%w: %q", ErrInvalidMode, c.Remote.Mode)
	}
	for _, r := range []float64{c.Remote.FailureRate, c.Remote.FetchFailureRate} {
		if r < 0 || r > 1 {
			return fmt.Errorf("%w: %v", ErrInvalidRate, r)
		}
	}
	if c.Board.PageSize <= 0 || c.Board.PageSize > models.MaxPageSize {
		return fmt.Errorf("%w: %d", ErrInvalidPageSize, c.Board.PageSize)
	}
	switch strings.ToLower(c.Logging.Level) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: %q", ErrInvalidLogLevel, c.Logging.Level)
	}
	switch c.Input.PointerActivation {
	case ActivationDistance, ActivationHold:
	default:
		return fmt.Errorf("%w: %q", ErrInvalidActivation, c.Input.PointerActivation)
	}
	return nil
}

// getConfigPath returns the path to the config file
func getConfigPath() (string, error) {
	if p := os.Getenv("QUOTEBOARD_CONFIG"); p != "" {
		return p, nil
	}

	// Try XDG_CONFIG_HOME first
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName, "config.yaml"), nil
	}

	// Fall back to ~/.config
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(homeDir, ".config", appName, "config.yaml"), nil
}

// DataDir returns ~/.quoteboard, where the socket, database and logs live
func DataDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, "."+appName), nil
}

// applyDefaults fills in missing configuration with defaults
func (c *Config) applyDefaults() {
	dataDir, _ := DataDir()

	if c.Remote.Mode == "" {
		c.Remote.Mode = ModeSimulated
	}
	if c.Remote.SocketPath == "" && dataDir != "" {
		c.Remote.SocketPath = filepath.Join(dataDir, appName+".sock")
	}
	if c.Database.Path == "" && dataDir != "" {
		c.Database.Path = filepath.Join(dataDir, "quotes.db")
	}
	if c.Board.PageSize == 0 {
		c.Board.PageSize = models.DefaultPageSize
	}
	if c.Input.PointerActivation == "" {
		c.Input.PointerActivation = ActivationDistance
	}
	if c.Input.DragDistance <= 0 {
		c.Input.DragDistance = 8
	}
	if c.Input.HoldDelayMS <= 0 {
		c.Input.HoldDelayMS = 300
	}
	if c.Input.HoldTolerance == nil {
		tol := 5.0
		c.Input.HoldTolerance = &tol
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	if c.Logging.File == "" && dataDir != "" {
		c.Logging.File = filepath.Join(dataDir, "logs", appName+".log")
	}
	if c.Logging.MaxSizeMB <= 0 {
		c.Logging.MaxSizeMB = 10
	}
	if c.Logging.MaxBackups <= 0 {
		c.Logging.MaxBackups = 3
	}
	if c.Logging.MaxAgeDays <= 0 {
		c.Logging.MaxAgeDays = 28
	}
	if c.Layout.DashboardID == "" {
		c.Layout.DashboardID = "default"
	}

	c.KeyMappings.applyDefaults()
	c.ColorScheme.ApplyDefaults()
}
