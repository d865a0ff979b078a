// internal/config/config.go
//
// This package handles configuration and the ~/.yidao directory structure.
// The directory holds config.yaml, the log file and the saved reading.

package config

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	// HomeDirName is the directory created under the user's home.
	HomeDirName = ".yidao"

	// EnvTheme overrides the configured theme for one run.
	EnvTheme = "YIDAO_THEME"

	defaultCeremony = 1500 * time.Millisecond
	defaultWordWrap = 80
)

// Theme names a colour scheme.
type Theme string

const (
	ThemeMystic Theme = "mystic"
	ThemePaper  Theme = "paper"
)

// Toggle returns the other theme.
func (t Theme) Toggle() Theme {
	if t == ThemePaper {
		return ThemeMystic
	}
	return ThemePaper
}

// IsDark reports whether the theme draws light text on a dark background.
func (t Theme) IsDark() bool { return t != ThemePaper }

// Storage backends.
const (
	BackendFile   = "file"
	BackendSQLite = "sqlite"
)

const defaultSettingsYAML = `# yidao configuration
version: 1

# Colour scheme: mystic (dark) or paper (light). YIDAO_THEME overrides it.
theme: mystic

# Where the last reading is kept: file (markdown) or sqlite.
storage:
  backend: file

# Pause shown while the chart is cast. Set to 0s to skip.
ceremony: 1500ms

render:
  word_wrap: 80
`

// StorageConfig selects the snapshot backend.
type StorageConfig struct {
	Backend string `yaml:"backend"`
}

// RenderConfig tunes Markdown rendering.
type RenderConfig struct {
	WordWrap int `yaml:"word_wrap"`
}

// Settings models ~/.yidao/config.yaml.
type Settings struct {
	Version  int           `yaml:"version"`
	Theme    Theme         `yaml:"theme"`
	Storage  StorageConfig `yaml:"storage"`
	Ceremony time.Duration `yaml:"ceremony"`
	Render   RenderConfig  `yaml:"render"`
}

// Config holds the runtime configuration.
type Config struct {
	// HomeDir is ~/.yidao or the --home override.
	HomeDir string

	// mu guards Settings and themeOverride once the config is shared.
	mu sync.RWMutex

	Settings Settings

	// themeOverride is set from YIDAO_THEME and is never written back.
	themeOverride Theme
}

// DefaultHome returns ~/.yidao.
func DefaultHome() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("config: resolve home: %w", err)
	}
	return filepath.Join(home, HomeDirName), nil
}

// InitDir creates the directory structure under homeDir.
//
// Structure created:
// <home>/
// ├── config.yaml   <- written with defaults when missing
// ├── logs/         <- yidao.log
// └── state/        <- the saved reading
func InitDir(homeDir string) error {
	dirs := []string{
		filepath.Join(homeDir, "logs"),
		filepath.Join(homeDir, "state"),
	}
	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	return ensureSettings(filepath.Join(homeDir, "config.yaml"))
}

// NewConfig loads configuration rooted at homeDir. A missing config file
// yields defaults.
func NewConfig(homeDir string) (*Config, error) {
	if strings.TrimSpace(homeDir) == "" {
		return nil, fmt.Errorf("config: home directory is required")
	}
	cfg := &Config{
		HomeDir:  filepath.Clean(homeDir),
		Settings: defaultSettings(),
	}
	if err := cfg.loadSettings(); err != nil {
		return nil, err
	}
	if err := cfg.applyEnv(os.Getenv); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LogsDir returns the path to the logs directory
func (c *Config) LogsDir() string {
	return filepath.Join(c.HomeDir, "logs")
}

// StateDir returns the path to the state directory
func (c *Config) StateDir() string {
	return filepath.Join(c.HomeDir, "state")
}

// SettingsPath returns the on-disk location of config.yaml.
func (c *Config) SettingsPath() string {
	return filepath.Join(c.HomeDir, "config.yaml")
}

// Theme returns the active theme, honouring YIDAO_THEME.
func (c *Config) Theme() Theme {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.themeOverride != "" {
		return c.themeOverride
	}
	return c.Settings.Theme
}

// Backend returns the configured snapshot backend.
func (c *Config) Backend() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.Settings.Storage.Backend
}

// Ceremony returns the casting pause.
func (c *Config) Ceremony() time.Duration {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.Settings.Ceremony
}

// WordWrap returns the Markdown wrap width.
func (c *Config) WordWrap() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.Settings.Render.WordWrap
}

// SetTheme records the theme and persists it to config.yaml. An environment
// override is dropped so the choice takes effect immediately. Only the theme
// key is rewritten; comments and other keys in the file are kept.
func (c *Config) SetTheme(theme Theme) error {
	theme, err := parseTheme(string(theme))
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.Settings.Theme = theme
	c.themeOverride = ""
	return c.saveSettings()
}

func (c *Config) applyEnv(getenv func(string) string) error {
	value := strings.TrimSpace(getenv(EnvTheme))
	if value == "" {
		return nil
	}
	theme, err := parseTheme(value)
	if err != nil {
		return fmt.Errorf("config: %s: %w", EnvTheme, err)
	}
	c.themeOverride = theme
	return nil
}

func (c *Config) loadSettings() error {
	path := c.SettingsPath()
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("config: read %s: %w", path, err)
	}

	parsed := defaultSettings()
	if err := yaml.Unmarshal(data, &parsed); err != nil {
		return fmt.Errorf("config: parse %s: %w", path, err)
	}

	parsed.applyDefaults()
	parsed.normalize()
	if err := parsed.validate(); err != nil {
		return fmt.Errorf("config: %w", err)
	}

	c.Settings = parsed
	return nil
}

func defaultSettings() Settings {
	return Settings{
		Version:  1,
		Theme:    ThemeMystic,
		Storage:  StorageConfig{Backend: BackendFile},
		Ceremony: defaultCeremony,
		Render:   RenderConfig{WordWrap: defaultWordWrap},
	}
}

func (s *Settings) applyDefaults() {
	if s.Version == 0 {
		s.Version = 1
	}
	if s.Theme == "" {
		s.Theme = ThemeMystic
	}
	if strings.TrimSpace(s.Storage.Backend) == "" {
		s.Storage.Backend = BackendFile
	}
	if s.Render.WordWrap == 0 {
		s.Render.WordWrap = defaultWordWrap
	}
}

func (s *Settings) normalize() {
	s.Theme = Theme(strings.ToLower(strings.TrimSpace(string(s.Theme))))
	s.Storage.Backend = strings.ToLower(strings.TrimSpace(s.Storage.Backend))
}

func (s *Settings) validate() error {
	if s.Version < 1 {
		return fmt.Errorf("config version must be >= 1")
	}
	if _, err := parseTheme(string(s.Theme)); err != nil {
		return err
	}
	switch s.Storage.Backend {
	case BackendFile, BackendSQLite:
	default:
		return fmt.Errorf("storage.backend must be 'file' or 'sqlite'")
	}
	if s.Ceremony < 0 {
		return fmt.Errorf("ceremony must not be negative")
	}
	if s.Render.WordWrap < 20 {
		return fmt.Errorf("render.word_wrap must be >= 20")
	}
	return nil
}

func parseTheme(value string) (Theme, error) {
	switch Theme(strings.ToLower(strings.TrimSpace(value))) {
	case ThemeMystic:
		return ThemeMystic, nil
	case ThemePaper:
		return ThemePaper, nil
	default:
		return "", fmt.Errorf("theme must be 'mystic' or 'paper', got %q", value)
	}
}

func ensureSettings(path string) error {
	if _, err := os.Stat(path); err == nil {
		return nil
	} else if !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return os.WriteFile(path, []byte(defaultSettingsYAML), 0o644)
}

// saveSettings writes the current settings to config.yaml. The caller holds
// c.mu.
func (c *Config) saveSettings() error {
	if c == nil {
		return fmt.Errorf("config: nil receiver")
	}
	c.Settings.applyDefaults()
	c.Settings.normalize()
	if err := c.Settings.validate(); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if err := os.MkdirAll(c.HomeDir, 0o755); err != nil {
		return fmt.Errorf("config: ensure home dir: %w", err)
	}
	data, err := c.encodeSettings()
	if err != nil {
		return fmt.Errorf("config: encode config: %w", err)
	}
	if err := writeFileAtomic(c.SettingsPath(), data); err != nil {
		return fmt.Errorf("config: write config: %w", err)
	}
	return nil
}

// encodeSettings patches the theme into the existing document so the user's
// comments and formatting survive. A missing or unreadable file is replaced
// by a plain encoding of Settings.
func (c *Config) encodeSettings() ([]byte, error) {
	data, err := os.ReadFile(c.SettingsPath())
	if err != nil {
		return yaml.Marshal(c.Settings)
	}
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil || len(doc.Content) == 0 {
		return yaml.Marshal(c.Settings)
	}
	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return yaml.Marshal(c.Settings)
	}
	setScalar(root, "theme", string(c.Settings.Theme))

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(&doc); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func setScalar(mapping *yaml.Node, key, value string) {
	for i := 0; i+1 < len(mapping.Content); i += 2 {
		if mapping.Content[i].Value == key {
			node := mapping.Content[i+1]
			node.Kind = yaml.ScalarNode
			node.Tag = "!!str"
			node.Style = 0
			node.Content = nil
			node.Value = value
			return
		}
	}
	mapping.Content = append(mapping.Content,
		&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: key},
		&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: value},
	)
}

func writeFileAtomic(path string, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), ".config-*.yaml")
	if err != nil {
		return err
	}
	tmpPath := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return err
	}
	if err := os.Chmod(tmpPath, 0o644); err != nil {
		os.Remove(tmpPath)
		return err
	}
	return os.Rename(tmpPath, path)
}
