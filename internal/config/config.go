// Package config loads lvltree settings from YAML or JSON-with-comments
// files and the environment.
//
// Format is chosen by file extension:
//   - .yaml / .yml  → gopkg.in/yaml.v3
//   - .json / .jsonc → comments stripped with github.com/tidwall/jsonc, then encoding/json
//
// Fields missing from the file keep their Default() values.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvltree/internal/ctxlog"
)

var (
	// ErrInvalidConfig indicates a value that fails Validate.
	ErrInvalidConfig = errors.New("config: invalid configuration")

	// ErrUnsupportedFormat indicates a config file extension we cannot parse.
	ErrUnsupportedFormat = errors.New("config: unsupported file format")
)

// Config is the full application configuration.
type Config struct {
	Server ServerConfig `json:"server" yaml:"server"`
	Log    LogConfig    `json:"log" yaml:"log"`
	Limits LimitsConfig `json:"limits" yaml:"limits"`
}

// ServerConfig controls the HTTP adapter.
type ServerConfig struct {
	// Addr is the listen address, e.g. ":3000".
	Addr string `json:"addr" yaml:"addr"`

	ReadTimeout  Duration `json:"readTimeout" yaml:"readTimeout"`
	WriteTimeout Duration `json:"writeTimeout" yaml:"writeTimeout"`

	// MaxBodyBytes caps request bodies.
	MaxBodyBytes int64 `json:"maxBodyBytes" yaml:"maxBodyBytes"`

	// StaticDir, when set, is served at "/".
	StaticDir string `json:"staticDir" yaml:"staticDir"`
}

// LogConfig controls slog output.
type LogConfig struct {
	Level  string `json:"level" yaml:"level"`   // debug | info | warn | error
	Format string `json:"format" yaml:"format"` // text | json
}

// LimitsConfig bounds the work a single input may cause.
type LimitsConfig struct {
	// MaxNodes is passed to tree.WithMaxNodes; 0 disables the limit.
	MaxNodes int `json:"maxNodes" yaml:"maxNodes"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Server: ServerConfig{
			Addr:         ":3000",
			ReadTimeout:  Duration(10 * time.Second),
			WriteTimeout: Duration(10 * time.Second),
			MaxBodyBytes: 1 << 20,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
		Limits: LimitsConfig{
			MaxNodes: 100000,
		},
	}
}

// Load reads path on top of Default(), applies environment overrides and
// validates the result. An empty path skips the file.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("config: read %s: %w", path, err)
		}
		if err := cfg.decode(filepath.Ext(path), data); err != nil {
			return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
		}
	}
	cfg.ApplyEnv(os.LookupEnv)

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func (c *Config) decode(ext string, data []byte) error {
	switch strings.ToLower(ext) {
	case ".yaml", ".yml":
		return yaml.Unmarshal(data, c)
	case ".json", ".jsonc":
		return json.Unmarshal(jsonc.ToJSON(data), c)
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
}

// ApplyEnv overrides settings from the environment:
//   - PORT            → Server.Addr = ":<PORT>"
//   - LVLTREE_ADDR    → Server.Addr (wins over PORT)
//   - LVLTREE_LOG_LEVEL → Log.Level
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) {
	if port, ok := lookup("PORT"); ok && port != "" {
		c.Server.Addr = net.JoinHostPort("", port)
	}
	if addr, ok := lookup("LVLTREE_ADDR"); ok && addr != "" {
		c.Server.Addr = addr
	}
	if lvl, ok := lookup("LVLTREE_LOG_LEVEL"); ok && lvl != "" {
		c.Log.Level = lvl
	}
}

// Validate checks every field and reports all problems at once.
func (c Config) Validate() error {
	var errs []error
	if _, _, err := net.SplitHostPort(c.Server.Addr); err != nil {
		errs = append(errs, fmt.Errorf("server.addr %q: %v", c.Server.Addr, err))
	}
	if c.Server.ReadTimeout < 0 || c.Server.WriteTimeout < 0 {
		errs = append(errs, errors.New("server timeouts must be >= 0"))
	}
	if c.Server.MaxBodyBytes <= 0 {
		errs = append(errs, fmt.Errorf("server.maxBodyBytes must be > 0, got %d", c.Server.MaxBodyBytes))
	}
	if _, err := ctxlog.ParseLevel(c.Log.Level); err != nil {
		errs = append(errs, err)
	}
	switch strings.ToLower(c.Log.Format) {
	case "text", "json":
	default:
		errs = append(errs, fmt.Errorf("log.format must be text or json, got %q", c.Log.Format))
	}
	if c.Limits.MaxNodes < 0 {
		errs = append(errs, fmt.Errorf("limits.maxNodes must be >= 0, got %d", c.Limits.MaxNodes))
	}
	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, errors.Join(errs...))
	}

	return nil
}
