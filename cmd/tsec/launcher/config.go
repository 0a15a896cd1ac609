// This file maps CLI context and the optional TOML file to the launcher config.

package launcher

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/urfave/cli.v1"
)

// Config aggregates everything the launcher needs.
type Config struct {
	Node    NodeConfig    `toml:"node"`
	Network NetworkConfig `toml:"network"`
	HTTP    HTTPConfig    `toml:"http"`
	Logging LoggingConfig `toml:"logging"`
	Sentry  SentryConfig  `toml:"sentry"`
}

type NodeConfig struct {
	DataDir string `toml:"datadir"`
	Name    string `toml:"identity"`
}

type NetworkConfig struct {
	ID   string `toml:"id"`
	Port int    `toml:"port"`
}

type HTTPConfig struct {
	Enabled bool   `toml:"enabled"`
	Addr    string `toml:"addr"`
	Port    int    `toml:"port"`
}

type LoggingConfig struct {
	Verbosity int    `toml:"verbosity"`
	Format    string `toml:"format"`
	Color     bool   `toml:"color"`
}

type SentryConfig struct {
	DSN string `toml:"dsn"`
}

// Listen returns host:port of the inspector.
func (c HTTPConfig) Listen() string {
	return fmt.Sprintf("%s:%d", c.Addr, c.Port)
}

// -----------------------------------------------------------------------------
// Default config + builders
// -----------------------------------------------------------------------------

func defaultConfig() Config {
	d := DefaultConfig()
	return Config{
		Node: NodeConfig{
			DataDir: resolvePath(d.Node.DataDir),
			Name:    d.Node.Name,
		},
		Network: NetworkConfig{
			ID:   d.Network.ID,
			Port: d.Network.Port,
		},
		HTTP: HTTPConfig{
			Enabled: d.HTTP.Enabled,
			Addr:    d.HTTP.Addr,
			Port:    d.HTTP.Port,
		},
		Logging: LoggingConfig{
			Verbosity: d.Logging.Verbosity,
			Format:    d.Logging.Format,
			Color:     d.Logging.Color,
		},
	}
}

// MakeAllConfigs merges defaults, config-file values and CLI overrides into a
// single config struct. Without --config, <datadir>/tsec.toml is used when it
// exists.

func MakeAllConfigs(ctx *cli.Context) (Config, error) {
	cfg := defaultConfig()

	if ctx.IsSet("datadir") {
		cfg.Node.DataDir = resolvePath(ctx.String("datadir"))
	}

	file := ctx.String("config")
	if file == "" {
		candidate := filepath.Join(cfg.Node.DataDir, DefaultConfig().Node.ConfigFile)
		if _, err := os.Stat(candidate); err == nil {
			file = candidate
		}
	}
	if file != "" {
		if err := loadConfigFile(resolvePath(file), &cfg); err != nil {
			return Config{}, fmt.Errorf("failed to load config file %s: %w", file, err)
		}
	}

	applyCLIOverrides(ctx, &cfg)

	if err := checkConfig(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// -----------------------------------------------------------------------------
// Config-file / CLI wiring
// -----------------------------------------------------------------------------

func loadConfigFile(path string, cfg *Config) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	dec := toml.NewDecoder(f).DisallowUnknownFields()
	if err := dec.Decode(cfg); err != nil {
		var strict *toml.StrictMissingError
		if errors.As(err, &strict) {
			return fmt.Errorf("unknown keys:\n%s", strict.String())
		}
		return err
	}
	if cfg.Node.DataDir != "" {
		cfg.Node.DataDir = resolvePath(cfg.Node.DataDir)
	}
	return nil
}

func applyCLIOverrides(ctx *cli.Context, cfg *Config) {
	if ctx.IsSet("datadir") {
		cfg.Node.DataDir = resolvePath(ctx.String("datadir"))
	}
	if ctx.IsSet("identity") {
		cfg.Node.Name = ctx.String("identity")
	}

	if ctx.IsSet("network") {
		cfg.Network.ID = strings.TrimSpace(ctx.String("network"))
	}
	if ctx.IsSet("port") {
		cfg.Network.Port = ctx.Int("port")
	}

	if ctx.Bool("http") {
		cfg.HTTP.Enabled = true
	}
	if ctx.IsSet("http.addr") {
		cfg.HTTP.Addr = ctx.String("http.addr")
	}
	if ctx.IsSet("http.port") {
		cfg.HTTP.Port = ctx.Int("http.port")
	}

	if ctx.IsSet("log.format") {
		cfg.Logging.Format = ctx.String("log.format")
	}
	if ctx.IsSet("log.verbosity") {
		cfg.Logging.Verbosity = ctx.Int("log.verbosity")
	}
	if ctx.IsSet("log.color") {
		cfg.Logging.Color = ctx.Bool("log.color")
	}

	if ctx.IsSet("sentry.dsn") {
		cfg.Sentry.DSN = ctx.String("sentry.dsn")
	}
}

var errBadConfig = errors.New("invalid launcher config")

func checkConfig(cfg *Config) error {
	if cfg.Network.ID == "" {
		return fmt.Errorf("%w: empty network", errBadConfig)
	}
	if cfg.Network.Port < 0 || cfg.Network.Port > 65535 {
		return fmt.Errorf("%w: port %d out of range", errBadConfig, cfg.Network.Port)
	}
	if cfg.HTTP.Port <= 0 || cfg.HTTP.Port > 65535 {
		return fmt.Errorf("%w: http.port %d out of range", errBadConfig, cfg.HTTP.Port)
	}
	switch cfg.Logging.Format {
	case "text", "json":
	default:
		return fmt.Errorf("%w: log.format %q", errBadConfig, cfg.Logging.Format)
	}
	return nil
}

// -----------------------------------------------------------------------------
// Helpers
// -----------------------------------------------------------------------------

func resolvePath(p string) string {
	if strings.HasPrefix(p, "~") {
		return filepath.Join(GuessHomeDir(), strings.TrimPrefix(p, "~"))
	}
	if filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(GuessWorkDir(), p)
}

func GuessWorkDir() string {
	if wd, err := os.Getwd(); err == nil {
		return wd
	}
	return "."
}

func GuessHomeDir() string {
	if dir, err := os.UserHomeDir(); err == nil {
		return dir
	}
	return "."
}
