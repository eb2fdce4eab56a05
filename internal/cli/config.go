package cli

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// envPrefix namespaces environment overrides, e.g. CARQUERY_CACHE_BACKEND.
const envPrefix = "CARQUERY"

// Cache backends selectable with cache.backend.
const (
	backendFile  = "file"
	backendRedis = "redis"
	backendMongo = "mongo"
	backendNone  = "none"
)

// Config is the resolved CLI configuration.
type Config struct {
	BaseURL       string        `mapstructure:"base_url"`
	Timeout       time.Duration `mapstructure:"timeout"`
	RetryAttempts int           `mapstructure:"retry_attempts"`
	Strict        bool          `mapstructure:"strict"`
	Cache         CacheConfig   `mapstructure:"cache"`
	Redis         RedisConfig   `mapstructure:"redis"`
	Mongo         MongoConfig   `mapstructure:"mongo"`
	Server        ServerConfig  `mapstructure:"server"`
}

// CacheConfig selects and tunes the response cache.
type CacheConfig struct {
	Backend string        `mapstructure:"backend"`
	TTL     time.Duration `mapstructure:"ttl"`
	Dir     string        `mapstructure:"dir"` // empty means the XDG cache dir
	Prefix  string        `mapstructure:"prefix"`
}

// RedisConfig is used when cache.backend is "redis".
type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// MongoConfig is used when cache.backend is "mongo".
type MongoConfig struct {
	URI        string `mapstructure:"uri"`
	Database   string `mapstructure:"database"`
	Collection string `mapstructure:"collection"`
}

// ServerConfig configures "carquery serve".
type ServerConfig struct {
	Addr string `mapstructure:"addr"`
}

// defaults are also what "config init" writes. Durations are strings so
// the TOML file stays human-editable.
var defaults = map[string]any{
	"base_url":         "https://www.carqueryapi.com/api/0.3/",
	"timeout":          "10s",
	"retry_attempts":   1,
	"strict":           false,
	"cache.backend":    backendFile,
	"cache.ttl":        "24h",
	"cache.dir":        "",
	"cache.prefix":     "",
	"redis.addr":       "localhost:6379",
	"redis.password":   "",
	"redis.db":         0,
	"mongo.uri":        "mongodb://localhost:27017",
	"mongo.database":   appName,
	"mongo.collection": "cache",
	"server.addr":      ":8080",
}

// newViper returns a viper instance with defaults and environment
// overrides registered.
func newViper() *viper.Viper {
	v := viper.New()
	for k, val := range defaults {
		v.SetDefault(k, val)
	}
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// loadConfig reads the config file at path, or config.toml in the config
// directory when path is empty. A missing default file is not an error; a
// missing explicit file is.
func loadConfig(path string, flags *pflag.FlagSet) (*viper.Viper, Config, error) {
	v := newViper()
	if flags != nil {
		for key, name := range flagBindings {
			if f := flags.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, Config{}, fmt.Errorf("bind --%s: %w", name, err)
				}
			}
		}
	}
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("toml")
		if dir, err := configDir(); err == nil {
			v.AddConfigPath(dir)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, Config{}, fmt.Errorf("decode config: %w", err)
	}
	return v, cfg, nil
}

// flagBindings maps config keys to the persistent flags that override them.
// A flag only wins when it was set on the command line.
var flagBindings = map[string]string{
	"base_url": "base-url",
}

// configDir returns the config directory using XDG standard (~/.config/carquery/).
func configDir() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName), nil
}

// encodeSettings renders settings as TOML with secrets masked.
func encodeSettings(settings map[string]any) ([]byte, error) {
	if redis, ok := settings["redis"].(map[string]any); ok {
		if pw, _ := redis["password"].(string); pw != "" {
			redis["password"] = "********"
		}
	}
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(settings); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// configCommand creates the config management command.
func (c *CLI) configCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect or create the configuration file",
	}
	cmd.AddCommand(c.configInitCommand())
	cmd.AddCommand(c.configShowCommand())
	return cmd
}

func (c *CLI) configInitCommand() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:         "init",
		Short:       "Write a default config file",
		Annotations: map[string]string{annotationSkipConfig: "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			path := c.flags.configPath
			if path == "" {
				dir, err := configDir()
				if err != nil {
					return fmt.Errorf("get config dir: %w", err)
				}
				path = filepath.Join(dir, "config.toml")
			}
			if _, err := os.Stat(path); err == nil && !force {
				return fmt.Errorf("%s already exists (use --force to overwrite)", path)
			}

			data, err := encodeSettings(newViper().AllSettings())
			if err != nil {
				return err
			}
			if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
				return err
			}
			if err := os.WriteFile(path, data, 0o644); err != nil {
				return err
			}
			printSuccess(cmd.OutOrStdout(), "Wrote %s", path)
			return nil
		},
	}
	cmd.Flags().BoolVar(&force, "force", false, "overwrite an existing file")
	return cmd
}

func (c *CLI) configShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := encodeSettings(c.viper.AllSettings())
			if err != nil {
				return err
			}
			if used := c.viper.ConfigFileUsed(); used != "" {
				printDetail(cmd.OutOrStdout(), "# %s", used)
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
}
