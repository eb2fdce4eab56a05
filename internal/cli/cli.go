package cli

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/matzehuels/carquery/pkg/buildinfo"
	"github.com/matzehuels/carquery/pkg/cache"
	"github.com/matzehuels/carquery/pkg/integrations/carquery"
	"github.com/matzehuels/carquery/pkg/observability"
)

// =============================================================================
// Constants
// =============================================================================

// appName is the application name used for directories and display.
const appName = "carquery"

// annotationSkipConfig marks commands that run before a config file exists.
const annotationSkipConfig = "carquery/skip-config"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// globalFlags are the persistent flags shared by every command.
type globalFlags struct {
	verbose    bool
	configPath string
	noCache    bool
	refresh    bool
	json       bool
}

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	flags globalFlags
	viper *viper.Viper
	cfg   Config
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "Query the CarQuery vehicle database",
		Long:         `carquery looks up model years, makes, models and trim specifications from the CarQuery API and prints them as tables or JSON.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if c.flags.verbose {
				c.SetLogLevel(LogDebug)
			}
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			if cmd.Annotations[annotationSkipConfig] != "" {
				return nil
			}
			v, cfg, err := loadConfig(c.flags.configPath, cmd.Flags())
			if err != nil {
				return err
			}
			c.viper, c.cfg = v, cfg
			c.installHooks()
			return nil
		},
	}

	root.SetVersionTemplate(buildinfo.Template())

	pf := root.PersistentFlags()
	pf.BoolVarP(&c.flags.verbose, "verbose", "v", false, "enable verbose logging")
	pf.StringVar(&c.flags.configPath, "config", "", "config file (default $XDG_CONFIG_HOME/carquery/config.toml)")
	pf.BoolVar(&c.flags.noCache, "no-cache", false, "disable the response cache")
	pf.BoolVar(&c.flags.refresh, "refresh", false, "bypass cached responses")
	pf.BoolVar(&c.flags.json, "json", false, "print JSON instead of tables")
	pf.String("base-url", "", "override the API endpoint (config key base_url)")

	root.AddCommand(c.yearsCommand())
	root.AddCommand(c.makesCommand())
	root.AddCommand(c.modelsCommand())
	root.AddCommand(c.trimsCommand())
	root.AddCommand(c.modelCommand())
	root.AddCommand(c.browseCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.configCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// installHooks routes client events to the debug log.
func (c *CLI) installHooks() {
	h := &logHooks{logger: c.Logger}
	observability.SetQueryHooks(h)
	observability.SetCacheHooks(h)
	observability.SetHTTPHooks(h)
}

// =============================================================================
// Client Factory
// =============================================================================

// newClient creates an API client from the loaded config and global flags.
// The returned close function releases the cache backend.
func (c *CLI) newClient(ctx context.Context) (*carquery.Client, func(), error) {
	backend, err := c.openCache(ctx)
	if err != nil {
		return nil, nil, err
	}

	var httpClient *http.Client
	if c.cfg.Timeout > 0 {
		httpClient = &http.Client{Timeout: c.cfg.Timeout}
	}

	client := carquery.NewClient(carquery.Options{
		Cache:         backend,
		CacheTTL:      c.cfg.Cache.TTL,
		Refresh:       c.flags.refresh,
		KeyPrefix:     c.cfg.Cache.Prefix,
		RetryAttempts: c.cfg.RetryAttempts,
		BaseURL:       c.cfg.BaseURL,
		HTTPClient:    httpClient,
		Strict:        c.cfg.Strict,
	})
	closeFn := func() {
		if err := backend.Close(); err != nil {
			c.Logger.Debug("close cache", "err", err)
		}
	}
	return client, closeFn, nil
}

// openCache opens the configured cache backend. A file cache that cannot
// be created degrades to no caching.
func (c *CLI) openCache(ctx context.Context) (cache.Cache, error) {
	if c.flags.noCache {
		return cache.NewNullCache(), nil
	}

	switch c.cfg.Cache.Backend {
	case backendNone:
		return cache.NewNullCache(), nil
	case backendRedis:
		return cache.NewRedisCache(ctx, cache.RedisOptions{
			Addr:     c.cfg.Redis.Addr,
			Password: c.cfg.Redis.Password,
			DB:       c.cfg.Redis.DB,
			Prefix:   appName + ":",
		})
	case backendMongo:
		return cache.NewMongoCache(ctx, cache.MongoOptions{
			URI:        c.cfg.Mongo.URI,
			Database:   c.cfg.Mongo.Database,
			Collection: c.cfg.Mongo.Collection,
		})
	case backendFile, "":
		dir, err := c.cacheDir()
		if err != nil {
			c.Logger.Warn("Caching disabled", "err", err)
			return cache.NewNullCache(), nil
		}
		fc, err := cache.NewFileCache(dir)
		if err != nil {
			c.Logger.Warn("Caching disabled", "dir", dir, "err", err)
			return cache.NewNullCache(), nil
		}
		return fc, nil
	default:
		return nil, fmt.Errorf("unknown cache backend %q (want file, redis, mongo or none)", c.cfg.Cache.Backend)
	}
}

// =============================================================================
// Paths
// =============================================================================

// cacheDir returns cache.dir from the config, or the XDG default.
func (c *CLI) cacheDir() (string, error) {
	if c.cfg.Cache.Dir != "" {
		return c.cfg.Cache.Dir, nil
	}
	return cacheDir()
}

// cacheDir returns the cache directory using XDG standard (~/.cache/carquery/).
func cacheDir() (string, error) {
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName), nil
}
