package cli

import (
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/lucidkit/lucidkit/pkg/buildinfo"
	"github.com/lucidkit/lucidkit/pkg/httputil"
	"github.com/lucidkit/lucidkit/pkg/lucid"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// appName is the application name used for directories and display.
	appName = "lucidkit"

	// cacheTTL is how long fetched document metadata stays fresh.
	cacheTTL = 15 * time.Minute
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	// configPath is the --config flag value, empty for the default search.
	configPath string
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
		Use:          "lucidkit",
		Short:        "Lucidkit builds and uploads Lucidchart documents",
		Long:         `Lucidkit assembles diagram documents in the Lucid standard import format and uploads them to Lucidchart through the Lucid REST API.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return nil
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().StringVar(&c.configPath, "config", "", "path to config.toml (default: ./config.toml, then ~/.config/lucidkit/config.toml)")

	// Register all subcommands
	root.AddCommand(c.newCommand())
	root.AddCommand(c.inspectCommand())
	root.AddCommand(c.uploadCommand())
	root.AddCommand(c.fetchCommand())
	root.AddCommand(c.trashCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Client Factory
// =============================================================================

// newClient resolves the API key and builds a Lucid API client. With
// noCache the client skips the on-disk metadata cache.
func (c *CLI) newClient(noCache bool) (*lucid.Client, error) {
	key, err := lucid.LoadAPIKey(c.configPath)
	if err != nil {
		return nil, err
	}

	var opts []lucid.Option
	if !noCache {
		if cache, err := newCache(); err == nil {
			opts = append(opts, lucid.WithCache(cache))
		}
	}
	return lucid.NewClient(key, opts...)
}

func newCache() (*httputil.Cache, error) {
	dir, err := cacheDir()
	if err != nil {
		return nil, err
	}
	return httputil.NewCache(dir, cacheTTL)
}

// =============================================================================
// Paths
// =============================================================================

// cacheDir returns the cache directory using XDG standard (~/.cache/lucidkit/).
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
