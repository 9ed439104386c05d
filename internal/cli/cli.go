// Package cli implements the logicmap command-line interface.
//
// This package provides commands for comparing the discourse structure of
// two text passages, inspecting single passages, re-rendering saved graphs,
// serving the analysis over HTTP, and managing the parse response cache.
// The CLI is built using cobra and supports verbose logging via the
// charmbracelet/log library.
//
// # Commands
//
// The main commands are:
//   - analyze: Parse two passages and compare their logical structure
//   - depth: Parse a single passage and report its depth
//   - render: Re-render a saved graph JSON file
//   - serve: Expose the analysis pipeline as an HTTP API
//   - cache: Manage the parse response cache
package cli

import (
	"io"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/Holmfrior/Technopreneurship/pkg/buildinfo"
	"github.com/Holmfrior/Technopreneurship/pkg/cache"
	"github.com/Holmfrior/Technopreneurship/pkg/config"
	"github.com/Holmfrior/Technopreneurship/pkg/errors"
	"github.com/Holmfrior/Technopreneurship/pkg/parse"
	"github.com/Holmfrior/Technopreneurship/pkg/pipeline"
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
	Logger  *log.Logger
	cfg     config.Config
	cfgPath string
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
		cfg:    config.Default(),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          "logicmap",
		Short:        "Logicmap compares the logical structure of text passages",
		Long:         `Logicmap parses text passages into discourse trees and visualizes them side by side, making it easy to see whether a rewrite preserves the logical complexity of the original.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(c.cfgPath)
			if err != nil {
				return err
			}
			c.cfg = cfg
			return nil
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().StringVar(&c.cfgPath, "config", "", "config file (default: ~/.config/logicmap/config.toml)")

	// Register all subcommands
	root.AddCommand(c.analyzeCommand())
	root.AddCommand(c.depthCommand())
	root.AddCommand(c.renderCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.runsCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Runner Factory
// =============================================================================

// newRunner creates a pipeline runner backed by the parsing service.
// The returned close function releases the cache backend.
func (c *CLI) newRunner(server string, noCache bool) (*pipeline.Runner, func(), error) {
	server, err := c.resolveServer(server)
	if err != nil {
		return nil, nil, err
	}
	backend := c.newCache(noCache)
	client := parse.NewClient(server, backend, c.cfg.Cache.TTLDuration())
	closeFn := func() { _ = backend.Close() }
	return pipeline.NewRunner(client, c.Logger), closeFn, nil
}

// newCache builds the cache backend, falling back to a null cache when
// caching is disabled or the directory is unavailable.
func (c *CLI) newCache(noCache bool) cache.Cache {
	if noCache {
		return cache.NewNullCache()
	}
	dir, err := c.cfg.CacheDir()
	if err != nil {
		return cache.NewNullCache()
	}
	fc, err := cache.NewFileCache(dir)
	if err != nil {
		c.Logger.Warn("cache disabled", "error", err)
		return cache.NewNullCache()
	}
	return fc
}

// resolveServer picks the parsing-service URL: the flag wins over the
// config file. An empty result is an error since there is no usable default.
func (c *CLI) resolveServer(flagValue string) (string, error) {
	server := flagValue
	if server == "" {
		server = c.cfg.Server
	}
	if server == "" {
		return "", errors.New(errors.ErrCodeInvalidServer,
			"no parsing server configured (use --server or set 'server' in the config file)")
	}
	if err := errors.ValidateServerURL(server); err != nil {
		return "", err
	}
	return server, nil
}

// =============================================================================
// Options Helpers
// =============================================================================

// parseFormats parses a comma-separated format string into a slice.
func parseFormats(s string) []string {
	if s == "" {
		return []string{pipeline.FormatSVG}
	}
	return strings.Split(s, ",")
}
