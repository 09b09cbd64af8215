// Package cli implements the fincalc subcommands.
package cli

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"
	"github.com/rs/zerolog"

	"fincalc/config"
	"fincalc/logger"
	"fincalc/repository"
)

// Commands lists every subcommand in registration order.
func Commands() []subcommands.Command {
	return []subcommands.Command{
		&serveCmd{},
		&gainsCmd{},
		&emiCmd{},
		&swpCmd{},
		&limitsCmd{},
	}
}

// Register adds the subcommands to a commander.
func Register(c *subcommands.Commander) {
	c.Register(c.HelpCommand(), "")
	c.Register(c.FlagsCommand(), "")
	for _, cmd := range Commands() {
		group := "calculators"
		if cmd.Name() == "serve" || cmd.Name() == "limits" {
			group = "service"
		}
		c.Register(cmd, group)
	}
}

// limitsPath is shared by every subcommand so calculator defaults follow
// the same table the server validates against.
var limitsPath = flag.String("limits", "", "Path to a limits YAML file (defaults to the built-in table)")

func loadLimits() *config.Limits {
	limits, err := config.LoadLimits(*limitsPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading limits: %v\n", err)
		return config.DefaultLimits()
	}
	return limits
}

// newCache picks Redis when an address is configured, memory otherwise.
func newCache(ctx context.Context, cfg *config.Config, log zerolog.Logger) (repository.CacheRepository, func()) {
	if cfg.RedisAddr == "" {
		return repository.NewMemoryCache(cfg.CacheTTL, cfg.CacheMaxEntries), func() {}
	}

	cache := repository.NewRedisCache(cfg.RedisAddr, cfg.CacheTTL, log)
	pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := cache.Ping(pingCtx); err != nil {
		log.Warn().Err(err).Str("addr", cfg.RedisAddr).Msg("Redis unreachable, results will be recomputed until it recovers")
	}
	return cache, func() {
		if err := cache.Close(); err != nil {
			log.Warn().Err(err).Msg("Failed to close redis client")
		}
	}
}

func commandLogger() zerolog.Logger {
	return logger.New(logger.Config{Level: "warn", Pretty: true, Output: os.Stderr})
}

// printMarkdown renders md for the terminal, or writes it as is when raw.
func printMarkdown(w io.Writer, md string, raw bool) error {
	if raw {
		_, err := io.WriteString(w, md)
		return err
	}

	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(120),
	)
	if err != nil {
		return err
	}
	out, err := r.Render(md)
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, out)
	return err
}
