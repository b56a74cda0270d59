// Package profilecard parses card service config and launches the server.
package profilecard

import (
	"context"
	"flag"
	"fmt"
	"strings"
	"time"

	entrypoint "github.com/louisbranch/profilecard/internal/platform/cmd"
	"github.com/louisbranch/profilecard/internal/services/web"
)

// Config holds the card command configuration.
type Config struct {
	HTTPAddr  string `env:"PROFILECARD_HTTP_ADDR" envDefault:"localhost:8080"`
	BannerURL string `env:"PROFILECARD_BANNER_URL"`
	Timezone  string `env:"PROFILECARD_TIMEZONE" envDefault:"Local"`
}

// ParseConfig parses environment and flags into Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}
	fs.StringVar(&cfg.HTTPAddr, "http-addr", cfg.HTTPAddr, "HTTP listen address")
	fs.StringVar(&cfg.BannerURL, "banner-url", cfg.BannerURL, "Card banner image URL")
	fs.StringVar(&cfg.Timezone, "timezone", cfg.Timezone, "IANA timezone that decides today for ages")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Location resolves the configured timezone.
func (c Config) Location() (*time.Location, error) {
	name := strings.TrimSpace(c.Timezone)
	if name == "" || strings.EqualFold(name, "local") {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("load timezone %q: %w", name, err)
	}
	return loc, nil
}

// Run starts the profile card server.
func Run(ctx context.Context, cfg Config) error {
	loc, err := cfg.Location()
	if err != nil {
		return err
	}
	server, err := web.NewServer(web.Config{
		HTTPAddr:  cfg.HTTPAddr,
		BannerURL: strings.TrimSpace(cfg.BannerURL),
		Location:  loc,
	})
	if err != nil {
		return fmt.Errorf("init web server: %w", err)
	}
	defer server.Close()

	return entrypoint.RunWithTelemetry(ctx, entrypoint.ServiceProfileCard, func(ctx context.Context) error {
		if err := server.ListenAndServe(ctx); err != nil {
			return fmt.Errorf("serve web: %w", err)
		}
		return nil
	})
}
