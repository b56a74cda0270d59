package profilecard

import (
	"context"
	"flag"
	"strings"
	"testing"
	"time"
)

func TestParseConfigDefaults(t *testing.T) {
	t.Setenv("PROFILECARD_ENV_FILE", "does-not-exist.env")

	cfg, err := ParseConfig(flag.NewFlagSet("profilecard", flag.ContinueOnError), nil)
	if err != nil {
		t.Fatalf("ParseConfig() error = %v", err)
	}
	if cfg.HTTPAddr != "localhost:8080" {
		t.Fatalf("HTTPAddr = %q, want %q", cfg.HTTPAddr, "localhost:8080")
	}
	if cfg.BannerURL != "" {
		t.Fatalf("BannerURL = %q, want empty", cfg.BannerURL)
	}
	if cfg.Timezone != "Local" {
		t.Fatalf("Timezone = %q, want %q", cfg.Timezone, "Local")
	}
}

func TestParseConfigFlagsOverrideEnv(t *testing.T) {
	t.Setenv("PROFILECARD_ENV_FILE", "does-not-exist.env")
	t.Setenv("PROFILECARD_HTTP_ADDR", "env:9000")
	t.Setenv("PROFILECARD_BANNER_URL", "https://example.com/env.jpg")

	cfg, err := ParseConfig(flag.NewFlagSet("profilecard", flag.ContinueOnError), []string{"-http-addr", "flag:9001", "-timezone", "UTC"})
	if err != nil {
		t.Fatalf("ParseConfig() error = %v", err)
	}
	if cfg.HTTPAddr != "flag:9001" {
		t.Fatalf("HTTPAddr = %q, want flag value", cfg.HTTPAddr)
	}
	if cfg.BannerURL != "https://example.com/env.jpg" {
		t.Fatalf("BannerURL = %q, want env value", cfg.BannerURL)
	}
	if cfg.Timezone != "UTC" {
		t.Fatalf("Timezone = %q, want %q", cfg.Timezone, "UTC")
	}
}

func TestParseConfigRejectsUnknownFlag(t *testing.T) {
	t.Setenv("PROFILECARD_ENV_FILE", "does-not-exist.env")

	fs := flag.NewFlagSet("profilecard", flag.ContinueOnError)
	fs.SetOutput(&strings.Builder{})
	if _, err := ParseConfig(fs, []string{"-nope"}); err == nil {
		t.Fatal("expected unknown flag error")
	}
}

func TestConfigLocation(t *testing.T) {
	t.Parallel()

	loc, err := Config{Timezone: "Local"}.Location()
	if err != nil || loc != time.Local {
		t.Fatalf("Location(Local) = %v, %v", loc, err)
	}
	loc, err = Config{Timezone: ""}.Location()
	if err != nil || loc != time.Local {
		t.Fatalf("Location(empty) = %v, %v", loc, err)
	}
	loc, err = Config{Timezone: "UTC"}.Location()
	if err != nil || loc != time.UTC {
		t.Fatalf("Location(UTC) = %v, %v", loc, err)
	}
	if _, err := (Config{Timezone: "Not/AZone"}).Location(); err == nil {
		t.Fatal("expected error for unknown timezone")
	}
}

func TestRunRejectsInvalidConfig(t *testing.T) {
	t.Parallel()

	if err := Run(context.Background(), Config{HTTPAddr: "localhost:0", Timezone: "Not/AZone"}); err == nil {
		t.Fatal("expected timezone error")
	}
	if err := Run(context.Background(), Config{HTTPAddr: " "}); err == nil || !strings.Contains(err.Error(), "init web server") {
		t.Fatalf("Run(blank addr) error = %v, want init error", err)
	}
}
