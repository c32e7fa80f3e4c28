package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadFileDefaults(t *testing.T) {
	cfg, err := LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if cfg.Port != 3000 || cfg.Mode != "release" || cfg.StaticPath != "./public" {
		t.Errorf("unexpected defaults %+v", cfg)
	}
	if cfg.PingPeriod != 54*time.Second || cfg.ReadLimit != 32768 || cfg.SendBuffer != 64 {
		t.Errorf("unexpected transport defaults %+v", cfg)
	}
	if cfg.RateLimit.Messages != 10 || cfg.RateLimit.Interval != 5*time.Second {
		t.Errorf("unexpected rate limit %+v", cfg.RateLimit)
	}
	if cfg.MapsURL != "https://google.com/maps" {
		t.Errorf("MapsURL = %q", cfg.MapsURL)
	}
}

func TestLoadFileYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.test.yaml")
	body := `
mode: debug
port: 9090
ping_period: 10s
rate_limit:
  messages: 3
  interval: 1s
profanity:
  extra_words: [blorf, zonk]
`
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatal(err)
	}
	cfg, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if cfg.Mode != "debug" || cfg.Port != 9090 || cfg.PingPeriod != 10*time.Second {
		t.Errorf("unexpected config %+v", cfg)
	}
	if cfg.RateLimit.Messages != 3 || cfg.RateLimit.Interval != time.Second {
		t.Errorf("unexpected rate limit %+v", cfg.RateLimit)
	}
	if len(cfg.Profanity.ExtraWords) != 2 || cfg.Profanity.ExtraWords[1] != "zonk" {
		t.Errorf("unexpected extra words %v", cfg.Profanity.ExtraWords)
	}
}

func TestLoadFileEnvOverride(t *testing.T) {
	t.Setenv("CHAT_PORT", "4242")
	t.Setenv("CHAT_RATE_LIMIT_MESSAGES", "7")
	cfg, err := LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if cfg.Port != 4242 || cfg.RateLimit.Messages != 7 {
		t.Errorf("env not applied: %+v", cfg)
	}
}

func TestLoadFileInvalid(t *testing.T) {
	t.Setenv("CHAT_SEND_BUFFER", "0")
	if _, err := LoadFile(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected validation error for zero send_buffer")
	}
}
