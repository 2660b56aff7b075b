package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("BOT_TOKEN", "123:abc")
	t.Setenv("OWNER_ID", "99")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.BotToken != "123:abc" || cfg.OwnerID != 99 {
		t.Errorf("cfg = %+v", cfg)
	}
	if cfg.DBPath != "bot.db" {
		t.Errorf("DBPath = %q", cfg.DBPath)
	}
	if cfg.Timezone != "Europe/Moscow" {
		t.Errorf("Timezone = %q", cfg.Timezone)
	}
}

func TestLocationFallsBackToUTC(t *testing.T) {
	c := &Config{Timezone: "Nowhere/Invalid"}
	if got := c.Location(); got != time.UTC {
		t.Errorf("Location = %v, want UTC", got)
	}
}
