package config

import (
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

type Config struct {
	BotToken string `env:"BOT_TOKEN,required"`
	OwnerID  int64  `env:"OWNER_ID,required"`
	DBPath   string `env:"DB_PATH" envDefault:"bot.db"`
	Timezone string `env:"BOT_TZ" envDefault:"Europe/Moscow"`
	Debug    bool   `env:"BOT_DEBUG"`
}

// Load reads .env (when present) and the process environment.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := new(Config)
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Location resolves the configured timezone, falling back to UTC on a bad
// IANA name rather than refusing to start.
func (c *Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}
