package config

import (
	"log"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Port        string `mapstructure:"PORT"`
	DBPath      string `mapstructure:"DB_PATH"`
	SeedPath    string `mapstructure:"SEED_PATH"`
	DatabaseURL string `mapstructure:"DATABASE_URL"`
	RedisAddr   string `mapstructure:"REDIS_ADDR"`
	CacheTTL    time.Duration
}

// Load reads configuration from a .env file in path (if present) and
// the environment. Environment variables win over file values.
func Load(path string) (*Config, error) {
	viper.AddConfigPath(path)
	viper.SetConfigName(".env")
	viper.SetConfigType("env")

	viper.AutomaticEnv()

	viper.SetDefault("PORT", "8080")
	viper.SetDefault("DB_PATH", "data/app.db")
	viper.SetDefault("SEED_PATH", "data/seeds/countries.json")
	viper.SetDefault("REDIS_ADDR", "")
	viper.SetDefault("CACHE_TTL_MINUTES", 15)

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			log.Println("No .env file found (using environment variables)")
		} else {
			return nil, err
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	cfg.CacheTTL = time.Duration(viper.GetInt("CACHE_TTL_MINUTES")) * time.Minute

	return &cfg, nil
}
