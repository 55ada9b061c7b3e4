// Package config reads server settings from an optional wbc.yaml (or the
// file named by WBC_CONFIG), a .env file and WBC_* environment variables.
package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Port           string
	SQLitePath     string // empty: use the embedded JSON dataset
	PolicyPath     string // empty: use the embedded default policy
	MaxEnemyRaces  int
	AllowedOrigins []string
}

// Load reads .env into the environment, then the config file and the
// environment.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("[CONFIG] no .env file found, reading environment variables directly")
	}
	return Read(viper.New(), os.Getenv("WBC_CONFIG"))
}

// Read fills v and decodes it. A missing wbc.yaml is fine; a missing file
// named explicitly is not.
func Read(v *viper.Viper, file string) (Config, error) {
	v.SetDefault("port", "8080")
	v.SetDefault("dataset.sqlite_path", "")
	v.SetDefault("policy.path", "")
	v.SetDefault("matchups.max_enemy_races", 5)
	v.SetDefault("cors.allowed_origins", []string{"http://localhost:5173", "http://localhost:8080"})

	v.SetEnvPrefix("WBC")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	if err := v.BindEnv("port", "WBC_PORT", "PORT"); err != nil {
		return Config{}, err
	}

	if file != "" {
		v.SetConfigFile(file)
	} else {
		v.SetConfigName("wbc")
		v.AddConfigPath(".")
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if file != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	} else {
		log.Printf("[CONFIG] using %s", v.ConfigFileUsed())
	}

	cfg := Config{
		Port:           v.GetString("port"),
		SQLitePath:     v.GetString("dataset.sqlite_path"),
		PolicyPath:     v.GetString("policy.path"),
		MaxEnemyRaces:  v.GetInt("matchups.max_enemy_races"),
		AllowedOrigins: origins(v.Get("cors.allowed_origins")),
	}
	if cfg.Port == "" {
		return Config{}, errors.New("port must not be empty")
	}
	if cfg.MaxEnemyRaces < 0 {
		return Config{}, fmt.Errorf("matchups.max_enemy_races must be >= 0, got %d", cfg.MaxEnemyRaces)
	}
	return cfg, nil
}

// origins accepts a list from a config file or a comma separated string
// from the environment.
func origins(raw any) []string {
	var parts []string
	switch x := raw.(type) {
	case string:
		parts = strings.Split(x, ",")
	case []string:
		parts = x
	case []any:
		for _, p := range x {
			parts = append(parts, fmt.Sprint(p))
		}
	}
	out := []string{}
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
