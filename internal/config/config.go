package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

const (
	SourceFile     = "file"
	SourcePostgres = "postgres"
)

type Config struct {
	Port           int
	ProvincesFile  string
	StaticDir      string
	TemplatesDir   string
	ProvinceSource string
	PostgresURL    string
	LogLevel       string
	LogFormat      string
	GinMode        string
}

// Load reads .env (if any) and then the process environment. Variables
// already set in the environment win over .env entries.
func Load(envFiles ...string) (*Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, f := range envFiles {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("load %s: %w", f, err)
		}
	}
	return FromLookup(os.LookupEnv)
}

// FromLookup builds a Config from lookup, applying defaults for unset keys.
func FromLookup(lookup func(string) (string, bool)) (*Config, error) {
	get := func(key, def string) string {
		if v, ok := lookup(key); ok && strings.TrimSpace(v) != "" {
			return strings.TrimSpace(v)
		}
		return def
	}

	port, err := strconv.Atoi(get("PORT", "8000"))
	if err != nil || port < 1 || port > 65535 {
		return nil, fmt.Errorf("invalid PORT %q", get("PORT", ""))
	}

	cfg := &Config{
		Port:           port,
		ProvincesFile:  get("PROVINCES_FILE", "provinces.json"),
		StaticDir:      get("STATIC_DIR", "static"),
		TemplatesDir:   get("TEMPLATES_DIR", "templates"),
		ProvinceSource: strings.ToLower(get("PROVINCE_SOURCE", SourceFile)),
		PostgresURL:    get("POSTGRES_URL", ""),
		LogLevel:       strings.ToLower(get("LOG_LEVEL", "info")),
		LogFormat:      strings.ToLower(get("LOG_FORMAT", "console")),
		GinMode:        get("GIN_MODE", "release"),
	}

	switch cfg.ProvinceSource {
	case SourceFile:
	case SourcePostgres:
		if cfg.PostgresURL == "" {
			return nil, errors.New("POSTGRES_URL is required when PROVINCE_SOURCE=postgres")
		}
	default:
		return nil, fmt.Errorf("invalid PROVINCE_SOURCE %q (want %q or %q)", cfg.ProvinceSource, SourceFile, SourcePostgres)
	}

	switch cfg.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return nil, fmt.Errorf("invalid LOG_LEVEL %q", cfg.LogLevel)
	}

	switch cfg.LogFormat {
	case "json", "console":
	default:
		return nil, fmt.Errorf("invalid LOG_FORMAT %q", cfg.LogFormat)
	}

	switch cfg.GinMode {
	case "debug", "release", "test":
	default:
		return nil, fmt.Errorf("invalid GIN_MODE %q", cfg.GinMode)
	}

	return cfg, nil
}

func (c *Config) Addr() string {
	return ":" + strconv.Itoa(c.Port)
}
