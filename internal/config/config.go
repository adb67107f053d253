package config

import (
	"fmt"
	"sort"
	"strings"

	"github.com/NikitaSawant21/Web-Asn4/internal/validator"
	"github.com/ilyakaznacheev/cleanenv"
)

// Config holds the full process configuration. Values come from a YAML file
// when one is supplied, otherwise from environment variables alone.
type Config struct {
	Port      int    `yaml:"port" env:"PORT" env-default:"4000"`
	Env       string `yaml:"env" env:"ENV" env-default:"development"`
	Employees struct {
		URI        string `yaml:"uri" env:"EMPLOYEES_MONGO_URI" env-default:"mongodb://localhost:27017"`
		Database   string `yaml:"database" env:"EMPLOYEES_MONGO_DATABASE" env-default:"employees"`
		Collection string `yaml:"collection" env:"EMPLOYEES_MONGO_COLLECTION" env-default:"employees"`
	} `yaml:"employees"`
	Movies struct {
		// URI is optional: when empty the movies store is never connected and
		// every movie operation answers 503.
		URI        string `yaml:"uri" env:"MOVIES_MONGO_URI"`
		Database   string `yaml:"database" env:"MOVIES_MONGO_DATABASE" env-default:"movies"`
		Collection string `yaml:"collection" env:"MOVIES_MONGO_COLLECTION" env-default:"movies"`
	} `yaml:"movies"`
	Limiter struct {
		Rps     float64 `yaml:"rps" env:"LIMITER_RPS" env-default:"25"`
		Burst   int     `yaml:"burst" env:"LIMITER_BURST" env-default:"50"`
		Enabled bool    `yaml:"enabled" env:"LIMITER_ENABLED" env-default:"true"`
	} `yaml:"limiter"`
	Cors struct {
		TrustedOrigins []string `yaml:"trusted_origins" env:"CORS_TRUSTED_ORIGINS" env-separator:" "`
	} `yaml:"cors"`
}

// Load reads configuration from the YAML file at path, or from the
// environment when path is empty.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	var err error
	if path != "" {
		err = cleanenv.ReadConfig(path, cfg)
	} else {
		err = cleanenv.ReadEnv(cfg)
	}
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// MoviesConfigured reports whether a movies store connection string was supplied.
func (c *Config) MoviesConfigured() bool {
	return c.Movies.URI != ""
}

func (c *Config) validate() error {
	v := validator.New()

	v.Check(c.Port > 0 && c.Port < 65536, "port", "must be between 1 and 65535")
	v.Check(validator.PermittedValue(c.Env, "development", "production"), "env", "must be either development or production")
	v.Check(c.Employees.URI != "", "employees.uri", "must be provided")
	v.Check(c.Employees.Database != "", "employees.database", "must be provided")
	v.Check(c.Employees.Collection != "", "employees.collection", "must be provided")
	if c.MoviesConfigured() {
		v.Check(c.Movies.Database != "", "movies.database", "must be provided")
		v.Check(c.Movies.Collection != "", "movies.collection", "must be provided")
	}
	if c.Limiter.Enabled {
		v.Check(c.Limiter.Rps > 0, "limiter.rps", "must be greater than zero")
		v.Check(c.Limiter.Burst > 0, "limiter.burst", "must be greater than zero")
	}

	if v.Valid() {
		return nil
	}

	fields := make([]string, 0, len(v.Errors))
	for key, msg := range v.Errors {
		fields = append(fields, key+" "+msg)
	}
	sort.Strings(fields)
	return fmt.Errorf("invalid configuration: %s", strings.Join(fields, "; "))
}
