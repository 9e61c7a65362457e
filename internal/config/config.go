package config

import (
	"context"
	"fmt"
	"time"

	"github.com/caarlos0/env/v10"

	"github.com/gokatarajesh/exam-assembler/internal/selection"
)

// App holds core runtime configuration shared across services.
type App struct {
	Name                    string        `env:"APP_NAME" envDefault:"exam-assembler"`
	Env                     string        `env:"APP_ENV" envDefault:"development"`
	HTTPAddr                string        `env:"HTTP_ADDR" envDefault:"0.0.0.0:8080"`
	GracefulShutdownTimeout time.Duration `env:"GRACEFUL_SHUTDOWN_SECONDS" envDefault:"20s"`

	Postgres  Postgres
	Redis     Redis
	Security  Security
	Selection Selection
}

// Postgres captures connection info for the SQL database.
type Postgres struct {
	Host     string `env:"PG_HOST,notEmpty"`
	Port     int    `env:"PG_PORT" envDefault:"5432"`
	User     string `env:"PG_USER,notEmpty"`
	Password string `env:"PG_PASSWORD,notEmpty"`
	Database string `env:"PG_DATABASE,notEmpty"`
	SSLMode  string `env:"PG_SSL_MODE" envDefault:"disable"`
	MaxConns int    `env:"PG_MAX_CONNS" envDefault:"10"`
}

// DSN renders a keyword/value connection string for single connections.
func (p Postgres) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		p.Host, p.Port, p.User, p.Password, p.Database, p.SSLMode)
}

// ConnString is DSN plus the pgxpool sizing parameter.
func (p Postgres) ConnString() string {
	return fmt.Sprintf("%s pool_max_conns=%d", p.DSN(), p.MaxConns)
}

// Redis holds selection cache configuration. An empty address disables caching.
type Redis struct {
	Addr     string `env:"REDIS_ADDR"`
	DB       int    `env:"REDIS_DB" envDefault:"0"`
	PoolSize int    `env:"REDIS_POOL_SIZE" envDefault:"20"`
}

// Security stores secrets for signing and auth.
// An empty JWT secret leaves the staff routes closed.
type Security struct {
	JWTSecret         string        `env:"JWT_SECRET"`
	JWTIssuer         string        `env:"JWT_ISSUER" envDefault:"exam-assembler"`
	AccessTTL         time.Duration `env:"JWT_ACCESS_TTL" envDefault:"1h"`
	StaffPasswordHash string        `env:"STAFF_PASSWORD_HASH"`
}

// Selection tunes the question selection engine and the guards around it.
type Selection struct {
	MaxSearchCost     int64         `env:"SELECTION_MAX_SEARCH_COST" envDefault:"4000000"`
	MaxProfilesPerSum int           `env:"SELECTION_MAX_PROFILES_PER_SUM" envDefault:"1024"`
	AllowNearMatch    bool          `env:"SELECTION_ALLOW_NEAR_MATCH" envDefault:"true"`
	EasyWeight        int           `env:"SELECTION_WEIGHT_EASY" envDefault:"40"`
	MediumWeight      int           `env:"SELECTION_WEIGHT_MEDIUM" envDefault:"40"`
	HardWeight        int           `env:"SELECTION_WEIGHT_HARD" envDefault:"20"`
	MaxTargetMarks    int           `env:"SELECTION_MAX_TARGET_MARKS" envDefault:"1000"`
	CacheTTL          time.Duration `env:"SELECTION_CACHE_TTL" envDefault:"10m"`
	// Zero disables the inventory gauges worker.
	InventoryRefresh time.Duration `env:"INVENTORY_REFRESH_INTERVAL" envDefault:"5m"`
}

// EngineOptions converts the selection settings into engine options.
func (s Selection) EngineOptions() selection.Options {
	return selection.Options{
		MaxSearchCost:     s.MaxSearchCost,
		MaxProfilesPerSum: s.MaxProfilesPerSum,
		AllowNearMatch:    s.AllowNearMatch,
		Weights: map[selection.Difficulty]int{
			selection.DifficultyEasy:   s.EasyWeight,
			selection.DifficultyMedium: s.MediumWeight,
			selection.DifficultyHard:   s.HardWeight,
		},
	}
}

// Load parses environment variables into App config.
func Load(ctx context.Context) (*App, error) {
	cfg := &App{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (a *App) validate() error {
	s := a.Selection
	if s.EasyWeight < 0 || s.MediumWeight < 0 || s.HardWeight < 0 {
		return fmt.Errorf("selection weights must not be negative")
	}
	if s.EasyWeight+s.MediumWeight+s.HardWeight == 0 {
		return fmt.Errorf("at least one selection weight must be positive")
	}
	if s.MaxTargetMarks <= 0 {
		return fmt.Errorf("SELECTION_MAX_TARGET_MARKS must be positive")
	}
	return nil
}
