package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/srgjo27/eventflow/internal/core/pricing"
	"github.com/srgjo27/eventflow/internal/platform/database"
)

const (
	StorageMemory   = "memory"
	StorageFile     = "file"
	StorageRedis    = "redis"
	StoragePostgres = "postgres"
)

type Config struct {
	HTTPAddr     string
	LogLevel     string
	Storage      string
	StorageDir   string
	CatalogFile  string
	PaymentDelay time.Duration
	SessionTTL   time.Duration
	Database     database.Config
	Redis        RedisConfig
	Inventory    pricing.InventoryPolicy
	Discount     pricing.DiscountPolicy
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
	Prefix   string
}

func (r RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%s", r.Host, r.Port)
}

// Load reads envFile into the process environment when it exists, then
// builds the configuration from environment variables.
func Load(envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to read %s: %w", envFile, err)
		}
	}

	var p parser
	cfg := &Config{
		HTTPAddr:     getEnv("HTTP_ADDR", ":8080"),
		LogLevel:     getEnv("LOG_LEVEL", "info"),
		Storage:      getEnv("STORAGE", StorageMemory),
		StorageDir:   os.Getenv("STORAGE_DIR"),
		CatalogFile:  os.Getenv("CATALOG_FILE"),
		PaymentDelay: p.getDuration("PAYMENT_DELAY", 2*time.Second),
		SessionTTL:   p.getDuration("SESSION_TTL", 30*time.Minute),
		Database: database.Config{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "postgres"),
			Password: os.Getenv("DB_PASSWORD"),
			DBName:   getEnv("DB_NAME", "eventflow"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
		},
		Redis: RedisConfig{
			Host:     getEnv("REDIS_HOST", "localhost"),
			Port:     getEnv("REDIS_PORT", "6379"),
			Password: os.Getenv("REDIS_PASSWORD"),
			DB:       p.getInt("REDIS_DB", 0),
			Prefix:   getEnv("REDIS_PREFIX", "eventflow"),
		},
		Inventory: pricing.InventoryPolicy{
			ReserveProbability: p.getFloat("RESERVE_PROBABILITY", pricing.DefaultReserveProbability),
			Seed:               p.getUint("SEATMAP_SEED", 0),
			StableMaps:         p.getBool("SEATMAP_STABLE", false),
		},
		Discount: pricing.DiscountPolicy{
			MinSeats: p.getInt("DISCOUNT_MIN_SEATS", pricing.DefaultDiscountMinSeats),
			Rate:     p.getFloat("DISCOUNT_RATE", pricing.DefaultDiscountRate),
		},
	}
	if p.err != nil {
		return nil, p.err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	switch c.Storage {
	case StorageMemory, StorageFile, StorageRedis, StoragePostgres:
	default:
		return fmt.Errorf("unknown STORAGE %q", c.Storage)
	}
	if c.Inventory.ReserveProbability < 0 || c.Inventory.ReserveProbability > 1 {
		return errors.New("RESERVE_PROBABILITY must be between 0 and 1")
	}
	if c.Discount.MinSeats < 1 {
		return errors.New("DISCOUNT_MIN_SEATS must be at least 1")
	}
	if c.Discount.Rate < 0 || c.Discount.Rate > 1 {
		return errors.New("DISCOUNT_RATE must be between 0 and 1")
	}
	if c.PaymentDelay < 0 {
		return errors.New("PAYMENT_DELAY must not be negative")
	}
	if c.SessionTTL <= 0 {
		return errors.New("SESSION_TTL must be positive")
	}
	return nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// parser keeps the first conversion error so Load can report it once.
type parser struct {
	err error
}

func (p *parser) lookup(key string) (string, bool) {
	v, ok := os.LookupEnv(key)
	return v, ok && v != ""
}

func (p *parser) fail(key, value string, err error) {
	if p.err == nil {
		p.err = fmt.Errorf("invalid %s %q: %w", key, value, err)
	}
}

func (p *parser) getInt(key string, fallback int) int {
	v, ok := p.lookup(key)
	if !ok {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		p.fail(key, v, err)
		return fallback
	}
	return n
}

func (p *parser) getUint(key string, fallback uint64) uint64 {
	v, ok := p.lookup(key)
	if !ok {
		return fallback
	}
	n, err := strconv.ParseUint(v, 10, 64)
	if err != nil {
		p.fail(key, v, err)
		return fallback
	}
	return n
}

func (p *parser) getFloat(key string, fallback float64) float64 {
	v, ok := p.lookup(key)
	if !ok {
		return fallback
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		p.fail(key, v, err)
		return fallback
	}
	return f
}

func (p *parser) getBool(key string, fallback bool) bool {
	v, ok := p.lookup(key)
	if !ok {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		p.fail(key, v, err)
		return fallback
	}
	return b
}

func (p *parser) getDuration(key string, fallback time.Duration) time.Duration {
	v, ok := p.lookup(key)
	if !ok {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		p.fail(key, v, err)
		return fallback
	}
	return d
}
