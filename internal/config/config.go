package config

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

type Config struct {
	Env        string `yaml:"env" env:"ENV" env-default:"local"`
	TimeZone   string `yaml:"time_zone" env:"TIME_ZONE" env-default:"UTC"`
	HTTPServer `yaml:"http_server"`
	Database   `yaml:"database"`
	Auth       `yaml:"auth"`
	Cache      `yaml:"cache"`
	RateLimit  `yaml:"rate_limit"`
}

type HTTPServer struct {
	Address     string        `yaml:"address" env:"HTTP_ADDRESS" env-default:"localhost:8080"`
	Timeout     time.Duration `yaml:"timeout" env-default:"4s"`
	IdleTimeout time.Duration `yaml:"idle_timeout" env-default:"60s"`
	// TrustProxy takes the client address from X-Forwarded-For / X-Real-IP.
	// Only enable it behind a proxy that overwrites those headers.
	TrustProxy bool `yaml:"trust_proxy" env:"HTTP_TRUST_PROXY" env-default:"false"`
}

type Database struct {
	Host     string `yaml:"host" env:"DB_HOST" env-default:"localhost"`
	Port     int    `yaml:"port" env:"DB_PORT" env-default:"5432"`
	User     string `yaml:"user" env:"DB_USER" env-default:"postgres"`
	Password string `yaml:"password" env:"DB_PASSWORD"`
	DBName   string `yaml:"dbname" env:"DB_NAME" env-default:"meetup"`
	SSLMode  string `yaml:"sslmode" env:"DB_SSLMODE" env-default:"disable"`
}

type Auth struct {
	SupabaseURL     string `yaml:"supabase_url" env:"SUPABASE_URL"`
	SupabaseAnonKey string `yaml:"supabase_anon_key" env:"SUPABASE_ANON_KEY"`
	JWTSecret       string `yaml:"jwt_secret" env:"SUPABASE_JWT_SECRET" env-required:"true"`
	JWTIssuer       string `yaml:"jwt_issuer" env:"SUPABASE_JWT_ISSUER"`
	LoginPath       string `yaml:"login_path" env-default:"/auth/login"`
	CookieSecure    bool   `yaml:"cookie_secure" env:"AUTH_COOKIE_SECURE" env-default:"true"`
}

type Cache struct {
	RedisURL string        `yaml:"redis_url" env:"REDIS_URL"`
	TTL      time.Duration `yaml:"ttl" env-default:"5m"`
}

type RateLimit struct {
	Enabled  bool          `yaml:"enabled" env:"RATE_LIMIT_ENABLED" env-default:"true"`
	Requests int           `yaml:"requests" env-default:"20"`
	Window   time.Duration `yaml:"window" env-default:"1m"`
}

func MustLoad() *Config {
	// a missing .env is fine, the file only pre-populates the environment
	_ = godotenv.Load()

	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		log.Fatal("CONFIG_PATH is not set")
	}

	cfg, err := Load(configPath)
	if err != nil {
		log.Fatal(err)
	}

	return cfg
}

func Load(configPath string) (*Config, error) {
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file does not exist: %s", configPath)
	}

	var cfg Config

	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		return nil, fmt.Errorf("cannot read config: %w", err)
	}

	if _, err := cfg.Location(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Location resolves TimeZone. Event dates submitted without an offset are
// interpreted in it.
func (c *Config) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.TimeZone)
	if err != nil {
		return nil, fmt.Errorf("invalid time_zone %q: %w", c.TimeZone, err)
	}

	return loc, nil
}
