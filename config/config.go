package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/spf13/viper"
)

var ErrMissingJWTSecret = errors.New("JWT_SECRET is required")

type Config struct {
	App       AppConfig
	DB        DBConfig
	Redis     RedisConfig
	JWT       JWTConfig
	Kafka     KafkaConfig
	RateLimit RateLimitConfig
	Dashboard DashboardConfig
	CORS      CORSConfig
	Seed      SeedConfig
}

type AppConfig struct {
	Port     string
	Env      string
	LogLevel string
}

type DBConfig struct {
	Host        string
	Port        string
	User        string
	Password    string
	Name        string
	SSLMode     string
	TimeZone    string
	AutoMigrate bool
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

type JWTConfig struct {
	Secret        string
	AccessExpiry  time.Duration
	RefreshExpiry time.Duration
}

type KafkaConfig struct {
	Brokers          string
	AppointmentTopic string
}

// RateLimitConfig bounds requests per client IP on the public auth routes
type RateLimitConfig struct {
	RPS   float64
	Burst int
}

type DashboardConfig struct {
	CacheTTL time.Duration
}

// CORSConfig lists the browser origins allowed to call the API; "*" allows any
type CORSConfig struct {
	AllowedOrigins []string
}

type SeedConfig struct {
	AdminEmail    string
	AdminPassword string
}

// LoadConfig reads .env from the working directory when present; environment variables always win.
func LoadConfig() (*Config, error) {
	return load(".env")
}

func load(envFile string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(envFile)
	v.SetConfigType("env")
	v.AutomaticEnv()
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config %s: %w", envFile, err)
		}
	}

	config := &Config{
		App: AppConfig{
			Port:     v.GetString("APP_PORT"),
			Env:      v.GetString("APP_ENV"),
			LogLevel: v.GetString("LOG_LEVEL"),
		},
		DB: DBConfig{
			Host:        v.GetString("DB_HOST"),
			Port:        v.GetString("DB_PORT"),
			User:        v.GetString("DB_USER"),
			Password:    v.GetString("DB_PASSWORD"),
			Name:        v.GetString("DB_NAME"),
			SSLMode:     v.GetString("DB_SSLMODE"),
			TimeZone:    v.GetString("DB_TIMEZONE"),
			AutoMigrate: v.GetBool("DB_AUTO_MIGRATE"),
		},
		Redis: RedisConfig{
			Host:     v.GetString("REDIS_HOST"),
			Port:     v.GetString("REDIS_PORT"),
			Password: v.GetString("REDIS_PASSWORD"),
			DB:       v.GetInt("REDIS_DB"),
		},
		JWT: JWTConfig{
			Secret:        v.GetString("JWT_SECRET"),
			AccessExpiry:  durationOr(v, "JWT_ACCESS_EXPIRY", 15*time.Minute),
			RefreshExpiry: durationOr(v, "JWT_REFRESH_EXPIRY", 7*24*time.Hour),
		},
		Kafka: KafkaConfig{
			Brokers:          v.GetString("KAFKA_BROKERS"),
			AppointmentTopic: v.GetString("KAFKA_APPOINTMENT_TOPIC"),
		},
		RateLimit: RateLimitConfig{
			RPS:   v.GetFloat64("RATE_LIMIT_RPS"),
			Burst: v.GetInt("RATE_LIMIT_BURST"),
		},
		Dashboard: DashboardConfig{
			CacheTTL: durationOr(v, "DASHBOARD_CACHE_TTL", 30*time.Second),
		},
		CORS: CORSConfig{
			AllowedOrigins: splitList(v.GetString("CORS_ALLOWED_ORIGINS")),
		},
		Seed: SeedConfig{
			AdminEmail:    v.GetString("SEED_ADMIN_EMAIL"),
			AdminPassword: v.GetString("SEED_ADMIN_PASSWORD"),
		},
	}

	if config.JWT.Secret == "" {
		return nil, ErrMissingJWTSecret
	}
	if _, err := time.LoadLocation(config.DB.TimeZone); err != nil {
		return nil, fmt.Errorf("invalid DB_TIMEZONE %q: %w", config.DB.TimeZone, err)
	}

	return config, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("APP_PORT", "8080")
	v.SetDefault("APP_ENV", "development")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("DB_USER", "postgres")
	v.SetDefault("DB_PASSWORD", "postgres")
	v.SetDefault("DB_NAME", "hospital")
	v.SetDefault("DB_SSLMODE", "disable")
	v.SetDefault("DB_TIMEZONE", "UTC")
	v.SetDefault("DB_AUTO_MIGRATE", false)
	v.SetDefault("REDIS_HOST", "localhost")
	v.SetDefault("REDIS_PORT", "6379")
	v.SetDefault("REDIS_DB", 0)
	v.SetDefault("KAFKA_APPOINTMENT_TOPIC", "appointments")
	v.SetDefault("RATE_LIMIT_RPS", 5)
	v.SetDefault("RATE_LIMIT_BURST", 10)
	v.SetDefault("CORS_ALLOWED_ORIGINS", "*")
	v.SetDefault("SEED_ADMIN_EMAIL", "admin@hospital.com")
	v.SetDefault("SEED_ADMIN_PASSWORD", "admin123")
}

// splitList turns "a, b,,c" into [a b c]
func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// durationOr parses key as a Go duration, falling back to def when unset or malformed
func durationOr(v *viper.Viper, key string, def time.Duration) time.Duration {
	raw := v.GetString(key)
	if raw == "" {
		return def
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return def
	}
	return d
}

// Location is the time zone that decides which calendar day is "today"; UTC when unset or unknown
func (c DBConfig) Location() *time.Location {
	loc, err := time.LoadLocation(c.TimeZone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// IsProduction reports whether the app runs with APP_ENV=production
func (c AppConfig) IsProduction() bool {
	return c.Env == "production"
}
