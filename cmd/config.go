package cmd

import (
	"os"
	"strconv"
	"time"

	"spraying/internal/adapters/out/postgres"
	"spraying/internal/core/application/remotesync"
)

type Config struct {
	HTTPPort string
	LogLevel string

	DBDriver   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string
	DBPath     string

	JWTSecret string

	RemoteTimeout        time.Duration
	RemoteMaxRetries     uint64
	RemoteInitialBackoff time.Duration
	RemoteMaxBackoff     time.Duration

	EditSessionTTL time.Duration
	IdempotencyTTL time.Duration

	RateLimitRPS   float64
	RateLimitBurst int
}

// LoadConfig reads the process environment. Unset or malformed values fall
// back to their defaults.
func LoadConfig() Config {
	remote := remotesync.DefaultConfig()
	return Config{
		HTTPPort: getEnv("HTTP_PORT", "8080"),
		LogLevel: getEnv("LOG_LEVEL", "info"),

		DBDriver:   getEnv("DB_DRIVER", postgres.DriverPostgres),
		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     getEnv("DB_USER", "postgres"),
		DBPassword: getEnv("DB_PASSWORD", ""),
		DBName:     getEnv("DB_NAME", "spraying"),
		DBSslMode:  getEnv("DB_SSLMODE", "disable"),
		DBPath:     getEnv("DB_PATH", "spraying.db"),

		JWTSecret: getEnv("JWT_SECRET", ""),

		RemoteTimeout:        getDuration("REMOTE_TIMEOUT", remote.Timeout),
		RemoteMaxRetries:     getUint("REMOTE_MAX_RETRIES", remote.MaxRetries),
		RemoteInitialBackoff: getDuration("REMOTE_INITIAL_BACKOFF", remote.InitialBackoff),
		RemoteMaxBackoff:     getDuration("REMOTE_MAX_BACKOFF", remote.MaxBackoff),

		EditSessionTTL: getDuration("EDIT_SESSION_TTL", 15*time.Minute),
		IdempotencyTTL: getDuration("IDEMPOTENCY_TTL", 24*time.Hour),

		RateLimitRPS:   getFloat("RATE_LIMIT_RPS", 20),
		RateLimitBurst: getInt("RATE_LIMIT_BURST", 40),
	}
}

func (c Config) DB() postgres.DBConfig {
	return postgres.DBConfig{
		Driver:   c.DBDriver,
		Host:     c.DBHost,
		Port:     c.DBPort,
		User:     c.DBUser,
		Password: c.DBPassword,
		Name:     c.DBName,
		SslMode:  c.DBSslMode,
		Path:     c.DBPath,
	}
}

func (c Config) Remote() remotesync.Config {
	return remotesync.Config{
		Timeout:        c.RemoteTimeout,
		MaxRetries:     c.RemoteMaxRetries,
		InitialBackoff: c.RemoteInitialBackoff,
		MaxBackoff:     c.RemoteMaxBackoff,
	}
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	d, err := time.ParseDuration(getEnv(key, ""))
	if err != nil || d <= 0 {
		return fallback
	}
	return d
}

func getInt(key string, fallback int) int {
	n, err := strconv.Atoi(getEnv(key, ""))
	if err != nil || n < 0 {
		return fallback
	}
	return n
}

func getUint(key string, fallback uint64) uint64 {
	n, err := strconv.ParseUint(getEnv(key, ""), 10, 64)
	if err != nil {
		return fallback
	}
	return n
}

func getFloat(key string, fallback float64) float64 {
	f, err := strconv.ParseFloat(getEnv(key, ""), 64)
	if err != nil || f < 0 {
		return fallback
	}
	return f
}
