package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config is read once at startup and treated as immutable afterwards. The
// signing secret in particular must never be mutated at runtime: every
// component that verifies tokens holds the same value for the process life.
type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	Auth     AuthConfig
}

type ServerConfig struct {
	Host        string
	Port        int
	CORSOrigins []string
}

type DatabaseConfig struct {
	URL            string
	MaxConns       int
	MinConns       int
	MigrationsPath string
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
	NotesTTL time.Duration
}

type AuthConfig struct {
	JWTSecret    string
	TokenTTL     time.Duration
	APIKeyHeader string
}

func Load() (*Config, error) {
	// Local development keeps settings in a .env file; absence is fine.
	_ = godotenv.Load()

	port, err := getEnvInt("SERVER_PORT", 8080)
	if err != nil {
		return nil, fmt.Errorf("invalid SERVER_PORT: %w", err)
	}

	maxConns, err := getEnvInt("DB_MAX_CONNS", 20)
	if err != nil {
		return nil, fmt.Errorf("invalid DB_MAX_CONNS: %w", err)
	}

	minConns, err := getEnvInt("DB_MIN_CONNS", 5)
	if err != nil {
		return nil, fmt.Errorf("invalid DB_MIN_CONNS: %w", err)
	}

	redisDB, err := getEnvInt("REDIS_DB", 0)
	if err != nil {
		return nil, fmt.Errorf("invalid REDIS_DB: %w", err)
	}

	notesTTL, err := getEnvInt("REDIS_NOTES_TTL_SECONDS", 60)
	if err != nil {
		return nil, fmt.Errorf("invalid REDIS_NOTES_TTL_SECONDS: %w", err)
	}

	tokenTTL, err := getEnvInt("ACCESS_TOKEN_EXPIRE_MINUTES", 30)
	if err != nil {
		return nil, fmt.Errorf("invalid ACCESS_TOKEN_EXPIRE_MINUTES: %w", err)
	}

	cfg := &Config{
		Server: ServerConfig{
			Host:        getEnv("SERVER_HOST", "0.0.0.0"),
			Port:        port,
			CORSOrigins: strings.Split(getEnv("CORS_ORIGINS", "http://localhost:8080"), ","),
		},
		Database: DatabaseConfig{
			URL:            getEnv("DATABASE_URL", ""),
			MaxConns:       maxConns,
			MinConns:       minConns,
			MigrationsPath: getEnv("MIGRATIONS_PATH", "migrations"),
		},
		Redis: RedisConfig{
			Addr:     getEnv("REDIS_ADDR", ""),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       redisDB,
			NotesTTL: time.Duration(notesTTL) * time.Second,
		},
		Auth: AuthConfig{
			JWTSecret:    getEnv("JWT_SECRET", "secret"),
			TokenTTL:     time.Duration(tokenTTL) * time.Minute,
			APIKeyHeader: getEnv("API_KEY_HEADER", "X-API-Key"),
		},
	}

	return cfg, nil
}

func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	return strconv.Atoi(v)
}
