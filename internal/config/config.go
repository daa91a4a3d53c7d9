// Package config reads the configuration of the backend from the environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
)

// MinSecretLength is the minimal length of JWT_SECRET in release mode.
const MinSecretLength = 32

type Config struct {
	// HTTP Server
	APIURL          string
	Port            string
	GinMode         string
	LogFormat       string
	CORSAllowOrigin []string
	EnablePprof     bool
	RequestTimeout  time.Duration
	ShutdownTimeout time.Duration

	// Database
	DBPath     string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string

	// Credentials
	JWTSecret  string
	BcryptCost int
}

// Load reads the configuration from the environment. Variables from a
// .env file in the working directory are loaded first, variables set in
// the environment take precedence.
func Load() (*Config, error) {
	err := godotenv.Load()
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("loading .env: %w", err)
	}

	cfg := &Config{
		APIURL:          os.Getenv("API_URL"),
		Port:            getEnv("PORT", "8080"),
		GinMode:         getEnv("GIN_MODE", "release"),
		LogFormat:       os.Getenv("LOG_FORMAT"),
		CORSAllowOrigin: strings.Fields(os.Getenv("CORS_ALLOW_ORIGINS")),
		EnablePprof:     os.Getenv("ENABLE_PPROF") == "true",

		DBPath:     getEnv("DB_PATH", "data/gorm.db"),
		DBHost:     os.Getenv("DB_HOST"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     os.Getenv("DB_USER"),
		DBPassword: os.Getenv("DB_PASSWORD"),
		DBName:     os.Getenv("DB_NAME"),

		JWTSecret: os.Getenv("JWT_SECRET"),
	}

	var problems []string

	cfg.RequestTimeout, err = getEnvDuration("REQUEST_TIMEOUT", 10*time.Second)
	if err != nil {
		problems = append(problems, err.Error())
	}

	cfg.ShutdownTimeout, err = getEnvDuration("SHUTDOWN_TIMEOUT", 15*time.Second)
	if err != nil {
		problems = append(problems, err.Error())
	}

	cfg.BcryptCost, err = getEnvInt("BCRYPT_COST", bcrypt.DefaultCost)
	if err != nil {
		problems = append(problems, err.Error())
	}

	if len(problems) > 0 {
		return nil, fmt.Errorf("configuration could not be read:\n- %s", strings.Join(problems, "\n- "))
	}

	return cfg, nil
}

// Validate validates the configuration and returns an error listing
// all problems.
func (c *Config) Validate() error {
	var problems []string

	if c.APIURL == "" {
		problems = append(problems, "API_URL must be set")
	} else if _, err := c.URL(); err != nil {
		problems = append(problems, fmt.Sprintf("invalid API_URL '%s': %v", c.APIURL, err))
	}

	if port, err := strconv.Atoi(c.Port); err != nil {
		problems = append(problems, fmt.Sprintf("invalid port '%s': must be a number", c.Port))
	} else if port < 1 || port > 65535 {
		problems = append(problems, fmt.Sprintf("invalid port %d: must be between 1 and 65535", port))
	}

	switch c.GinMode {
	case "release", "debug", "test":
	default:
		problems = append(problems, fmt.Sprintf("invalid GIN_MODE '%s': must be one of release, debug, test", c.GinMode))
	}

	if c.JWTSecret == "" {
		problems = append(problems, "JWT_SECRET must be set")
	} else if c.GinMode == "release" && len(c.JWTSecret) < MinSecretLength {
		problems = append(problems, fmt.Sprintf("JWT_SECRET must be at least %d bytes long", MinSecretLength))
	}

	if c.BcryptCost < bcrypt.MinCost || c.BcryptCost > bcrypt.MaxCost {
		problems = append(problems, fmt.Sprintf("invalid BCRYPT_COST %d: must be between %d and %d", c.BcryptCost, bcrypt.MinCost, bcrypt.MaxCost))
	}

	if c.RequestTimeout <= 0 {
		problems = append(problems, fmt.Sprintf("invalid REQUEST_TIMEOUT %v: must be positive", c.RequestTimeout))
	}

	if c.ShutdownTimeout <= 0 {
		problems = append(problems, fmt.Sprintf("invalid SHUTDOWN_TIMEOUT %v: must be positive", c.ShutdownTimeout))
	}

	if c.DBHost == "" && c.DBPath == "" {
		problems = append(problems, "DB_PATH must not be empty when DB_HOST is not set")
	}

	if len(problems) > 0 {
		return fmt.Errorf("configuration validation failed:\n- %s", strings.Join(problems, "\n- "))
	}

	return nil
}

// URL returns the parsed API_URL.
func (c *Config) URL() (*url.URL, error) {
	u, err := url.Parse(c.APIURL)
	if err != nil {
		return nil, err
	}

	if u.Scheme == "" || u.Host == "" {
		return nil, errors.New("must be an absolute URL")
	}

	return u, nil
}

// Postgres reports if PostgreSQL is used instead of SQLite.
func (c *Config) Postgres() bool {
	return c.DBHost != ""
}

// PostgresDSN returns the connection URL for PostgreSQL.
// Credentials and the database name are escaped.
func (c *Config) PostgresDSN() string {
	dsn := url.URL{
		Scheme: "postgres",
		User:   url.UserPassword(c.DBUser, c.DBPassword),
		Host:   net.JoinHostPort(c.DBHost, c.DBPort),
		Path:   "/" + c.DBName,
	}
	return dsn.String()
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}

	i, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue, fmt.Errorf("invalid %s '%s': must be a number", key, value)
	}
	return i, nil
}

func getEnvDuration(key string, defaultValue time.Duration) (time.Duration, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}

	d, err := time.ParseDuration(value)
	if err != nil {
		return defaultValue, fmt.Errorf("invalid %s '%s': must be a duration like 10s", key, value)
	}
	return d, nil
}
