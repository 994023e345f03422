package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/hashicorp/go-multierror"
	"github.com/joho/godotenv"

	"github.com/saurabh/starter-templates/pkg/logger"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Redis    RedisConfig
	Logging  LoggingConfig
	Library  LibraryConfig
}

type AppConfig struct {
	Name        string
	Environment string
}

type DatabaseConfig struct {
	Host            string
	Port            int
	User            string
	Password        string
	Name            string
	SSLMode         string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime int // in minutes
	PingTimeout     int // in seconds
}

type RedisConfig struct {
	Host      string
	Port      int
	Password  string
	DB        int
	KeyPrefix string
}

type LoggingConfig struct {
	Level      string
	Format     string
	LogDir     string
	MaxSize    int
	MaxBackups int
	MaxAge     int
	Compress   bool
}

// LibraryConfig locates the template library inputs and the migration output.
type LibraryConfig struct {
	ManifestDir         string // empty means the embedded starter library
	LegacySourceDir     string
	LegacyTypesFile     string
	LegacyTemplateFiles []string
	MigrationsDir       string
	Strict              bool
}

// DefaultLegacyTemplateFiles is the fixed list of legacy template sources.
var DefaultLegacyTemplateFiles = []string{
	"property.ts",
	"construction.ts",
	"foodSafety.ts",
	"facilities.ts",
	"fireSafety.ts",
}

func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		logger.Debug(".env file not found, using environment variables")
	}

	cfg := &Config{
		App: AppConfig{
			Name:        getEnv("APP_NAME", "templatelib"),
			Environment: getEnv("APP_ENVIRONMENT", "development"),
		},
		Database: DatabaseConfig{
			Host:            getEnv("DB_HOST", "localhost"),
			Port:            getEnvInt("DB_PORT", 5432),
			User:            getEnv("DB_USER", "postgres"),
			Password:        getEnv("DB_PASSWORD", "postgres"),
			Name:            getEnv("DB_NAME", "inspections"),
			SSLMode:         getEnv("DB_SSL_MODE", "disable"),
			MaxOpenConns:    getEnvInt("DB_MAX_OPEN_CONNS", 5),
			MaxIdleConns:    getEnvInt("DB_MAX_IDLE_CONNS", 2),
			ConnMaxLifetime: getEnvInt("DB_CONN_MAX_LIFETIME", 5),
			PingTimeout:     getEnvInt("DB_PING_TIMEOUT", 5),
		},
		Redis: RedisConfig{
			Host:      getEnv("REDIS_HOST", "localhost"),
			Port:      getEnvInt("REDIS_PORT", 6379),
			Password:  getEnv("REDIS_PASSWORD", ""),
			DB:        getEnvInt("REDIS_DB", 0),
			KeyPrefix: getEnv("REDIS_KEY_PREFIX", "inspections"),
		},
		Logging: LoggingConfig{
			Level:      getEnv("LOG_LEVEL", "info"),
			Format:     getEnv("LOG_FORMAT", "text"),
			LogDir:     getEnv("LOG_DIR", ""),
			MaxSize:    getEnvInt("LOG_MAX_SIZE", 100),
			MaxBackups: getEnvInt("LOG_MAX_BACKUPS", 5),
			MaxAge:     getEnvInt("LOG_MAX_AGE", 30),
			Compress:   getEnvBool("LOG_COMPRESS", true),
		},
		Library: LibraryConfig{
			ManifestDir:         getEnv("LIBRARY_MANIFEST_DIR", ""),
			LegacySourceDir:     getEnv("LEGACY_SOURCE_DIR", "starterTemplates"),
			LegacyTypesFile:     getEnv("LEGACY_TYPES_FILE", "types.ts"),
			LegacyTemplateFiles: getEnvList("LEGACY_TEMPLATE_FILES", DefaultLegacyTemplateFiles),
			MigrationsDir:       getEnv("MIGRATIONS_DIR", "migrations"),
			Strict:              getEnvBool("LIBRARY_STRICT", false),
		},
	}

	return cfg, nil
}

func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.Name, d.SSLMode)
}

func (r RedisConfig) Address() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}

// problems collects validation failures into one multierror.
type problems struct {
	result *multierror.Error
}

func (p *problems) fail(format string, args ...interface{}) {
	p.result = multierror.Append(p.result, fmt.Errorf(format, args...))
}

func (p *problems) err() error {
	if err := p.result.ErrorOrNil(); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}
	return nil
}

// Validate checks the settings every subcommand depends on and reports every
// problem at once. Connection settings are checked by ValidateDatabase and
// ValidateRedis, only where a subcommand connects.
func (c *Config) Validate() error {
	var p problems

	if c.App.Name == "" {
		p.fail("APP_NAME is required")
	}
	validEnvs := []string{"development", "staging", "production"}
	if !contains(validEnvs, c.App.Environment) {
		p.fail("APP_ENVIRONMENT must be one of: %s", strings.Join(validEnvs, ", "))
	}

	validLogLevels := []string{"debug", "info", "warn", "error"}
	if !contains(validLogLevels, strings.ToLower(c.Logging.Level)) {
		p.fail("LOG_LEVEL must be one of: %s", strings.Join(validLogLevels, ", "))
	}
	validFormats := []string{"text", "json"}
	if !contains(validFormats, c.Logging.Format) {
		p.fail("LOG_FORMAT must be one of: %s", strings.Join(validFormats, ", "))
	}
	if c.Logging.MaxSize <= 0 {
		p.fail("LOG_MAX_SIZE must be greater than 0")
	}
	if c.Logging.MaxBackups < 0 {
		p.fail("LOG_MAX_BACKUPS cannot be negative")
	}
	if c.Logging.MaxAge < 0 {
		p.fail("LOG_MAX_AGE cannot be negative")
	}

	if c.Library.LegacyTypesFile == "" {
		p.fail("LEGACY_TYPES_FILE is required")
	}
	if c.Library.MigrationsDir == "" {
		p.fail("MIGRATIONS_DIR is required")
	}

	return p.err()
}

// ValidateDatabase checks the Postgres connection settings.
func (c *Config) ValidateDatabase() error {
	var p problems

	if c.Database.Host == "" {
		p.fail("DB_HOST is required")
	}
	if c.Database.Port <= 0 || c.Database.Port > 65535 {
		p.fail("DB_PORT must be between 1 and 65535")
	}
	if c.Database.User == "" {
		p.fail("DB_USER is required")
	}
	if c.Database.Name == "" {
		p.fail("DB_NAME is required")
	}
	if c.Database.MaxOpenConns <= 0 {
		p.fail("DB_MAX_OPEN_CONNS must be greater than 0")
	}
	if c.Database.MaxIdleConns > c.Database.MaxOpenConns {
		p.fail("DB_MAX_IDLE_CONNS cannot exceed DB_MAX_OPEN_CONNS")
	}
	if c.Database.PingTimeout <= 0 {
		p.fail("DB_PING_TIMEOUT must be greater than 0")
	}

	return p.err()
}

// ValidateRedis checks the Redis connection settings.
func (c *Config) ValidateRedis() error {
	var p problems

	if c.Redis.Host == "" {
		p.fail("REDIS_HOST is required")
	}
	if c.Redis.Port <= 0 || c.Redis.Port > 65535 {
		p.fail("REDIS_PORT must be between 1 and 65535")
	}
	if c.Redis.DB < 0 || c.Redis.DB > 15 {
		p.fail("REDIS_DB must be between 0 and 15")
	}

	return p.err()
}

// LoggerConfig maps the logging section onto the logger package.
func (l LoggingConfig) LoggerConfig() logger.LogConfig {
	return logger.LogConfig{
		Level:      l.Level,
		Format:     l.Format,
		LogDir:     l.LogDir,
		MaxSize:    l.MaxSize,
		MaxBackups: l.MaxBackups,
		MaxAge:     l.MaxAge,
		Compress:   l.Compress,
	}
}

func contains(values []string, v string) bool {
	for _, candidate := range values {
		if candidate == v {
			return true
		}
	}
	return false
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

func getEnvList(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return append([]string(nil), defaultValue...)
	}
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
