package config

import (
	"errors"
	"fmt"
	"net"
	"os"
	"strconv"
	"time"

	"microfinance-backoffice/internal/domain/standing"

	"github.com/joho/godotenv"
)

type Config struct {
	AppEnv  string
	AppPort string

	MySQLHost string
	MySQLPort string
	MySQLDB   string
	MySQLUser string
	MySQLPass string

	RedisAddr string
	RedisDB   int

	IdempTTLSecs int

	LogLevel   string
	LogFormat  string
	DBLogLevel string

	// Zero disables the background sweep; POST /admin/overdue-sweep still works.
	OverdueSweepInterval time.Duration
	StandingFallback     string
	RunMigrations        bool
}

func getenv(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}

func getenvInt(k string, d int) int {
	if v := os.Getenv(k); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return d
}

func getenvBool(k string, d bool) bool {
	if v := os.Getenv(k); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return d
}

// Load reads the environment, after merging a .env file from the working
// directory when there is one. Variables already set win over the file.
func Load() *Config {
	_ = godotenv.Load()

	c := &Config{
		AppEnv:    getenv("APP_ENV", "development"),
		AppPort:   getenv("APP_PORT", "8080"),
		MySQLHost: getenv("MYSQL_HOST", "mysql"),
		MySQLPort: getenv("MYSQL_PORT", "3306"),
		MySQLDB:   getenv("MYSQL_DB", "backoffice"),
		MySQLUser: getenv("MYSQL_USER", "backoffice"),
		MySQLPass: getenv("MYSQL_PASS", "backoffice"),

		RedisAddr:    getenv("REDIS_ADDR", "redis:6379"),
		RedisDB:      getenvInt("REDIS_DB", 0),
		IdempTTLSecs: getenvInt("IDEMPOTENCY_TTL_SECONDS", 300),

		LogLevel:   getenv("LOG_LEVEL", "info"),
		LogFormat:  getenv("LOG_FORMAT", "json"),
		DBLogLevel: getenv("DB_LOG_LEVEL", "warn"),

		OverdueSweepInterval: time.Hour,
		StandingFallback:     getenv("STANDING_FALLBACK", standing.StandingBad),
		RunMigrations:        getenvBool("RUN_MIGRATIONS", false),
	}
	if v := os.Getenv("OVERDUE_SWEEP_INTERVAL"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			c.OverdueSweepInterval = d
		}
	}
	return c
}

func (c *Config) Validate() error {
	if c.MySQLHost == "" || c.MySQLPort == "" || c.MySQLDB == "" || c.MySQLUser == "" {
		return errors.New("missing MySQL config (MYSQL_HOST/PORT/DB/USER)")
	}
	// ensure port is valid
	if _, err := net.LookupPort("tcp", c.MySQLPort); err != nil {
		return fmt.Errorf("invalid MYSQL_PORT %q: %w", c.MySQLPort, err)
	}
	if c.AppPort == "" {
		return errors.New("missing APP_PORT")
	}
	if c.IdempTTLSecs <= 0 {
		return fmt.Errorf("IDEMPOTENCY_TTL_SECONDS must be positive, got %d", c.IdempTTLSecs)
	}
	if c.OverdueSweepInterval < 0 {
		return fmt.Errorf("OVERDUE_SWEEP_INTERVAL must not be negative, got %s", c.OverdueSweepInterval)
	}
	switch c.StandingFallback {
	case standing.StandingBad, standing.StandingUnknown:
	default:
		return fmt.Errorf("STANDING_FALLBACK must be %q or %q, got %q",
			standing.StandingBad, standing.StandingUnknown, c.StandingFallback)
	}
	return nil
}

func (c *Config) IsProduction() bool { return c.AppEnv == "production" }

func (c *Config) mysqlAddr() string { return net.JoinHostPort(c.MySQLHost, c.MySQLPort) }

func (c *Config) MySQLDSN() string {
	// multiStatements=true is handy for migrations; parseTime needed for DATETIME
	return fmt.Sprintf("%s:%s@tcp(%s)/%s?multiStatements=true&parseTime=true&charset=utf8mb4,utf8",
		c.MySQLUser, c.MySQLPass, c.mysqlAddr(), c.MySQLDB)
}

// MigrationURL is the DSN in the form golang-migrate's mysql driver expects.
func (c *Config) MigrationURL() string { return "mysql://" + c.MySQLDSN() }
