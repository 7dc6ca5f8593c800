package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/sirupsen/logrus"

	"github.com/carson-networks/finance-server/internal/daterange"
)

const (
	StorageDriverPostgres = "postgres"
	StorageDriverMemory   = "memory"
)

type Config struct {
	HTTP     HTTP     `koanf:"http"`
	Postgres Postgres `koanf:"postgres"`
	Storage  Storage  `koanf:"storage"`
	Auth     Auth     `koanf:"auth"`
	Calendar Calendar `koanf:"calendar"`
	Operator Operator `koanf:"operator"`
	Log      Log      `koanf:"log"`
}

type HTTP struct {
	Port            string        `koanf:"port"`
	ShutdownTimeout time.Duration `koanf:"shutdownTimeout"`
}

type Postgres struct {
	// DSN wins over the individual fields when set.
	DSN          string `koanf:"dsn"`
	Address      string `koanf:"address"`
	Port         string `koanf:"port"`
	DB           string `koanf:"db"`
	Username     string `koanf:"username"`
	Password     string `koanf:"password"`
	SSLMode      string `koanf:"sslmode"`
	MaxOpenConns int    `koanf:"maxOpenConns"`
}

// ConnectionString builds a lib/pq URL.
func (p Postgres) ConnectionString() string {
	if p.DSN != "" {
		return p.DSN
	}
	sslMode := p.SSLMode
	if sslMode == "" {
		sslMode = "disable"
	}
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(p.Username, p.Password),
		Host:     p.Address + ":" + p.Port,
		Path:     "/" + p.DB,
		RawQuery: "sslmode=" + url.QueryEscape(sslMode),
	}
	return u.String()
}

type Storage struct {
	Driver      string `koanf:"driver"`
	AutoMigrate bool   `koanf:"autoMigrate"`
}

type Auth struct {
	JWTSecret string        `koanf:"jwtSecret"`
	APIKey    string        `koanf:"apiKey"`
	TokenTTL  time.Duration `koanf:"tokenTTL"`
	Issuer    string        `koanf:"issuer"`
}

type Calendar struct {
	Timezone  string `koanf:"timezone"`
	WeekStart string `koanf:"weekStart"`
}

// Build resolves the calendar settings.
func (c Calendar) Build() (daterange.Calendar, error) {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return daterange.Calendar{}, fmt.Errorf("calendar timezone %q: %w", c.Timezone, err)
	}
	weekStart, err := ParseWeekday(c.WeekStart)
	if err != nil {
		return daterange.Calendar{}, err
	}
	return daterange.Calendar{Location: loc, WeekStart: weekStart}, nil
}

type Operator struct {
	Workers   int `koanf:"workers"`
	QueueSize int `koanf:"queueSize"`
}

type Log struct {
	Level string `koanf:"level"`
}

// In all cases the defaults match the docker compose setup.
var defaults = map[string]interface{}{
	"http.port":             "9446",
	"http.shutdownTimeout":  "10s",
	"postgres.address":      "localhost",
	"postgres.port":         "5433",
	"postgres.db":           "postgres",
	"postgres.username":     "postgres",
	"postgres.password":     "testpassword",
	"postgres.sslmode":      "disable",
	"postgres.maxOpenConns": 10,
	"storage.driver":        StorageDriverPostgres,
	"storage.autoMigrate":   false,
	"auth.tokenTTL":         "24h",
	"auth.issuer":           "finance-server",
	"calendar.timezone":     "America/Costa_Rica",
	"calendar.weekStart":    "sunday",
	"operator.workers":      4,
	"operator.queueSize":    1000,
	"log.level":             "info",
}

var envKeys = map[string]string{
	"PORT":                   "http.port",
	"HTTP_PORT":              "http.port",
	"HTTP_SHUTDOWN_TIMEOUT":  "http.shutdownTimeout",
	"DATABASE_URL":           "postgres.dsn",
	"POSTGRES_ADDRESS":       "postgres.address",
	"POSTGRES_PORT":          "postgres.port",
	"POSTGRES_DB":            "postgres.db",
	"POSTGRES_USERNAME":      "postgres.username",
	"POSTGRES_PASSWORD":      "postgres.password",
	"POSTGRES_SSLMODE":       "postgres.sslmode",
	"POSTGRES_MAX_OPEN_CONN": "postgres.maxOpenConns",
	"STORAGE_DRIVER":         "storage.driver",
	"STORAGE_AUTO_MIGRATE":   "storage.autoMigrate",
	"JWT_SECRET":             "auth.jwtSecret",
	"API_KEY":                "auth.apiKey",
	"TOKEN_TTL":              "auth.tokenTTL",
	"TOKEN_ISSUER":           "auth.issuer",
	"CALENDAR_TIMEZONE":      "calendar.timezone",
	"CALENDAR_WEEK_START":    "calendar.weekStart",
	"OPERATOR_WORKERS":       "operator.workers",
	"OPERATOR_QUEUE_SIZE":    "operator.queueSize",
	"LOG_LEVEL":              "log.level",
}

// Load layers defaults, the optional YAML file named by CONFIG_FILE and the
// environment, in that order. A .env file in the working directory is read
// into the environment first.
func Load() (*Config, error) {
	_ = godotenv.Load()
	return LoadFile(os.Getenv("CONFIG_FILE"))
}

// LoadFile is Load with an explicit YAML path. An empty path skips the file.
func LoadFile(path string) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(defaults, "."), nil); err != nil {
		return nil, fmt.Errorf("load defaults: %w", err)
	}

	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("load config file %s: %w", path, err)
		}
	}

	err := k.Load(env.ProviderWithValue("", ".", func(key, value string) (string, interface{}) {
		mapped, ok := envKeys[key]
		if !ok || value == "" {
			return "", nil
		}
		return mapped, value
	}), nil)
	if err != nil {
		return nil, fmt.Errorf("load environment: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	return &cfg, nil
}

// Validate reports every problem with the configuration at once.
func (c *Config) Validate() error {
	var errs []error

	if c.HTTP.Port == "" {
		errs = append(errs, errors.New("http.port is required"))
	}
	switch c.Storage.Driver {
	case StorageDriverPostgres, StorageDriverMemory:
	default:
		errs = append(errs, fmt.Errorf("storage.driver must be %q or %q, got %q",
			StorageDriverPostgres, StorageDriverMemory, c.Storage.Driver))
	}
	if c.Auth.JWTSecret == "" {
		errs = append(errs, errors.New("auth.jwtSecret is required"))
	}
	if c.Auth.TokenTTL <= 0 {
		errs = append(errs, errors.New("auth.tokenTTL must be positive"))
	}
	if _, err := c.Calendar.Build(); err != nil {
		errs = append(errs, err)
	}
	if c.Operator.Workers < 1 {
		errs = append(errs, errors.New("operator.workers must be at least 1"))
	}
	if _, err := logrus.ParseLevel(c.Log.Level); err != nil {
		errs = append(errs, fmt.Errorf("log.level: %w", err))
	}

	return errors.Join(errs...)
}

// ParseWeekday reads an English day name such as "monday" or "Mon".
func ParseWeekday(s string) (time.Weekday, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for d := time.Sunday; d <= time.Saturday; d++ {
		full := strings.ToLower(d.String())
		if name == full || name == full[:3] {
			return d, nil
		}
	}
	return time.Sunday, fmt.Errorf("calendar week start %q is not a weekday", s)
}
