package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection, etc.), security settings
// - default: Values common across all environments (timezone, timeout, etc.), standard settings
// -----------------------------------------------------------------------------

type Config struct {
	Server  ServerConfig
	DB      DBConfig
	CORS    CORSConfig
	Log     LogConfig
	JWT     JWTConfig
	Store   StoreConfig
	Booking BookingConfig
	MQ      MQConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

type DBConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" required:"true"`
	Password string `envconfig:"DB_PASSWORD" required:"true"`
	DBName   string `envconfig:"DB_NAME" required:"true"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
	TimeZone string `envconfig:"DB_TIMEZONE" default:"Europe/Bucharest"`
	MaxConns int32  `envconfig:"DB_MAX_CONNS" default:"20"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"Europe/Bucharest"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"7200"` // 2*60*60
}

// Tokens are issued by the external identity provider; only the shared secret is needed here
type JWTConfig struct {
	Secret   string `envconfig:"JWT_SECRET" required:"true"`
	Issuer   string `envconfig:"JWT_ISSUER" default:""`
	Duration string `envconfig:"JWT_DURATION" default:"24h"`
}

type StoreConfig struct {
	OpTimeout    time.Duration `envconfig:"STORE_OP_TIMEOUT" default:"5s"`
	MaxRetries   int           `envconfig:"STORE_MAX_RETRIES" default:"3"`
	RetryBackoff time.Duration `envconfig:"STORE_RETRY_BACKOFF" default:"100ms"`
}

type BookingConfig struct {
	OpenHour         int    `envconfig:"BOOKING_OPEN_HOUR" default:"12"`
	LastStartHour    int    `envconfig:"BOOKING_LAST_START_HOUR" default:"23"`
	MaxDurationHours int    `envconfig:"BOOKING_MAX_DURATION_HOURS" default:"4"`
	Location         string `envconfig:"BOOKING_LOCATION" default:"Europe/Bucharest"`
}

// Empty URL disables event publishing
type MQConfig struct {
	URL      string `envconfig:"RABBITMQ_URL" default:""`
	Exchange string `envconfig:"RABBITMQ_EXCHANGE" default:"reservations"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	if err := cfg.Booking.Validate(); err != nil {
		return Config{}, err
	}
	if cfg.Store.MaxRetries < 0 {
		return Config{}, fmt.Errorf("STORE_MAX_RETRIES must not be negative, got %d", cfg.Store.MaxRetries)
	}
	return cfg, nil
}

func (b BookingConfig) Validate() error {
	if b.OpenHour < 0 || b.LastStartHour > 23 || b.OpenHour > b.LastStartHour {
		return fmt.Errorf("booking hours %d..%d are not a valid range within 0..23", b.OpenHour, b.LastStartHour)
	}
	if b.MaxDurationHours <= 0 {
		return fmt.Errorf("BOOKING_MAX_DURATION_HOURS must be positive, got %d", b.MaxDurationHours)
	}
	if _, err := time.LoadLocation(b.Location); err != nil {
		return fmt.Errorf("invalid BOOKING_LOCATION %q: %w", b.Location, err)
	}
	return nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889", // Test port
		},
		DB: DBConfig{
			Host:     "localhost",
			Port:     "15433", // Test DB port
			User:     "test",
			Password: "test",
			DBName:   "test_db",
			SSLMode:  "disable",
			TimeZone: "Europe/Bucharest",
			MaxConns: 10,
		},
		CORS: CORSConfig{
			AllowOrigins: []string{"http://localhost:3000"},
			AllowMethods: []string{"GET", "POST", "OPTIONS"},
			AllowHeaders: []string{"Origin", "Content-Type", "Accept", "Authorization"},
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "Europe/Bucharest",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: 7200,
		},
		JWT: JWTConfig{
			Secret:   "test-secret",
			Duration: "1h",
		},
		Store: StoreConfig{
			OpTimeout:    2 * time.Second,
			MaxRetries:   1,
			RetryBackoff: 10 * time.Millisecond,
		},
		Booking: BookingConfig{
			OpenHour:         12,
			LastStartHour:    23,
			MaxDurationHours: 4,
			Location:         "UTC",
		},
	}
}
