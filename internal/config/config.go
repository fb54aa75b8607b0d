package config

import (
	"os"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/spf13/viper"
)

const EnvProduction = "production"

// Config holds all configuration for the application.
// The values are read by Viper from a config file or environment variables.
type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Database  DatabaseConfig  `mapstructure:"database"`
	SMTP      SMTPConfig      `mapstructure:"smtp"`
	S3        S3Config        `mapstructure:"s3"`
	CORS      CORSConfig      `mapstructure:"cors"`
	RateLimit RateLimitConfig `mapstructure:"rate_limit"`
	Log       LogConfig       `mapstructure:"log"`
}

type ServerConfig struct {
	Address      string        `mapstructure:"address"`
	Env          string        `mapstructure:"env"`
	Timezone     string        `mapstructure:"timezone"` // IANA name; empty means the host zone
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	IdleTimeout  time.Duration `mapstructure:"idle_timeout"`

	// TrustedProxies may set X-Forwarded-For; none by default.
	TrustedProxies []string `mapstructure:"trusted_proxies"`
}

type DatabaseConfig struct {
	URI  string `mapstructure:"uri"`
	Name string `mapstructure:"name"`
}

// SMTPConfig configures outgoing mail. An empty Host disables delivery
// and notifications are only logged.
type SMTPConfig struct {
	Host       string `mapstructure:"host"`
	Port       int    `mapstructure:"port"`
	User       string `mapstructure:"user"`
	Password   string `mapstructure:"password"`
	FromName   string `mapstructure:"from_name"`
	AdminEmail string `mapstructure:"admin_email"`
}

type S3Config struct {
	Endpoint        string        `mapstructure:"endpoint"`
	Region          string        `mapstructure:"region"`
	AccessKeyID     string        `mapstructure:"access_key_id"`
	SecretAccessKey string        `mapstructure:"secret_access_key"`
	BucketName      string        `mapstructure:"bucket_name"`
	PublicBaseURL   string        `mapstructure:"public_base_url"`
	UploadExpiry    time.Duration `mapstructure:"upload_expiry"`
}

type CORSConfig struct {
	AllowOrigins     []string      `mapstructure:"allow_origins"`
	AllowMethods     []string      `mapstructure:"allow_methods"`
	AllowHeaders     []string      `mapstructure:"allow_headers"`
	AllowCredentials bool          `mapstructure:"allow_credentials"`
	MaxAge           time.Duration `mapstructure:"max_age"`
}

// RateLimitConfig holds fixed-window limits per endpoint group.
type RateLimitConfig struct {
	Period     time.Duration `mapstructure:"period"`
	Booking    int64         `mapstructure:"booking"`
	BookingDev int64         `mapstructure:"booking_dev"`
	Contact    int64         `mapstructure:"contact"`
	Users      int64         `mapstructure:"users"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
}

// IsProduction reports whether the server runs with production settings.
func (c Config) IsProduction() bool {
	return strings.EqualFold(c.Server.Env, EnvProduction)
}

// BookingLimit is the booking create limit for the current environment.
func (c Config) BookingLimit() int64 {
	if c.IsProduction() {
		return c.RateLimit.Booking
	}
	return c.RateLimit.BookingDev
}

// Location resolves the configured server timezone. An empty Timezone
// resolves the host zone to its IANA name so that aggregations keep
// following DST changes.
func (c ServerConfig) Location() (*time.Location, error) {
	if c.Timezone == "" {
		return hostLocation(), nil
	}
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, errors.Wrapf(err, "load timezone %q", c.Timezone)
	}
	return loc, nil
}

// hostLocation looks up the host zone by name from TZ or the
// /etc/localtime link, falling back to time.Local.
func hostLocation() *time.Location {
	name := strings.TrimPrefix(os.Getenv("TZ"), ":")
	if name == "" {
		if target, err := os.Readlink("/etc/localtime"); err == nil {
			if _, after, ok := strings.Cut(target, "zoneinfo/"); ok {
				name = after
			}
		}
	}
	if name == "" {
		return time.Local
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return time.Local
	}
	return loc
}

// legacyEnv lists extra environment variable names accepted for a key,
// on top of the SECTION_KEY form derived by AutomaticEnv.
var legacyEnv = map[string][]string{
	"server.address":     {"SERVER_ADDRESS"},
	"server.env":         {"SERVER_ENV", "APP_ENV"},
	"database.uri":       {"DATABASE_URI", "MONGODB_URI"},
	"smtp.password":      {"SMTP_PASSWORD", "SMTP_PASS"},
	"smtp.admin_email":   {"SMTP_ADMIN_EMAIL", "ADMIN_EMAIL"},
	"cors.allow_origins": {"CORS_ALLOW_ORIGINS", "FRONTEND_URL"},
}

// LoadConfig reads configuration from file or environment variables.
func LoadConfig(path string) (config Config, err error) {
	v := viper.New()
	v.AddConfigPath(path)
	v.SetConfigName("config")
	v.SetConfigType("yaml")

	// server.address -> SERVER_ADDRESS
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(`.`, `_`))
	for key, names := range legacyEnv {
		if err = v.BindEnv(append([]string{key}, names...)...); err != nil {
			return config, errors.Wrapf(err, "bind env for %s", key)
		}
	}

	setDefaults(v)

	err = v.ReadInConfig()
	var notFound viper.ConfigFileNotFoundError
	if errors.As(err, &notFound) {
		err = nil
	} else if err != nil {
		return config, errors.Wrap(err, "read config file")
	}

	if err = v.Unmarshal(&config); err != nil {
		return config, errors.Wrap(err, "unmarshal config")
	}
	return config, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.address", ":3001")
	v.SetDefault("server.env", "development")
	v.SetDefault("server.timezone", "")
	v.SetDefault("server.read_timeout", "10s")
	v.SetDefault("server.write_timeout", "10s")
	v.SetDefault("server.idle_timeout", "120s")

	v.SetDefault("database.uri", "mongodb://localhost:27017")
	v.SetDefault("database.name", "arena45")

	v.SetDefault("smtp.host", "smtp.gmail.com")
	v.SetDefault("smtp.port", 587)
	v.SetDefault("smtp.user", "")
	v.SetDefault("smtp.password", "")
	v.SetDefault("smtp.from_name", "Arena 45")
	v.SetDefault("smtp.admin_email", "info@arena45.com")

	v.SetDefault("s3.endpoint", "")
	v.SetDefault("s3.region", "us-east-1")
	v.SetDefault("s3.access_key_id", "")
	v.SetDefault("s3.secret_access_key", "")
	v.SetDefault("s3.bucket_name", "")
	v.SetDefault("s3.public_base_url", "")
	v.SetDefault("s3.upload_expiry", "15m")

	v.SetDefault("cors.allow_origins", []string{"http://localhost:3000"})
	v.SetDefault("cors.allow_methods", []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"})
	v.SetDefault("cors.allow_headers", []string{"Origin", "Content-Type", "Accept", "X-Request-ID"})
	v.SetDefault("cors.allow_credentials", true)
	v.SetDefault("cors.max_age", "12h")

	v.SetDefault("rate_limit.period", "15m")
	v.SetDefault("rate_limit.booking", 5)
	v.SetDefault("rate_limit.booking_dev", 100)
	v.SetDefault("rate_limit.contact", 10)
	v.SetDefault("rate_limit.users", 10)

	v.SetDefault("log.level", "info")
}
