package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Share registry backends.
const (
	ShareBackendMemory = "memory"
	ShareBackendRedis  = "redis"
)

// Config aggregates all runtime settings required by the application.
type Config struct {
	AppName     string
	Environment string
	HTTP        HTTPConfig
	Blob        BlobConfig
	Share       ShareConfig
	Redis       RedisConfig
	JWT         JWTConfig
	Auth        AuthConfig
	Goals       GoalsConfig
	Sweeper     SweeperConfig
	Context     ContextConfig
	Logger      LoggerConfig
}

type HTTPConfig struct {
	Host         string
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
}

type BlobConfig struct {
	Path string
}

type ShareConfig struct {
	// Backend selects the share registry implementation: memory or redis.
	Backend string
	// PublicBaseURL is the origin embedded into issued viewer links.
	PublicBaseURL string
}

type RedisConfig struct {
	URL      string
	Password string
	DB       int
}

type JWTConfig struct {
	Secret   string
	Issuer   string
	TokenTTL time.Duration
}

type AuthConfig struct {
	// SimulatedLatency stands in for the remote identity provider's
	// round trip on login, register and profile updates.
	SimulatedLatency time.Duration
}

type GoalsConfig struct {
	SeedDemoData bool
}

type SweeperConfig struct {
	Schedule string
}

type ContextConfig struct {
	RequestTimeout  time.Duration
	ShutdownTimeout time.Duration
}

type LoggerConfig struct {
	Level    string
	Encoding string
}

// Load reads configuration from environment variables (optionally .env)
// and applies sane defaults so the service can boot in any environment.
func Load() (*Config, error) {
	_ = godotenv.Load(".env")

	cfg := &Config{
		AppName:     getString("APP_NAME", "masterplan"),
		Environment: getString("APP_ENV", "development"),
		HTTP: HTTPConfig{
			Host:         getString("SERVER_HOST", "0.0.0.0"),
			Port:         getString("SERVER_PORT", "8080"),
			ReadTimeout:  getDuration("SERVER_READ_TIMEOUT", 10*time.Second),
			WriteTimeout: getDuration("SERVER_WRITE_TIMEOUT", 10*time.Second),
			IdleTimeout:  getDuration("SERVER_IDLE_TIMEOUT", 120*time.Second),
		},
		Blob: BlobConfig{
			Path: getString("BOLTDB_PATH", "./data/masterplan.db"),
		},
		Share: ShareConfig{
			Backend:       getString("SHARE_BACKEND", ShareBackendMemory),
			PublicBaseURL: getString("PUBLIC_BASE_URL", "http://localhost:8080"),
		},
		Redis: RedisConfig{
			URL:      getString("REDIS_URL", "redis://localhost:6379"),
			Password: os.Getenv("REDIS_PASSWORD"),
			DB:       getInt("REDIS_DB", 0),
		},
		JWT: JWTConfig{
			Secret:   os.Getenv("JWT_SECRET"),
			Issuer:   getString("JWT_ISSUER", "masterplan"),
			TokenTTL: getDuration("JWT_TOKEN_TTL", 24*time.Hour),
		},
		Auth: AuthConfig{
			SimulatedLatency: getDuration("AUTH_SIMULATED_LATENCY", time.Second),
		},
		Goals: GoalsConfig{
			SeedDemoData: getBool("SEED_DEMO_GOALS", true),
		},
		Sweeper: SweeperConfig{
			Schedule: getString("STREAK_SWEEP_SCHEDULE", "5 0 * * *"),
		},
		Context: ContextConfig{
			RequestTimeout:  getDuration("REQUEST_TIMEOUT_SECONDS", 5*time.Second),
			ShutdownTimeout: getDuration("SHUTDOWN_TIMEOUT_SECONDS", 15*time.Second),
		},
		Logger: LoggerConfig{
			Level:    getString("LOG_LEVEL", "info"),
			Encoding: getString("LOG_ENCODING", "json"),
		},
	}

	if cfg.Share.Backend != ShareBackendMemory && cfg.Share.Backend != ShareBackendRedis {
		return nil, fmt.Errorf("unknown share backend %q", cfg.Share.Backend)
	}

	return cfg, nil
}

// MustLoad panics if configuration cannot be loaded.
func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		panic(err)
	}
	return cfg
}

func getString(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getInt(key string, fallback int) int {
	if val := os.Getenv(key); val != "" {
		if parsed, err := strconv.Atoi(val); err == nil {
			return parsed
		}
	}
	return fallback
}

func getBool(key string, fallback bool) bool {
	if val := os.Getenv(key); val != "" {
		if parsed, err := strconv.ParseBool(val); err == nil {
			return parsed
		}
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	if val := os.Getenv(key); val != "" {
		if parsed, err := time.ParseDuration(val); err == nil {
			return parsed
		}
		if seconds, err := strconv.Atoi(val); err == nil {
			return time.Duration(seconds) * time.Second
		}
	}
	return fallback
}

// Address returns the HTTP listen address for the fasthttp server.
func (c *Config) Address() string {
	return fmt.Sprintf("%s:%s", c.HTTP.Host, c.HTTP.Port)
}
