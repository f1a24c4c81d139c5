package config

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/caarlos0/env"
	"github.com/joho/godotenv"
)

// Database configuration struct.
type DatabaseConfiguration struct {
	DSN            string `env:"POSTGRES_DSN"`
	Database       string `env:"POSTGRES_DB"              envDefault:"tftstats"`
	MigrationsPath string `env:"POSTGRES_MIGRATIONS_PATH" envDefault:"migrations"`
}

// Redis configuration struct.
type RedisConfiguration struct {
	Host     string        `env:"REDIS_HOST"     envDefault:"localhost"`
	Port     string        `env:"REDIS_PORT"     envDefault:"6379"`
	Password string        `env:"REDIS_PASSWORD"`
	TTL      time.Duration `env:"REDIS_TTL"      envDefault:"24h"`
}

// Bucket used for the run logs.
type BucketConfiguration struct {
	Region       string `env:"BUCKET_REGION"        envDefault:"us-east-1"`
	Endpoint     string `env:"BUCKET_ENDPOINT"`
	AccessKey    string `env:"BUCKET_ACCESS_KEY"`
	AccessSecret string `env:"BUCKET_ACCESS_SECRET"`
	LogBucket    string `env:"BUCKET_LOG_BUCKET"`
}

// Report configuration struct.
type ReportConfiguration struct {
	MatchDir        string `env:"REPORT_MATCH_DIR"        envDefault:"matches"`
	Scope           string `env:"REPORT_SCOPE"            envDefault:"all"`
	RankedOnly      bool   `env:"REPORT_RANKED_ONLY"      envDefault:"true"`
	Accumulate      bool   `env:"REPORT_ACCUMULATE"       envDefault:"false"`
	Workers         int    `env:"REPORT_WORKERS"          envDefault:"8"`
	ExpectedMatches int    `env:"REPORT_EXPECTED_MATCHES" envDefault:"500000"`
}

// Server addresses.
type ServerConfiguration struct {
	APIAddress    string `env:"API_ADDRESS"    envDefault:":8080"`
	HealthAddress string `env:"HEALTH_ADDRESS" envDefault:":50051"`
}

type Config struct {
	Environment string
	Database    DatabaseConfiguration
	Redis       RedisConfiguration
	Bucket      BucketConfiguration
	Report      ReportConfiguration
	Server      ServerConfiguration
}

// Load the .env when not running on docker and parse the variables.
func Load() (*Config, error) {
	if os.Getenv("ENVIRONMENT") != "docker" {
		if err := godotenv.Load(); err != nil {
			log.Println("No .env file found, using the environment")
		}
	}

	cfg := &Config{}
	targets := []any{&cfg.Database, &cfg.Redis, &cfg.Bucket, &cfg.Report, &cfg.Server}
	for _, target := range targets {
		if err := env.Parse(target); err != nil {
			return nil, fmt.Errorf("couldn't parse the configuration: %w", err)
		}
	}
	cfg.Environment = os.Getenv("ENVIRONMENT")

	if cfg.Report.Workers <= 0 {
		cfg.Report.Workers = 1
	}

	return cfg, nil
}
