package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds all application configuration.
type Config struct {
	Port    int    `env:"HTTP_PORT" envDefault:"8080"`
	GinMode string `env:"GIN_MODE" envDefault:"release"`

	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
	LogJSON  bool   `env:"LOG_JSON" envDefault:"true"`

	AWS    AWSConfig
	Tables TablesConfig

	Auth0Domain   string `env:"AUTH0_DOMAIN"`
	Auth0Audience string `env:"AUTH0_AUDIENCE"`

	KafkaBrokers       []string `env:"KAFKA_BROKERS" envSeparator:","`
	KafkaProgressTopic string   `env:"KAFKA_PROGRESS_TOPIC" envDefault:"order.progress"`

	AssignDebounce time.Duration `env:"ASSIGN_DEBOUNCE" envDefault:"1s"`
	TimerTick      time.Duration `env:"TIMER_TICK" envDefault:"1s"`
}

type AWSConfig struct {
	Region           string `env:"AWS_REGION" envDefault:"us-east-1"`
	AccessKeyID      string `env:"AWS_ACCESS_KEY_ID" envDefault:"local"`
	SecretAccessKey  string `env:"AWS_SECRET_ACCESS_KEY" envDefault:"local"`
	DynamoDBEndpoint string `env:"DYNAMODB_ENDPOINT"`
}

type TablesConfig struct {
	Orders         string `env:"ORDERS_TABLE" envDefault:"orders"`
	Employees      string `env:"EMPLOYEES_TABLE" envDefault:"employees"`
	EmployeeBusy   string `env:"EMPLOYEE_BUSY_TABLE" envDefault:"employees_in_service"`
	SubtaskPresets string `env:"SUBTASK_PRESETS_TABLE" envDefault:"subtask_presets"`
}

// Load reads .env.<GO_ENV> or .env when present, then parses the environment.
func Load() (*Config, error) {
	goEnv := os.Getenv("GO_ENV")
	if goEnv == "" {
		goEnv = "development"
	}
	if err := godotenv.Load(".env." + goEnv); err != nil {
		_ = godotenv.Load()
	}
	return Parse()
}

// Parse reads configuration from the process environment only.
func Parse() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("HTTP_PORT out of range: %d", c.Port)
	}
	if c.Auth0Domain != "" && c.Auth0Audience == "" {
		return fmt.Errorf("AUTH0_AUDIENCE is required when AUTH0_DOMAIN is set")
	}
	if c.AssignDebounce < 0 || c.TimerTick <= 0 {
		return fmt.Errorf("ASSIGN_DEBOUNCE and TIMER_TICK must be positive")
	}
	return nil
}

func (c *Config) Address() string {
	return fmt.Sprintf(":%d", c.Port)
}

// AuthEnabled is false in local setups without an Auth0 tenant.
func (c *Config) AuthEnabled() bool {
	return strings.TrimSpace(c.Auth0Domain) != ""
}

func (c *Config) EventsEnabled() bool {
	return len(c.KafkaBrokers) > 0
}
