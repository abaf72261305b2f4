package config

import (
	"os"

	errorsUtils "github.com/logtide/logtide/pkg/errors"

	"github.com/ilyakaznacheev/cleanenv"
	log "github.com/sirupsen/logrus"

	"github.com/joho/godotenv"
)

type (
	Config struct {
		App         `yaml:"app"`
		Log         `yaml:"log"`
		PG          `yaml:"postgres"`
		HTTP        `yaml:"http"`
		Prometheus  `yaml:"prometheus"`
		Broker      `yaml:"broker"`
		Aggregation `yaml:"aggregation"`
	}

	App struct {
		Name    string `yaml:"name" env-required:"true"`
		Version string `yaml:"version" env-required:"true"`
	}

	Log struct {
		Level string `yaml:"level" env:"LOG_LEVEL" env-default:"info"`
	}

	PG struct {
		MaxPoolSize int    `env-required:"true" env:"MAX_POOL_SIZE" yaml:"max_pool_size"`
		URL         string `env-required:"true" env:"PG_URL"`
	}

	HTTP struct {
		Port string `env-required:"true" yaml:"port" env:"HTTP_PORT"`
	}

	Prometheus struct {
		Port string `env-required:"true" yaml:"port" env:"PROMETHEUS_PORT"`
	}

	Broker struct {
		Enabled     bool     `yaml:"enabled" env:"KAFKA_ENABLED" env-default:"false"`
		Brokers     []string `yaml:"brokers" env:"KAFKA_BROKERS" env-default:"localhost:9092"`
		LogsTopic   string   `yaml:"logs_topic" env:"KAFKA_LOGS_TOPIC" env-default:"logs"`
		AlertsTopic string   `yaml:"alerts_topic" env:"KAFKA_ALERTS_TOPIC" env-default:"notifications"`
		GroupID     string   `yaml:"group_id" env:"KAFKA_GROUP_ID" env-default:"logtide"`
	}

	Aggregation struct {
		AlertThreshold int    `yaml:"alert_threshold" env:"ALERT_THRESHOLD" env-default:"5"`
		BucketTimezone string `yaml:"bucket_timezone" env:"BUCKET_TIMEZONE" env-default:"UTC"`
	}
)

const envPath = ".env"

func init() {
	if err := godotenv.Load(envPath); err != nil {
		log.Debugf("No .env file loaded: %v", err)
	}
}

func New() (*Config, error) {
	cfg := &Config{}

	pathToConfig, ok := os.LookupEnv("APP_CONFIG_PATH")
	if !ok || pathToConfig == "" {
		log.WithField("env_var", "APP_CONFIG_PATH").
			Info("Config path is not set, using default")
		pathToConfig = "infra/config.yaml"
	}

	if err := cleanenv.ReadConfig(pathToConfig, cfg); err != nil {
		return nil, errorsUtils.WrapPathErr(err)
	}

	if err := cleanenv.UpdateEnv(cfg); err != nil {
		return nil, errorsUtils.WrapPathErr(err)
	}

	return cfg, nil
}
