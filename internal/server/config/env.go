package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// envConfig mirrors the environment variables recognized by the original
// deployment. Pointer fields distinguish "unset" from zero values.
type envConfig struct {
	EndpointAddr     string `env:"ENDPOINT_ADDR"`
	DatabaseDSN      string `env:"DATABASE_DSN"`
	SecretKey        string `env:"SECRET_KEY"`
	SigningAlgorithm string `env:"ALGORITHM"`
	TokenExpire      *int   `env:"TOKEN_EXPIRE"` // minutes

	DBUser string `env:"DB_USER"`
	DBPass string `env:"DB_PASS"`
	DBHost string `env:"DB_HOST"`
	DBPort string `env:"DB_PORT"`
	DBName string `env:"DB_NAME"`

	BrokerHost string `env:"BROKER_HOST"`
	BrokerPort string `env:"BROKER_PORT"`
	RedisHost  string `env:"REDIS_HOST"`
	RedisPort  string `env:"REDIS_PORT"`
	RedisDB    *int   `env:"REDIS_DB"`

	Stages        []string `env:"STAGES"`       // comma-separated
	StagingTime   *int     `env:"STAGING_TIME"` // seconds
	TaskMaxRetry  *int     `env:"TASK_MAX_RETRY"`
	RandomImages  string   `env:"RANDOM_IMAGES_SERVICE"`
	UploadTo      string   `env:"UPLOAD_TO"`
	UploadBackend string   `env:"UPLOAD_BACKEND"`
	ClientTimeout *int     `env:"CLIENT_TIMEOUT"` // seconds

	S3RootUser     string `env:"S3_ROOT_USER"`
	S3RootPassword string `env:"S3_ROOT_PASSWORD"`
	S3Bucket       string `env:"S3_BUCKET"`
	S3Region       string `env:"S3_REGION"`
	S3BaseEndpoint string `env:"S3_BASE_ENDPOINT"`
}

// parseEnv overlays environment variables onto the provided Config.
// A full DSN via DATABASE_DSN wins over the piecewise DB_* variables.
func parseEnv(config *Config) {
	c := envConfig{}
	if err := env.Parse(&c); err != nil {
		panic(err)
	}

	if c.EndpointAddr != "" {
		config.EndpointAddr = c.EndpointAddr
	}

	switch {
	case c.DatabaseDSN != "":
		config.DatabaseDSN = c.DatabaseDSN
	case c.DBHost != "":
		config.DatabaseDSN = fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
			c.DBUser, c.DBPass, c.DBHost, c.DBPort, c.DBName)
	}

	if c.SecretKey != "" {
		config.SecretKey = c.SecretKey
	}
	if c.SigningAlgorithm != "" {
		config.SigningAlgorithm = c.SigningAlgorithm
	}
	if c.TokenExpire != nil {
		config.TokenValidityDuration = time.Duration(*c.TokenExpire) * time.Minute
	}

	if c.BrokerHost != "" {
		config.BrokerAddr = c.BrokerHost + ":" + c.BrokerPort
	}
	if c.RedisHost != "" {
		config.StatusAddr = c.RedisHost + ":" + c.RedisPort
	}
	if c.RedisDB != nil {
		config.StatusDB = *c.RedisDB
	}

	if len(c.Stages) > 0 {
		config.Stages = c.Stages
	}
	if c.StagingTime != nil {
		config.StagingInterval = time.Duration(*c.StagingTime) * time.Second
	}
	if c.TaskMaxRetry != nil {
		config.TaskMaxRetry = *c.TaskMaxRetry
	}
	if c.RandomImages != "" {
		config.RandomImageURL = c.RandomImages
	}
	if c.UploadTo != "" {
		config.UploadURL = c.UploadTo
	}
	if c.UploadBackend != "" {
		config.UploadBackend = c.UploadBackend
	}
	if c.ClientTimeout != nil {
		config.ClientTimeout = time.Duration(*c.ClientTimeout) * time.Second
	}

	if c.S3RootUser != "" {
		config.S3RootUser = c.S3RootUser
	}
	if c.S3RootPassword != "" {
		config.S3RootPassword = c.S3RootPassword
	}
	if c.S3Bucket != "" {
		config.S3Bucket = c.S3Bucket
	}
	if c.S3Region != "" {
		config.S3Region = c.S3Region
	}
	if c.S3BaseEndpoint != "" {
		config.S3BaseEndpoint = c.S3BaseEndpoint
	}
}
