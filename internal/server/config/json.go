package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/avolkov/dogshelter/internal/flagx"
)

// JsonConfig defines a configuration structure tailored for JSON
// unmarshalling. Durations are plain integers in the unit the original
// deployment used: token validity in minutes, staging interval in seconds.
//
// This struct is an intermediate DTO used only for reading JSON
// configuration files; its set fields are copied into the runtime Config.
type JsonConfig struct {
	EndpointAddr           string   `json:"endpoint_addr"`
	DatabaseDSN            string   `json:"database_dsn"`
	SecretKey              string   `json:"secret_key"`
	SigningAlgorithm       string   `json:"signing_algorithm"`
	TokenValidityMinutes   *int     `json:"token_validity_minutes"`
	BrokerAddr             string   `json:"broker_addr"`
	StatusAddr             string   `json:"status_addr"`
	StatusDB               *int     `json:"status_db"`
	Stages                 []string `json:"stages"`
	StagingIntervalSeconds *int     `json:"staging_interval_seconds"`
	TaskMaxRetry           *int     `json:"task_max_retry"`
	RandomImageURL         string   `json:"random_image_url"`
	UploadURL              string   `json:"upload_url"`
	UploadBackend          string   `json:"upload_backend"`
	ClientTimeoutSeconds   *int     `json:"client_timeout_seconds"`
	S3RootUser             string   `json:"s3_root_user"`
	S3RootPassword         string   `json:"s3_root_password"`
	S3Bucket               string   `json:"s3_bucket"`
	S3Region               string   `json:"s3_region"`
	S3BaseEndpoint         string   `json:"s3_base_endpoint"`
}

// parseJson loads configuration values from a JSON file into the provided
// Config instance.
//
// The file path comes from the -c or -config command-line flags; if neither
// is set, no JSON file is loaded. If the file cannot be read or contains
// invalid JSON, the function panics. Unset fields keep their current values.
func parseJson(config *Config) {

	jsonConfigFile := flagx.JsonConfigFlags()

	// nothing to load
	if jsonConfigFile == "" {
		return
	}

	c := &JsonConfig{}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	err = json.Unmarshal(file, c)
	if err != nil {
		panic(err)
	}

	if c.EndpointAddr != "" {
		config.EndpointAddr = c.EndpointAddr
	}
	if c.DatabaseDSN != "" {
		config.DatabaseDSN = c.DatabaseDSN
	}
	if c.SecretKey != "" {
		config.SecretKey = c.SecretKey
	}
	if c.SigningAlgorithm != "" {
		config.SigningAlgorithm = c.SigningAlgorithm
	}
	if c.TokenValidityMinutes != nil {
		config.TokenValidityDuration = time.Duration(*c.TokenValidityMinutes) * time.Minute
	}
	if c.BrokerAddr != "" {
		config.BrokerAddr = c.BrokerAddr
	}
	if c.StatusAddr != "" {
		config.StatusAddr = c.StatusAddr
	}
	if c.StatusDB != nil {
		config.StatusDB = *c.StatusDB
	}
	if len(c.Stages) > 0 {
		config.Stages = c.Stages
	}
	if c.StagingIntervalSeconds != nil {
		config.StagingInterval = time.Duration(*c.StagingIntervalSeconds) * time.Second
	}
	if c.TaskMaxRetry != nil {
		config.TaskMaxRetry = *c.TaskMaxRetry
	}
	if c.RandomImageURL != "" {
		config.RandomImageURL = c.RandomImageURL
	}
	if c.UploadURL != "" {
		config.UploadURL = c.UploadURL
	}
	if c.UploadBackend != "" {
		config.UploadBackend = c.UploadBackend
	}
	if c.ClientTimeoutSeconds != nil {
		config.ClientTimeout = time.Duration(*c.ClientTimeoutSeconds) * time.Second
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
