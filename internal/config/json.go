package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/opio/bpmonitor/internal/flagx"
	"github.com/opio/bpmonitor/internal/timex"
)

// JsonConfig is the on-disk shape of the config file. Durations accept
// strings such as "12h" as well as integer nanoseconds.
type JsonConfig struct {
	DatabaseDriver          string         `json:"database_driver"`
	DatabaseDSN             string         `json:"database_dsn"`
	SecretKey               string         `json:"secret_key"`
	SessionValidityDuration timex.Duration `json:"session_validity_duration"`
	LogBackend              string         `json:"log_backend"`
	LogLevel                string         `json:"log_level"`
	MQTTBroker              string         `json:"mqtt_broker"`
	MQTTTopic               string         `json:"mqtt_topic"`
	RedisAddr               string         `json:"redis_addr"`
	RedisStream             string         `json:"redis_stream"`
	S3RootUser              string         `json:"s3_root_user"`
	S3RootPassword          string         `json:"s3_root_password"`
	S3Bucket                string         `json:"s3_bucket"`
	S3Region                string         `json:"s3_region"`
	S3BaseEndpoint          string         `json:"s3_base_endpoint"`
}

// parseJson overlays the file named by -c / -config onto config. Keys
// missing from the file keep their current values.
func parseJson(config *Config) error {
	jsonConfigFile := flagx.JsonConfigFlags()

	// nothing to load
	if jsonConfigFile == "" {
		return nil
	}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}

	c := &JsonConfig{}
	if err := json.Unmarshal(file, c); err != nil {
		return fmt.Errorf("parse config file %s: %w", jsonConfigFile, err)
	}

	overlay(&config.DatabaseDriver, c.DatabaseDriver)
	overlay(&config.DatabaseDSN, c.DatabaseDSN)
	overlay(&config.SecretKey, c.SecretKey)
	if c.SessionValidityDuration.Duration != 0 {
		config.SessionValidityDuration = c.SessionValidityDuration.Duration
	}
	overlay(&config.LogBackend, c.LogBackend)
	overlay(&config.LogLevel, c.LogLevel)
	overlay(&config.MQTTBroker, c.MQTTBroker)
	overlay(&config.MQTTTopic, c.MQTTTopic)
	overlay(&config.RedisAddr, c.RedisAddr)
	overlay(&config.RedisStream, c.RedisStream)
	overlay(&config.S3RootUser, c.S3RootUser)
	overlay(&config.S3RootPassword, c.S3RootPassword)
	overlay(&config.S3Bucket, c.S3Bucket)
	overlay(&config.S3Region, c.S3Region)
	overlay(&config.S3BaseEndpoint, c.S3BaseEndpoint)
	return nil
}

func overlay(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
