package config

import "time"

// Config holds runtime settings.
//
// Fields:
//   - DatabaseDriver / DatabaseDSN: "sqlite" with a file path, or "postgres" with a pgx DSN.
//   - SecretKey: HMAC secret for session tokens (HS256). Do not use the default in prod.
//   - SessionValidityDuration: how long a sign-in lasts.
//   - LogBackend / LogLevel: "slog" or "zap"; debug, info, warn or error.
//   - MQTTBroker / MQTTTopic: where SOS alerts are published.
//   - RedisAddr / RedisStream: stream SOS alerts are appended to.
//   - S3RootUser / S3RootPassword / S3Bucket / S3Region / S3BaseEndpoint: history export target.
type Config struct {
	DatabaseDriver          string
	DatabaseDSN             string
	SecretKey               string
	SessionValidityDuration time.Duration
	LogBackend              string
	LogLevel                string
	MQTTBroker              string
	MQTTTopic               string
	RedisAddr               string
	RedisStream             string
	S3RootUser              string
	S3RootPassword          string
	S3Bucket                string
	S3Region                string
	S3BaseEndpoint          string
}

// LoadDefaults populates Config with development defaults.
func (c *Config) LoadDefaults() {
	c.DatabaseDriver = "sqlite"
	c.DatabaseDSN = "bpmonitor.db"
	c.SecretKey = "secretKey"
	c.SessionValidityDuration = 12 * time.Hour
	c.LogBackend = "slog"
	c.LogLevel = "info"
	c.MQTTBroker = ""
	c.MQTTTopic = "bpmonitor/sos"
	c.RedisAddr = ""
	c.RedisStream = "bpmonitor:sos"
	c.S3RootUser = "admin"
	c.S3RootPassword = "secretpassword"
	c.S3Bucket = ""
	c.S3Region = "us-east-1"
	c.S3BaseEndpoint = "http://127.0.0.1:9000/"
}

// LoadConfig builds a Config by applying defaults, then overlaying values
// from an optional JSON file and finally from command-line flags.
func LoadConfig() (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()
	if err := parseJson(cfg); err != nil {
		return nil, err
	}
	if err := parseFlags(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
