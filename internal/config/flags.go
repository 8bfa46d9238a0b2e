package config

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/opio/bpmonitor/internal/flagx"
)

var ownFlags = []string{"-n", "-d", "-s", "-t", "-o", "-l", "-m", "-q", "-r", "-x", "-u", "-p", "-b", "-g", "-e"}

// parseFlags populates Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-n string   database driver ("sqlite" or "postgres")
//	-d string   database DSN
//	-s string   session token secret key
//	-t int      session validity, minutes
//	-o string   log backend ("slog" or "zap")
//	-l string   log level
//	-m string   MQTT broker URL
//	-q string   MQTT topic for SOS alerts
//	-r string   Redis address
//	-x string   Redis stream for SOS alerts
//	-u string   S3 root user
//	-p string   S3 root password
//	-b string   S3 bucket name
//	-g string   S3 region
//	-e string   S3 base endpoint (e.g., "http://127.0.0.1:9000/")
func parseFlags(config *Config) error {
	args := flagx.FilterArgs(os.Args[1:], ownFlags)

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.DatabaseDriver, "n", config.DatabaseDriver, "database driver")
	fs.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "database DSN")
	fs.StringVar(&config.SecretKey, "s", config.SecretKey, "secret key")

	sessionValidity := fs.Int("t", int(config.SessionValidityDuration.Minutes()), "session validity (in minutes)")

	fs.StringVar(&config.LogBackend, "o", config.LogBackend, "log backend")
	fs.StringVar(&config.LogLevel, "l", config.LogLevel, "log level")
	fs.StringVar(&config.MQTTBroker, "m", config.MQTTBroker, "MQTT broker")
	fs.StringVar(&config.MQTTTopic, "q", config.MQTTTopic, "MQTT topic")
	fs.StringVar(&config.RedisAddr, "r", config.RedisAddr, "Redis address")
	fs.StringVar(&config.RedisStream, "x", config.RedisStream, "Redis stream")
	fs.StringVar(&config.S3RootUser, "u", config.S3RootUser, "S3 root user")
	fs.StringVar(&config.S3RootPassword, "p", config.S3RootPassword, "S3 root password")
	fs.StringVar(&config.S3Bucket, "b", config.S3Bucket, "S3 bucket")
	fs.StringVar(&config.S3Region, "g", config.S3Region, "S3 region")
	fs.StringVar(&config.S3BaseEndpoint, "e", config.S3BaseEndpoint, "S3 base endpoint")

	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("parse flags: %w", err)
	}

	config.SessionValidityDuration = time.Duration(*sessionValidity) * time.Minute
	return nil
}
