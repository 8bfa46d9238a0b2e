// Package config loads bpmonitor settings: built-in defaults first, then
// an optional JSON file named by -c / -config, then short command-line
// flags.
//
// Integrations with an empty address (MQTTBroker, RedisAddr, S3Bucket) are
// disabled.
package config
