package config

import (
	"os"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	tests := []struct {
		expected  *Config
		name      string
		args      []string
		expectErr bool
	}{
		{name: "all flags", args: []string{"cmd",
			"-n", "postgres", "-d", "db", "-s", "secret", "-t", "90",
			"-o", "zap", "-l", "debug", "-m", "tcp://broker:1883", "-q", "topic",
			"-r", "redis:6379", "-x", "stream",
			"-u", "user", "-p", "password", "-b", "bucket", "-g", "us-west-1", "-e", "http://endpoint",
		},
			expected: &Config{
				DatabaseDriver:          "postgres",
				DatabaseDSN:             "db",
				SecretKey:               "secret",
				SessionValidityDuration: 90 * time.Minute,
				LogBackend:              "zap",
				LogLevel:                "debug",
				MQTTBroker:              "tcp://broker:1883",
				MQTTTopic:               "topic",
				RedisAddr:               "redis:6379",
				RedisStream:             "stream",
				S3RootUser:              "user",
				S3RootPassword:          "password",
				S3Bucket:                "bucket",
				S3Region:                "us-west-1",
				S3BaseEndpoint:          "http://endpoint",
			}},
		{name: "foreign flags ignored", args: []string{"cmd", "-c", "cfg.json", "-z", "1", "-d", "x.db"},
			expected: &Config{DatabaseDSN: "x.db"}},
		{name: "bad minutes", args: []string{"cmd", "-t", "soon"}, expectErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			os.Args = tt.args
			config := &Config{}

			err := parseFlags(config)
			if tt.expectErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Empty(t, cmp.Diff(tt.expected, config))
		})
	}
}
