package config

import (
	"testing"
	"time"
	_ "time/tzdata"

	"github.com/stretchr/testify/assert"
)

func validConfig() *Config {
	return &Config{
		Environment: Development,
		Server: ServerConfig{
			Port:            8080,
			ReadTimeout:     15 * time.Second,
			WriteTimeout:    15 * time.Second,
			ShutdownTimeout: 10 * time.Second,
		},
		Logger:   LoggerConfig{Level: "info"},
		TimeSpan: TimeSpanConfig{DefaultTimezone: "Europe/Berlin"},
	}
}

func TestConfig_Validate(t *testing.T) {
	testCases := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{
			name:   "Valid",
			mutate: func(c *Config) {},
		},
		{
			name:   "Production with limits",
			mutate: func(c *Config) { c.Environment = Production; c.TimeSpan.MaxSpanYears = 1000 },
		},
		{
			name:    "Missing port and level",
			mutate:  func(c *Config) { c.Server.Port = 0; c.Logger.Level = "" },
			wantErr: "missing required configurations: [server.port logger.level]",
		},
		{
			name:    "Unknown environment",
			mutate:  func(c *Config) { c.Environment = "staging" },
			wantErr: "invalid environment value: staging",
		},
		{
			name:    "Unknown time zone",
			mutate:  func(c *Config) { c.TimeSpan.DefaultTimezone = "Mars/Olympus" },
			wantErr: "invalid timespan.defaultTimezone",
		},
		{
			name:    "Negative span limit",
			mutate:  func(c *Config) { c.TimeSpan.MaxSpanYears = -1 },
			wantErr: "must not be negative",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := validConfig()
			tc.mutate(cfg)

			err := cfg.Validate()
			if tc.wantErr == "" {
				assert.NoError(t, err)
			} else {
				assert.ErrorContains(t, err, tc.wantErr)
			}
		})
	}
}
