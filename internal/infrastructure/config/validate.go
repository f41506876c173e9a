package config

import (
	"fmt"
	"log"
	"time"
)

// Validate ensures all required configuration values are present and usable
func (c *Config) Validate() error {
	var missingConfigs []string

	if c.Server.Port == 0 {
		missingConfigs = append(missingConfigs, "server.port")
	}

	if c.Server.ReadTimeout == 0 {
		missingConfigs = append(missingConfigs, "server.readTimeout")
	}

	if c.Server.WriteTimeout == 0 {
		missingConfigs = append(missingConfigs, "server.writeTimeout")
	}

	if c.Server.ShutdownTimeout == 0 {
		missingConfigs = append(missingConfigs, "server.shutdownTimeout")
	}

	if c.Logger.Level == "" {
		missingConfigs = append(missingConfigs, "logger.level")
	}

	if c.Environment == "" {
		missingConfigs = append(missingConfigs, "environment")
	} else if c.Environment != Development &&
		c.Environment != Production &&
		c.Environment != Test {
		return fmt.Errorf("invalid environment value: %s, must be one of: %s, %s, or %s",
			c.Environment, Development, Production, Test)
	}

	if len(missingConfigs) > 0 {
		return fmt.Errorf("missing required configurations: %v", missingConfigs)
	}

	if _, err := time.LoadLocation(c.TimeSpan.DefaultTimezone); err != nil {
		return fmt.Errorf("invalid timespan.defaultTimezone %q: %w", c.TimeSpan.DefaultTimezone, err)
	}

	if c.TimeSpan.MaxSpanYears < 0 {
		return fmt.Errorf("timespan.maxSpanYears must not be negative, got %d", c.TimeSpan.MaxSpanYears)
	}

	if c.Environment == Production {
		var warnings []string

		if c.Server.ReadTimeout < 5*time.Second {
			warnings = append(warnings, "server.readTimeout is too low for production")
		}

		if c.Server.WriteTimeout < 5*time.Second {
			warnings = append(warnings, "server.writeTimeout is too low for production")
		}

		if c.TimeSpan.MaxSpanYears == 0 {
			warnings = append(warnings, "timespan.maxSpanYears is unlimited")
		}

		if len(warnings) > 0 {
			log.Printf("Warning: potential issues in production configuration: %v", warnings)
		}
	}

	return nil
}
