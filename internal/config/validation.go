package config

import (
	"fmt"
	"strings"
)

func validate(c *Config) error {
	if c.HTTPTimeout <= 0 {
		return fmt.Errorf("http timeout must be > 0")
	}
	if c.RateLimitRPS < 0 {
		return fmt.Errorf("rate limit must be >= 0")
	}
	if c.RateLimitBurst <= 0 {
		return fmt.Errorf("rate limit burst must be > 0")
	}
	if c.DDGMaxPages < 1 {
		return fmt.Errorf("deep page limit must be >= 1")
	}
	for _, h := range c.Headers {
		if !strings.Contains(h, ":") {
			return fmt.Errorf("header %q must be in 'Key: Value' form", h)
		}
	}
	return nil
}
