package config

import (
	"fmt"
	"net/url"
	"slices"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Database.DSN) == "" {
		return fmt.Errorf("database.dsn is required (DATABASE_DSN or DATABASE_URL)")
	}
	if c.Database.ConnectAttempts < 0 {
		return fmt.Errorf("database.connect_attempts must be >= 0")
	}

	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}
	if c.Auth.AccessTokenTTL <= 0 {
		return fmt.Errorf("auth.access_token_ttl must be > 0")
	}
	if c.Auth.PasswordHashCost < bcrypt.MinCost || c.Auth.PasswordHashCost > bcrypt.MaxCost {
		return fmt.Errorf("auth.password_hash_cost must be in [%d, %d] (got %d)", bcrypt.MinCost, bcrypt.MaxCost, c.Auth.PasswordHashCost)
	}

	if !slices.Contains([]string{"json", "text"}, strings.ToLower(c.Log.Format)) {
		return fmt.Errorf("log.format must be json or text (got %q)", c.Log.Format)
	}

	if err := c.Content.validate(); err != nil {
		return fmt.Errorf("content: %w", err)
	}

	if c.LLM.Timeout <= 0 {
		return fmt.Errorf("llm.timeout must be > 0")
	}
	if c.LLM.Enabled() && c.LLM.MaxTokens <= 0 {
		return fmt.Errorf("llm.max_tokens must be > 0 (got %d)", c.LLM.MaxTokens)
	}

	for name, rule := range map[string]RateLimitRule{"compose": c.RateLimit.Compose, "login": c.RateLimit.Login} {
		if rule.RPS <= 0 || rule.Burst <= 0 {
			return fmt.Errorf("ratelimit.%s: rps and burst must be > 0", name)
		}
	}

	return nil
}

func (c ContentConfig) validate() error {
	u, err := url.Parse(c.PreviewBaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("preview_base_url must be an absolute URL (got %q)", c.PreviewBaseURL)
	}
	if c.SlugFallback == "" {
		return fmt.Errorf("slug_fallback must not be empty")
	}
	return nil
}
