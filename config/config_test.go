package config

import "testing"

// Load caches globally, so defaults and overrides are asserted in one pass.
func TestLoadDefaultsAndEnvOverrides(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("DB_NAME", "snapwall_test")
	t.Setenv("TOKEN_TTL_HOURS", "48")

	cfg := Load()

	if cfg.JWTSecret != "test-secret" {
		t.Errorf("JWTSecret = %q, want env value", cfg.JWTSecret)
	}
	if cfg.DBName != "snapwall_test" {
		t.Errorf("DBName = %q, want env override", cfg.DBName)
	}
	if cfg.TokenTTLHours != 48 {
		t.Errorf("TokenTTLHours = %d, want 48", cfg.TokenTTLHours)
	}

	if cfg.AppPort != "8080" {
		t.Errorf("AppPort default = %q, want 8080", cfg.AppPort)
	}
	if cfg.UploadDir != "./public" {
		t.Errorf("UploadDir default = %q, want ./public", cfg.UploadDir)
	}
	if cfg.MaxUploadBytes != 10_000_000 {
		t.Errorf("MaxUploadBytes default = %d, want 10000000", cfg.MaxUploadBytes)
	}
	if len(cfg.AllowedOrigins) != 1 || cfg.AllowedOrigins[0] != "*" {
		t.Errorf("AllowedOrigins default = %v, want [*]", cfg.AllowedOrigins)
	}

	if got := Get(); got.JWTSecret != cfg.JWTSecret {
		t.Error("Get() did not return the cached configuration")
	}
}
