package config

import "testing"

func TestLoad_AdminDisabledByDefault(t *testing.T) {
	t.Setenv("JWT_SECRET", "")
	t.Setenv("ADMIN_PASSWORD_HASH", "")

	cfg := Load()
	if cfg.JWTSecret != "" {
		t.Fatalf("expected no default secret, got %q", cfg.JWTSecret)
	}
	if cfg.AdminEnabled() {
		t.Fatal("admin must be disabled without a secret and password hash")
	}
}

func TestConfig_AdminEnabled(t *testing.T) {
	tests := []struct {
		name   string
		secret string
		hash   string
		want   bool
	}{
		{"configured", "s3cret-signing-key", "$2a$10$hash", true},
		{"empty secret", "", "$2a$10$hash", false},
		{"blank secret", "   ", "$2a$10$hash", false},
		{"placeholder secret", "changeme", "$2a$10$hash", false},
		{"no hash", "s3cret-signing-key", "", false},
	}

	for _, tt := range tests {
		cfg := &Config{JWTSecret: tt.secret, AdminPasswordHash: tt.hash}
		if got := cfg.AdminEnabled(); got != tt.want {
			t.Errorf("%s: expected %v, got %v", tt.name, tt.want, got)
		}
	}
}
