package config

import (
	"testing"
	"time"
)

func TestLoadConfigRequiresJWTSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")

	if _, err := LoadConfig(); err == nil {
		t.Fatal("expected error when JWT_SECRET is empty")
	}
}

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("PORT", "9090")
	t.Setenv("APP_ENV", "dev")
	t.Setenv("ENABLE_API_DOCS", "yes")
	t.Setenv("JWT_TTL_HOURS", "12")
	t.Setenv("SUPABASE_PRIVATE_BUCKET", "true")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Port != "9090" {
		t.Fatalf("expected port 9090, got %q", cfg.Port)
	}
	if cfg.AppEnv != "development" {
		t.Fatalf("expected development env, got %q", cfg.AppEnv)
	}
	if !cfg.DocsEnabled() {
		t.Fatal("expected docs to be enabled in development")
	}
	if cfg.JWTTTL != 12*time.Hour {
		t.Fatalf("expected 12h ttl, got %s", cfg.JWTTTL)
	}
	if !cfg.PrivatePhotos {
		t.Fatal("expected private photo bucket")
	}
}

func TestGetEnvIntFallsBackOnGarbage(t *testing.T) {
	t.Setenv("SOME_INT", "abc")
	if got := getEnvInt("SOME_INT", 7); got != 7 {
		t.Fatalf("expected fallback 7, got %d", got)
	}
	t.Setenv("SOME_INT", "-3")
	if got := getEnvInt("SOME_INT", 7); got != 7 {
		t.Fatalf("expected fallback 7 for negative, got %d", got)
	}
}

func TestNormalizeEnv(t *testing.T) {
	cases := map[string]string{
		"PROD":    "production",
		" stage ": "staging",
		"testing": "test",
		"Local":   "development",
		"qa":      "qa",
	}
	for in, want := range cases {
		if got := normalizeEnv(in); got != want {
			t.Errorf("normalizeEnv(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestSeedAdminAndStorageFlags(t *testing.T) {
	cfg := &Config{DefaultAdminEmail: "admin@semerrar.app"}
	if cfg.SeedAdmin() {
		t.Fatal("expected seeding to require a password")
	}
	cfg.DefaultAdminPassword = "changeme"
	if !cfg.SeedAdmin() {
		t.Fatal("expected seeding to be enabled")
	}
	if cfg.StorageEnabled() {
		t.Fatal("expected storage to be disabled without supabase settings")
	}
}
