package routes

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Rodrigojesussilva/Sem-errar-sub001/internal/config"
	"github.com/gofiber/fiber/v2"
)

func TestRegisterRoutesProtectsUserEndpoints(t *testing.T) {
	app := fiber.New()
	cfg := &config.Config{JWTSecret: "routes-secret", AppEnv: "test"}
	if err := RegisterRoutes(app, cfg, nil); err != nil {
		t.Fatalf("RegisterRoutes: %v", err)
	}

	for _, target := range []struct{ method, path string }{
		{http.MethodGet, "/usuarios"},
		{http.MethodGet, "/usuarios/1"},
		{http.MethodDelete, "/usuarios/1"},
		{http.MethodPost, "/usuarios/1/foto"},
		{http.MethodGet, "/me"},
	} {
		resp, err := app.Test(httptest.NewRequest(target.method, target.path, nil))
		if err != nil {
			t.Fatalf("app.Test %s %s: %v", target.method, target.path, err)
		}
		resp.Body.Close()
		if resp.StatusCode != http.StatusUnauthorized {
			t.Fatalf("%s %s: expected 401, got %d", target.method, target.path, resp.StatusCode)
		}
	}
}

func TestHealthReportsDegradedWithoutDatabase(t *testing.T) {
	app := fiber.New()
	cfg := &config.Config{JWTSecret: "routes-secret", AppEnv: "test"}
	if err := RegisterRoutes(app, cfg, nil); err != nil {
		t.Fatalf("RegisterRoutes: %v", err)
	}

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/health", nil))
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()

	var payload map[string]string
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if payload["status"] != "degraded" {
		t.Fatalf("expected degraded status, got %q", payload["status"])
	}
}
