package v1

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"

	"github.com/BelugaDiver/foreman/config"
	"github.com/BelugaDiver/foreman/pkg/postgres"
)

func TestHealthCheck(t *testing.T) {
	cfg := &config.Config{}
	cfg.App.Name = "foreman"
	cfg.App.Version = "0.1.0"

	// A pool constructed without a DSN reports the degraded state.
	pg, err := postgres.New("")
	if err != nil {
		t.Fatalf("postgres.New: %v", err)
	}

	app := fiber.New()
	NewHealthRoutes(app, cfg, pg)

	for _, target := range []string{"/", "/health"} {
		t.Run(target, func(t *testing.T) {
			resp, err := app.Test(httptest.NewRequest(http.MethodGet, target, nil))
			if err != nil {
				t.Fatalf("app.Test: %v", err)
			}
			defer resp.Body.Close()

			if resp.StatusCode != http.StatusOK {
				t.Fatalf("status = %d, want 200", resp.StatusCode)
			}

			b, err := io.ReadAll(resp.Body)
			if err != nil {
				t.Fatalf("reading body: %v", err)
			}

			var got map[string]string
			if err := json.Unmarshal(b, &got); err != nil {
				t.Fatalf("unmarshal: %v", err)
			}

			if got["status"] != "healthy" || got["service"] != "foreman" {
				t.Errorf("unexpected body: %v", got)
			}
			if got["database"] != "unavailable" {
				t.Errorf("database = %q, want unavailable without a DSN", got["database"])
			}
		})
	}
}
