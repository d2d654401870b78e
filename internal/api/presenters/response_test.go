package presenters

import (
	"errors"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
)

func decode(t *testing.T, app *fiber.App, path string) (int, map[string]any) {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, path, nil))
	if err != nil {
		t.Fatalf("app.Test() error = %v", err)
	}
	body, _ := io.ReadAll(resp.Body)

	var out map[string]any
	if len(body) > 0 {
		if err := json.Unmarshal(body, &out); err != nil {
			t.Fatalf("invalid json %q: %v", body, err)
		}
	}
	return resp.StatusCode, out
}

func TestResponses(t *testing.T) {
	app := fiber.New()
	app.Get("/ok", func(c *fiber.Ctx) error {
		return SuccessResponse(c, fiber.Map{"id": 1}, fiber.StatusCreated, "created")
	})
	app.Get("/fail", func(c *fiber.Ctx) error {
		return ErrorResponse(c, fiber.StatusNotFound, "failed", errors.New("not found"))
	})
	app.Get("/empty", NoContentResponse)

	code, body := decode(t, app, "/ok")
	if code != fiber.StatusCreated || body["status"] != true || body["message"] != "created" {
		t.Errorf("success = %d %v", code, body)
	}
	if _, ok := body["error"]; ok {
		t.Error("success response carries an error field")
	}

	code, body = decode(t, app, "/fail")
	if code != fiber.StatusNotFound || body["status"] != false || body["error"] != "not found" {
		t.Errorf("error = %d %v", code, body)
	}
	if _, ok := body["data"]; ok {
		t.Error("error response carries a data field")
	}

	if code, _ = decode(t, app, "/empty"); code != fiber.StatusNoContent {
		t.Errorf("no content = %d", code)
	}
}
