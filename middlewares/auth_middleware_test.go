package middlewares

import (
	"io"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
)

const testSecret = "test_secret"

func signToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	claims["exp"] = time.Now().Add(time.Hour).Unix()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	if err != nil {
		t.Fatal(err)
	}
	return token
}

func newProtectedApp() *fiber.App {
	app := fiber.New()
	app.Get("/secure", Protect(testSecret), func(c *fiber.Ctx) error {
		return c.SendString(c.Locals("userId").(string))
	})
	app.Get("/admin", ProtectAdmin(testSecret), func(c *fiber.Ctx) error {
		return c.SendString(c.Locals("adminEmail").(string))
	})
	return app
}

func TestProtectWithoutToken(t *testing.T) {
	app := newProtectedApp()

	resp, err := app.Test(httptest.NewRequest("GET", "/secure", nil))
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != fiber.StatusUnauthorized {
		t.Errorf("expected 401, got %d", resp.StatusCode)
	}
}

func TestProtectWithBadToken(t *testing.T) {
	app := newProtectedApp()

	req := httptest.NewRequest("GET", "/secure", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != fiber.StatusUnauthorized {
		t.Errorf("expected 401, got %d", resp.StatusCode)
	}
}

func TestProtectWithValidToken(t *testing.T) {
	app := newProtectedApp()

	req := httptest.NewRequest("GET", "/secure", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, jwt.MapClaims{"userId": "abc123"}))
	resp, err := app.Test(req)
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	body, _ := io.ReadAll(resp.Body)
	if string(body) != "abc123" {
		t.Errorf("expected userId local set, got %q", body)
	}
}

func TestProtectRejectsAdminToken(t *testing.T) {
	app := newProtectedApp()

	req := httptest.NewRequest("GET", "/secure", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, jwt.MapClaims{"id": "a1", "email": "a@b.c"}))
	resp, err := app.Test(req)
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != fiber.StatusUnauthorized {
		t.Errorf("expected 401 for a token without userId, got %d", resp.StatusCode)
	}
}

func TestProtectAdminWithValidToken(t *testing.T) {
	app := newProtectedApp()

	req := httptest.NewRequest("GET", "/admin", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, jwt.MapClaims{"id": "a1", "email": "admin@dolchem.com"}))
	resp, err := app.Test(req)
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	body, _ := io.ReadAll(resp.Body)
	if !strings.Contains(string(body), "admin@dolchem.com") {
		t.Errorf("expected adminEmail local set, got %q", body)
	}
}

func TestProtectAdminRejectsUserToken(t *testing.T) {
	app := newProtectedApp()

	req := httptest.NewRequest("GET", "/admin", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, jwt.MapClaims{"userId": "abc123"}))
	resp, err := app.Test(req)
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != fiber.StatusUnauthorized {
		t.Errorf("expected 401 for a token without admin claims, got %d", resp.StatusCode)
	}
}
