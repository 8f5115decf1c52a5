package api

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/bilibuddies/bilibuddies/internal/db"
	"github.com/gofiber/fiber/v2"
)

func newTestApp(t *testing.T) (*fiber.App, *db.Repositories) {
	t.Helper()
	databasePath := filepath.Join(t.TempDir(), "bilibuddies-api-test.db")
	database, err := db.OpenSQLite(databasePath)
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := database.DB()
	if err != nil {
		t.Fatalf("unwrap sql db: %v", err)
	}
	t.Cleanup(func() {
		_ = sqlDB.Close()
	})

	handler, err := NewHandler(database, "test-secret-key", false)
	if err != nil {
		t.Fatalf("new handler: %v", err)
	}
	app := fiber.New()
	RegisterRoutes(app, handler)
	return app, db.NewRepositories(database)
}

func jsonRequest(t *testing.T, method string, target string, payload any, sessionCookie string) *http.Request {
	t.Helper()
	var body io.Reader
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			t.Fatalf("marshal request body: %v", err)
		}
		body = bytes.NewReader(encoded)
	}
	request := httptest.NewRequest(method, target, body)
	if payload != nil {
		request.Header.Set("Content-Type", "application/json")
	}
	if sessionCookie != "" {
		request.AddCookie(&http.Cookie{Name: authCookieName, Value: sessionCookie})
	}
	return request
}

func performRequest(t *testing.T, app *fiber.App, request *http.Request, wantStatus int) *http.Response {
	t.Helper()
	response, err := app.Test(request, -1)
	if err != nil {
		t.Fatalf("%s %s: %v", request.Method, request.URL, err)
	}
	if response.StatusCode != wantStatus {
		raw, _ := io.ReadAll(response.Body)
		t.Fatalf("%s %s: status %d, want %d, body %s", request.Method, request.URL, response.StatusCode, wantStatus, raw)
	}
	return response
}

func decodeBody(t *testing.T, response *http.Response, target any) {
	t.Helper()
	defer func() {
		_ = response.Body.Close()
	}()
	if err := json.NewDecoder(response.Body).Decode(target); err != nil {
		t.Fatalf("decode response body: %v", err)
	}
}

func sessionCookieValue(t *testing.T, response *http.Response) string {
	t.Helper()
	for _, cookie := range response.Cookies() {
		if cookie.Name == authCookieName {
			return cookie.Value
		}
	}
	t.Fatal("response carries no session cookie")
	return ""
}

// registerTestUser signs a user up through the real endpoint and returns
// their id and session cookie.
func registerTestUser(t *testing.T, app *fiber.App, email string, name string) (string, string) {
	t.Helper()
	response := performRequest(t, app, jsonRequest(t, fiber.MethodPost, "/api/auth/register", fiber.Map{
		"email":    email,
		"name":     name,
		"password": "correcthorse",
	}, ""), fiber.StatusCreated)

	cookie := sessionCookieValue(t, response)
	var payload struct {
		ID string `json:"id"`
	}
	decodeBody(t, response, &payload)
	if payload.ID == "" {
		t.Fatal("register response carries no user id")
	}
	return payload.ID, cookie
}
