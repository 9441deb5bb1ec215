package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/kozaktomas/people-page/internal/config"
	"github.com/kozaktomas/people-page/internal/page"
	"github.com/kozaktomas/people-page/internal/peopleapi"
)

// testConfig creates a minimal config for testing
func testConfig() *config.Config {
	cfg := config.Defaults()
	cfg.PeopleAPI.URL = "http://localhost:3000/api"
	return cfg
}

const testPeopleJSON = `[
	{"name": "Emma de Milliano", "sex": "f", "born": 1876, "died": 1956, "fatherName": "Petrus de Milliano", "motherName": "Sophia van Damme", "slug": "emma-de-milliano-1876"},
	{"name": "Philibert Haverbeke", "sex": "m", "born": 1907, "died": 1997, "fatherName": "Emile Haverbeke", "motherName": "Emma de Milliano", "slug": "philibert-haverbeke-1907"},
	{"name": "Maria de Rycke", "sex": "f", "born": 1683, "died": 1724, "fatherName": "Frederik de Rycke", "motherName": "Laurentia van Vlaenderen", "slug": "maria-de-rycke-1683"},
	{"name": "Pieter de Decker", "sex": "m", "born": 1705, "died": 1780, "fatherName": "Joos de Decker", "motherName": "Petronella Wauters", "slug": "pieter-de-decker-1705"}
]`

// setupMockPeopleServer creates a mock people API server serving body with status.
func setupMockPeopleServer(t *testing.T, status int, body string) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("/api/people.json", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		w.Write([]byte(body))
	})

	return httptest.NewServer(mux)
}

// loadedPage creates a page backed by a mock server and waits for the load.
func loadedPage(t *testing.T, status int, body string) *page.Page {
	t.Helper()

	server := setupMockPeopleServer(t, status, body)
	t.Cleanup(server.Close)

	client, err := peopleapi.NewClient(config.PeopleAPIConfig{
		URL:     server.URL + "/api",
		Path:    "people.json",
		Timeout: 5 * time.Second,
	}, nil)
	if err != nil {
		t.Fatalf("failed to create people client: %v", err)
	}

	p := page.New(client, nil)
	p.Load(context.Background())
	return p
}

// requestWithChiParams creates a request with chi URL parameters
func requestWithChiParams(r *http.Request, params map[string]string) *http.Request {
	rctx := chi.NewRouteContext()
	for key, value := range params {
		rctx.URLParams.Add(key, value)
	}
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

// parseJSONResponse parses a JSON response body into the target type
func parseJSONResponse(t *testing.T, recorder *httptest.ResponseRecorder, target any) {
	t.Helper()
	if err := json.Unmarshal(recorder.Body.Bytes(), target); err != nil {
		t.Fatalf("failed to parse JSON response: %v\nBody: %s", err, recorder.Body.String())
	}
}

// assertStatusCode checks if the response has the expected status code
func assertStatusCode(t *testing.T, recorder *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if recorder.Code != expected {
		t.Errorf("expected status %d, got %d\nBody: %s", expected, recorder.Code, recorder.Body.String())
	}
}

// assertContentType checks if the response has the expected content type
func assertContentType(t *testing.T, recorder *httptest.ResponseRecorder, expected string) {
	t.Helper()
	ct := recorder.Header().Get("Content-Type")
	if ct != expected {
		t.Errorf("expected Content-Type '%s', got '%s'", expected, ct)
	}
}

// assertJSONError checks if the response is a JSON error with the expected message
func assertJSONError(t *testing.T, recorder *httptest.ResponseRecorder, expectedMessage string) {
	t.Helper()
	var result map[string]string
	if err := json.Unmarshal(recorder.Body.Bytes(), &result); err != nil {
		t.Fatalf("failed to parse error response: %v\nBody: %s", err, recorder.Body.String())
	}
	if result["error"] != expectedMessage {
		t.Errorf("expected error '%s', got '%s'", expectedMessage, result["error"])
	}
}
