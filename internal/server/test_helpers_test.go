package server

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"radlands-tracker/internal/config"
	"radlands-tracker/internal/db"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// newTestServer connects to TEST_DATABASE_URL, migrates, wipes the tables
// and serves the router. Tests needing a database skip when it is unset.
func newTestServer(t *testing.T) (*httptest.Server, *gorm.DB) {
	t.Helper()
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("skipping test; TEST_DATABASE_URL is not set")
	}
	conn, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("test database connection failed: %v", err)
	}
	if err := db.Migrate(conn); err != nil {
		t.Fatalf("test database migration failed: %v", err)
	}
	for _, stmt := range []string{
		"DELETE FROM game_events",
		"DELETE FROM board_states",
		"DELETE FROM games",
		"DELETE FROM cards",
	} {
		if err := conn.Exec(stmt).Error; err != nil {
			t.Fatalf("failed to reset tables: %v", err)
		}
	}

	gin.SetMode(gin.TestMode)
	srv := New(conn, config.Default())
	ts := httptest.NewServer(srv.Router())
	t.Cleanup(ts.Close)
	return ts, conn
}

func seedCatalog(t *testing.T, conn *gorm.DB) {
	t.Helper()
	if _, err := db.SeedCards(conn); err != nil {
		t.Fatalf("failed to seed catalog: %v", err)
	}
}

func doRequest(t *testing.T, ts *httptest.Server, method, path string, body any) *http.Response {
	t.Helper()
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("failed to marshal request body: %v", err)
		}
		reader = bytes.NewReader(data)
	}
	req, err := http.NewRequest(method, ts.URL+path, reader)
	if err != nil {
		t.Fatalf("failed to build request: %v", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func decodeBody(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()
	var body map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("failed to decode response body: %v", err)
	}
	return body
}

func decodeList(t *testing.T, resp *http.Response) []map[string]any {
	t.Helper()
	var body []map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("failed to decode response body: %v", err)
	}
	return body
}

func wantStatus(t *testing.T, resp *http.Response, want int) {
	t.Helper()
	if resp.StatusCode != want {
		t.Fatalf("expected status %d, got %d", want, resp.StatusCode)
	}
}

func asInt(t *testing.T, value any) int {
	t.Helper()
	f, ok := value.(float64)
	if !ok {
		t.Fatalf("expected number, got %T (%v)", value, value)
	}
	return int(f)
}

func idList(t *testing.T, value any) []int64 {
	t.Helper()
	raw, ok := value.([]any)
	if !ok {
		t.Fatalf("expected array, got %T (%v)", value, value)
	}
	ids := make([]int64, 0, len(raw))
	for _, item := range raw {
		ids = append(ids, int64(asInt(t, item)))
	}
	return ids
}

func cardID(t *testing.T, conn *gorm.DB, name string) int64 {
	t.Helper()
	id, err := db.CardIDByName(conn, name)
	if err != nil {
		t.Fatalf("card lookup failed: %v", err)
	}
	if id == 0 {
		t.Fatalf("card %q not found in catalog", name)
	}
	return id
}
