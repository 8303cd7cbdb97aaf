// Copyright (c) 2025 Ewan Ross.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	_ "modernc.org/sqlite"

	"github.com/ewanross/seatswap/cliparse"
	"github.com/ewanross/seatswap/db"
)

// SetupTestDB creates a fresh SQLite results database in a temp directory
// and returns a read Store plus a raw connection for seeding.
func SetupTestDB(t *testing.T) (*db.Store, *sql.DB, cliparse.Config) {
	t.Helper()

	path := filepath.Join(t.TempDir(), "elections.db")
	cfg := GetTestConfig(path)

	conn, err := sql.Open("sqlite", path)
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	store, err := db.Open(cfg)
	if err != nil {
		t.Fatalf("Failed to open store: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	return store, conn, cfg
}

// GetTestConfig returns a standard test configuration
func GetTestConfig(databasePath string) cliparse.Config {
	return cliparse.Config{
		Port:             3414,
		DatabaseURL:      databasePath,
		DatabaseType:     "sqlite",
		MaxCoalitionSize: 3,
	}
}

// SeedElection creates one election table in the source-spreadsheet shape
// and fills it with constituency rows. regions and rows must be the same
// length; rows are aligned with parties.
func SeedElection(t *testing.T, conn *sql.DB, name string, parties, regions []string, rows [][]int64) {
	t.Helper()

	if len(regions) != len(rows) {
		t.Fatalf("Seed mismatch: %d regions for %d rows", len(regions), len(rows))
	}

	defs := []string{`"id" TEXT`, `"Constituency" TEXT`, `"Country/Region" TEXT`}
	cols := []string{`"id"`, `"Constituency"`, `"Country/Region"`}
	for _, party := range parties {
		defs = append(defs, fmt.Sprintf(`"Votes-%s" REAL`, party))
		cols = append(cols, fmt.Sprintf(`"Votes-%s"`, party))
	}

	_, err := conn.Exec(fmt.Sprintf(`CREATE TABLE "%s" (%s)`, name, strings.Join(defs, ", ")))
	if err != nil {
		t.Fatalf("Failed to create election table: %v", err)
	}

	marks := strings.Repeat("?, ", len(cols))
	insert := fmt.Sprintf(`INSERT INTO "%s" (%s) VALUES (%s)`,
		name, strings.Join(cols, ", "), strings.TrimSuffix(marks, ", "))

	for i, row := range rows {
		if len(row) != len(parties) {
			t.Fatalf("Seed mismatch: row %d has %d values for %d parties", i, len(row), len(parties))
		}
		values := []any{
			fmt.Sprintf("C%03d", i+1),
			fmt.Sprintf("Constituency %d", i+1),
			regions[i],
		}
		for _, v := range row {
			values = append(values, float64(v))
		}
		if _, err := conn.Exec(insert, values...); err != nil {
			t.Fatalf("Failed to seed constituency row: %v", err)
		}
	}
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
