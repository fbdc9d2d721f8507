package main

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

const (
	goodPuzzle = "301086504046521070500000001400800002080347900009050038004090200008734090007208103"
	goodSolved = "371986524846521379592473861463819752285347916719652438634195287128734695957268143"
	badPuzzle  = "000040007480960501063570820009610203350097006000005094000000005804706910001040070"
	hardPuzzle = "000000000000000000000000000000000000000000000000000000000000000000000000000000000"
)

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	e := gin.New()
	registerRoutes(e, zerolog.Nop(), false)
	return e
}

func postSolve(t *testing.T, e *gin.Engine, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest("POST", "/api/v1/solve", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	e.ServeHTTP(w, req)
	return w
}

func TestSolveEndpoint(t *testing.T) {
	e := newTestRouter()
	w := postSolve(t, e, `{"puzzle": "`+goodPuzzle+`"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}
	var resp solveResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}
	if resp.Solution != goodSolved {
		t.Errorf("solution = %q, want %q", resp.Solution, goodSolved)
	}
	if resp.Passes < 1 {
		t.Errorf("passes = %d, want at least 1", resp.Passes)
	}
	if resp.Cached {
		t.Errorf("response marked cached without storage")
	}
}

func TestSolveEndpointMalformed(t *testing.T) {
	e := newTestRouter()
	for _, body := range []string{
		`not json`,
		`{}`,
		`{"puzzle": "12345"}`,
		`{"puzzle": "` + strings.Repeat("x", 81) + `"}`,
	} {
		w := postSolve(t, e, body)
		if w.Code != http.StatusBadRequest {
			t.Errorf("body %q: status = %d, want 400", body, w.Code)
		}
	}
}

func TestSolveEndpointConflict(t *testing.T) {
	e := newTestRouter()
	w := postSolve(t, e, `{"puzzle": "`+badPuzzle+`"}`)
	if w.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}
	var resp map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}
	want := "cell at index 76 is already fully constrained as 4"
	if resp["error"] != want {
		t.Errorf("error = %q, want %q", resp["error"], want)
	}
}

func TestSolveEndpointStalled(t *testing.T) {
	e := newTestRouter()
	w := postSolve(t, e, `{"puzzle": "`+hardPuzzle+`"}`)
	if w.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}
	if !strings.Contains(w.Body.String(), "propagation stalled") {
		t.Errorf("body = %s, want a stall report", w.Body.String())
	}
}
