package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/Wasif-Rauf77/ai-project-schedule-cost-control/internal/evm"
)

func do(t *testing.T, s *Service, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	return rec
}

const overBudgetJSON = `{"pv":100000,"ev":85000,"ac":95000,"bac":250000,"totalDurationDays":180,"elapsedDays":60}`

func TestEvaluateEndpoint(t *testing.T) {
	s := New(Config{Quiet: true})
	rec := do(t, s, http.MethodPost, "/v1/evaluate", overBudgetJSON)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body)
	}
	var got EvaluateResponse
	if err := json.NewDecoder(rec.Body).Decode(&got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	want := evm.Evaluate(got.Metrics)
	if got.Results != want {
		t.Fatalf("results = %+v, want %+v", got.Results, want)
	}
	if got.Metrics.BAC != 250000 {
		t.Fatalf("metrics.bac = %v, want 250000", got.Metrics.BAC)
	}
	if got.Assessment.Overall != evm.StatusAtRisk {
		t.Fatalf("assessment.overall = %q, want at-risk", got.Assessment.Overall)
	}
}

func TestEvaluateEndpointSentinelIsFinite(t *testing.T) {
	s := New(Config{Quiet: true})
	rec := do(t, s, http.MethodPost, "/v1/evaluate", `{"pv":1,"ev":200000,"ac":250000,"bac":250000}`)

	if !strings.Contains(rec.Body.String(), `"tcpi":9.99`) {
		t.Fatalf("body missing tcpi sentinel: %s", rec.Body)
	}
}

func TestSeriesEndpoint(t *testing.T) {
	s := New(Config{Quiet: true})
	rec := do(t, s, http.MethodPost, "/v1/series", overBudgetJSON)

	var got SeriesResponse
	if err := json.NewDecoder(rec.Body).Decode(&got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(got.Points) != 11 {
		t.Fatalf("points = %d, want 11", len(got.Points))
	}
	if last := got.Points[10]; last != (evm.ChartDataPoint{Day: 60, PV: 100000, EV: 85000, AC: 95000}) {
		t.Fatalf("last point = %+v", last)
	}
}

func TestContextEndpoint(t *testing.T) {
	s := New(Config{Quiet: true})
	body := `{"metrics":` + overBudgetJSON + `,"constraints":{"deadlineFixed":true,"maxBudgetIncreasePercent":10}}`
	rec := do(t, s, http.MethodPost, "/v1/context", body)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body)
	}
	var got ContextResponse
	if err := json.NewDecoder(rec.Body).Decode(&got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.ID == uuid.Nil {
		t.Fatal("context id is nil")
	}
	if got.Constraints == nil || !got.Constraints.DeadlineFixed {
		t.Fatalf("constraints = %+v, want deadline fixed", got.Constraints)
	}
	if !strings.Contains(got.Prompt, "Deadline is fixed") {
		t.Fatalf("prompt missing constraints:\n%s", got.Prompt)
	}
}

func TestPresetsEndpoint(t *testing.T) {
	s := New(Config{Quiet: true})
	rec := do(t, s, http.MethodGet, "/v1/presets", "")

	var got []PresetResponse
	if err := json.NewDecoder(rec.Body).Decode(&got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(got) == 0 || got[0].Key != "over-budget" {
		t.Fatalf("presets = %+v, want over-budget first", got)
	}
}

func TestBadRequests(t *testing.T) {
	s := New(Config{Quiet: true})

	cases := []struct {
		method, path, body string
		want               int
	}{
		{http.MethodGet, "/v1/evaluate", "", http.StatusMethodNotAllowed},
		{http.MethodPost, "/v1/evaluate", "{not json", http.StatusBadRequest},
		{http.MethodPost, "/v1/series", `{"pv":1,"budget":2}`, http.StatusBadRequest},
		{http.MethodPost, "/v1/presets", "", http.StatusMethodNotAllowed},
	}
	for _, tc := range cases {
		rec := do(t, s, tc.method, tc.path, tc.body)
		if rec.Code != tc.want {
			t.Fatalf("%s %s: status = %d, want %d", tc.method, tc.path, rec.Code, tc.want)
		}
		var e errorResponse
		if err := json.NewDecoder(rec.Body).Decode(&e); err != nil || e.Error == "" {
			t.Fatalf("%s %s: error body = %q (%v)", tc.method, tc.path, e.Error, err)
		}
	}

	if st := s.snapshotStatus(); st.LastError == "" || st.RequestCount != int64(len(cases)) {
		t.Fatalf("status = %+v, want last error and %d requests", st, len(cases))
	}
}

func TestRequestIDHeader(t *testing.T) {
	s := New(Config{Quiet: true})

	rec := do(t, s, http.MethodGet, "/healthz", "")
	if _, err := uuid.Parse(rec.Header().Get("X-Request-ID")); err != nil {
		t.Fatalf("generated X-Request-ID = %q, not a UUID", rec.Header().Get("X-Request-ID"))
	}

	id := uuid.NewString()
	req := httptest.NewRequest(http.MethodGet, "/v1/status", nil)
	req.Header.Set("X-Request-ID", id)
	rec = httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	if got := rec.Header().Get("X-Request-ID"); got != id {
		t.Fatalf("X-Request-ID = %q, want echoed %q", got, id)
	}
}

func TestOverflowingResultsAreUnprocessable(t *testing.T) {
	s := New(Config{Quiet: true})
	metrics := `{"pv":1,"ev":1e-160,"ac":1e160,"bac":1e10,"totalDurationDays":10,"elapsedDays":5}`

	for _, tc := range []struct{ path, body string }{
		{"/v1/evaluate", metrics},
		{"/v1/context", `{"metrics":` + metrics + `}`},
	} {
		rec := do(t, s, http.MethodPost, tc.path, tc.body)
		if rec.Code != http.StatusUnprocessableEntity {
			t.Fatalf("%s: status = %d, want 422: %s", tc.path, rec.Code, rec.Body)
		}
		var e errorResponse
		if err := json.NewDecoder(rec.Body).Decode(&e); err != nil || e.Error == "" {
			t.Fatalf("%s: error body = %q (%v)", tc.path, e.Error, err)
		}
	}
}

func TestAddrDefault(t *testing.T) {
	if got := New(Config{}).Addr(); got != "127.0.0.1:8787" {
		t.Fatalf("Addr() = %q, want 127.0.0.1:8787", got)
	}
	if got := New(Config{Addr: ":9000"}).Addr(); got != ":9000" {
		t.Fatalf("Addr() = %q, want :9000", got)
	}
}
