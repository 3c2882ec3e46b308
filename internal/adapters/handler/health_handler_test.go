package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/AchilleasB/mindease/wellness-service/pkg/logging"
)

type pingFunc func(ctx context.Context) error

func (f pingFunc) Ping(ctx context.Context) error { return f(ctx) }

func TestReady(t *testing.T) {
	up := pingFunc(func(context.Context) error { return nil })
	down := pingFunc(func(context.Context) error { return errors.New("dial tcp: refused") })

	tests := []struct {
		name       string
		deps       map[string]Pinger
		wantStatus int
		wantChecks map[string]string
	}{
		{name: "all up", deps: map[string]Pinger{"storage": up, "messaging": up}, wantStatus: http.StatusOK, wantChecks: map[string]string{"storage": "UP", "messaging": "UP"}},
		{name: "storage down", deps: map[string]Pinger{"storage": down, "messaging": up}, wantStatus: http.StatusServiceUnavailable, wantChecks: map[string]string{"storage": "DOWN", "messaging": "UP"}},
		{name: "nil dependency", deps: map[string]Pinger{"storage": nil}, wantStatus: http.StatusServiceUnavailable, wantChecks: map[string]string{"storage": "DOWN"}},
		{name: "no dependencies", deps: nil, wantStatus: http.StatusOK, wantChecks: map[string]string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHealthHandler("1.0.0", tt.deps, logging.Discard())
			rec := httptest.NewRecorder()
			h.Ready(rec, httptest.NewRequest(http.MethodGet, "/health/ready", nil))

			if rec.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
			var resp HealthResponse
			if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
				t.Fatalf("decode: %v", err)
			}
			for name, want := range tt.wantChecks {
				if got := resp.Checks[name].Status; got != want {
					t.Errorf("check %s = %q, want %q", name, got, want)
				}
			}
		})
	}
}

func TestHealthReportsVersion(t *testing.T) {
	h := NewHealthHandler("", nil, logging.Discard())
	rec := httptest.NewRecorder()
	h.Live(rec, httptest.NewRequest(http.MethodGet, "/health/live", nil))

	var resp HealthResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Status != "UP" || resp.Version != "unknown" {
		t.Errorf("unexpected response %+v", resp)
	}
}
