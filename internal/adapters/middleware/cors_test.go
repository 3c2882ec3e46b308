package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestCORS(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	tests := []struct {
		name       string
		allowed    []string
		origin     string
		preflight  bool
		wantOrigin string
		wantStatus int
	}{
		{name: "allowed origin", allowed: []string{"http://app.local"}, origin: "http://app.local", wantOrigin: "http://app.local", wantStatus: http.StatusOK},
		{name: "other origin", allowed: []string{"http://app.local"}, origin: "http://evil.local", wantOrigin: "", wantStatus: http.StatusOK},
		{name: "wildcard echoes origin", allowed: []string{"*"}, origin: "http://any.local", wantOrigin: "http://any.local", wantStatus: http.StatusOK},
		{name: "preflight", allowed: []string{"*"}, origin: "http://any.local", preflight: true, wantOrigin: "http://any.local", wantStatus: http.StatusNoContent},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			method := http.MethodGet
			if tt.preflight {
				method = http.MethodOptions
			}
			req := httptest.NewRequest(method, "/login", nil)
			req.Header.Set("Origin", tt.origin)
			if tt.preflight {
				req.Header.Set("Access-Control-Request-Method", http.MethodPost)
			}
			rec := httptest.NewRecorder()
			CORS(tt.allowed)(next).ServeHTTP(rec, req)

			if rec.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
			if got := rec.Header().Get("Access-Control-Allow-Origin"); got != tt.wantOrigin {
				t.Errorf("Allow-Origin = %q, want %q", got, tt.wantOrigin)
			}
		})
	}
}
