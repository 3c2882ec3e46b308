package handler

import (
	"context"
	"net/http"
	"sort"
	"time"

	"github.com/AchilleasB/mindease/wellness-service/pkg/logging"
)

// Pinger is a dependency the readiness probe checks.
type Pinger interface {
	Ping(ctx context.Context) error
}

type HealthHandler struct {
	deps      map[string]Pinger
	startTime time.Time
	version   string
	timeout   time.Duration
	logger    *logging.Logger
}

// NewHealthHandler builds the probes. deps maps a check name such as "storage" to its dependency.
func NewHealthHandler(version string, deps map[string]Pinger, logger *logging.Logger) *HealthHandler {
	if logger == nil {
		logger = logging.Default()
	}
	if version == "" {
		version = "unknown"
	}
	return &HealthHandler{
		deps:      deps,
		startTime: time.Now(),
		version:   version,
		timeout:   5 * time.Second,
		logger:    logger,
	}
}

// HealthResponse follows Kubernetes/OpenShift health check conventions
type HealthResponse struct {
	Status    string           `json:"status"`
	Timestamp string           `json:"timestamp"`
	Uptime    string           `json:"uptime"`
	Version   string           `json:"version"`
	Checks    map[string]Check `json:"checks"`
}

type Check struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// Health is a simple liveness check - just confirms the Go process is running
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, h.logger, http.StatusOK, HealthResponse{
		Status:    "UP",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Uptime:    time.Since(h.startTime).Round(time.Second).String(),
		Version:   h.version,
		Checks:    map[string]Check{"process": {Status: "UP"}},
	})
}

// Ready checks every dependency (readiness probe)
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	names := make([]string, 0, len(h.deps))
	for name := range h.deps {
		names = append(names, name)
	}
	sort.Strings(names)

	status := "UP"
	httpStatus := http.StatusOK
	checks := make(map[string]Check, len(names))
	for _, name := range names {
		dep := h.deps[name]
		if dep == nil {
			checks[name] = Check{Status: "DOWN", Message: name + " is not initialized"}
		} else if err := dep.Ping(ctx); err != nil {
			h.logger.Warn("readiness check failed", "check", name, "error", err)
			checks[name] = Check{Status: "DOWN", Message: "Cannot reach " + name}
		} else {
			checks[name] = Check{Status: "UP"}
			continue
		}
		status = "DOWN"
		httpStatus = http.StatusServiceUnavailable
	}

	writeJSON(w, h.logger, httpStatus, HealthResponse{
		Status:    status,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Uptime:    time.Since(h.startTime).Round(time.Second).String(),
		Version:   h.version,
		Checks:    checks,
	})
}

// Live is an alias for Health - simple liveness check
func (h *HealthHandler) Live(w http.ResponseWriter, r *http.Request) {
	h.Health(w, r)
}
