// Package health provides liveness and readiness endpoints. Readiness
// checks run in the request path with a short timeout; readiness can also be
// flipped off as a whole during shutdown draining.
package health

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"
	"sync/atomic"
	"time"
)

// CheckFunc reports the health of one component. Return nil when healthy.
type CheckFunc func(ctx context.Context) error

type check struct {
	name    string
	timeout time.Duration
	fn      CheckFunc
}

// Service aggregates health checks behind /livez and /readyz style handlers.
type Service struct {
	ready atomic.Bool

	mu     sync.RWMutex
	checks []check
}

// New creates an empty, not-yet-ready Service.
func New() *Service {
	return &Service{}
}

// AddReadinessCheck registers a named readiness check with a per-call timeout.
func (s *Service) AddReadinessCheck(name string, timeout time.Duration, fn CheckFunc) {
	s.mu.Lock()
	s.checks = append(s.checks, check{name: name, timeout: timeout, fn: fn})
	s.mu.Unlock()
}

// SetReady flips the overall readiness gate.
func (s *Service) SetReady(ready bool) {
	s.ready.Store(ready)
}

// LiveEndpoint always answers 200 while the process is running.
func (s *Service) LiveEndpoint(w http.ResponseWriter, _ *http.Request) {
	writeStatus(w, http.StatusOK, "ok", nil)
}

// ReadyEndpoint answers 200 when the gate is open and every check passes,
// 503 otherwise, with per-check results in the body.
func (s *Service) ReadyEndpoint(w http.ResponseWriter, r *http.Request) {
	if !s.ready.Load() {
		writeStatus(w, http.StatusServiceUnavailable, "draining", nil)
		return
	}

	s.mu.RLock()
	checks := make([]check, len(s.checks))
	copy(checks, s.checks)
	s.mu.RUnlock()

	results := make(map[string]string, len(checks))
	healthy := true
	for _, c := range checks {
		ctx, cancel := context.WithTimeout(r.Context(), c.timeout)
		err := c.fn(ctx)
		cancel()
		if err != nil {
			healthy = false
			results[c.name] = err.Error()
		} else {
			results[c.name] = "ok"
		}
	}

	if !healthy {
		writeStatus(w, http.StatusServiceUnavailable, "unhealthy", results)
		return
	}
	writeStatus(w, http.StatusOK, "ok", results)
}

func writeStatus(w http.ResponseWriter, code int, status string, checks map[string]string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(struct {
		Status string            `json:"status"`
		Checks map[string]string `json:"checks,omitempty"`
	}{Status: status, Checks: checks})
}
