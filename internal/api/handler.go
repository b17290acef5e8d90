package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/payrollwedge/wagegrowth/internal/expo"
	"github.com/payrollwedge/wagegrowth/internal/store"
	"github.com/payrollwedge/wagegrowth/pkg/wagegrowth"
)

// maxBodyBytes caps POST bodies.
const maxBodyBytes = 1 << 20

// Handler serves the /api/v1/* endpoints and /metrics.
type Handler struct {
	store *store.Store
	mux   *http.ServeMux
}

// New creates a Handler wired to the given result store and registers all routes.
func New(st *store.Store) http.Handler {
	h := &Handler{store: st, mux: http.NewServeMux()}

	h.mux.HandleFunc("/api/v1/health", h.health)
	h.mux.HandleFunc("/api/v1/scenarios", h.listScenarios)
	h.mux.HandleFunc("/api/v1/scenarios/", h.getScenario) // subtree, extracts {name}
	h.mux.HandleFunc("/api/v1/wage-growth", h.wageGrowth)
	h.mux.HandleFunc("/api/v1/sensitivity", h.sensitivity)
	h.mux.HandleFunc("/metrics", h.metrics)

	return h
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.mux.ServeHTTP(w, r)
}

// --- route handlers ---------------------------------------------------------

// health returns GET /api/v1/health.
func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		jsonErr(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	resp := HealthResponse{Status: "empty", ScenarioCount: h.store.Len()}
	if at := h.store.UpdatedAt(); !at.IsZero() {
		resp.UpdatedAt = at.UTC().Format(time.RFC3339)
	}
	if resp.ScenarioCount > 0 {
		resp.Status = "ok"
	}
	jsonResp(w, http.StatusOK, resp)
}

// listScenarios returns GET /api/v1/scenarios.
func (h *Handler) listScenarios(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		jsonErr(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	jsonResp(w, http.StatusOK, h.store.List())
}

// getScenario returns GET /api/v1/scenarios/{name}.
func (h *Handler) getScenario(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		jsonErr(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	name := strings.TrimPrefix(r.URL.Path, "/api/v1/scenarios/")
	if name == "" {
		h.listScenarios(w, r)
		return
	}

	res, ok := h.store.Get(name)
	if !ok {
		jsonErr(w, http.StatusNotFound, "scenario not found")
		return
	}
	jsonResp(w, http.StatusOK, res)
}

// wageGrowth handles POST /api/v1/wage-growth.
func (h *Handler) wageGrowth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		jsonErr(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req WageGrowthRequest
	if !decodeBody(w, r, &req) {
		return
	}
	red, err := wagegrowth.WageGrowthReductionAny(req.Beta, req.EmployerShare, req.DeltaSSC)
	if err != nil {
		calcErr(w, err)
		return
	}
	jsonResp(w, http.StatusOK, WageGrowthResponse{Reduction: red, Impact: wagegrowth.Classify(red)})
}

// sensitivity handles POST /api/v1/sensitivity.
func (h *Handler) sensitivity(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		jsonErr(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req SensitivityRequest
	if !decodeBody(w, r, &req) {
		return
	}
	pts, err := wagegrowth.SensitivityAnalysisAny(req.Beta, req.EmployerShare, req.DeltaRange)
	if err != nil {
		calcErr(w, err)
		return
	}
	jsonResp(w, http.StatusOK, SensitivityResponse{Points: pts})
}

// metrics returns GET /metrics in the Prometheus text format.
func (h *Handler) metrics(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		jsonErr(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	w.Header().Set("Content-Type", "text/plain; version=0.0.4; charset=utf-8")
	if err := expo.Write(w, expo.Families(h.store.List())); err != nil {
		slog.Error("api: write metrics", "err", err)
	}
}

// --- helpers ----------------------------------------------------------------

// decodeBody decodes a JSON body into v, writing a 400 and returning false on failure.
// Numbers are kept as json.Number.
func decodeBody(w http.ResponseWriter, r *http.Request, v any) bool {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.UseNumber()
	if err := dec.Decode(v); err != nil {
		jsonErr(w, http.StatusBadRequest, "invalid JSON body: "+err.Error())
		return false
	}
	return true
}

// calcErr maps a calculator error to an HTTP status.
func calcErr(w http.ResponseWriter, err error) {
	if errors.Is(err, wagegrowth.ErrInvalidArgument) {
		jsonErr(w, http.StatusBadRequest, err.Error())
		return
	}
	slog.Error("api: calculation failed", "err", err)
	jsonErr(w, http.StatusInternalServerError, "internal error")
}

func jsonResp(w http.ResponseWriter, code int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}

func jsonErr(w http.ResponseWriter, code int, msg string) {
	jsonResp(w, code, errorResponse{Error: msg})
}
