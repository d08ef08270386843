// Package api exposes HTTP handlers for the fitness program service.
package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"example.com/fitplan/internal/auth"
	"example.com/fitplan/internal/domain"
	"example.com/fitplan/internal/knowledge"
	"example.com/fitplan/internal/normalize"
)

const maxBodyBytes = 1 << 20

// Handler handles HTTP interactions.
type Handler struct {
	service        *domain.Service
	catalog        *knowledge.Catalog
	defaultVariant domain.Variant
}

// NewHandler constructs Handler.
func NewHandler(service *domain.Service, catalog *knowledge.Catalog, defaultVariant domain.Variant) *Handler {
	return &Handler{service: service, catalog: catalog, defaultVariant: defaultVariant}
}

// RegisterRoutes sets up routes.
func (h *Handler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/v1/calculations", h.calculations)
	mux.HandleFunc("/v1/programs", h.programs)
	mux.HandleFunc("/v1/programs/", h.programByID)
	mux.HandleFunc("/v1/exercises", h.exercises)
	mux.HandleFunc("/healthz", healthz)
}

// healthz returns an OK response for readiness probes.
func healthz(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

// CreateProgramRequest is the questionnaire payload plus the owning user.
// UserID defaults to the token subject.
type CreateProgramRequest struct {
	UserID string `json:"user_id"`
	normalize.Answers
}

func (h *Handler) calculations(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method_not_allowed", "unsupported method")
		return
	}
	if _, ok := authorize(w, r, auth.ScopeProgramsRead, auth.ScopeProgramsWrite); !ok {
		return
	}

	var answers normalize.Answers
	if !decodeBody(w, r, &answers) {
		return
	}
	result, err := h.service.Preview(normalize.Normalize(answers, h.defaultVariant))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (h *Handler) programs(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		h.listPrograms(w, r)
	case http.MethodPost:
		h.createProgram(w, r)
	default:
		writeError(w, http.StatusMethodNotAllowed, "method_not_allowed", "unsupported method")
	}
}

func (h *Handler) createProgram(w http.ResponseWriter, r *http.Request) {
	claims, ok := authorize(w, r, auth.ScopeProgramsWrite)
	if !ok {
		return
	}

	var req CreateProgramRequest
	if !decodeBody(w, r, &req) {
		return
	}
	userID := strings.TrimSpace(req.UserID)
	if userID == "" {
		userID = claims.Subject
	}

	program, err := h.service.ComputeProgram(r.Context(), domain.ComputeProgramInput{
		TenantID: claims.TenantID,
		UserID:   userID,
		Request:  normalize.Normalize(req.Answers, h.defaultVariant),
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]any{"program": program})
}

func (h *Handler) listPrograms(w http.ResponseWriter, r *http.Request) {
	claims, ok := authorize(w, r, auth.ScopeProgramsRead, auth.ScopeProgramsWrite)
	if !ok {
		return
	}

	userID := r.URL.Query().Get("user_id")
	if userID == "" {
		userID = claims.Subject
	}
	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			writeError(w, http.StatusBadRequest, "invalid_request", "limit must be a positive integer")
			return
		}
		limit = parsed
	}

	programs, err := h.service.ListPrograms(r.Context(), claims.TenantID, userID, limit)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"items": programs})
}

func (h *Handler) programByID(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method_not_allowed", "unsupported method")
		return
	}
	claims, ok := authorize(w, r, auth.ScopeProgramsRead, auth.ScopeProgramsWrite)
	if !ok {
		return
	}

	id := strings.TrimPrefix(r.URL.Path, "/v1/programs/")
	if strings.TrimSpace(id) == "" || strings.Contains(id, "/") {
		writeError(w, http.StatusBadRequest, "invalid_request", "missing program id")
		return
	}

	program, err := h.service.GetProgram(r.Context(), claims.TenantID, id)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, program)
}

func (h *Handler) exercises(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method_not_allowed", "unsupported method")
		return
	}
	if _, ok := authorize(w, r, auth.ScopeProgramsRead, auth.ScopeProgramsWrite); !ok {
		return
	}

	q := r.URL.Query()
	filter := knowledge.Filter{Query: q.Get("query"), Limit: 20}
	if raw := q.Get("focus"); raw != "" {
		focus, ok := domain.ParseFocus(raw)
		if !ok {
			writeError(w, http.StatusBadRequest, "invalid_request", "unknown focus "+strconv.Quote(raw))
			return
		}
		filter.Focus = focus
	}
	if raw := q.Get("equipment"); raw != "" {
		equipment := domain.Equipment(strings.ToLower(raw))
		if !equipment.Valid() {
			writeError(w, http.StatusBadRequest, "invalid_request", "unknown equipment "+strconv.Quote(raw))
			return
		}
		filter.Equipment = equipment
	}
	if raw := q.Get("limit"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
			filter.Limit = parsed
		}
	}

	writeJSON(w, http.StatusOK, map[string]any{"items": h.catalog.Search(filter)})
}

// authorize requires claims carrying at least one of scopes. It writes the
// 401/403 response itself.
func authorize(w http.ResponseWriter, r *http.Request, scopes ...string) (*auth.Claims, bool) {
	claims, ok := auth.FromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized", "missing bearer token")
		return nil, false
	}
	if !claims.HasAnyScope(scopes...) {
		writeError(w, http.StatusForbidden, "forbidden", "scope "+scopes[0]+" required")
		return nil, false
	}
	return claims, true
}

func decodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "unable to parse body")
		return false
	}
	return true
}

func writeServiceError(w http.ResponseWriter, err error) {
	var verr *domain.ValidationError
	var rej *domain.RejectionError
	switch {
	case errors.As(err, &verr):
		writeJSON(w, http.StatusBadRequest, map[string]any{
			"type":   "validation_failed",
			"detail": err.Error(),
			"fields": verr.Fields,
		})
	case errors.As(err, &rej):
		writeJSON(w, http.StatusUnprocessableEntity, map[string]any{
			"type":   "rejected",
			"detail": err.Error(),
			"flags":  rej.Flags,
		})
	case errors.Is(err, domain.ErrProgramNotFound):
		writeError(w, http.StatusNotFound, "not_found", "program not found")
	default:
		writeError(w, http.StatusInternalServerError, "server_error", err.Error())
	}
}

func writeError(w http.ResponseWriter, status int, code, detail string) {
	writeJSON(w, status, map[string]string{"type": code, "detail": detail})
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
