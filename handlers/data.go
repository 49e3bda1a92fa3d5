package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/processmind/process-mind/middleware"
	"github.com/processmind/process-mind/store"
)

// Default year window for the monthly time-series endpoints, matching
// the generated coverage.
const (
	defaultYearFrom = 2023
	defaultYearTo   = 2025
)

type DataHandler struct {
	store *store.Store
}

func NewDataHandler(st *store.Store) *DataHandler {
	return &DataHandler{store: st}
}

// municipioID extracts and validates the {id} path segment.
func municipioID(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// yearRange reads the optional from/to query params.
func yearRange(r *http.Request) (int, int, bool) {
	from, to := defaultYearFrom, defaultYearTo
	if s := r.URL.Query().Get("from"); s != "" {
		v, err := strconv.Atoi(s)
		if err != nil {
			return 0, 0, false
		}
		from = v
	}
	if s := r.URL.Query().Get("to"); s != "" {
		v, err := strconv.Atoi(s)
		if err != nil {
			return 0, 0, false
		}
		to = v
	}
	if from > to {
		return 0, 0, false
	}
	return from, to, true
}

// Health handles GET /municipalities/{id}/health
func (h *DataHandler) Health(w http.ResponseWriter, r *http.Request) {
	id, ok := municipioID(r)
	if !ok {
		middleware.ErrorResponse(w, http.StatusBadRequest, "invalid municipality id")
		return
	}
	from, to, ok := yearRange(r)
	if !ok {
		middleware.ErrorResponse(w, http.StatusBadRequest, "invalid year range")
		return
	}

	records, err := h.store.Health(id, from, to)
	if err != nil {
		slog.Error("health query failed", "municipio_id", id, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to read health data")
		return
	}
	middleware.JSONResponse(w, http.StatusOK, records)
}

// HealthFacilities handles GET /municipalities/{id}/health-facilities
func (h *DataHandler) HealthFacilities(w http.ResponseWriter, r *http.Request) {
	id, ok := municipioID(r)
	if !ok {
		middleware.ErrorResponse(w, http.StatusBadRequest, "invalid municipality id")
		return
	}

	facilities, err := h.store.HealthFacilities(id)
	if err != nil {
		slog.Error("facilities query failed", "municipio_id", id, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to read health facilities")
		return
	}
	middleware.JSONResponse(w, http.StatusOK, facilities)
}

// Education handles GET /municipalities/{id}/education
func (h *DataHandler) Education(w http.ResponseWriter, r *http.Request) {
	id, ok := municipioID(r)
	if !ok {
		middleware.ErrorResponse(w, http.StatusBadRequest, "invalid municipality id")
		return
	}

	records, err := h.store.Education(id)
	if err != nil {
		slog.Error("education query failed", "municipio_id", id, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to read education data")
		return
	}
	middleware.JSONResponse(w, http.StatusOK, records)
}

// Schools handles GET /municipalities/{id}/schools
func (h *DataHandler) Schools(w http.ResponseWriter, r *http.Request) {
	id, ok := municipioID(r)
	if !ok {
		middleware.ErrorResponse(w, http.StatusBadRequest, "invalid municipality id")
		return
	}

	schools, err := h.store.Schools(id)
	if err != nil {
		slog.Error("schools query failed", "municipio_id", id, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to read schools")
		return
	}
	middleware.JSONResponse(w, http.StatusOK, schools)
}

// Security handles GET /municipalities/{id}/security
func (h *DataHandler) Security(w http.ResponseWriter, r *http.Request) {
	id, ok := municipioID(r)
	if !ok {
		middleware.ErrorResponse(w, http.StatusBadRequest, "invalid municipality id")
		return
	}
	from, to, ok := yearRange(r)
	if !ok {
		middleware.ErrorResponse(w, http.StatusBadRequest, "invalid year range")
		return
	}

	records, err := h.store.Security(id, from, to)
	if err != nil {
		slog.Error("security query failed", "municipio_id", id, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to read security data")
		return
	}
	middleware.JSONResponse(w, http.StatusOK, records)
}

// SecurityUnits handles GET /municipalities/{id}/security-units
func (h *DataHandler) SecurityUnits(w http.ResponseWriter, r *http.Request) {
	id, ok := municipioID(r)
	if !ok {
		middleware.ErrorResponse(w, http.StatusBadRequest, "invalid municipality id")
		return
	}

	units, err := h.store.SecurityUnits(id)
	if err != nil {
		slog.Error("security units query failed", "municipio_id", id, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to read security units")
		return
	}
	middleware.JSONResponse(w, http.StatusOK, units)
}

// Demographics handles GET /municipalities/{id}/demographics
func (h *DataHandler) Demographics(w http.ResponseWriter, r *http.Request) {
	id, ok := municipioID(r)
	if !ok {
		middleware.ErrorResponse(w, http.StatusBadRequest, "invalid municipality id")
		return
	}

	records, err := h.store.Demographics(id)
	if err != nil {
		slog.Error("demographics query failed", "municipio_id", id, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to read demographic data")
		return
	}
	middleware.JSONResponse(w, http.StatusOK, records)
}
