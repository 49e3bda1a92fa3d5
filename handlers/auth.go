package handlers

import (
	"log/slog"
	"net/http"

	"github.com/processmind/process-mind/middleware"
	"github.com/processmind/process-mind/models"
	"github.com/processmind/process-mind/store"
)

type AuthHandler struct {
	store *store.Store
}

func NewAuthHandler(st *store.Store) *AuthHandler {
	return &AuthHandler{store: st}
}

// Login handles POST /login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if req.Email == "" || req.Password == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "email and password are required")
		return
	}

	sess, err := h.store.Authenticate(req.Email, req.Password)
	if err != nil {
		slog.Error("authentication query failed", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Authentication failed")
		return
	}
	if sess == nil {
		// bad credentials are a normal outcome, not an error
		middleware.ErrorResponse(w, http.StatusUnauthorized, "invalid email or password")
		return
	}

	slog.Info("operator logged in", "user_id", sess.UserID, "municipio_id", sess.MunicipalityID)
	middleware.JSONResponse(w, http.StatusOK, sess)
}
