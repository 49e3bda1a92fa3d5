package handlers

import (
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/processmind/process-mind/assistant"
	"github.com/processmind/process-mind/docparse"
	"github.com/processmind/process-mind/middleware"
	"github.com/processmind/process-mind/models"
	"github.com/processmind/process-mind/store"
)

const (
	maxUploadBytes     = 32 << 20
	defaultHistorySize = 50
)

type ChatHandler struct {
	store     *store.Store
	assistant *assistant.Assistant
}

func NewChatHandler(st *store.Store, a *assistant.Assistant) *ChatHandler {
	return &ChatHandler{store: st, assistant: a}
}

// Ask handles POST /municipalities/{id}/chat. Accepts either a JSON
// body (question + optional document text) or a multipart form with a
// "question" field and an optional "document" PDF upload.
func (h *ChatHandler) Ask(w http.ResponseWriter, r *http.Request) {
	id, ok := municipioID(r)
	if !ok {
		middleware.ErrorResponse(w, http.StatusBadRequest, "invalid municipality id")
		return
	}

	mun, err := h.store.Municipality(id)
	if err != nil {
		slog.Error("municipality lookup failed", "municipio_id", id, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to load municipality")
		return
	}
	if mun == nil {
		middleware.ErrorResponse(w, http.StatusNotFound, "municipality not found")
		return
	}

	question, doc, ok := h.parseQuestion(w, r)
	if !ok {
		return
	}
	if strings.TrimSpace(question) == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "question is required")
		return
	}

	mctx, err := assistant.BuildContext(h.store, id, mun.Name, mun.State)
	if err != nil {
		slog.Error("context assembly failed", "municipio_id", id, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to assemble context")
		return
	}

	reply, err := h.assistant.Answer(r.Context(), question, mctx, doc)
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.ChatResponse{
		Answer: reply.Text,
		Source: reply.Source,
	})
}

// parseQuestion reads the question and optional document from either
// body encoding. A malformed document upload does not fail the
// request: an error note replaces the extracted text and the answer
// proceeds without document context.
func (h *ChatHandler) parseQuestion(w http.ResponseWriter, r *http.Request) (string, assistant.Document, bool) {
	var doc assistant.Document

	if strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
		if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
			middleware.ErrorResponse(w, http.StatusBadRequest, "invalid multipart form")
			return "", doc, false
		}
		question := r.FormValue("question")

		file, header, err := r.FormFile("document")
		if err == nil {
			defer file.Close()
			doc.Name = header.Filename
			data, readErr := io.ReadAll(file)
			if readErr != nil {
				middleware.ErrorResponse(w, http.StatusBadRequest, "failed to read document upload")
				return "", doc, false
			}
			text, parseErr := docparse.ExtractText(data)
			if parseErr != nil {
				slog.Warn("document extraction failed, answering without document context",
					"file", header.Filename, "error", parseErr)
				doc.Text = "Erro ao processar PDF: " + parseErr.Error()
			} else {
				doc.Text = text
			}
		}
		return question, doc, true
	}

	var req models.ChatRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return "", doc, false
	}
	doc.Text = req.Document
	if req.Document != "" {
		doc.Name = "inline"
	}
	return req.Question, doc, true
}

// History handles GET /municipalities/{id}/chat
func (h *ChatHandler) History(w http.ResponseWriter, r *http.Request) {
	id, ok := municipioID(r)
	if !ok {
		middleware.ErrorResponse(w, http.StatusBadRequest, "invalid municipality id")
		return
	}

	limit := defaultHistorySize
	if s := r.URL.Query().Get("limit"); s != "" {
		v, err := strconv.Atoi(s)
		if err != nil || v <= 0 {
			middleware.ErrorResponse(w, http.StatusBadRequest, "invalid limit")
			return
		}
		limit = v
	}

	exchanges, err := h.store.ChatHistory(id, limit)
	if err != nil {
		slog.Error("chat history query failed", "municipio_id", id, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to read chat history")
		return
	}
	middleware.JSONResponse(w, http.StatusOK, exchanges)
}
