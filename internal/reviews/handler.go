package reviews

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
)

const (
	msgGenerationFailed = "Failed to generate response from AI service."
	msgSaveFailed       = "Failed to save review"
	msgFetchFailed      = "Failed to fetch reviews"
	msgInternal         = "Internal server error"

	maxBodyBytes = 1 << 20
)

type Handler struct {
	svc Service
	log *slog.Logger
}

func NewHandler(svc Service, log *slog.Logger) *Handler {
	return &Handler{svc: svc, log: log.With("component", "reviews_http")}
}

// HandleGenerate drafts and stores a reply for the submitted review.
func (h *Handler) HandleGenerate(w http.ResponseWriter, r *http.Request) {
	var req GenerateRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&req); err != nil {
		h.log.DebugContext(r.Context(), "decode request", "error", err)
		writeJSON(w, http.StatusBadRequest, errorBody{Message: msgInvalidBody})
		return
	}

	ex, err := h.svc.Generate(r.Context(), req)
	if err != nil {
		h.writeError(w, r, err, msgSaveFailed)
		return
	}

	writeJSON(w, http.StatusCreated, ex)
}

// HandleList returns every stored exchange, newest first.
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	list, err := h.svc.List(r.Context())
	if err != nil {
		h.writeError(w, r, err, msgFetchFailed)
		return
	}
	if list == nil {
		list = []Exchange{}
	}

	writeJSON(w, http.StatusOK, list)
}

type errorBody struct {
	Message string `json:"message"`
}

// writeError maps the error taxonomy onto status codes. Causes are logged,
// only fixed messages reach the caller.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error, storageMsg string) {
	var (
		verr *ValidationError
		gerr *GenerationError
		serr *StorageError
	)

	switch {
	case errors.As(err, &verr):
		writeJSON(w, http.StatusBadRequest, errorBody{Message: verr.Message})
	case errors.As(err, &gerr):
		h.log.ErrorContext(r.Context(), "generation failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, errorBody{Message: msgGenerationFailed})
	case errors.As(err, &serr):
		h.log.ErrorContext(r.Context(), "storage failed", "op", serr.Op, "error", err)
		writeJSON(w, http.StatusInternalServerError, errorBody{Message: storageMsg})
	default:
		h.log.ErrorContext(r.Context(), "unexpected error", "error", err)
		writeJSON(w, http.StatusInternalServerError, errorBody{Message: msgInternal})
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
