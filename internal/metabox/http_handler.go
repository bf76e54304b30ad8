package metabox

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"go.uber.org/zap"

	"bookmanager/internal/auth"
	"bookmanager/internal/book"
	"bookmanager/internal/httpx"
)

// BookChecker tells whether a record id names a book.
type BookChecker interface {
	Exists(ctx context.Context, id int64) (bool, error)
}

type HTTPHandler struct {
	service  *Service
	books    BookChecker
	secret   string
	nonceTTL time.Duration
	log      *zap.Logger
}

func NewHTTPHandler(service *Service, books BookChecker, secret string, nonceTTL time.Duration, log *zap.Logger) *HTTPHandler {
	if log == nil {
		log = zap.NewNop()
	}
	return &HTTPHandler{service: service, books: books, secret: secret, nonceTTL: nonceTTL, log: log.Named("metabox")}
}

type formResponse struct {
	RecordID   int64  `json:"record_id"`
	ISBN       string `json:"isbn"`
	Nonce      string `json:"nonce"`
	NonceField string `json:"nonce_field"`
	Field      string `json:"field"`
}

type submitResponse struct {
	RecordID int64   `json:"record_id"`
	ISBN     string  `json:"isbn"`
	Outcome  Outcome `json:"outcome"`
}

// Form handles GET /books/{id}/isbn
func (h *HTTPHandler) Form(w http.ResponseWriter, r *http.Request) {
	id, ok := h.authorize(w, r)
	if !ok {
		return
	}

	nonce, err := auth.CreateNonce(h.secret, NonceAction(id), httpx.UserIDFrom(r), h.nonceTTL)
	if err != nil {
		h.log.Error("create nonce failed", zap.Error(err))
		httpx.JSONError(w, r, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}

	httpx.JSONSuccess(w, r, formResponse{
		RecordID:   id,
		ISBN:       h.service.Current(r.Context(), id),
		Nonce:      nonce,
		NonceField: FieldNonce,
		Field:      FieldISBN,
	}, nil)
}

// Submit handles POST /books/{id}/isbn
func (h *HTTPHandler) Submit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		httpx.JSONError(w, r, http.StatusBadRequest, "INVALID_FORM", "request body must be form encoded", nil)
		return
	}

	id := book.PathID(r)
	if err := auth.VerifyNonce(h.secret, r.PostForm.Get(FieldNonce), NonceAction(id), httpx.UserIDFrom(r)); err != nil {
		httpx.JSONError(w, r, http.StatusForbidden, "INVALID_NONCE", "the form has expired, reload and try again", nil)
		return
	}

	if _, ok := h.authorize(w, r); !ok {
		return
	}

	if autosave, _ := strconv.ParseBool(r.PostForm.Get(FieldAutosave)); autosave {
		httpx.JSONSuccessNoContent(w)
		return
	}

	outcome := h.service.Save(r.Context(), id, r.PostForm.Get(FieldISBN))
	if outcome == OutcomeFailed {
		httpx.JSONError(w, r, http.StatusInternalServerError, "SAVE_FAILED", "the isbn could not be stored", nil)
		return
	}

	httpx.JSONSuccess(w, r, submitResponse{
		RecordID: id,
		ISBN:     h.service.Current(r.Context(), id),
		Outcome:  outcome,
	}, nil)
}

// authorize checks that the path names a book the caller may edit.
func (h *HTTPHandler) authorize(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id := book.PathID(r)
	exists, err := h.books.Exists(r.Context(), id)
	if err != nil {
		h.log.Error("book lookup failed", zap.Int64("record_id", id), zap.Error(err))
		httpx.JSONError(w, r, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return 0, false
	}
	if !exists {
		httpx.JSONError(w, r, http.StatusNotFound, "NOT_FOUND", "book not found", nil)
		return 0, false
	}
	if !auth.Can(httpx.RoleFrom(r), auth.CapEditPost) {
		httpx.JSONError(w, r, http.StatusForbidden, "FORBIDDEN", "insufficient permissions", nil)
		return 0, false
	}
	return id, true
}
