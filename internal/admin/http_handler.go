package admin

import (
	"net/http"

	"go.uber.org/zap"

	"bookmanager/internal/httpx"
)

type HTTPHandler struct {
	service *Service
	log     *zap.Logger
}

func NewHTTPHandler(service *Service, log *zap.Logger) *HTTPHandler {
	if log == nil {
		log = zap.NewNop()
	}
	return &HTTPHandler{service: service, log: log.Named("admin")}
}

// BooksInfo handles GET /admin/books-info
func (h *HTTPHandler) BooksInfo(w http.ResponseWriter, r *http.Request) {
	page := httpx.ParsePage(r.URL.Query())

	rows, total, err := h.service.Rows(r.Context(), page.Size, page.Offset())
	if err != nil {
		h.log.Error("books info list failed", zap.Error(err))
		httpx.JSONError(w, r, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}

	httpx.JSONSuccess(w, r, rows, page.Meta(total))
}
