package lookup

import (
	"errors"
	"net/http"
	"strconv"

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
	return &HTTPHandler{service: service, log: log.Named("lookup")}
}

// Check handles GET /isbn/{isbn}?lookup=true
func (h *HTTPHandler) Check(w http.ResponseWriter, r *http.Request) {
	resolve, _ := strconv.ParseBool(r.URL.Query().Get("lookup"))

	res, err := h.service.Check(r.Context(), r.PathValue("isbn"), resolve)
	switch {
	case errors.Is(err, ErrUnavailable):
		httpx.JSONError(w, r, http.StatusNotImplemented, "LOOKUP_UNAVAILABLE", err.Error(), nil)
		return
	case err != nil:
		h.log.Warn("open library lookup failed", zap.String("isbn", res.Normalized), zap.Error(err))
		httpx.JSONError(w, r, http.StatusBadGateway, "UPSTREAM_ERROR", "isbn lookup failed", nil)
		return
	}
	httpx.JSONSuccess(w, r, res, nil)
}
