package ingest

import (
	"encoding/json"
	"net/http"

	"bookmanager/internal/httpx"
)

type HTTPHandler struct {
	svc *Service
}

func NewHTTPHandler(svc *Service) *HTTPHandler {
	return &HTTPHandler{svc: svc}
}

type importRequest struct {
	ISBNs  []string `json:"isbns" validate:"required,min=1,max=20,dive,required,isbn_checksum"`
	Status string   `json:"status" validate:"omitempty,oneof=draft publish"`
}

// Import handles POST /books/import
// @Summary Import books from Open Library
// @Description Creates a book for every ISBN and stores the ISBN against it
// @Tags books
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Success 200 {object} httpx.SuccessResponse
// @Failure 400 {object} httpx.ErrorResponse
// @Failure 403 {object} httpx.ErrorResponse
// @Router /books/import [post]
func (h *HTTPHandler) Import(w http.ResponseWriter, r *http.Request) {
	var req importRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.JSONError(w, r, http.StatusBadRequest, "INVALID_JSON", "request body must be JSON", nil)
		return
	}
	if details := httpx.ValidateStruct(req); len(details) > 0 {
		httpx.JSONError(w, r, http.StatusBadRequest, "VALIDATION_ERROR", "invalid import request", details)
		return
	}

	results := h.svc.Import(r.Context(), req.ISBNs, req.Status)
	failed := 0
	for _, res := range results {
		if res.Error != "" {
			failed++
		}
	}
	httpx.JSONSuccess(w, r, results, map[string]any{
		"imported": len(results) - failed,
		"failed":   failed,
	})
}
