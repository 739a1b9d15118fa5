package adaptor

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"media-review/internal/dto/request"
	"media-review/internal/usecase"
	"media-review/pkg/utils"

	"github.com/go-chi/chi/v5"
)

// decodeJSON reads the request body into dst, rejecting unknown fields.
func decodeJSON(r *http.Request, dst any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(dst)
}

// paginationFromQuery reads page/per_page query params with defaults.
func paginationFromQuery(r *http.Request) *request.PaginatedRequest {
	return &request.PaginatedRequest{
		Page:    utils.ParseInt(r.URL.Query().Get("page"), 1),
		PerPage: utils.ParseInt(r.URL.Query().Get("per_page"), 10),
	}
}

// pathID parses a numeric URL parameter. A malformed value behaves like a
// missing record.
func pathID(r *http.Request, name string) (int64, bool) {
	raw := chi.URLParam(r, name)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id < 1 {
		return 0, false
	}
	return id, true
}

// handleServiceError translates service errors into HTTP responses.
func handleServiceError(w http.ResponseWriter, err error) {
	if v, ok := usecase.AsValidationError(err); ok {
		utils.ResponseBadRequest(w, "Validation failed", v.Fields)
		return
	}

	switch {
	case errors.Is(err, usecase.ErrNotFound):
		utils.ResponseNotFound(w, "Resource not found")
	case errors.Is(err, usecase.ErrForbidden):
		utils.ResponseForbidden(w, "You do not have permission to perform this action")
	default:
		utils.ResponseInternalError(w, "Internal server error")
	}
}
