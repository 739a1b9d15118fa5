package adaptor

import (
	"net/http"
	"strconv"

	"media-review/internal/dto/request"
	"media-review/internal/usecase"
	"media-review/pkg/utils"

	"go.uber.org/zap"
)

type TitleHandler struct {
	service usecase.TitleService
	log     *zap.Logger
}

func NewTitleHandler(service usecase.TitleService, log *zap.Logger) *TitleHandler {
	return &TitleHandler{
		service: service,
		log:     log.With(zap.String("handler", "title")),
	}
}

// GetTitles handles GET /titles
func (h *TitleHandler) GetTitles(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	query := &request.TitleListQuery{
		Category: q.Get("category"),
		Genre:    q.Get("genre"),
		Name:     q.Get("name"),
	}
	if rawYear := q.Get("year"); rawYear != "" {
		year, err := strconv.Atoi(rawYear)
		if err != nil {
			utils.ResponseBadRequest(w, "Invalid year filter", nil)
			return
		}
		query.Year = &year
	}

	page := paginationFromQuery(r)

	titles, err := h.service.GetTitles(r.Context(), query, page)
	if err != nil {
		h.log.Error("Failed to list titles", zap.Error(err))
		handleServiceError(w, err)
		return
	}

	utils.ResponseSuccess(w, "Titles retrieved successfully", titles)
}

// GetTitle handles GET /titles/{titleID}
func (h *TitleHandler) GetTitle(w http.ResponseWriter, r *http.Request) {
	titleID, ok := pathID(r, "titleID")
	if !ok {
		utils.ResponseNotFound(w, "Title not found")
		return
	}

	title, err := h.service.GetTitle(r.Context(), titleID)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	utils.ResponseSuccess(w, "Title retrieved successfully", title)
}

// CreateTitle handles POST /titles
func (h *TitleHandler) CreateTitle(w http.ResponseWriter, r *http.Request) {
	var req request.TitleRequest
	if err := decodeJSON(r, &req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	title, err := h.service.CreateTitle(r.Context(), &req)
	if err != nil {
		h.log.Warn("Failed to create title", zap.Error(err), zap.String("name", req.Name))
		handleServiceError(w, err)
		return
	}

	utils.ResponseCreated(w, "Title created successfully", title)
}

// UpdateTitle handles PATCH /titles/{titleID}
func (h *TitleHandler) UpdateTitle(w http.ResponseWriter, r *http.Request) {
	titleID, ok := pathID(r, "titleID")
	if !ok {
		utils.ResponseNotFound(w, "Title not found")
		return
	}

	var req request.UpdateTitleRequest
	if err := decodeJSON(r, &req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	title, err := h.service.UpdateTitle(r.Context(), titleID, &req)
	if err != nil {
		h.log.Warn("Failed to update title", zap.Error(err), zap.Int64("title_id", titleID))
		handleServiceError(w, err)
		return
	}

	utils.ResponseSuccess(w, "Title updated successfully", title)
}

// DeleteTitle handles DELETE /titles/{titleID}
func (h *TitleHandler) DeleteTitle(w http.ResponseWriter, r *http.Request) {
	titleID, ok := pathID(r, "titleID")
	if !ok {
		utils.ResponseNotFound(w, "Title not found")
		return
	}

	if err := h.service.DeleteTitle(r.Context(), titleID); err != nil {
		handleServiceError(w, err)
		return
	}

	utils.ResponseNoContent(w)
}
