package adaptor

import (
	"net/http"

	"media-review/internal/dto/request"
	"media-review/internal/usecase"
	"media-review/pkg/utils"

	"go.uber.org/zap"
)

type ReviewHandler struct {
	service usecase.ReviewService
	log     *zap.Logger
}

func NewReviewHandler(service usecase.ReviewService, log *zap.Logger) *ReviewHandler {
	return &ReviewHandler{
		service: service,
		log:     log.With(zap.String("handler", "review")),
	}
}

// GetReviews handles GET /titles/{titleID}/reviews
func (h *ReviewHandler) GetReviews(w http.ResponseWriter, r *http.Request) {
	titleID, ok := pathID(r, "titleID")
	if !ok {
		utils.ResponseNotFound(w, "Title not found")
		return
	}

	page := paginationFromQuery(r)

	reviews, err := h.service.GetTitleReviews(r.Context(), titleID, page)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	utils.ResponseSuccess(w, "Reviews retrieved successfully", reviews)
}

// GetReview handles GET /titles/{titleID}/reviews/{reviewID}
func (h *ReviewHandler) GetReview(w http.ResponseWriter, r *http.Request) {
	titleID, ok := pathID(r, "titleID")
	if !ok {
		utils.ResponseNotFound(w, "Title not found")
		return
	}
	reviewID, ok := pathID(r, "reviewID")
	if !ok {
		utils.ResponseNotFound(w, "Review not found")
		return
	}

	review, err := h.service.GetReview(r.Context(), titleID, reviewID)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	utils.ResponseSuccess(w, "Review retrieved successfully", review)
}

// CreateReview handles POST /titles/{titleID}/reviews
func (h *ReviewHandler) CreateReview(w http.ResponseWriter, r *http.Request) {
	callerID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	titleID, ok := pathID(r, "titleID")
	if !ok {
		utils.ResponseNotFound(w, "Title not found")
		return
	}

	var req request.CreateReviewRequest
	if err := decodeJSON(r, &req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	review, err := h.service.CreateReview(r.Context(), callerID, titleID, &req)
	if err != nil {
		h.log.Warn("Failed to create review",
			zap.Error(err),
			zap.Int64("title_id", titleID),
			zap.String("author_id", callerID.String()),
		)
		handleServiceError(w, err)
		return
	}

	utils.ResponseCreated(w, "Review created successfully", review)
}

// UpdateReview handles PATCH /titles/{titleID}/reviews/{reviewID}
func (h *ReviewHandler) UpdateReview(w http.ResponseWriter, r *http.Request) {
	callerID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	titleID, ok := pathID(r, "titleID")
	if !ok {
		utils.ResponseNotFound(w, "Title not found")
		return
	}
	reviewID, ok := pathID(r, "reviewID")
	if !ok {
		utils.ResponseNotFound(w, "Review not found")
		return
	}

	var req request.UpdateReviewRequest
	if err := decodeJSON(r, &req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	review, err := h.service.UpdateReview(r.Context(), callerID, titleID, reviewID, &req)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	utils.ResponseSuccess(w, "Review updated successfully", review)
}

// DeleteReview handles DELETE /titles/{titleID}/reviews/{reviewID}
func (h *ReviewHandler) DeleteReview(w http.ResponseWriter, r *http.Request) {
	callerID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	titleID, ok := pathID(r, "titleID")
	if !ok {
		utils.ResponseNotFound(w, "Title not found")
		return
	}
	reviewID, ok := pathID(r, "reviewID")
	if !ok {
		utils.ResponseNotFound(w, "Review not found")
		return
	}

	if err := h.service.DeleteReview(r.Context(), callerID, titleID, reviewID); err != nil {
		handleServiceError(w, err)
		return
	}

	utils.ResponseNoContent(w)
}
