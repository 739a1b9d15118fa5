package adaptor

import (
	"net/http"

	"media-review/internal/dto/request"
	"media-review/internal/usecase"
	"media-review/pkg/utils"

	"go.uber.org/zap"
)

type CommentHandler struct {
	service usecase.CommentService
	log     *zap.Logger
}

func NewCommentHandler(service usecase.CommentService, log *zap.Logger) *CommentHandler {
	return &CommentHandler{
		service: service,
		log:     log.With(zap.String("handler", "comment")),
	}
}

// commentPath parses the title and review segments shared by every route.
func commentPath(w http.ResponseWriter, r *http.Request) (titleID, reviewID int64, ok bool) {
	titleID, ok = pathID(r, "titleID")
	if !ok {
		utils.ResponseNotFound(w, "Title not found")
		return 0, 0, false
	}
	reviewID, ok = pathID(r, "reviewID")
	if !ok {
		utils.ResponseNotFound(w, "Review not found")
		return 0, 0, false
	}
	return titleID, reviewID, true
}

// GetComments handles GET /titles/{titleID}/reviews/{reviewID}/comments
func (h *CommentHandler) GetComments(w http.ResponseWriter, r *http.Request) {
	titleID, reviewID, ok := commentPath(w, r)
	if !ok {
		return
	}

	page := paginationFromQuery(r)

	comments, err := h.service.GetReviewComments(r.Context(), titleID, reviewID, page)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	utils.ResponseSuccess(w, "Comments retrieved successfully", comments)
}

// GetComment handles GET /titles/{titleID}/reviews/{reviewID}/comments/{commentID}
func (h *CommentHandler) GetComment(w http.ResponseWriter, r *http.Request) {
	titleID, reviewID, ok := commentPath(w, r)
	if !ok {
		return
	}
	commentID, ok := pathID(r, "commentID")
	if !ok {
		utils.ResponseNotFound(w, "Comment not found")
		return
	}

	comment, err := h.service.GetComment(r.Context(), titleID, reviewID, commentID)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	utils.ResponseSuccess(w, "Comment retrieved successfully", comment)
}

// CreateComment handles POST /titles/{titleID}/reviews/{reviewID}/comments
func (h *CommentHandler) CreateComment(w http.ResponseWriter, r *http.Request) {
	callerID, authed := utils.GetUserIDFromContext(r.Context())
	if !authed {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	titleID, reviewID, ok := commentPath(w, r)
	if !ok {
		return
	}

	var req request.CreateCommentRequest
	if err := decodeJSON(r, &req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	comment, err := h.service.CreateComment(r.Context(), callerID, titleID, reviewID, &req)
	if err != nil {
		h.log.Warn("Failed to create comment",
			zap.Error(err),
			zap.Int64("review_id", reviewID),
			zap.String("author_id", callerID.String()),
		)
		handleServiceError(w, err)
		return
	}

	utils.ResponseCreated(w, "Comment created successfully", comment)
}

// UpdateComment handles PATCH /titles/{titleID}/reviews/{reviewID}/comments/{commentID}
func (h *CommentHandler) UpdateComment(w http.ResponseWriter, r *http.Request) {
	callerID, authed := utils.GetUserIDFromContext(r.Context())
	if !authed {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	titleID, reviewID, ok := commentPath(w, r)
	if !ok {
		return
	}
	commentID, ok := pathID(r, "commentID")
	if !ok {
		utils.ResponseNotFound(w, "Comment not found")
		return
	}

	var req request.UpdateCommentRequest
	if err := decodeJSON(r, &req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	comment, err := h.service.UpdateComment(r.Context(), callerID, titleID, reviewID, commentID, &req)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	utils.ResponseSuccess(w, "Comment updated successfully", comment)
}

// DeleteComment handles DELETE /titles/{titleID}/reviews/{reviewID}/comments/{commentID}
func (h *CommentHandler) DeleteComment(w http.ResponseWriter, r *http.Request) {
	callerID, authed := utils.GetUserIDFromContext(r.Context())
	if !authed {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	titleID, reviewID, ok := commentPath(w, r)
	if !ok {
		return
	}
	commentID, ok := pathID(r, "commentID")
	if !ok {
		utils.ResponseNotFound(w, "Comment not found")
		return
	}

	if err := h.service.DeleteComment(r.Context(), callerID, titleID, reviewID, commentID); err != nil {
		handleServiceError(w, err)
		return
	}

	utils.ResponseNoContent(w)
}
