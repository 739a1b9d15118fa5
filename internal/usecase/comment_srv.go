package usecase

import (
	"context"
	"fmt"
	"time"

	"media-review/internal/data/entity"
	"media-review/internal/data/repository"
	"media-review/internal/dto/request"
	"media-review/internal/dto/response"
	"media-review/internal/policy"
	"media-review/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// CommentService scopes every operation to a review under a title; both path
// segments must match or the review is treated as absent.
type CommentService interface {
	GetReviewComments(ctx context.Context, titleID, reviewID int64, page *request.PaginatedRequest) (*response.PaginatedResponse[response.CommentResponse], error)
	GetComment(ctx context.Context, titleID, reviewID, commentID int64) (*response.CommentResponse, error)
	CreateComment(ctx context.Context, callerID uuid.UUID, titleID, reviewID int64, req *request.CreateCommentRequest) (*response.CommentResponse, error)
	UpdateComment(ctx context.Context, callerID uuid.UUID, titleID, reviewID, commentID int64, req *request.UpdateCommentRequest) (*response.CommentResponse, error)
	DeleteComment(ctx context.Context, callerID uuid.UUID, titleID, reviewID, commentID int64) error
}

type commentService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewCommentService(repo *repository.Repository, log *zap.Logger) CommentService {
	return &commentService{
		repo: repo,
		log:  log.With(zap.String("service", "comment")),
	}
}

// getReview resolves the review under its title, or reports not-found.
func (s *commentService) getReview(ctx context.Context, titleID, reviewID int64) (*entity.Review, error) {
	title, err := s.repo.Title.FindByID(ctx, titleID)
	if err != nil {
		return nil, fmt.Errorf("find title: %w", err)
	}
	if title == nil {
		return nil, fmt.Errorf("title %d: %w", titleID, ErrNotFound)
	}

	review, err := s.repo.Review.FindByTitleAndID(ctx, titleID, reviewID)
	if err != nil {
		return nil, fmt.Errorf("find review: %w", err)
	}
	if review == nil {
		return nil, fmt.Errorf("review %d for title %d: %w", reviewID, titleID, ErrNotFound)
	}

	return review, nil
}

func (s *commentService) getCaller(ctx context.Context, callerID uuid.UUID) (*entity.User, error) {
	caller, err := s.repo.User.FindByID(ctx, callerID)
	if err != nil {
		return nil, fmt.Errorf("find caller: %w", err)
	}
	if caller == nil {
		return nil, fmt.Errorf("caller %s: %w", callerID.String(), ErrNotFound)
	}
	return caller, nil
}

func (s *commentService) authorUsername(ctx context.Context, authorID uuid.UUID) string {
	author, _ := s.repo.User.FindByID(ctx, authorID)
	if author == nil {
		return ""
	}
	return author.Username
}

func (s *commentService) GetReviewComments(ctx context.Context, titleID, reviewID int64, page *request.PaginatedRequest) (*response.PaginatedResponse[response.CommentResponse], error) {
	if _, err := s.getReview(ctx, titleID, reviewID); err != nil {
		return nil, err
	}

	comments, err := s.repo.Comment.FindByReviewID(ctx, reviewID, page.Limit(), page.Offset())
	if err != nil {
		return nil, fmt.Errorf("get review comments: %w", err)
	}

	total, err := s.repo.Comment.CountByReviewID(ctx, reviewID)
	if err != nil {
		return nil, fmt.Errorf("count review comments: %w", err)
	}

	commentResponses := make([]response.CommentResponse, len(comments))
	for i, comment := range comments {
		commentResponses[i] = response.CommentToResponse(comment, s.authorUsername(ctx, comment.AuthorID))
	}

	return response.NewPaginatedResponse(commentResponses, page.Page, page.PerPage, total), nil
}

func (s *commentService) GetComment(ctx context.Context, titleID, reviewID, commentID int64) (*response.CommentResponse, error) {
	if _, err := s.getReview(ctx, titleID, reviewID); err != nil {
		return nil, err
	}

	comment, err := s.repo.Comment.FindByReviewAndID(ctx, reviewID, commentID)
	if err != nil {
		return nil, fmt.Errorf("find comment: %w", err)
	}
	if comment == nil {
		return nil, fmt.Errorf("comment %d for review %d: %w", commentID, reviewID, ErrNotFound)
	}

	resp := response.CommentToResponse(comment, s.authorUsername(ctx, comment.AuthorID))
	return &resp, nil
}

func (s *commentService) CreateComment(ctx context.Context, callerID uuid.UUID, titleID, reviewID int64, req *request.CreateCommentRequest) (*response.CommentResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create comment validation failed", zap.Any("errors", errs))
		return nil, NewValidationError(errs)
	}

	if _, err := s.getReview(ctx, titleID, reviewID); err != nil {
		return nil, err
	}

	caller, err := s.getCaller(ctx, callerID)
	if err != nil {
		return nil, err
	}

	comment := &entity.Comment{
		ReviewID:  reviewID,
		AuthorID:  callerID,
		Text:      req.Text,
		CreatedAt: time.Now(),
	}

	if err := s.repo.Comment.Create(ctx, comment); err != nil {
		s.log.Error("Failed to create comment",
			zap.Error(err),
			zap.String("author_id", callerID.String()),
			zap.Int64("review_id", reviewID),
		)
		return nil, fmt.Errorf("create comment: %w", err)
	}

	s.log.Info("Comment created",
		zap.Int64("comment_id", comment.ID),
		zap.String("author_id", callerID.String()),
		zap.Int64("review_id", reviewID),
	)

	resp := response.CommentToResponse(comment, caller.Username)
	return &resp, nil
}

func (s *commentService) UpdateComment(ctx context.Context, callerID uuid.UUID, titleID, reviewID, commentID int64, req *request.UpdateCommentRequest) (*response.CommentResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update comment validation failed", zap.Any("errors", errs))
		return nil, NewValidationError(errs)
	}

	if _, err := s.getReview(ctx, titleID, reviewID); err != nil {
		return nil, err
	}

	comment, err := s.repo.Comment.FindByReviewAndID(ctx, reviewID, commentID)
	if err != nil {
		return nil, fmt.Errorf("find comment: %w", err)
	}
	if comment == nil {
		return nil, fmt.Errorf("comment %d for review %d: %w", commentID, reviewID, ErrNotFound)
	}

	caller, err := s.getCaller(ctx, callerID)
	if err != nil {
		return nil, err
	}

	if !policy.CanWriteOwned(caller, comment.AuthorID) {
		return nil, fmt.Errorf("update comment %d: %w", commentID, ErrForbidden)
	}

	// Author and review stay as stored regardless of the request body.
	if req.Text != nil {
		comment.Text = *req.Text
	}

	if err := s.repo.Comment.Update(ctx, comment); err != nil {
		s.log.Error("Failed to update comment",
			zap.Error(err),
			zap.Int64("comment_id", commentID),
		)
		return nil, fmt.Errorf("update comment: %w", err)
	}

	resp := response.CommentToResponse(comment, s.authorUsername(ctx, comment.AuthorID))
	return &resp, nil
}

func (s *commentService) DeleteComment(ctx context.Context, callerID uuid.UUID, titleID, reviewID, commentID int64) error {
	if _, err := s.getReview(ctx, titleID, reviewID); err != nil {
		return err
	}

	comment, err := s.repo.Comment.FindByReviewAndID(ctx, reviewID, commentID)
	if err != nil {
		return fmt.Errorf("find comment: %w", err)
	}
	if comment == nil {
		return fmt.Errorf("comment %d for review %d: %w", commentID, reviewID, ErrNotFound)
	}

	caller, err := s.getCaller(ctx, callerID)
	if err != nil {
		return err
	}

	if !policy.CanWriteOwned(caller, comment.AuthorID) {
		return fmt.Errorf("delete comment %d: %w", commentID, ErrForbidden)
	}

	if err := s.repo.Comment.Delete(ctx, commentID); err != nil {
		s.log.Error("Failed to delete comment",
			zap.Error(err),
			zap.Int64("comment_id", commentID),
		)
		return fmt.Errorf("delete comment: %w", err)
	}

	s.log.Info("Comment deleted",
		zap.Int64("comment_id", commentID),
		zap.String("caller_id", callerID.String()),
	)

	return nil
}
