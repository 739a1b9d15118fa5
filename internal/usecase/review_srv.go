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
	"media-review/pkg/database"
	"media-review/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ReviewService scopes every operation to a single title resolved from the
// path; an absent title is a not-found, never an empty list.
type ReviewService interface {
	GetTitleReviews(ctx context.Context, titleID int64, page *request.PaginatedRequest) (*response.PaginatedResponse[response.ReviewResponse], error)
	GetReview(ctx context.Context, titleID, reviewID int64) (*response.ReviewResponse, error)
	CreateReview(ctx context.Context, callerID uuid.UUID, titleID int64, req *request.CreateReviewRequest) (*response.ReviewResponse, error)
	UpdateReview(ctx context.Context, callerID uuid.UUID, titleID, reviewID int64, req *request.UpdateReviewRequest) (*response.ReviewResponse, error)
	DeleteReview(ctx context.Context, callerID uuid.UUID, titleID, reviewID int64) error
}

type reviewService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewReviewService(repo *repository.Repository, log *zap.Logger) ReviewService {
	return &reviewService{
		repo: repo,
		log:  log.With(zap.String("service", "review")),
	}
}

// getTitle resolves the path title or reports not-found.
func (s *reviewService) getTitle(ctx context.Context, titleID int64) (*entity.Title, error) {
	title, err := s.repo.Title.FindByID(ctx, titleID)
	if err != nil {
		return nil, fmt.Errorf("find title: %w", err)
	}
	if title == nil {
		return nil, fmt.Errorf("title %d: %w", titleID, ErrNotFound)
	}
	return title, nil
}

func (s *reviewService) getCaller(ctx context.Context, callerID uuid.UUID) (*entity.User, error) {
	caller, err := s.repo.User.FindByID(ctx, callerID)
	if err != nil {
		return nil, fmt.Errorf("find caller: %w", err)
	}
	if caller == nil {
		return nil, fmt.Errorf("caller %s: %w", callerID.String(), ErrNotFound)
	}
	return caller, nil
}

func (s *reviewService) authorUsername(ctx context.Context, authorID uuid.UUID) string {
	author, _ := s.repo.User.FindByID(ctx, authorID)
	if author == nil {
		return ""
	}
	return author.Username
}

func (s *reviewService) GetTitleReviews(ctx context.Context, titleID int64, page *request.PaginatedRequest) (*response.PaginatedResponse[response.ReviewResponse], error) {
	if _, err := s.getTitle(ctx, titleID); err != nil {
		return nil, err
	}

	reviews, err := s.repo.Review.FindByTitleID(ctx, titleID, page.Limit(), page.Offset())
	if err != nil {
		return nil, fmt.Errorf("get title reviews: %w", err)
	}

	total, err := s.repo.Review.CountByTitleID(ctx, titleID)
	if err != nil {
		return nil, fmt.Errorf("count title reviews: %w", err)
	}

	reviewResponses := make([]response.ReviewResponse, len(reviews))
	for i, review := range reviews {
		reviewResponses[i] = response.ReviewToResponse(review, s.authorUsername(ctx, review.AuthorID))
	}

	return response.NewPaginatedResponse(reviewResponses, page.Page, page.PerPage, total), nil
}

func (s *reviewService) GetReview(ctx context.Context, titleID, reviewID int64) (*response.ReviewResponse, error) {
	if _, err := s.getTitle(ctx, titleID); err != nil {
		return nil, err
	}

	review, err := s.repo.Review.FindByTitleAndID(ctx, titleID, reviewID)
	if err != nil {
		return nil, fmt.Errorf("find review: %w", err)
	}
	if review == nil {
		return nil, fmt.Errorf("review %d for title %d: %w", reviewID, titleID, ErrNotFound)
	}

	resp := response.ReviewToResponse(review, s.authorUsername(ctx, review.AuthorID))
	return &resp, nil
}

func (s *reviewService) CreateReview(ctx context.Context, callerID uuid.UUID, titleID int64, req *request.CreateReviewRequest) (*response.ReviewResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create review validation failed", zap.Any("errors", errs))
		return nil, NewValidationError(errs)
	}

	if _, err := s.getTitle(ctx, titleID); err != nil {
		return nil, err
	}

	caller, err := s.getCaller(ctx, callerID)
	if err != nil {
		return nil, err
	}

	existing, err := s.repo.Review.FindByAuthorAndTitle(ctx, callerID, titleID)
	if err != nil {
		return nil, fmt.Errorf("check existing review: %w", err)
	}
	if existing != nil {
		return nil, NewFieldError("title", "You have already reviewed this title.")
	}

	review := &entity.Review{
		TitleID:   titleID,
		AuthorID:  callerID,
		Text:      req.Text,
		Score:     req.Score,
		CreatedAt: time.Now(),
	}

	if err := s.repo.Review.Create(ctx, review); err != nil {
		// A concurrent duplicate slips past the pre-check and lands on the
		// unique constraint instead.
		if database.IsUniqueViolation(err) {
			return nil, NewFieldError("title", "You have already reviewed this title.")
		}
		s.log.Error("Failed to create review",
			zap.Error(err),
			zap.String("author_id", callerID.String()),
			zap.Int64("title_id", titleID),
		)
		return nil, fmt.Errorf("create review: %w", err)
	}

	s.log.Info("Review created",
		zap.Int64("review_id", review.ID),
		zap.String("author_id", callerID.String()),
		zap.Int64("title_id", titleID),
		zap.Int("score", review.Score),
	)

	resp := response.ReviewToResponse(review, caller.Username)
	return &resp, nil
}

func (s *reviewService) UpdateReview(ctx context.Context, callerID uuid.UUID, titleID, reviewID int64, req *request.UpdateReviewRequest) (*response.ReviewResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update review validation failed", zap.Any("errors", errs))
		return nil, NewValidationError(errs)
	}

	if _, err := s.getTitle(ctx, titleID); err != nil {
		return nil, err
	}

	review, err := s.repo.Review.FindByTitleAndID(ctx, titleID, reviewID)
	if err != nil {
		return nil, fmt.Errorf("find review: %w", err)
	}
	if review == nil {
		return nil, fmt.Errorf("review %d for title %d: %w", reviewID, titleID, ErrNotFound)
	}

	caller, err := s.getCaller(ctx, callerID)
	if err != nil {
		return nil, err
	}

	if !policy.CanWriteOwned(caller, review.AuthorID) {
		return nil, fmt.Errorf("update review %d: %w", reviewID, ErrForbidden)
	}

	// Author and title stay as stored; client-supplied values for those
	// fields are never honored.
	if req.Text != nil {
		review.Text = *req.Text
	}
	if req.Score != nil {
		review.Score = *req.Score
	}

	if err := s.repo.Review.Update(ctx, review); err != nil {
		s.log.Error("Failed to update review",
			zap.Error(err),
			zap.Int64("review_id", reviewID),
		)
		return nil, fmt.Errorf("update review: %w", err)
	}

	s.log.Info("Review updated",
		zap.Int64("review_id", reviewID),
		zap.String("caller_id", callerID.String()),
	)

	resp := response.ReviewToResponse(review, s.authorUsername(ctx, review.AuthorID))
	return &resp, nil
}

func (s *reviewService) DeleteReview(ctx context.Context, callerID uuid.UUID, titleID, reviewID int64) error {
	if _, err := s.getTitle(ctx, titleID); err != nil {
		return err
	}

	review, err := s.repo.Review.FindByTitleAndID(ctx, titleID, reviewID)
	if err != nil {
		return fmt.Errorf("find review: %w", err)
	}
	if review == nil {
		return fmt.Errorf("review %d for title %d: %w", reviewID, titleID, ErrNotFound)
	}

	caller, err := s.getCaller(ctx, callerID)
	if err != nil {
		return err
	}

	if !policy.CanWriteOwned(caller, review.AuthorID) {
		return fmt.Errorf("delete review %d: %w", reviewID, ErrForbidden)
	}

	if err := s.repo.Review.Delete(ctx, reviewID); err != nil {
		s.log.Error("Failed to delete review",
			zap.Error(err),
			zap.Int64("review_id", reviewID),
		)
		return fmt.Errorf("delete review: %w", err)
	}

	s.log.Info("Review deleted",
		zap.Int64("review_id", reviewID),
		zap.String("caller_id", callerID.String()),
		zap.Int64("title_id", titleID),
	)

	return nil
}
