package usecase

import (
	"context"
	"fmt"

	"media-review/internal/data/entity"
	"media-review/internal/data/repository"
	"media-review/internal/dto/request"
	"media-review/internal/dto/response"
	"media-review/pkg/utils"

	"go.uber.org/zap"
)

type TitleService interface {
	GetTitles(ctx context.Context, query *request.TitleListQuery, page *request.PaginatedRequest) (*response.PaginatedResponse[response.TitleResponse], error)
	GetTitle(ctx context.Context, titleID int64) (*response.TitleResponse, error)
	CreateTitle(ctx context.Context, req *request.TitleRequest) (*response.TitleResponse, error)
	UpdateTitle(ctx context.Context, titleID int64, req *request.UpdateTitleRequest) (*response.TitleResponse, error)
	DeleteTitle(ctx context.Context, titleID int64) error
}

type titleService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewTitleService(repo *repository.Repository, log *zap.Logger) TitleService {
	return &titleService{
		repo: repo,
		log:  log.With(zap.String("service", "title")),
	}
}

func (s *titleService) GetTitles(ctx context.Context, query *request.TitleListQuery, page *request.PaginatedRequest) (*response.PaginatedResponse[response.TitleResponse], error) {
	filter := repository.TitleFilter{
		CategorySlug: query.Category,
		GenreSlug:    query.Genre,
		Name:         query.Name,
		Year:         query.Year,
	}

	titles, err := s.repo.Title.FindAll(ctx, filter, page.Limit(), page.Offset())
	if err != nil {
		return nil, fmt.Errorf("get titles: %w", err)
	}

	total, err := s.repo.Title.CountAll(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("count titles: %w", err)
	}

	titleResponses := make([]response.TitleResponse, len(titles))
	for i, title := range titles {
		titleResponses[i] = response.TitleToResponse(title)
	}

	return response.NewPaginatedResponse(titleResponses, page.Page, page.PerPage, total), nil
}

func (s *titleService) GetTitle(ctx context.Context, titleID int64) (*response.TitleResponse, error) {
	title, err := s.repo.Title.FindByID(ctx, titleID)
	if err != nil {
		return nil, fmt.Errorf("find title: %w", err)
	}
	if title == nil {
		return nil, fmt.Errorf("title %d: %w", titleID, ErrNotFound)
	}

	resp := response.TitleToResponse(title)
	return &resp, nil
}

func (s *titleService) CreateTitle(ctx context.Context, req *request.TitleRequest) (*response.TitleResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create title validation failed", zap.Any("errors", errs))
		return nil, NewValidationError(errs)
	}

	title := &entity.Title{
		Name:        req.Name,
		Year:        req.Year,
		Description: req.Description,
	}

	if req.Category != nil && *req.Category != "" {
		category, err := s.repo.Category.FindBySlug(ctx, *req.Category)
		if err != nil {
			return nil, fmt.Errorf("resolve category: %w", err)
		}
		if category == nil {
			return nil, NewFieldError("category", fmt.Sprintf("Unknown category slug %q.", *req.Category))
		}
		title.CategoryID = &category.ID
		title.Category = category
	}

	genreIDs, genres, err := s.resolveGenres(ctx, req.Genre)
	if err != nil {
		return nil, err
	}
	title.Genres = genres

	if err := s.repo.Title.Create(ctx, title, genreIDs); err != nil {
		s.log.Error("Failed to create title", zap.Error(err), zap.String("name", req.Name))
		return nil, fmt.Errorf("create title: %w", err)
	}

	s.log.Info("Title created",
		zap.Int64("title_id", title.ID),
		zap.String("name", title.Name))

	resp := response.TitleToResponse(title)
	return &resp, nil
}

func (s *titleService) UpdateTitle(ctx context.Context, titleID int64, req *request.UpdateTitleRequest) (*response.TitleResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update title validation failed", zap.Any("errors", errs))
		return nil, NewValidationError(errs)
	}

	title, err := s.repo.Title.FindByID(ctx, titleID)
	if err != nil {
		return nil, fmt.Errorf("find title: %w", err)
	}
	if title == nil {
		return nil, fmt.Errorf("title %d: %w", titleID, ErrNotFound)
	}

	if req.Name != nil {
		title.Name = *req.Name
	}
	if req.Year != nil {
		title.Year = req.Year
	}
	if req.Description != nil {
		title.Description = req.Description
	}

	if req.Category != nil {
		if *req.Category == "" {
			title.CategoryID = nil
			title.Category = nil
		} else {
			category, err := s.repo.Category.FindBySlug(ctx, *req.Category)
			if err != nil {
				return nil, fmt.Errorf("resolve category: %w", err)
			}
			if category == nil {
				return nil, NewFieldError("category", fmt.Sprintf("Unknown category slug %q.", *req.Category))
			}
			title.CategoryID = &category.ID
			title.Category = category
		}
	}

	// nil means "leave genres alone", an empty slice clears them
	var genreIDs []int64
	if req.Genre != nil {
		ids, genres, err := s.resolveGenres(ctx, req.Genre)
		if err != nil {
			return nil, err
		}
		genreIDs = ids
		if genreIDs == nil {
			genreIDs = []int64{}
		}
		title.Genres = genres
	}

	if err := s.repo.Title.Update(ctx, title, genreIDs); err != nil {
		s.log.Error("Failed to update title", zap.Error(err), zap.Int64("title_id", titleID))
		return nil, fmt.Errorf("update title: %w", err)
	}

	// Re-read for the derived rating
	updated, err := s.repo.Title.FindByID(ctx, titleID)
	if err != nil || updated == nil {
		return nil, fmt.Errorf("reload title %d: %w", titleID, err)
	}

	resp := response.TitleToResponse(updated)
	return &resp, nil
}

func (s *titleService) DeleteTitle(ctx context.Context, titleID int64) error {
	title, err := s.repo.Title.FindByID(ctx, titleID)
	if err != nil {
		return fmt.Errorf("find title: %w", err)
	}
	if title == nil {
		return fmt.Errorf("title %d: %w", titleID, ErrNotFound)
	}

	if err := s.repo.Title.Delete(ctx, titleID); err != nil {
		return fmt.Errorf("delete title: %w", err)
	}

	return nil
}

// resolveGenres maps slugs to genres, rejecting unknown slugs.
func (s *titleService) resolveGenres(ctx context.Context, slugs []string) ([]int64, []*entity.Genre, error) {
	if len(slugs) == 0 {
		return nil, nil, nil
	}

	genres, err := s.repo.Genre.FindBySlugs(ctx, slugs)
	if err != nil {
		return nil, nil, fmt.Errorf("resolve genres: %w", err)
	}

	if len(genres) != len(slugs) {
		known := make(map[string]bool, len(genres))
		for _, genre := range genres {
			known[genre.Slug] = true
		}
		for _, slug := range slugs {
			if !known[slug] {
				return nil, nil, NewFieldError("genre", fmt.Sprintf("Unknown genre slug %q.", slug))
			}
		}
	}

	ids := make([]int64, len(genres))
	for i, genre := range genres {
		ids[i] = genre.ID
	}

	return ids, genres, nil
}
