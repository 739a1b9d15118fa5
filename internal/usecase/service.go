package usecase

import (
	"media-review/internal/data/repository"
	"media-review/pkg/mailer"
	"media-review/pkg/token"
	"media-review/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Auth    AuthService
	User    UserService
	Catalog CatalogService
	Title   TitleService
	Review  ReviewService
	Comment CommentService
}

func NewService(
	repo *repository.Repository,
	tokens *token.Manager,
	mail mailer.Mailer,
	config *utils.Config,
	log *zap.Logger,
) *Service {
	return &Service{
		Auth:    NewAuthService(repo, tokens, mail, config, log),
		User:    NewUserService(repo, config, log),
		Catalog: NewCatalogService(repo, log),
		Title:   NewTitleService(repo, log),
		Review:  NewReviewService(repo, log),
		Comment: NewCommentService(repo, log),
	}
}
