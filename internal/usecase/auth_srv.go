package usecase

import (
	"context"
	"fmt"
	"time"

	"media-review/internal/data/entity"
	"media-review/internal/data/repository"
	"media-review/internal/dto/request"
	"media-review/internal/dto/response"
	"media-review/pkg/mailer"
	"media-review/pkg/token"
	"media-review/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type AuthService interface {
	Register(ctx context.Context, req *request.RegisterRequest) error
	ObtainToken(ctx context.Context, req *request.ObtainTokenRequest) (*response.TokenResponse, error)
}

type authService struct {
	repo   *repository.Repository
	tokens *token.Manager
	mail   mailer.Mailer
	config *utils.Config
	log    *zap.Logger
}

func NewAuthService(
	repo *repository.Repository,
	tokens *token.Manager,
	mail mailer.Mailer,
	config *utils.Config,
	log *zap.Logger,
) AuthService {
	return &authService{
		repo:   repo,
		tokens: tokens,
		mail:   mail,
		config: config,
		log:    log.With(zap.String("service", "auth")),
	}
}

// Register creates an inactive account and emails its confirmation code.
// Mail dispatch is synchronous; a delivery failure fails the registration.
func (s *authService) Register(ctx context.Context, req *request.RegisterRequest) error {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Register validation failed", zap.Any("errors", errs))
		return NewValidationError(errs)
	}

	existing, err := s.repo.User.FindByEmail(ctx, req.Email)
	if err != nil {
		s.log.Error("Failed to check email", zap.Error(err), zap.String("email", req.Email))
		return fmt.Errorf("check email: %w", err)
	}
	if existing != nil {
		return NewFieldError("email", "Email addresses must be unique.")
	}

	code := utils.GenerateConfirmationCode(s.config.Code.Length)

	now := time.Now()
	user := &entity.User{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Username:         req.Email,
		Email:            req.Email,
		Role:             entity.RoleUser,
		IsActive:         false,
		ConfirmationCode: utils.EncodeCode(code),
	}
	user.Normalize()

	if err := s.repo.User.Create(ctx, user); err != nil {
		s.log.Error("Failed to create user", zap.Error(err), zap.String("email", req.Email))
		return fmt.Errorf("create account: %w", err)
	}

	if err := s.mail.SendActivationEmail(user.Email, code); err != nil {
		s.log.Error("Failed to send activation email",
			zap.Error(err),
			zap.String("email", user.Email),
		)
		return fmt.Errorf("send activation email: %w", err)
	}

	s.log.Info("User registered",
		zap.String("user_id", user.ID.String()),
		zap.String("email", user.Email))

	return nil
}

// ObtainToken exchanges a valid confirmation code for an access token and
// activates the account. Re-exchange with the same code stays valid; codes
// are not rotated on activation.
func (s *authService) ObtainToken(ctx context.Context, req *request.ObtainTokenRequest) (*response.TokenResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Obtain token validation failed", zap.Any("errors", errs))
		return nil, NewValidationError(errs)
	}

	user, err := s.repo.User.FindByEmail(ctx, req.Email)
	if err != nil {
		s.log.Error("Failed to find user for activation", zap.Error(err), zap.String("email", req.Email))
		return nil, fmt.Errorf("find user: %w", err)
	}
	if user == nil {
		return nil, NewFieldError("email", "No account found for this email.")
	}

	if utils.EncodeCode(req.ConfirmationCode) != user.ConfirmationCode {
		s.log.Warn("Invalid confirmation code", zap.String("email", req.Email))
		return nil, NewFieldError("confirmation_code", "Invalid confirmation code.")
	}

	if !user.IsActive {
		user.IsActive = true
		user.UpdatedAt = time.Now()
		user.Normalize()

		if err := s.repo.User.Update(ctx, user); err != nil {
			s.log.Error("Failed to activate user",
				zap.Error(err),
				zap.String("user_id", user.ID.String()),
			)
			return nil, fmt.Errorf("activate user: %w", err)
		}
	}

	accessToken, err := s.tokens.Issue(user.ID, user.Email, string(user.Role))
	if err != nil {
		s.log.Error("Failed to issue token", zap.Error(err), zap.String("user_id", user.ID.String()))
		return nil, fmt.Errorf("issue token: %w", err)
	}

	s.log.Info("User activated",
		zap.String("user_id", user.ID.String()),
		zap.String("email", user.Email))

	return &response.TokenResponse{Token: accessToken}, nil
}
