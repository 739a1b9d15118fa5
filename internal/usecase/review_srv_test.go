package usecase

import (
	"context"
	"errors"
	"testing"

	"media-review/internal/data/entity"
	"media-review/internal/data/repository"
	"media-review/internal/dto/request"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
)

func seedUser(t *testing.T, repo *repository.Repository, username string, role entity.UserRole) uuid.UUID {
	t.Helper()

	user := &entity.User{
		Base:     entity.Base{ID: uuid.New()},
		Username: username,
		Email:    username + "@example.com",
		Role:     role,
		IsActive: true,
	}
	user.Normalize()

	if err := repo.User.Create(context.Background(), user); err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return user.ID
}

func seedTitle(t *testing.T, repo *repository.Repository, name string) int64 {
	t.Helper()

	title := &entity.Title{Name: name}
	if err := repo.Title.Create(context.Background(), title, nil); err != nil {
		t.Fatalf("seed title: %v", err)
	}
	return title.ID
}

func TestCreateReview(t *testing.T) {
	repo := newTestRepository()
	svc := NewReviewService(repo, testLogger())
	ctx := context.Background()

	authorID := seedUser(t, repo, "reader", entity.RoleUser)
	titleID := seedTitle(t, repo, "Dune")

	resp, err := svc.CreateReview(ctx, authorID, titleID, &request.CreateReviewRequest{
		Text:  "great",
		Score: 9,
	})
	if err != nil {
		t.Fatalf("CreateReview: %v", err)
	}
	if resp.Author != "reader" {
		t.Errorf("Author = %q, want reader", resp.Author)
	}
	if resp.Score != 9 {
		t.Errorf("Score = %d, want 9", resp.Score)
	}
}

func TestCreateReviewRejectsSecondPerTitle(t *testing.T) {
	repo := newTestRepository()
	svc := NewReviewService(repo, testLogger())
	ctx := context.Background()

	authorID := seedUser(t, repo, "reader", entity.RoleUser)
	titleID := seedTitle(t, repo, "Dune")

	if _, err := svc.CreateReview(ctx, authorID, titleID, &request.CreateReviewRequest{Text: "first", Score: 7}); err != nil {
		t.Fatalf("first CreateReview: %v", err)
	}

	_, err := svc.CreateReview(ctx, authorID, titleID, &request.CreateReviewRequest{Text: "second", Score: 3})
	if _, ok := AsValidationError(err); !ok {
		t.Fatalf("err = %v, want ValidationError", err)
	}
}

func TestCreateReviewMapsUniqueViolation(t *testing.T) {
	repo := newTestRepository()
	svc := NewReviewService(repo, testLogger())
	ctx := context.Background()

	authorID := seedUser(t, repo, "reader", entity.RoleUser)
	titleID := seedTitle(t, repo, "Dune")

	repo.Review.(*fakeReviewRepo).createErr = &pgconn.PgError{Code: "23505"}

	_, err := svc.CreateReview(ctx, authorID, titleID, &request.CreateReviewRequest{Text: "racy", Score: 5})
	if _, ok := AsValidationError(err); !ok {
		t.Fatalf("err = %v, want ValidationError", err)
	}
}

func TestCreateReviewUnknownTitle(t *testing.T) {
	repo := newTestRepository()
	svc := NewReviewService(repo, testLogger())

	authorID := seedUser(t, repo, "reader", entity.RoleUser)

	_, err := svc.CreateReview(context.Background(), authorID, 404, &request.CreateReviewRequest{Text: "x", Score: 5})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestUpdateReviewAccess(t *testing.T) {
	repo := newTestRepository()
	svc := NewReviewService(repo, testLogger())
	ctx := context.Background()

	authorID := seedUser(t, repo, "author", entity.RoleUser)
	strangerID := seedUser(t, repo, "stranger", entity.RoleUser)
	moderatorID := seedUser(t, repo, "moderator", entity.RoleModerator)
	adminID := seedUser(t, repo, "admin", entity.RoleAdmin)
	titleID := seedTitle(t, repo, "Dune")

	created, err := svc.CreateReview(ctx, authorID, titleID, &request.CreateReviewRequest{Text: "ok", Score: 6})
	if err != nil {
		t.Fatalf("CreateReview: %v", err)
	}

	newText := "edited"
	tests := []struct {
		name    string
		caller  uuid.UUID
		wantErr error
	}{
		{"stranger denied", strangerID, ErrForbidden},
		{"author allowed", authorID, nil},
		{"moderator allowed", moderatorID, nil},
		{"admin allowed", adminID, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.UpdateReview(ctx, tt.caller, titleID, created.ID, &request.UpdateReviewRequest{Text: &newText})
			if tt.wantErr == nil {
				if err != nil {
					t.Fatalf("UpdateReview: %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("err = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestUpdateReviewKeepsAuthor(t *testing.T) {
	repo := newTestRepository()
	svc := NewReviewService(repo, testLogger())
	ctx := context.Background()

	authorID := seedUser(t, repo, "author", entity.RoleUser)
	moderatorID := seedUser(t, repo, "moderator", entity.RoleModerator)
	titleID := seedTitle(t, repo, "Dune")

	created, err := svc.CreateReview(ctx, authorID, titleID, &request.CreateReviewRequest{Text: "ok", Score: 6})
	if err != nil {
		t.Fatalf("CreateReview: %v", err)
	}

	newScore := 2
	updated, err := svc.UpdateReview(ctx, moderatorID, titleID, created.ID, &request.UpdateReviewRequest{Score: &newScore})
	if err != nil {
		t.Fatalf("UpdateReview: %v", err)
	}

	if updated.Author != "author" {
		t.Errorf("Author = %q, want author (moderator edit keeps authorship)", updated.Author)
	}
	if updated.Score != 2 {
		t.Errorf("Score = %d, want 2", updated.Score)
	}
}

func TestDeleteReviewAccess(t *testing.T) {
	repo := newTestRepository()
	svc := NewReviewService(repo, testLogger())
	ctx := context.Background()

	authorID := seedUser(t, repo, "author", entity.RoleUser)
	strangerID := seedUser(t, repo, "stranger", entity.RoleUser)
	titleID := seedTitle(t, repo, "Dune")

	created, err := svc.CreateReview(ctx, authorID, titleID, &request.CreateReviewRequest{Text: "ok", Score: 6})
	if err != nil {
		t.Fatalf("CreateReview: %v", err)
	}

	if err := svc.DeleteReview(ctx, strangerID, titleID, created.ID); !errors.Is(err, ErrForbidden) {
		t.Fatalf("stranger delete err = %v, want ErrForbidden", err)
	}

	if err := svc.DeleteReview(ctx, authorID, titleID, created.ID); err != nil {
		t.Fatalf("author delete: %v", err)
	}

	if _, err := svc.GetReview(ctx, titleID, created.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("err after delete = %v, want ErrNotFound", err)
	}
}

func TestGetReviewWrongTitleScope(t *testing.T) {
	repo := newTestRepository()
	svc := NewReviewService(repo, testLogger())
	ctx := context.Background()

	authorID := seedUser(t, repo, "author", entity.RoleUser)
	titleA := seedTitle(t, repo, "Dune")
	titleB := seedTitle(t, repo, "Alien")

	created, err := svc.CreateReview(ctx, authorID, titleA, &request.CreateReviewRequest{Text: "ok", Score: 6})
	if err != nil {
		t.Fatalf("CreateReview: %v", err)
	}

	if _, err := svc.GetReview(ctx, titleB, created.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound for mismatched title", err)
	}
}
