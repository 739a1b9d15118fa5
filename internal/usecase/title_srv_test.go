package usecase

import (
	"context"
	"errors"
	"testing"

	"media-review/internal/data/entity"
	"media-review/internal/dto/request"
)

func seedCatalog(t *testing.T, svc CatalogService) {
	t.Helper()
	ctx := context.Background()

	if _, err := svc.CreateCategory(ctx, &request.CategoryRequest{Name: "Movies", Slug: "movies"}); err != nil {
		t.Fatalf("seed category: %v", err)
	}
	if _, err := svc.CreateGenre(ctx, &request.GenreRequest{Name: "Drama", Slug: "drama"}); err != nil {
		t.Fatalf("seed genre: %v", err)
	}
	if _, err := svc.CreateGenre(ctx, &request.GenreRequest{Name: "Comedy", Slug: "comedy"}); err != nil {
		t.Fatalf("seed genre: %v", err)
	}
}

func TestCreateTitleResolvesSlugs(t *testing.T) {
	repo := newTestRepository()
	seedCatalog(t, NewCatalogService(repo, testLogger()))
	svc := NewTitleService(repo, testLogger())
	ctx := context.Background()

	category := "movies"
	year := 1979
	resp, err := svc.CreateTitle(ctx, &request.TitleRequest{
		Name:     "Stalker",
		Year:     &year,
		Category: &category,
		Genre:    []string{"drama"},
	})
	if err != nil {
		t.Fatalf("CreateTitle: %v", err)
	}

	if resp.Category == nil || resp.Category.Slug != "movies" {
		t.Errorf("Category = %+v, want slug movies", resp.Category)
	}
	if len(resp.Genre) != 1 || resp.Genre[0].Slug != "drama" {
		t.Errorf("Genre = %+v, want a single drama entry", resp.Genre)
	}
	if resp.Rating != nil {
		t.Error("new title should have a nil rating")
	}
}

func TestCreateTitleUnknownCategory(t *testing.T) {
	repo := newTestRepository()
	svc := NewTitleService(repo, testLogger())

	category := "nope"
	_, err := svc.CreateTitle(context.Background(), &request.TitleRequest{
		Name:     "Stalker",
		Category: &category,
	})
	v, ok := AsValidationError(err)
	if !ok {
		t.Fatalf("err = %v, want ValidationError", err)
	}
	if _, ok := v.Fields["category"]; !ok {
		t.Errorf("Fields = %v, want a category entry", v.Fields)
	}
}

func TestCreateTitleUnknownGenre(t *testing.T) {
	repo := newTestRepository()
	seedCatalog(t, NewCatalogService(repo, testLogger()))
	svc := NewTitleService(repo, testLogger())

	_, err := svc.CreateTitle(context.Background(), &request.TitleRequest{
		Name:  "Stalker",
		Genre: []string{"drama", "western"},
	})
	v, ok := AsValidationError(err)
	if !ok {
		t.Fatalf("err = %v, want ValidationError", err)
	}
	if _, ok := v.Fields["genre"]; !ok {
		t.Errorf("Fields = %v, want a genre entry", v.Fields)
	}
}

func TestCreateTitleRejectsBadYear(t *testing.T) {
	repo := newTestRepository()
	svc := NewTitleService(repo, testLogger())

	year := 99
	_, err := svc.CreateTitle(context.Background(), &request.TitleRequest{Name: "Old", Year: &year})
	if _, ok := AsValidationError(err); !ok {
		t.Fatalf("err = %v, want ValidationError for a two-digit year", err)
	}
}

func TestUpdateTitlePartial(t *testing.T) {
	repo := newTestRepository()
	seedCatalog(t, NewCatalogService(repo, testLogger()))
	svc := NewTitleService(repo, testLogger())
	ctx := context.Background()

	created, err := svc.CreateTitle(ctx, &request.TitleRequest{Name: "Stalker", Genre: []string{"drama"}})
	if err != nil {
		t.Fatalf("CreateTitle: %v", err)
	}

	newName := "Stalker (1979)"
	updated, err := svc.UpdateTitle(ctx, created.ID, &request.UpdateTitleRequest{Name: &newName})
	if err != nil {
		t.Fatalf("UpdateTitle: %v", err)
	}
	if updated.Name != newName {
		t.Errorf("Name = %q, want %q", updated.Name, newName)
	}
}

func TestUpdateTitleNotFound(t *testing.T) {
	repo := newTestRepository()
	svc := NewTitleService(repo, testLogger())

	newName := "x"
	_, err := svc.UpdateTitle(context.Background(), 404, &request.UpdateTitleRequest{Name: &newName})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestDeleteTitle(t *testing.T) {
	repo := newTestRepository()
	svc := NewTitleService(repo, testLogger())
	ctx := context.Background()

	titleID := seedTitle(t, repo, "Dune")

	if err := svc.DeleteTitle(ctx, titleID); err != nil {
		t.Fatalf("DeleteTitle: %v", err)
	}
	if err := svc.DeleteTitle(ctx, titleID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("second delete err = %v, want ErrNotFound", err)
	}
}

func TestGetTitleCarriesRating(t *testing.T) {
	repo := newTestRepository()
	svc := NewTitleService(repo, testLogger())
	ctx := context.Background()

	rating := 7.5
	title := &entity.Title{Name: "Rated", Rating: &rating}
	if err := repo.Title.Create(ctx, title, nil); err != nil {
		t.Fatalf("seed title: %v", err)
	}

	resp, err := svc.GetTitle(ctx, title.ID)
	if err != nil {
		t.Fatalf("GetTitle: %v", err)
	}
	if resp.Rating == nil || *resp.Rating != 7.5 {
		t.Errorf("Rating = %v, want 7.5", resp.Rating)
	}
}
