package usecase

import (
	"context"
	"strings"
	"sync"

	"media-review/internal/data/entity"
	"media-review/internal/data/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// In-memory repository fakes backing the service tests.

type fakeUserRepo struct {
	mu    sync.Mutex
	users map[uuid.UUID]*entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[uuid.UUID]*entity.User)}
}

func (f *fakeUserRepo) Create(_ context.Context, user *entity.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	cp := *user
	f.users[user.ID] = &cp
	return nil
}

func (f *fakeUserRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if u, ok := f.users[id]; ok {
		cp := *u
		return &cp, nil
	}
	return nil, nil
}

func (f *fakeUserRepo) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) FindByUsername(_ context.Context, username string) (*entity.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.users {
		if u.Username == username {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) FindAll(_ context.Context, search string, limit, offset int) ([]*entity.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*entity.User
	for _, u := range f.users {
		if search == "" || strings.Contains(strings.ToLower(u.Username), strings.ToLower(search)) {
			cp := *u
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (f *fakeUserRepo) CountAll(_ context.Context, search string) (int64, error) {
	all, _ := f.FindAll(context.Background(), search, 0, 0)
	return int64(len(all)), nil
}

func (f *fakeUserRepo) Update(_ context.Context, user *entity.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	cp := *user
	f.users[user.ID] = &cp
	return nil
}

func (f *fakeUserRepo) Delete(_ context.Context, id uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.users, id)
	return nil
}

type fakeCategoryRepo struct {
	nextID     int64
	categories []*entity.Category
	createErr  error
}

func (f *fakeCategoryRepo) Create(_ context.Context, category *entity.Category) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.nextID++
	category.ID = f.nextID
	cp := *category
	f.categories = append(f.categories, &cp)
	return nil
}

func (f *fakeCategoryRepo) FindBySlug(_ context.Context, slug string) (*entity.Category, error) {
	for _, c := range f.categories {
		if c.Slug == slug {
			cp := *c
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeCategoryRepo) FindAll(_ context.Context, search string, limit, offset int) ([]*entity.Category, error) {
	return f.categories, nil
}

func (f *fakeCategoryRepo) CountAll(_ context.Context, search string) (int64, error) {
	return int64(len(f.categories)), nil
}

func (f *fakeCategoryRepo) DeleteBySlug(_ context.Context, slug string) error {
	for i, c := range f.categories {
		if c.Slug == slug {
			f.categories = append(f.categories[:i], f.categories[i+1:]...)
			return nil
		}
	}
	return nil
}

type fakeGenreRepo struct {
	nextID int64
	genres []*entity.Genre
}

func (f *fakeGenreRepo) Create(_ context.Context, genre *entity.Genre) error {
	f.nextID++
	genre.ID = f.nextID
	cp := *genre
	f.genres = append(f.genres, &cp)
	return nil
}

func (f *fakeGenreRepo) FindBySlug(_ context.Context, slug string) (*entity.Genre, error) {
	for _, g := range f.genres {
		if g.Slug == slug {
			cp := *g
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeGenreRepo) FindBySlugs(_ context.Context, slugs []string) ([]*entity.Genre, error) {
	var out []*entity.Genre
	for _, slug := range slugs {
		for _, g := range f.genres {
			if g.Slug == slug {
				cp := *g
				out = append(out, &cp)
				break
			}
		}
	}
	return out, nil
}

func (f *fakeGenreRepo) FindAll(_ context.Context, search string, limit, offset int) ([]*entity.Genre, error) {
	return f.genres, nil
}

func (f *fakeGenreRepo) CountAll(_ context.Context, search string) (int64, error) {
	return int64(len(f.genres)), nil
}

func (f *fakeGenreRepo) DeleteBySlug(_ context.Context, slug string) error {
	for i, g := range f.genres {
		if g.Slug == slug {
			f.genres = append(f.genres[:i], f.genres[i+1:]...)
			return nil
		}
	}
	return nil
}

type fakeTitleRepo struct {
	nextID int64
	titles map[int64]*entity.Title
}

func newFakeTitleRepo() *fakeTitleRepo {
	return &fakeTitleRepo{titles: make(map[int64]*entity.Title)}
}

func (f *fakeTitleRepo) Create(_ context.Context, title *entity.Title, genreIDs []int64) error {
	f.nextID++
	title.ID = f.nextID
	cp := *title
	f.titles[title.ID] = &cp
	return nil
}

func (f *fakeTitleRepo) FindByID(_ context.Context, id int64) (*entity.Title, error) {
	if t, ok := f.titles[id]; ok {
		cp := *t
		return &cp, nil
	}
	return nil, nil
}

func (f *fakeTitleRepo) FindAll(_ context.Context, filter repository.TitleFilter, limit, offset int) ([]*entity.Title, error) {
	var out []*entity.Title
	for _, t := range f.titles {
		cp := *t
		out = append(out, &cp)
	}
	return out, nil
}

func (f *fakeTitleRepo) CountAll(_ context.Context, filter repository.TitleFilter) (int64, error) {
	return int64(len(f.titles)), nil
}

func (f *fakeTitleRepo) Update(_ context.Context, title *entity.Title, genreIDs []int64) error {
	cp := *title
	f.titles[title.ID] = &cp
	return nil
}

func (f *fakeTitleRepo) Delete(_ context.Context, id int64) error {
	delete(f.titles, id)
	return nil
}

type fakeReviewRepo struct {
	nextID    int64
	reviews   map[int64]*entity.Review
	createErr error
}

func newFakeReviewRepo() *fakeReviewRepo {
	return &fakeReviewRepo{reviews: make(map[int64]*entity.Review)}
}

func (f *fakeReviewRepo) Create(_ context.Context, review *entity.Review) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.nextID++
	review.ID = f.nextID
	cp := *review
	f.reviews[review.ID] = &cp
	return nil
}

func (f *fakeReviewRepo) FindByID(_ context.Context, id int64) (*entity.Review, error) {
	if r, ok := f.reviews[id]; ok {
		cp := *r
		return &cp, nil
	}
	return nil, nil
}

func (f *fakeReviewRepo) FindByTitleAndID(_ context.Context, titleID, id int64) (*entity.Review, error) {
	if r, ok := f.reviews[id]; ok && r.TitleID == titleID {
		cp := *r
		return &cp, nil
	}
	return nil, nil
}

func (f *fakeReviewRepo) FindByTitleID(_ context.Context, titleID int64, limit, offset int) ([]*entity.Review, error) {
	var out []*entity.Review
	for _, r := range f.reviews {
		if r.TitleID == titleID {
			cp := *r
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (f *fakeReviewRepo) CountByTitleID(_ context.Context, titleID int64) (int64, error) {
	all, _ := f.FindByTitleID(context.Background(), titleID, 0, 0)
	return int64(len(all)), nil
}

func (f *fakeReviewRepo) FindByAuthorAndTitle(_ context.Context, authorID uuid.UUID, titleID int64) (*entity.Review, error) {
	for _, r := range f.reviews {
		if r.AuthorID == authorID && r.TitleID == titleID {
			cp := *r
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeReviewRepo) Update(_ context.Context, review *entity.Review) error {
	cp := *review
	f.reviews[review.ID] = &cp
	return nil
}

func (f *fakeReviewRepo) Delete(_ context.Context, id int64) error {
	delete(f.reviews, id)
	return nil
}

type fakeCommentRepo struct {
	nextID   int64
	comments map[int64]*entity.Comment
}

func newFakeCommentRepo() *fakeCommentRepo {
	return &fakeCommentRepo{comments: make(map[int64]*entity.Comment)}
}

func (f *fakeCommentRepo) Create(_ context.Context, comment *entity.Comment) error {
	f.nextID++
	comment.ID = f.nextID
	cp := *comment
	f.comments[comment.ID] = &cp
	return nil
}

func (f *fakeCommentRepo) FindByReviewAndID(_ context.Context, reviewID, id int64) (*entity.Comment, error) {
	if c, ok := f.comments[id]; ok && c.ReviewID == reviewID {
		cp := *c
		return &cp, nil
	}
	return nil, nil
}

func (f *fakeCommentRepo) FindByReviewID(_ context.Context, reviewID int64, limit, offset int) ([]*entity.Comment, error) {
	var out []*entity.Comment
	for _, c := range f.comments {
		if c.ReviewID == reviewID {
			cp := *c
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (f *fakeCommentRepo) CountByReviewID(_ context.Context, reviewID int64) (int64, error) {
	all, _ := f.FindByReviewID(context.Background(), reviewID, 0, 0)
	return int64(len(all)), nil
}

func (f *fakeCommentRepo) Update(_ context.Context, comment *entity.Comment) error {
	cp := *comment
	f.comments[comment.ID] = &cp
	return nil
}

func (f *fakeCommentRepo) Delete(_ context.Context, id int64) error {
	delete(f.comments, id)
	return nil
}

// fakeMailer records sent codes and can be forced to fail.
type fakeMailer struct {
	sent    map[string]string
	sendErr error
}

func newFakeMailer() *fakeMailer {
	return &fakeMailer{sent: make(map[string]string)}
}

func (f *fakeMailer) SendActivationEmail(to, confirmationCode string) error {
	if f.sendErr != nil {
		return f.sendErr
	}
	f.sent[to] = confirmationCode
	return nil
}

func newTestRepository() *repository.Repository {
	return &repository.Repository{
		User:     newFakeUserRepo(),
		Category: &fakeCategoryRepo{},
		Genre:    &fakeGenreRepo{},
		Title:    newFakeTitleRepo(),
		Review:   newFakeReviewRepo(),
		Comment:  newFakeCommentRepo(),
	}
}

func testLogger() *zap.Logger {
	return zap.NewNop()
}
