package repository

import (
	"context"
	"fmt"
	"strings"

	"media-review/internal/data/entity"
	"media-review/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

// TitleFilter carries the optional list filters. Zero values mean "not set".
type TitleFilter struct {
	CategorySlug string
	GenreSlug    string
	Name         string
	Year         *int
}

type TitleRepository interface {
	Create(ctx context.Context, title *entity.Title, genreIDs []int64) error
	FindByID(ctx context.Context, id int64) (*entity.Title, error)
	FindAll(ctx context.Context, filter TitleFilter, limit, offset int) ([]*entity.Title, error)
	CountAll(ctx context.Context, filter TitleFilter) (int64, error)
	Update(ctx context.Context, title *entity.Title, genreIDs []int64) error
	Delete(ctx context.Context, id int64) error
}

type titleRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewTitleRepository(db database.PgxIface, log *zap.Logger) TitleRepository {
	return &titleRepository{
		db:  db,
		log: log.With(zap.String("repository", "title")),
	}
}

// Rating is the mean review score, NULL when the title has no reviews.
const titleSelect = `
	SELECT t.id, t.name, t.year, t.description, t.category_id,
	       (SELECT AVG(r.score)::float8 FROM reviews r WHERE r.title_id = t.id) AS rating,
	       c.id, c.name, c.slug
	FROM titles t
	LEFT JOIN categories c ON c.id = t.category_id
`

func scanTitle(row pgx.Row) (*entity.Title, error) {
	var title entity.Title
	var catID *int64
	var catName, catSlug *string

	err := row.Scan(
		&title.ID,
		&title.Name,
		&title.Year,
		&title.Description,
		&title.CategoryID,
		&title.Rating,
		&catID,
		&catName,
		&catSlug,
	)
	if err != nil {
		return nil, err
	}

	if catID != nil {
		title.Category = &entity.Category{
			BaseSerial: entity.BaseSerial{ID: *catID},
			Name:       *catName,
			Slug:       *catSlug,
		}
	}

	return &title, nil
}

func (r *titleRepository) Create(ctx context.Context, title *entity.Title, genreIDs []int64) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin create title: %w", err)
	}
	defer tx.Rollback(ctx)

	query := `
		INSERT INTO titles (name, year, description, category_id)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`

	err = tx.QueryRow(ctx, query,
		title.Name,
		title.Year,
		title.Description,
		title.CategoryID,
	).Scan(&title.ID)

	if err != nil {
		r.log.Error("Failed to create title",
			zap.Error(err),
			zap.String("name", title.Name),
		)
		return fmt.Errorf("create title %s: %w", title.Name, err)
	}

	for _, genreID := range genreIDs {
		_, err := tx.Exec(ctx,
			`INSERT INTO title_genres (title_id, genre_id) VALUES ($1, $2)`,
			title.ID, genreID,
		)
		if err != nil {
			return fmt.Errorf("attach genre %d to title %d: %w", genreID, title.ID, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit create title: %w", err)
	}

	return nil
}

func (r *titleRepository) FindByID(ctx context.Context, id int64) (*entity.Title, error) {
	query := titleSelect + ` WHERE t.id = $1`

	title, err := scanTitle(r.db.QueryRow(ctx, query, id))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find title by ID",
			zap.Error(err),
			zap.Int64("title_id", id),
		)
		return nil, fmt.Errorf("find title by ID %d: %w", id, err)
	}

	if err := r.loadGenres(ctx, []*entity.Title{title}); err != nil {
		return nil, err
	}

	return title, nil
}

func (r *titleRepository) FindAll(ctx context.Context, filter TitleFilter, limit, offset int) ([]*entity.Title, error) {
	var queryBuilder strings.Builder
	queryBuilder.WriteString(titleSelect)

	where, args := buildTitleWhere(filter)
	queryBuilder.WriteString(where)

	// Listing order is by ID ascending regardless of filters
	queryBuilder.WriteString(fmt.Sprintf(" ORDER BY t.id ASC LIMIT $%d OFFSET $%d",
		len(args)+1, len(args)+2))
	args = append(args, limit, offset)

	rows, err := r.db.Query(ctx, queryBuilder.String(), args...)
	if err != nil {
		r.log.Error("Failed to find all titles",
			zap.Error(err),
			zap.String("category", filter.CategorySlug),
			zap.String("genre", filter.GenreSlug),
			zap.String("name", filter.Name),
		)
		return nil, fmt.Errorf("find titles: %w", err)
	}
	defer rows.Close()

	var titles []*entity.Title
	for rows.Next() {
		title, err := scanTitle(rows)
		if err != nil {
			r.log.Error("Failed to scan title row", zap.Error(err))
			return nil, fmt.Errorf("scan title row: %w", err)
		}
		titles = append(titles, title)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate title rows: %w", err)
	}

	if err := r.loadGenres(ctx, titles); err != nil {
		return nil, err
	}

	return titles, nil
}

func (r *titleRepository) CountAll(ctx context.Context, filter TitleFilter) (int64, error) {
	query := `SELECT COUNT(*) FROM titles t LEFT JOIN categories c ON c.id = t.category_id`

	where, args := buildTitleWhere(filter)
	query += where

	var total int64
	if err := r.db.QueryRow(ctx, query, args...).Scan(&total); err != nil {
		r.log.Error("Failed to count titles", zap.Error(err))
		return 0, fmt.Errorf("count titles: %w", err)
	}

	return total, nil
}

func buildTitleWhere(filter TitleFilter) (string, []interface{}) {
	var conditions []string
	args := []interface{}{}

	if filter.CategorySlug != "" {
		conditions = append(conditions, fmt.Sprintf("c.slug = $%d", len(args)+1))
		args = append(args, filter.CategorySlug)
	}
	if filter.GenreSlug != "" {
		conditions = append(conditions, fmt.Sprintf(
			`EXISTS (SELECT 1 FROM title_genres tg
			         JOIN genres g ON g.id = tg.genre_id
			         WHERE tg.title_id = t.id AND g.slug = $%d)`, len(args)+1))
		args = append(args, filter.GenreSlug)
	}
	if filter.Name != "" {
		conditions = append(conditions, fmt.Sprintf("t.name ILIKE '%%' || $%d || '%%'", len(args)+1))
		args = append(args, filter.Name)
	}
	if filter.Year != nil {
		conditions = append(conditions, fmt.Sprintf("t.year = $%d", len(args)+1))
		args = append(args, *filter.Year)
	}

	if len(conditions) == 0 {
		return "", args
	}
	return " WHERE " + strings.Join(conditions, " AND "), args
}

func (r *titleRepository) Update(ctx context.Context, title *entity.Title, genreIDs []int64) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin update title: %w", err)
	}
	defer tx.Rollback(ctx)

	query := `
		UPDATE titles
		SET name = $2, year = $3, description = $4, category_id = $5
		WHERE id = $1
	`

	result, err := tx.Exec(ctx, query,
		title.ID,
		title.Name,
		title.Year,
		title.Description,
		title.CategoryID,
	)

	if err != nil {
		r.log.Error("Failed to update title",
			zap.Error(err),
			zap.Int64("title_id", title.ID),
		)
		return fmt.Errorf("update title %d: %w", title.ID, err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("title %d not found", title.ID)
	}

	if genreIDs != nil {
		if _, err := tx.Exec(ctx, `DELETE FROM title_genres WHERE title_id = $1`, title.ID); err != nil {
			return fmt.Errorf("clear genres for title %d: %w", title.ID, err)
		}
		for _, genreID := range genreIDs {
			_, err := tx.Exec(ctx,
				`INSERT INTO title_genres (title_id, genre_id) VALUES ($1, $2)`,
				title.ID, genreID,
			)
			if err != nil {
				return fmt.Errorf("attach genre %d to title %d: %w", genreID, title.ID, err)
			}
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit update title: %w", err)
	}

	return nil
}

func (r *titleRepository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM titles WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete title",
			zap.Error(err),
			zap.Int64("title_id", id),
		)
		return fmt.Errorf("delete title %d: %w", id, err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("title %d not found", id)
	}

	r.log.Info("Title deleted", zap.Int64("title_id", id))
	return nil
}

// loadGenres populates Genres for the given titles in one query.
func (r *titleRepository) loadGenres(ctx context.Context, titles []*entity.Title) error {
	if len(titles) == 0 {
		return nil
	}

	ids := make([]int64, len(titles))
	byID := make(map[int64]*entity.Title, len(titles))
	for i, title := range titles {
		ids[i] = title.ID
		byID[title.ID] = title
	}

	query := `
		SELECT tg.title_id, g.id, g.name, g.slug
		FROM title_genres tg
		JOIN genres g ON g.id = tg.genre_id
		WHERE tg.title_id = ANY($1)
		ORDER BY g.slug ASC
	`

	rows, err := r.db.Query(ctx, query, ids)
	if err != nil {
		r.log.Error("Failed to load title genres", zap.Error(err))
		return fmt.Errorf("load title genres: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var titleID int64
		var genre entity.Genre
		if err := rows.Scan(&titleID, &genre.ID, &genre.Name, &genre.Slug); err != nil {
			return fmt.Errorf("scan title genre row: %w", err)
		}
		if title, ok := byID[titleID]; ok {
			title.Genres = append(title.Genres, &genre)
		}
	}

	if err := rows.Err(); err != nil {
		return fmt.Errorf("iterate title genre rows: %w", err)
	}

	return nil
}
