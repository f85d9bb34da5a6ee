package blog_db

import (
	"context"
	"errors"
	"fmt"

	"blog-backend/domain"
	"blog-backend/utils/logger"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const fetchArticleByIDQuery = `
	SELECT a.id, a.title, a.content, a.author_id, COALESCE(u.username, ''),
	       a.tags, a.thumbnail, a.liked_by, a.view_count, a.is_draft,
	       a.created_at, a.updated_at
	FROM articles a
	LEFT JOIN users u ON u.id = a.author_id
	WHERE a.id = $1
`

// GetArticleByID retrieves a single article with its author's username.
// It does not touch the view counter.
func (r *BlogDBRepository) GetArticleByID(ctx context.Context, id uuid.UUID) (*domain.Article, error) {
	if r == nil || r.pool == nil {
		return nil, errors.New("database connection not available")
	}

	var article domain.Article
	err := r.pool.QueryRow(ctx, fetchArticleByIDQuery, id).Scan(
		&article.ID,
		&article.Title,
		&article.Content,
		&article.AuthorID,
		&article.AuthorName,
		&article.Tags,
		&article.Thumbnail,
		&article.LikedBy,
		&article.ViewCount,
		&article.IsDraft,
		&article.CreatedAt,
		&article.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrArticleNotFound
		}
		err = fmt.Errorf("fetch article: %w", err)
		logger.Logger.ErrorContext(ctx, "error fetching article", "error", err, "articleID", id)
		return nil, err
	}

	return &article, nil
}

const incrementViewCountQuery = `
	UPDATE articles
	SET view_count = view_count + 1
	WHERE id = $1
	RETURNING view_count
`

// IncrementViewCount bumps the view counter by exactly one in a single
// atomic statement. Concurrent calls never lose an increment.
func (r *BlogDBRepository) IncrementViewCount(ctx context.Context, id uuid.UUID) (int64, error) {
	if r == nil || r.pool == nil {
		return 0, errors.New("database connection not available")
	}

	var views int64
	err := r.pool.QueryRow(ctx, incrementViewCountQuery, id).Scan(&views)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, domain.ErrArticleNotFound
		}
		err = fmt.Errorf("increment view count: %w", err)
		logger.Logger.ErrorContext(ctx, "error incrementing view count", "error", err, "articleID", id)
		return 0, err
	}

	return views, nil
}
