package blog_db

import (
	"context"
	"errors"
	"fmt"

	"blog-backend/domain"
	"blog-backend/utils/logger"
)

const insertArticleQuery = `
	INSERT INTO articles (id, title, content, author_id, tags, thumbnail, is_draft)
	VALUES ($1, $2, $3, $4, $5, $6, $7)
	RETURNING created_at, updated_at
`

// CreateArticle inserts a new article row. The caller supplies the
// identifier; timestamps come back from the database.
func (r *BlogDBRepository) CreateArticle(ctx context.Context, article *domain.Article) error {
	if r == nil || r.pool == nil {
		return errors.New("database connection not available")
	}

	err := r.pool.QueryRow(ctx, insertArticleQuery,
		article.ID,
		article.Title,
		article.Content,
		article.AuthorID,
		article.Tags,
		article.Thumbnail,
		article.IsDraft,
	).Scan(&article.CreatedAt, &article.UpdatedAt)
	if err != nil {
		err = fmt.Errorf("insert article: %w", err)
		logger.Logger.ErrorContext(ctx, "error creating article", "error", err, "articleID", article.ID)
		return err
	}

	logger.Logger.InfoContext(ctx, "article created", "articleID", article.ID, "isDraft", article.IsDraft)
	return nil
}
