package blog_db

import (
	"context"
	"errors"
	"fmt"

	"blog-backend/domain"
	"blog-backend/utils/logger"

	"github.com/google/uuid"
)

const deleteArticleQuery = `
	DELETE FROM articles
	WHERE id = $1
`

// DeleteArticle removes the article row. Comments go with it via the
// ON DELETE CASCADE constraint.
func (r *BlogDBRepository) DeleteArticle(ctx context.Context, id uuid.UUID) error {
	if r == nil || r.pool == nil {
		return errors.New("database connection not available")
	}

	tag, err := r.pool.Exec(ctx, deleteArticleQuery, id)
	if err != nil {
		err = fmt.Errorf("delete article: %w", err)
		logger.Logger.ErrorContext(ctx, "error deleting article", "error", err, "articleID", id)
		return err
	}

	if tag.RowsAffected() == 0 {
		return domain.ErrArticleNotFound
	}

	logger.Logger.InfoContext(ctx, "article deleted", "articleID", id)
	return nil
}
