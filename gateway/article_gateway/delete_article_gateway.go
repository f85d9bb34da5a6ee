package article_gateway

import (
	"context"
	"errors"
	"fmt"

	"blog-backend/domain"
	"blog-backend/utils/logger"

	"github.com/google/uuid"
)

func (g *ArticleGateway) DeleteArticle(ctx context.Context, id uuid.UUID) error {
	if g.repo == nil {
		return errors.New("database connection not available")
	}

	if err := g.repo.DeleteArticle(ctx, id); err != nil {
		if errors.Is(err, domain.ErrArticleNotFound) {
			return err
		}
		logger.Logger.ErrorContext(ctx, "failed to delete article",
			"article_id", id, "error", err)
		return fmt.Errorf("failed to delete article: %w", err)
	}

	return nil
}
