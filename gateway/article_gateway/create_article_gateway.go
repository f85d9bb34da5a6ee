package article_gateway

import (
	"context"
	"errors"
	"fmt"

	"blog-backend/domain"
	"blog-backend/utils/logger"
)

// CreateArticle sanitizes user supplied content, normalizes tags and
// persists the article. Published articles are validated before the
// insert so an invalid publish never reaches the database.
func (g *ArticleGateway) CreateArticle(ctx context.Context, article *domain.Article) error {
	if g.repo == nil {
		return errors.New("database connection not available")
	}

	article.Content = g.sanitizer.SanitizeHTMLAndTrim(article.Content)
	article.Tags = domain.NormalizeTags(article.Tags)

	if !article.IsDraft {
		if err := article.ValidateForPublish(); err != nil {
			return err
		}
	}

	if err := g.repo.CreateArticle(ctx, article); err != nil {
		logger.Logger.ErrorContext(ctx, "failed to create article",
			"article_id", article.ID, "error", err)
		return fmt.Errorf("failed to create article: %w", err)
	}

	return nil
}
