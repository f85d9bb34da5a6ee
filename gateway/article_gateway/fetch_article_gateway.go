package article_gateway

import (
	"context"
	"errors"
	"fmt"

	"blog-backend/domain"
	"blog-backend/utils/logger"

	"github.com/google/uuid"
)

func (g *ArticleGateway) GetArticleByID(ctx context.Context, id uuid.UUID) (*domain.Article, error) {
	if g.repo == nil {
		return nil, errors.New("database connection not available")
	}

	article, err := g.repo.GetArticleByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrArticleNotFound) {
			return nil, err
		}
		logger.Logger.ErrorContext(ctx, "failed to fetch article",
			"article_id", id, "error", err)
		return nil, fmt.Errorf("failed to fetch article: %w", err)
	}

	return article, nil
}

func (g *ArticleGateway) IncrementViewCount(ctx context.Context, id uuid.UUID) (int64, error) {
	if g.repo == nil {
		return 0, errors.New("database connection not available")
	}

	count, err := g.repo.IncrementViewCount(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrArticleNotFound) {
			return 0, err
		}
		logger.Logger.ErrorContext(ctx, "failed to increment view count",
			"article_id", id, "error", err)
		return 0, fmt.Errorf("failed to increment view count: %w", err)
	}

	return count, nil
}

func (g *ArticleGateway) ListPublishedArticles(ctx context.Context, filter domain.ArticleFilter) ([]*domain.Article, error) {
	if g.repo == nil {
		return nil, errors.New("database connection not available")
	}

	articles, err := g.repo.ListPublishedArticles(ctx, filter)
	if err != nil {
		logger.Logger.ErrorContext(ctx, "failed to list published articles",
			"search_text", filter.SearchText, "tag", filter.Tag, "error", err)
		return nil, fmt.Errorf("failed to list published articles: %w", err)
	}

	if articles == nil {
		articles = []*domain.Article{}
	}
	return articles, nil
}

func (g *ArticleGateway) ArticleExists(ctx context.Context, id uuid.UUID) (bool, error) {
	if g.repo == nil {
		return false, errors.New("database connection not available")
	}

	exists, err := g.repo.ArticleExists(ctx, id)
	if err != nil {
		logger.Logger.ErrorContext(ctx, "failed to check article existence",
			"article_id", id, "error", err)
		return false, fmt.Errorf("failed to check article existence: %w", err)
	}

	return exists, nil
}
