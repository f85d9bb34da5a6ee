package fetch_article_usecase

import (
	"context"

	"blog-backend/domain"
	"blog-backend/port/article_repository_port"
	"blog-backend/utils/logger"
	"blog-backend/utils/metrics"

	"github.com/google/uuid"
)

type FetchArticleUsecase interface {
	Execute(ctx context.Context, id uuid.UUID) (*domain.Article, error)
}

type FetchArticleUsecaseImpl struct {
	articleRepo article_repository_port.ArticleRepositoryPort
}

func NewFetchArticleUsecase(articleRepo article_repository_port.ArticleRepositoryPort) FetchArticleUsecase {
	return &FetchArticleUsecaseImpl{articleRepo: articleRepo}
}

// Execute returns the article and bumps its view counter. The bump is
// best-effort: a failed increment is logged and the article is still
// served with its last known count.
func (u *FetchArticleUsecaseImpl) Execute(ctx context.Context, id uuid.UUID) (*domain.Article, error) {
	article, err := u.articleRepo.GetArticleByID(ctx, id)
	if err != nil {
		return nil, err
	}

	count, err := u.articleRepo.IncrementViewCount(ctx, id)
	if err != nil {
		logger.Logger.WarnContext(ctx, "view count increment failed, serving stale count",
			"article_id", id, "error", err)
		return article, nil
	}

	article.ViewCount = count
	metrics.ArticleViewsTotal.Inc()
	return article, nil
}
