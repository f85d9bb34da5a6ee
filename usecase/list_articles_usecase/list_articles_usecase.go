package list_articles_usecase

import (
	"context"

	"blog-backend/domain"
	"blog-backend/port/article_repository_port"
)

type ListArticlesUsecase interface {
	Execute(ctx context.Context, filter domain.ArticleFilter) ([]*domain.Article, error)
}

type ListArticlesUsecaseImpl struct {
	articleRepo article_repository_port.ArticleRepositoryPort
}

func NewListArticlesUsecase(articleRepo article_repository_port.ArticleRepositoryPort) ListArticlesUsecase {
	return &ListArticlesUsecaseImpl{articleRepo: articleRepo}
}

// Execute returns published articles matching the filter. Search text
// and tag combine with logical AND; drafts never appear here.
func (u *ListArticlesUsecaseImpl) Execute(ctx context.Context, filter domain.ArticleFilter) ([]*domain.Article, error) {
	return u.articleRepo.ListPublishedArticles(ctx, filter)
}
