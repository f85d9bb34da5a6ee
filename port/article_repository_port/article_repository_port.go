package article_repository_port

//go:generate mockgen -source=article_repository_port.go -destination=../../mocks/mock_article_repository_port.go -package=mocks

import (
	"context"

	"blog-backend/domain"

	"github.com/google/uuid"
)

// ArticleRepositoryPort is the invariant-enforcing access layer over
// article persistence consumed by the usecases.
type ArticleRepositoryPort interface {
	// CreateArticle persists a new article. A published article must
	// satisfy the title/content invariant.
	CreateArticle(ctx context.Context, article *domain.Article) error

	// GetArticleByID returns the article with author username populated,
	// draft or published. domain.ErrArticleNotFound when absent.
	GetArticleByID(ctx context.Context, id uuid.UUID) (*domain.Article, error)

	// IncrementViewCount atomically bumps the view counter by one and
	// returns the new value.
	IncrementViewCount(ctx context.Context, id uuid.UUID) (int64, error)

	// ListPublishedArticles lists published articles matching the filter.
	ListPublishedArticles(ctx context.Context, filter domain.ArticleFilter) ([]*domain.Article, error)

	// UpdateArticle applies a partial update; unset fields keep their
	// stored value, tags replace wholesale.
	UpdateArticle(ctx context.Context, id uuid.UUID, update domain.ArticleUpdate) (*domain.Article, error)

	// UpdateDraft applies an owner-scoped partial update keeping the
	// draft state; false when no owned row matched.
	UpdateDraft(ctx context.Context, id, authorID uuid.UUID, draft domain.ArticleDraft) (bool, error)

	// DeleteArticle removes the article permanently.
	DeleteArticle(ctx context.Context, id uuid.UUID) error

	// ToggleLike flips the actor's like membership atomically and
	// returns the resulting set.
	ToggleLike(ctx context.Context, articleID, actorID uuid.UUID) ([]uuid.UUID, error)

	// ArticleExists reports whether the article id resolves.
	ArticleExists(ctx context.Context, id uuid.UUID) (bool, error)
}
