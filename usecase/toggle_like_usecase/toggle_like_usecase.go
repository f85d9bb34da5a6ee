package toggle_like_usecase

import (
	"context"

	"blog-backend/domain"
	"blog-backend/port/article_repository_port"
	"blog-backend/utils/metrics"

	"github.com/google/uuid"
)

type ToggleLikeUsecase interface {
	Execute(ctx context.Context, user *domain.UserContext, articleID uuid.UUID) ([]uuid.UUID, error)
}

type ToggleLikeUsecaseImpl struct {
	articleRepo article_repository_port.ArticleRepositoryPort
}

func NewToggleLikeUsecase(articleRepo article_repository_port.ArticleRepositoryPort) ToggleLikeUsecase {
	return &ToggleLikeUsecaseImpl{articleRepo: articleRepo}
}

// Execute flips the caller's like on the article and returns the
// resulting like set. The flip happens in one atomic statement, so
// concurrent toggles by distinct users never lose each other.
func (u *ToggleLikeUsecaseImpl) Execute(ctx context.Context, user *domain.UserContext, articleID uuid.UUID) ([]uuid.UUID, error) {
	if user == nil || !user.IsValid() {
		return nil, domain.ErrInvalidUserContext
	}

	likedBy, err := u.articleRepo.ToggleLike(ctx, articleID, user.UserID)
	if err != nil {
		return nil, err
	}

	metrics.LikeTogglesTotal.Inc()
	return likedBy, nil
}
