package article_gateway

import (
	"context"
	"errors"
	"fmt"

	"blog-backend/domain"
	"blog-backend/utils/logger"

	"github.com/google/uuid"
)

// ToggleLike flips the actor's membership in the like set in a single
// atomic statement and returns the resulting set.
func (g *ArticleGateway) ToggleLike(ctx context.Context, articleID, actorID uuid.UUID) ([]uuid.UUID, error) {
	if g.repo == nil {
		return nil, errors.New("database connection not available")
	}

	likedBy, err := g.repo.ToggleLike(ctx, articleID, actorID)
	if err != nil {
		if errors.Is(err, domain.ErrArticleNotFound) {
			return nil, err
		}
		logger.Logger.ErrorContext(ctx, "failed to toggle like",
			"article_id", articleID, "actor_id", actorID, "error", err)
		return nil, fmt.Errorf("failed to toggle like: %w", err)
	}

	if likedBy == nil {
		likedBy = []uuid.UUID{}
	}
	return likedBy, nil
}
