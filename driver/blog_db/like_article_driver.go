package blog_db

import (
	"context"
	"errors"
	"fmt"

	"blog-backend/domain"
	"blog-backend/utils/logger"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// The membership flip happens inside a single UPDATE so concurrent
// toggles for the same article cannot lose each other's writes, and the
// set can never hold a duplicate actor.
const toggleLikeQuery = `
	UPDATE articles
	SET liked_by = CASE
	      WHEN $2 = ANY(liked_by) THEN array_remove(liked_by, $2)
	      ELSE array_append(liked_by, $2)
	    END,
	    updated_at = now()
	WHERE id = $1
	RETURNING liked_by
`

// ToggleLike flips the actor's membership in the article's like set and
// returns the resulting set.
func (r *BlogDBRepository) ToggleLike(ctx context.Context, articleID, actorID uuid.UUID) ([]uuid.UUID, error) {
	if r == nil || r.pool == nil {
		return nil, errors.New("database connection not available")
	}

	var likedBy []uuid.UUID
	err := r.pool.QueryRow(ctx, toggleLikeQuery, articleID, actorID).Scan(&likedBy)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrArticleNotFound
		}
		err = fmt.Errorf("toggle like: %w", err)
		logger.Logger.ErrorContext(ctx, "error toggling like", "error", err, "articleID", articleID, "actorID", actorID)
		return nil, err
	}

	logger.Logger.InfoContext(ctx, "like toggled", "articleID", articleID, "actorID", actorID, "likeCount", len(likedBy))
	return likedBy, nil
}
