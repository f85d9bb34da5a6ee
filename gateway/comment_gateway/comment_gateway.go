package comment_gateway

import (
	"context"
	"errors"
	"fmt"

	"blog-backend/domain"
	"blog-backend/driver/blog_db"
	"blog-backend/utils/htmlutil"
	"blog-backend/utils/logger"

	"github.com/google/uuid"
)

type CommentGateway struct {
	repo      *blog_db.BlogDBRepository
	sanitizer *htmlutil.Sanitizer
}

func NewCommentGateway(repo *blog_db.BlogDBRepository) *CommentGateway {
	return &CommentGateway{
		repo:      repo,
		sanitizer: htmlutil.NewSanitizer(),
	}
}

func (g *CommentGateway) ListComments(ctx context.Context, articleID uuid.UUID) ([]*domain.Comment, error) {
	if g.repo == nil {
		return nil, errors.New("database connection not available")
	}

	comments, err := g.repo.ListCommentsByArticle(ctx, articleID)
	if err != nil {
		logger.Logger.ErrorContext(ctx, "failed to list comments",
			"article_id", articleID, "error", err)
		return nil, fmt.Errorf("failed to list comments: %w", err)
	}

	if comments == nil {
		comments = []*domain.Comment{}
	}
	return comments, nil
}

func (g *CommentGateway) AddComment(ctx context.Context, comment *domain.Comment) error {
	if g.repo == nil {
		return errors.New("database connection not available")
	}

	comment.Message = g.sanitizer.SanitizeHTMLAndTrim(comment.Message)

	if err := g.repo.CreateComment(ctx, comment); err != nil {
		logger.Logger.ErrorContext(ctx, "failed to add comment",
			"article_id", comment.ArticleID, "error", err)
		return fmt.Errorf("failed to add comment: %w", err)
	}

	return nil
}
