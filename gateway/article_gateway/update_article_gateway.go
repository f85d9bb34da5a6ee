package article_gateway

import (
	"context"
	"errors"
	"fmt"

	"blog-backend/domain"
	"blog-backend/utils/logger"

	"github.com/google/uuid"
)

// UpdateArticle applies a partial update. Content is sanitized and tags
// are normalized before they hit the database.
func (g *ArticleGateway) UpdateArticle(ctx context.Context, id uuid.UUID, update domain.ArticleUpdate) (*domain.Article, error) {
	if g.repo == nil {
		return nil, errors.New("database connection not available")
	}

	if update.Content != nil {
		sanitized := g.sanitizer.SanitizeHTMLAndTrim(*update.Content)
		update.Content = &sanitized
	}
	if update.Tags != nil {
		update.Tags = domain.NormalizeTags(update.Tags)
	}

	article, err := g.repo.UpdateArticleFields(ctx, id, update)
	if err != nil {
		if errors.Is(err, domain.ErrArticleNotFound) {
			return nil, err
		}
		logger.Logger.ErrorContext(ctx, "failed to update article",
			"article_id", id, "error", err)
		return nil, fmt.Errorf("failed to update article: %w", err)
	}

	return article, nil
}

// UpdateDraft applies an owner-scoped auto-save update. The row keeps
// its draft state regardless of the supplied fields. False without an
// error means no draft owned by authorID matched the id.
func (g *ArticleGateway) UpdateDraft(ctx context.Context, id, authorID uuid.UUID, draft domain.ArticleDraft) (bool, error) {
	if g.repo == nil {
		return false, errors.New("database connection not available")
	}

	if draft.Content != nil {
		sanitized := g.sanitizer.SanitizeHTMLAndTrim(*draft.Content)
		draft.Content = &sanitized
	}
	if draft.Tags != nil {
		draft.Tags = domain.NormalizeTags(draft.Tags)
	}

	matched, err := g.repo.UpdateDraftFields(ctx, id, authorID, draft)
	if err != nil {
		logger.Logger.ErrorContext(ctx, "failed to update draft",
			"article_id", id, "author_id", authorID, "error", err)
		return false, fmt.Errorf("failed to update draft: %w", err)
	}

	return matched, nil
}
