package blog_db

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"blog-backend/domain"
	"blog-backend/utils/logger"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// UpdateArticleFields applies a partial update to an article. Unset
// fields keep their stored value; tags replace the stored set wholesale.
// Returns the updated row.
func (r *BlogDBRepository) UpdateArticleFields(ctx context.Context, id uuid.UUID, update domain.ArticleUpdate) (*domain.Article, error) {
	if r == nil || r.pool == nil {
		return nil, errors.New("database connection not available")
	}

	setClauses := []string{"updated_at = now()"}
	var args []interface{}

	appendSet := func(column string, value interface{}) {
		args = append(args, value)
		setClauses = append(setClauses, column+" = $"+strconv.Itoa(len(args)))
	}

	if update.Title != nil {
		appendSet("title", *update.Title)
	}
	if update.Content != nil {
		appendSet("content", *update.Content)
	}
	if update.Tags != nil {
		appendSet("tags", update.Tags)
	}
	if update.Thumbnail != nil {
		appendSet("thumbnail", *update.Thumbnail)
	}

	args = append(args, id)
	query := `
	UPDATE articles
	SET ` + strings.Join(setClauses, ", ") + `
	WHERE id = $` + strconv.Itoa(len(args)) + `
	RETURNING id, title, content, author_id, tags, thumbnail, liked_by, view_count, is_draft, created_at, updated_at`

	var article domain.Article
	err := r.pool.QueryRow(ctx, query, args...).Scan(
		&article.ID,
		&article.Title,
		&article.Content,
		&article.AuthorID,
		&article.Tags,
		&article.Thumbnail,
		&article.LikedBy,
		&article.ViewCount,
		&article.IsDraft,
		&article.CreatedAt,
		&article.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrArticleNotFound
		}
		err = fmt.Errorf("update article: %w", err)
		logger.Logger.ErrorContext(ctx, "error updating article", "error", err, "articleID", id)
		return nil, err
	}

	logger.Logger.InfoContext(ctx, "article updated", "articleID", id)
	return &article, nil
}

// UpdateDraftFields applies an owner-scoped partial update that keeps the
// article in the draft state. Returns false when no row matched the
// id/author pair, without distinguishing "absent" from "foreign".
func (r *BlogDBRepository) UpdateDraftFields(ctx context.Context, id, authorID uuid.UUID, draft domain.ArticleDraft) (bool, error) {
	if r == nil || r.pool == nil {
		return false, errors.New("database connection not available")
	}

	setClauses := []string{"is_draft = TRUE", "updated_at = now()"}
	var args []interface{}

	appendSet := func(column string, value interface{}) {
		args = append(args, value)
		setClauses = append(setClauses, column+" = $"+strconv.Itoa(len(args)))
	}

	if draft.Title != nil {
		appendSet("title", *draft.Title)
	}
	if draft.Content != nil {
		appendSet("content", *draft.Content)
	}
	if draft.Tags != nil {
		appendSet("tags", draft.Tags)
	}

	args = append(args, id, authorID)
	query := `
	UPDATE articles
	SET ` + strings.Join(setClauses, ", ") + `
	WHERE id = $` + strconv.Itoa(len(args)-1) + ` AND author_id = $` + strconv.Itoa(len(args)) + `
	RETURNING id`

	var updatedID uuid.UUID
	err := r.pool.QueryRow(ctx, query, args...).Scan(&updatedID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		err = fmt.Errorf("update draft: %w", err)
		logger.Logger.ErrorContext(ctx, "error updating draft", "error", err, "articleID", id)
		return false, err
	}

	return true, nil
}
