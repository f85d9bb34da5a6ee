package blog_db

import (
	"context"
	"errors"
	"fmt"

	"blog-backend/domain"
	"blog-backend/utils/logger"

	"github.com/google/uuid"
)

const listCommentsQuery = `
	SELECT c.id, c.article_id, c.user_id, COALESCE(u.username, ''), c.message, c.created_at
	FROM comments c
	LEFT JOIN users u ON u.id = c.user_id
	WHERE c.article_id = $1
	ORDER BY c.created_at DESC
`

// ListCommentsByArticle returns an article's comments newest-first with
// commenter usernames populated.
func (r *BlogDBRepository) ListCommentsByArticle(ctx context.Context, articleID uuid.UUID) ([]*domain.Comment, error) {
	if r == nil || r.pool == nil {
		return nil, errors.New("database connection not available")
	}

	rows, err := r.pool.Query(ctx, listCommentsQuery, articleID)
	if err != nil {
		err = fmt.Errorf("list comments: %w", err)
		logger.Logger.ErrorContext(ctx, "error listing comments", "error", err, "articleID", articleID)
		return nil, err
	}
	defer rows.Close()

	var comments []*domain.Comment
	for rows.Next() {
		var comment domain.Comment
		err := rows.Scan(
			&comment.ID,
			&comment.ArticleID,
			&comment.UserID,
			&comment.Username,
			&comment.Message,
			&comment.CreatedAt,
		)
		if err != nil {
			err = fmt.Errorf("scan comment: %w", err)
			logger.Logger.ErrorContext(ctx, "error scanning comment row", "error", err)
			return nil, err
		}
		comments = append(comments, &comment)
	}

	if err := rows.Err(); err != nil {
		err = fmt.Errorf("iterate comments: %w", err)
		logger.Logger.ErrorContext(ctx, "row iteration error", "error", err)
		return nil, err
	}

	return comments, nil
}

const insertCommentQuery = `
	INSERT INTO comments (id, article_id, user_id, message)
	VALUES ($1, $2, $3, $4)
	RETURNING created_at
`

const usernameByIDQuery = `
	SELECT COALESCE(username, '') FROM users WHERE id = $1
`

// CreateComment inserts a comment and returns it with the commenter's
// username populated.
func (r *BlogDBRepository) CreateComment(ctx context.Context, comment *domain.Comment) error {
	if r == nil || r.pool == nil {
		return errors.New("database connection not available")
	}

	err := r.pool.QueryRow(ctx, insertCommentQuery,
		comment.ID,
		comment.ArticleID,
		comment.UserID,
		comment.Message,
	).Scan(&comment.CreatedAt)
	if err != nil {
		err = fmt.Errorf("insert comment: %w", err)
		logger.Logger.ErrorContext(ctx, "error creating comment", "error", err, "articleID", comment.ArticleID)
		return err
	}

	// Username is display-only; a missing user row is not an error.
	if err := r.pool.QueryRow(ctx, usernameByIDQuery, comment.UserID).Scan(&comment.Username); err != nil {
		logger.Logger.WarnContext(ctx, "could not resolve commenter username", "error", err, "userID", comment.UserID)
	}

	logger.Logger.InfoContext(ctx, "comment created", "articleID", comment.ArticleID, "commentID", comment.ID)
	return nil
}

const articleExistsQuery = `
	SELECT EXISTS (SELECT 1 FROM articles WHERE id = $1)
`

// ArticleExists reports whether an article row exists.
func (r *BlogDBRepository) ArticleExists(ctx context.Context, id uuid.UUID) (bool, error) {
	if r == nil || r.pool == nil {
		return false, errors.New("database connection not available")
	}

	var exists bool
	if err := r.pool.QueryRow(ctx, articleExistsQuery, id).Scan(&exists); err != nil {
		err = fmt.Errorf("check article exists: %w", err)
		logger.Logger.ErrorContext(ctx, "error checking article existence", "error", err, "articleID", id)
		return false, err
	}

	return exists, nil
}
