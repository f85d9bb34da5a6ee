package comment_repository_port

//go:generate mockgen -source=comment_repository_port.go -destination=../../mocks/mock_comment_repository_port.go -package=mocks

import (
	"context"

	"blog-backend/domain"

	"github.com/google/uuid"
)

type CommentRepositoryPort interface {
	// ListComments returns the article's comments, newest first.
	ListComments(ctx context.Context, articleID uuid.UUID) ([]*domain.Comment, error)

	// AddComment persists a new comment and fills in server-assigned
	// fields (id, created_at, username).
	AddComment(ctx context.Context, comment *domain.Comment) error
}
