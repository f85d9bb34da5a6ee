package list_comments_usecase

import (
	"context"

	"blog-backend/domain"
	"blog-backend/port/comment_repository_port"

	"github.com/google/uuid"
)

type ListCommentsUsecase interface {
	Execute(ctx context.Context, articleID uuid.UUID) ([]*domain.Comment, error)
}

type ListCommentsUsecaseImpl struct {
	commentRepo comment_repository_port.CommentRepositoryPort
}

func NewListCommentsUsecase(commentRepo comment_repository_port.CommentRepositoryPort) ListCommentsUsecase {
	return &ListCommentsUsecaseImpl{commentRepo: commentRepo}
}

// Execute returns the article's comments, newest first. An unknown
// article simply has no comments.
func (u *ListCommentsUsecaseImpl) Execute(ctx context.Context, articleID uuid.UUID) ([]*domain.Comment, error) {
	return u.commentRepo.ListComments(ctx, articleID)
}
