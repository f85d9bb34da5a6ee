package add_comment_usecase

import (
	"context"

	"blog-backend/domain"
	"blog-backend/port/article_repository_port"
	"blog-backend/port/comment_repository_port"

	"github.com/google/uuid"
)

type AddCommentUsecase interface {
	Execute(ctx context.Context, user *domain.UserContext, articleID uuid.UUID, message string) (*domain.Comment, error)
}

type AddCommentUsecaseImpl struct {
	articleRepo article_repository_port.ArticleRepositoryPort
	commentRepo comment_repository_port.CommentRepositoryPort
}

func NewAddCommentUsecase(
	articleRepo article_repository_port.ArticleRepositoryPort,
	commentRepo comment_repository_port.CommentRepositoryPort,
) AddCommentUsecase {
	return &AddCommentUsecaseImpl{
		articleRepo: articleRepo,
		commentRepo: commentRepo,
	}
}

// Execute attaches a comment to an existing article. Commenting on an
// absent article is a not-found error, not a silent create.
func (u *AddCommentUsecaseImpl) Execute(ctx context.Context, user *domain.UserContext, articleID uuid.UUID, message string) (*domain.Comment, error) {
	if user == nil || !user.IsValid() {
		return nil, domain.ErrInvalidUserContext
	}

	exists, err := u.articleRepo.ArticleExists(ctx, articleID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, domain.ErrArticleNotFound
	}

	comment := &domain.Comment{
		ID:        uuid.New(),
		ArticleID: articleID,
		UserID:    user.UserID,
		Username:  user.Username,
		Message:   message,
	}

	if err := u.commentRepo.AddComment(ctx, comment); err != nil {
		return nil, err
	}

	return comment, nil
}
