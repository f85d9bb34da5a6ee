package delete_article_usecase

import (
	"context"

	"blog-backend/domain"
	"blog-backend/port/article_repository_port"
	"blog-backend/port/blob_store_port"
	"blog-backend/utils/logger"

	"github.com/google/uuid"
)

type DeleteArticleUsecase interface {
	Execute(ctx context.Context, user *domain.UserContext, id uuid.UUID) error
}

type DeleteArticleUsecaseImpl struct {
	articleRepo article_repository_port.ArticleRepositoryPort
	blobStore   blob_store_port.BlobStorePort
}

func NewDeleteArticleUsecase(
	articleRepo article_repository_port.ArticleRepositoryPort,
	blobStore blob_store_port.BlobStorePort,
) DeleteArticleUsecase {
	return &DeleteArticleUsecaseImpl{
		articleRepo: articleRepo,
		blobStore:   blobStore,
	}
}

// Execute permanently removes the actor's own article. The row is
// deleted first and only then is the thumbnail reference released; a
// dangling blob on release failure is logged and tolerated, a dangling
// row reference is not.
func (u *DeleteArticleUsecaseImpl) Execute(ctx context.Context, user *domain.UserContext, id uuid.UUID) error {
	if user == nil || !user.IsValid() {
		return domain.ErrInvalidUserContext
	}

	current, err := u.articleRepo.GetArticleByID(ctx, id)
	if err != nil {
		return err
	}

	if current.AuthorID != user.UserID {
		return domain.ErrNotArticleAuthor
	}

	if err := u.articleRepo.DeleteArticle(ctx, id); err != nil {
		return err
	}

	if current.Thumbnail != "" {
		if releaseErr := u.blobStore.Release(ctx, current.Thumbnail); releaseErr != nil {
			logger.Logger.WarnContext(ctx, "failed to release thumbnail of deleted article",
				"article_id", id, "ref", current.Thumbnail, "error", releaseErr)
		}
	}

	return nil
}
