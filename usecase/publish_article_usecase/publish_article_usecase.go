package publish_article_usecase

import (
	"context"

	"blog-backend/domain"
	"blog-backend/port/article_repository_port"
	"blog-backend/port/blob_store_port"
	"blog-backend/utils/logger"
	"blog-backend/utils/metrics"

	"github.com/google/uuid"
)

type PublishArticleInput struct {
	Title     string
	Content   string
	Tags      []string
	Thumbnail *domain.FileUpload
}

type PublishArticleUsecase interface {
	Execute(ctx context.Context, user *domain.UserContext, input PublishArticleInput) (*domain.Article, error)
}

type PublishArticleUsecaseImpl struct {
	articleRepo article_repository_port.ArticleRepositoryPort
	blobStore   blob_store_port.BlobStorePort
}

func NewPublishArticleUsecase(
	articleRepo article_repository_port.ArticleRepositoryPort,
	blobStore blob_store_port.BlobStorePort,
) PublishArticleUsecase {
	return &PublishArticleUsecaseImpl{
		articleRepo: articleRepo,
		blobStore:   blobStore,
	}
}

// Execute creates a published article for the authenticated user. The
// thumbnail, when present, is stored first so the article row only ever
// references a durable blob. A failed insert releases the fresh blob.
func (u *PublishArticleUsecaseImpl) Execute(ctx context.Context, user *domain.UserContext, input PublishArticleInput) (*domain.Article, error) {
	if user == nil || !user.IsValid() {
		return nil, domain.ErrInvalidUserContext
	}

	thumbnailRef := ""
	if input.Thumbnail != nil {
		ref, err := u.blobStore.Store(ctx, input.Thumbnail.Filename, input.Thumbnail.Content)
		if err != nil {
			return nil, err
		}
		thumbnailRef = ref
	}

	article := &domain.Article{
		ID:         uuid.New(),
		Title:      input.Title,
		Content:    input.Content,
		AuthorID:   user.UserID,
		AuthorName: user.Username,
		Tags:       input.Tags,
		Thumbnail:  thumbnailRef,
		LikedBy:    []uuid.UUID{},
		IsDraft:    false,
	}

	if err := u.articleRepo.CreateArticle(ctx, article); err != nil {
		if thumbnailRef != "" {
			if releaseErr := u.blobStore.Release(ctx, thumbnailRef); releaseErr != nil {
				logger.Logger.WarnContext(ctx, "failed to release orphaned thumbnail",
					"ref", thumbnailRef, "error", releaseErr)
			}
		}
		return nil, err
	}

	metrics.ArticlesPublishedTotal.Inc()
	return article, nil
}
