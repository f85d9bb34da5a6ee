package update_article_usecase

import (
	"context"
	"strings"

	"blog-backend/domain"
	"blog-backend/port/article_repository_port"
	"blog-backend/port/blob_store_port"
	"blog-backend/utils/logger"

	"github.com/google/uuid"
)

type UpdateArticleInput struct {
	Title     *string
	Content   *string
	Tags      []string
	Thumbnail *domain.FileUpload
}

type UpdateArticleUsecase interface {
	Execute(ctx context.Context, user *domain.UserContext, id uuid.UUID, input UpdateArticleInput) (*domain.Article, error)
}

type UpdateArticleUsecaseImpl struct {
	articleRepo article_repository_port.ArticleRepositoryPort
	blobStore   blob_store_port.BlobStorePort
}

func NewUpdateArticleUsecase(
	articleRepo article_repository_port.ArticleRepositoryPort,
	blobStore blob_store_port.BlobStorePort,
) UpdateArticleUsecase {
	return &UpdateArticleUsecaseImpl{
		articleRepo: articleRepo,
		blobStore:   blobStore,
	}
}

// Execute applies a partial update on behalf of the article's author.
// A non-author actor gets domain.ErrNotArticleAuthor, which maps to 401
// rather than 404 so ownership failures stay distinguishable. A new
// thumbnail is stored and committed before the old reference is
// released; release failures are logged, never fatal.
func (u *UpdateArticleUsecaseImpl) Execute(ctx context.Context, user *domain.UserContext, id uuid.UUID, input UpdateArticleInput) (*domain.Article, error) {
	if user == nil || !user.IsValid() {
		return nil, domain.ErrInvalidUserContext
	}

	current, err := u.articleRepo.GetArticleByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if current.AuthorID != user.UserID {
		return nil, domain.ErrNotArticleAuthor
	}

	// A published article must not lose its title or content.
	if !current.IsDraft {
		if input.Title != nil && strings.TrimSpace(*input.Title) == "" {
			return nil, domain.ErrTitleRequired
		}
		if input.Content != nil && strings.TrimSpace(*input.Content) == "" {
			return nil, domain.ErrContentRequired
		}
	}

	update := domain.ArticleUpdate{
		Title:   input.Title,
		Content: input.Content,
		Tags:    input.Tags,
	}

	newRef := ""
	if input.Thumbnail != nil {
		ref, err := u.blobStore.Store(ctx, input.Thumbnail.Filename, input.Thumbnail.Content)
		if err != nil {
			return nil, err
		}
		newRef = ref
		update.Thumbnail = &newRef
	}

	updated, err := u.articleRepo.UpdateArticle(ctx, id, update)
	if err != nil {
		if newRef != "" {
			if releaseErr := u.blobStore.Release(ctx, newRef); releaseErr != nil {
				logger.Logger.WarnContext(ctx, "failed to release uncommitted thumbnail",
					"ref", newRef, "error", releaseErr)
			}
		}
		return nil, err
	}

	if newRef != "" && current.Thumbnail != "" && current.Thumbnail != newRef {
		if releaseErr := u.blobStore.Release(ctx, current.Thumbnail); releaseErr != nil {
			logger.Logger.WarnContext(ctx, "failed to release replaced thumbnail",
				"ref", current.Thumbnail, "error", releaseErr)
		}
	}

	return updated, nil
}
