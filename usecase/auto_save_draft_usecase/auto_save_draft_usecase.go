package auto_save_draft_usecase

import (
	"context"
	"strings"

	"blog-backend/domain"
	"blog-backend/port/article_repository_port"
	"blog-backend/utils/metrics"

	"github.com/google/uuid"
)

type AutoSaveResult struct {
	Article *domain.Article
	Created bool
}

type AutoSaveDraftUsecase interface {
	Execute(ctx context.Context, user *domain.UserContext, draft domain.ArticleDraft) (*AutoSaveResult, error)
}

type AutoSaveDraftUsecaseImpl struct {
	articleRepo article_repository_port.ArticleRepositoryPort
}

func NewAutoSaveDraftUsecase(articleRepo article_repository_port.ArticleRepositoryPort) AutoSaveDraftUsecase {
	return &AutoSaveDraftUsecaseImpl{articleRepo: articleRepo}
}

// Execute reconciles an auto-save request against the stored drafts.
// A supplied id that resolves to a draft owned by the caller is updated
// in place; any other id, including another author's article, silently
// falls back to creating a fresh draft so the editor never loses work.
func (u *AutoSaveDraftUsecaseImpl) Execute(ctx context.Context, user *domain.UserContext, draft domain.ArticleDraft) (*AutoSaveResult, error) {
	if user == nil || !user.IsValid() {
		return nil, domain.ErrInvalidUserContext
	}

	if draft.ID != uuid.Nil {
		matched, err := u.articleRepo.UpdateDraft(ctx, draft.ID, user.UserID, draft)
		if err != nil {
			metrics.DraftAutoSavesTotal.WithLabelValues("failed").Inc()
			return nil, err
		}
		if matched {
			article, err := u.articleRepo.GetArticleByID(ctx, draft.ID)
			if err != nil {
				metrics.DraftAutoSavesTotal.WithLabelValues("failed").Inc()
				return nil, err
			}
			metrics.DraftAutoSavesTotal.WithLabelValues("updated").Inc()
			return &AutoSaveResult{Article: article, Created: false}, nil
		}
	}

	title := domain.UntitledDraftTitle
	if draft.Title != nil && strings.TrimSpace(*draft.Title) != "" {
		title = *draft.Title
	}
	content := ""
	if draft.Content != nil {
		content = *draft.Content
	}
	tags := draft.Tags
	if tags == nil {
		tags = []string{}
	}

	article := &domain.Article{
		ID:         uuid.New(),
		Title:      title,
		Content:    content,
		AuthorID:   user.UserID,
		AuthorName: user.Username,
		Tags:       tags,
		LikedBy:    []uuid.UUID{},
		IsDraft:    true,
	}

	if err := u.articleRepo.CreateArticle(ctx, article); err != nil {
		metrics.DraftAutoSavesTotal.WithLabelValues("failed").Inc()
		return nil, err
	}

	metrics.DraftAutoSavesTotal.WithLabelValues("created").Inc()
	return &AutoSaveResult{Article: article, Created: true}, nil
}
