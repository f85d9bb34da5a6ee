package auto_save_draft_usecase

import (
	"context"
	"errors"
	"os"
	"testing"

	"blog-backend/domain"
	"blog-backend/mocks"
	"blog-backend/utils/logger"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestMain(m *testing.M) {
	logger.Init()
	os.Exit(m.Run())
}

func testUser() *domain.UserContext {
	return &domain.UserContext{
		UserID:   uuid.New(),
		Username: "alice",
	}
}

func TestAutoSaveDraft_UpdatesOwnedDraft(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockArticleRepositoryPort(ctrl)
	usecase := NewAutoSaveDraftUsecase(mockRepo)

	user := testUser()
	draftID := uuid.New()
	content := "work in progress"
	draft := domain.ArticleDraft{ID: draftID, Content: &content}

	stored := &domain.Article{
		ID:       draftID,
		Title:    "Existing Title",
		Content:  content,
		AuthorID: user.UserID,
		IsDraft:  true,
	}

	mockRepo.EXPECT().
		UpdateDraft(gomock.Any(), draftID, user.UserID, draft).
		Return(true, nil)
	mockRepo.EXPECT().
		GetArticleByID(gomock.Any(), draftID).
		Return(stored, nil)

	result, err := usecase.Execute(context.Background(), user, draft)
	require.NoError(t, err)
	assert.False(t, result.Created)
	// タイトルは送られていないので既存の値が残る
	assert.Equal(t, "Existing Title", result.Article.Title)
}

func TestAutoSaveDraft_UnmatchedIDCreatesNewDraft(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockArticleRepositoryPort(ctrl)
	usecase := NewAutoSaveDraftUsecase(mockRepo)

	user := testUser()
	foreignID := uuid.New()
	title := "Stolen Title"
	draft := domain.ArticleDraft{ID: foreignID, Title: &title}

	// Another author's article: no owned row matches, and a brand-new
	// draft appears instead of an error.
	mockRepo.EXPECT().
		UpdateDraft(gomock.Any(), foreignID, user.UserID, draft).
		Return(false, nil)
	mockRepo.EXPECT().
		CreateArticle(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, article *domain.Article) error {
			assert.NotEqual(t, foreignID, article.ID)
			assert.True(t, article.IsDraft)
			assert.Equal(t, user.UserID, article.AuthorID)
			assert.Equal(t, title, article.Title)
			return nil
		})

	result, err := usecase.Execute(context.Background(), user, draft)
	require.NoError(t, err)
	assert.True(t, result.Created)
	assert.NotEqual(t, foreignID, result.Article.ID)
}

func TestAutoSaveDraft_NoIDCreatesUntitledDraft(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockArticleRepositoryPort(ctrl)
	usecase := NewAutoSaveDraftUsecase(mockRepo)

	user := testUser()
	content := "first keystrokes"

	mockRepo.EXPECT().
		CreateArticle(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, article *domain.Article) error {
			assert.Equal(t, domain.UntitledDraftTitle, article.Title)
			assert.Equal(t, content, article.Content)
			assert.True(t, article.IsDraft)
			return nil
		})

	result, err := usecase.Execute(context.Background(), user, domain.ArticleDraft{Content: &content})
	require.NoError(t, err)
	assert.True(t, result.Created)
}

func TestAutoSaveDraft_StorageFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockArticleRepositoryPort(ctrl)
	usecase := NewAutoSaveDraftUsecase(mockRepo)

	user := testUser()

	mockRepo.EXPECT().
		CreateArticle(gomock.Any(), gomock.Any()).
		Return(errors.New("connection refused"))

	result, err := usecase.Execute(context.Background(), user, domain.ArticleDraft{})
	assert.Error(t, err)
	assert.Nil(t, result)
}

func TestAutoSaveDraft_InvalidUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockArticleRepositoryPort(ctrl)
	usecase := NewAutoSaveDraftUsecase(mockRepo)

	result, err := usecase.Execute(context.Background(), nil, domain.ArticleDraft{})
	assert.ErrorIs(t, err, domain.ErrInvalidUserContext)
	assert.Nil(t, result)
}
