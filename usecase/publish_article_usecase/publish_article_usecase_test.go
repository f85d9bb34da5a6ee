package publish_article_usecase

import (
	"context"
	"errors"
	"os"
	"strings"
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
	return &domain.UserContext{UserID: uuid.New(), Username: "alice"}
}

func TestPublishArticle(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockArticleRepositoryPort(ctrl)
	mockBlob := mocks.NewMockBlobStorePort(ctrl)
	usecase := NewPublishArticleUsecase(mockRepo, mockBlob)

	user := testUser()
	input := PublishArticleInput{
		Title:   "Profiling Go Services",
		Content: "<p>pprof basics</p>",
		Tags:    []string{"go", "profiling"},
	}

	mockRepo.EXPECT().
		CreateArticle(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, article *domain.Article) error {
			assert.False(t, article.IsDraft)
			assert.Equal(t, user.UserID, article.AuthorID)
			assert.NotEqual(t, uuid.Nil, article.ID)
			return nil
		})

	article, err := usecase.Execute(context.Background(), user, input)
	require.NoError(t, err)
	assert.Equal(t, input.Title, article.Title)
	assert.Empty(t, article.Thumbnail)
}

func TestPublishArticle_WithThumbnail(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockArticleRepositoryPort(ctrl)
	mockBlob := mocks.NewMockBlobStorePort(ctrl)
	usecase := NewPublishArticleUsecase(mockRepo, mockBlob)

	user := testUser()
	input := PublishArticleInput{
		Title:   "With Cover",
		Content: "c",
		Thumbnail: &domain.FileUpload{
			Filename: "cover.png",
			Content:  strings.NewReader("png-bytes"),
		},
	}

	mockBlob.EXPECT().
		Store(gomock.Any(), "cover.png", gomock.Any()).
		Return("thumbnails/abc.png", nil)
	mockRepo.EXPECT().
		CreateArticle(gomock.Any(), gomock.Any()).
		Return(nil)

	article, err := usecase.Execute(context.Background(), user, input)
	require.NoError(t, err)
	assert.Equal(t, "thumbnails/abc.png", article.Thumbnail)
}

func TestPublishArticle_InsertFailureReleasesThumbnail(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockArticleRepositoryPort(ctrl)
	mockBlob := mocks.NewMockBlobStorePort(ctrl)
	usecase := NewPublishArticleUsecase(mockRepo, mockBlob)

	user := testUser()
	input := PublishArticleInput{
		Title:   "t",
		Content: "c",
		Thumbnail: &domain.FileUpload{
			Filename: "cover.png",
			Content:  strings.NewReader("png-bytes"),
		},
	}

	mockBlob.EXPECT().
		Store(gomock.Any(), "cover.png", gomock.Any()).
		Return("thumbnails/orphan.png", nil)
	mockRepo.EXPECT().
		CreateArticle(gomock.Any(), gomock.Any()).
		Return(errors.New("connection refused"))
	mockBlob.EXPECT().
		Release(gomock.Any(), "thumbnails/orphan.png").
		Return(nil)

	article, err := usecase.Execute(context.Background(), user, input)
	assert.Error(t, err)
	assert.Nil(t, article)
}

func TestPublishArticle_ValidationErrorPropagates(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockArticleRepositoryPort(ctrl)
	mockBlob := mocks.NewMockBlobStorePort(ctrl)
	usecase := NewPublishArticleUsecase(mockRepo, mockBlob)

	// Title validation lives at the persistence boundary so it also
	// covers writes that bypass HTTP. The usecase passes it through.
	mockRepo.EXPECT().
		CreateArticle(gomock.Any(), gomock.Any()).
		Return(domain.ErrTitleRequired)

	article, err := usecase.Execute(context.Background(), testUser(), PublishArticleInput{Content: "c"})
	assert.ErrorIs(t, err, domain.ErrTitleRequired)
	assert.Nil(t, article)
}

func TestPublishArticle_InvalidUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockArticleRepositoryPort(ctrl)
	mockBlob := mocks.NewMockBlobStorePort(ctrl)
	usecase := NewPublishArticleUsecase(mockRepo, mockBlob)

	article, err := usecase.Execute(context.Background(), nil, PublishArticleInput{Title: "t", Content: "c"})
	assert.ErrorIs(t, err, domain.ErrInvalidUserContext)
	assert.Nil(t, article)
}
