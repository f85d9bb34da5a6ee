package di

import (
	"blog-backend/driver/blob_store"
	"blog-backend/driver/blog_db"
	"blog-backend/driver/pdf"
	"blog-backend/gateway/article_gateway"
	"blog-backend/gateway/comment_gateway"
	"blog-backend/usecase/add_comment_usecase"
	"blog-backend/usecase/auto_save_draft_usecase"
	"blog-backend/usecase/delete_article_usecase"
	"blog-backend/usecase/export_article_pdf_usecase"
	"blog-backend/usecase/fetch_article_usecase"
	"blog-backend/usecase/list_articles_usecase"
	"blog-backend/usecase/list_comments_usecase"
	"blog-backend/usecase/publish_article_usecase"
	"blog-backend/usecase/toggle_like_usecase"
	"blog-backend/usecase/update_article_usecase"
)

type ApplicationComponents struct {
	ListArticlesUsecase     list_articles_usecase.ListArticlesUsecase
	FetchArticleUsecase     fetch_article_usecase.FetchArticleUsecase
	PublishArticleUsecase   publish_article_usecase.PublishArticleUsecase
	UpdateArticleUsecase    update_article_usecase.UpdateArticleUsecase
	DeleteArticleUsecase    delete_article_usecase.DeleteArticleUsecase
	AutoSaveDraftUsecase    auto_save_draft_usecase.AutoSaveDraftUsecase
	ToggleLikeUsecase       toggle_like_usecase.ToggleLikeUsecase
	ExportArticlePDFUsecase export_article_pdf_usecase.ExportArticlePDFUsecase
	ListCommentsUsecase     list_comments_usecase.ListCommentsUsecase
	AddCommentUsecase       add_comment_usecase.AddCommentUsecase
	BlogDBRepository        *blog_db.BlogDBRepository
}

func NewApplicationComponents(pool blog_db.DBPool, blobStore *blob_store.LocalBlobStore) *ApplicationComponents {
	blogDBRepository := blog_db.NewBlogDBRepository(pool)

	articleGatewayImpl := article_gateway.NewArticleGateway(blogDBRepository)
	commentGatewayImpl := comment_gateway.NewCommentGateway(blogDBRepository)
	pdfRenderer := pdf.NewRenderer()

	return &ApplicationComponents{
		ListArticlesUsecase:     list_articles_usecase.NewListArticlesUsecase(articleGatewayImpl),
		FetchArticleUsecase:     fetch_article_usecase.NewFetchArticleUsecase(articleGatewayImpl),
		PublishArticleUsecase:   publish_article_usecase.NewPublishArticleUsecase(articleGatewayImpl, blobStore),
		UpdateArticleUsecase:    update_article_usecase.NewUpdateArticleUsecase(articleGatewayImpl, blobStore),
		DeleteArticleUsecase:    delete_article_usecase.NewDeleteArticleUsecase(articleGatewayImpl, blobStore),
		AutoSaveDraftUsecase:    auto_save_draft_usecase.NewAutoSaveDraftUsecase(articleGatewayImpl),
		ToggleLikeUsecase:       toggle_like_usecase.NewToggleLikeUsecase(articleGatewayImpl),
		ExportArticlePDFUsecase: export_article_pdf_usecase.NewExportArticlePDFUsecase(articleGatewayImpl, pdfRenderer),
		ListCommentsUsecase:     list_comments_usecase.NewListCommentsUsecase(commentGatewayImpl),
		AddCommentUsecase:       add_comment_usecase.NewAddCommentUsecase(articleGatewayImpl, commentGatewayImpl),
		BlogDBRepository:        blogDBRepository,
	}
}
