package export_article_pdf_usecase

import (
	"context"
	"io"

	"blog-backend/port/article_repository_port"
	"blog-backend/port/pdf_renderer_port"

	"github.com/google/uuid"
)

type ExportArticlePDFUsecase interface {
	Execute(ctx context.Context, id uuid.UUID, w io.Writer) error
}

type ExportArticlePDFUsecaseImpl struct {
	articleRepo article_repository_port.ArticleRepositoryPort
	renderer    pdf_renderer_port.PDFRendererPort
}

func NewExportArticlePDFUsecase(
	articleRepo article_repository_port.ArticleRepositoryPort,
	renderer pdf_renderer_port.PDFRendererPort,
) ExportArticlePDFUsecase {
	return &ExportArticlePDFUsecaseImpl{
		articleRepo: articleRepo,
		renderer:    renderer,
	}
}

// Execute renders the article as a PDF document into w. Drafts export
// too; an unknown id yields domain.ErrArticleNotFound before anything
// is written.
func (u *ExportArticlePDFUsecaseImpl) Execute(ctx context.Context, id uuid.UUID, w io.Writer) error {
	article, err := u.articleRepo.GetArticleByID(ctx, id)
	if err != nil {
		return err
	}

	return u.renderer.Render(ctx, article, w)
}
