package pdf_renderer_port

//go:generate mockgen -source=pdf_renderer_port.go -destination=../../mocks/mock_pdf_renderer_port.go -package=mocks

import (
	"context"
	"io"

	"blog-backend/domain"
)

type PDFRendererPort interface {
	// Render writes a PDF document for the article to w.
	Render(ctx context.Context, article *domain.Article, w io.Writer) error
}
