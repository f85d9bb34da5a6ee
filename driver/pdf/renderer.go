package pdf

import (
	"context"
	"fmt"
	"html"
	"io"

	"blog-backend/domain"
	"blog-backend/utils/htmlutil"

	"github.com/go-pdf/fpdf"
)

// Renderer turns a finalized article snapshot into a PDF document.
type Renderer struct{}

func NewRenderer() *Renderer {
	return &Renderer{}
}

// Render writes the article as a PDF to w: centered title, author and
// date lines, then the content flattened to plain text.
func (r *Renderer) Render(ctx context.Context, article *domain.Article, w io.Writer) error {
	doc := fpdf.New("P", "mm", "A4", "")
	doc.SetTitle(article.Title, true)
	doc.AddPage()

	pageWidth, _ := doc.GetPageSize()
	left, _, right, _ := doc.GetMargins()
	usableWidth := pageWidth - left - right

	doc.SetFont("Helvetica", "B", 25)
	doc.MultiCell(usableWidth, 12, article.Title, "", "C", false)
	doc.Ln(4)

	doc.SetFont("Helvetica", "", 12)
	doc.MultiCell(usableWidth, 6, "By: "+article.AuthorName, "", "C", false)
	doc.MultiCell(usableWidth, 6, "Date: "+article.CreatedAt.Format("2006-01-02"), "", "C", false)
	doc.Ln(6)

	body := html.UnescapeString(htmlutil.StripTags(article.Content))
	doc.SetFont("Helvetica", "", 14)
	doc.MultiCell(usableWidth, 7, body, "", "J", false)

	if err := doc.Output(w); err != nil {
		return fmt.Errorf("render pdf: %w", err)
	}
	return nil
}
