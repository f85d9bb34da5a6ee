package rest

import (
	"mime/multipart"

	"blog-backend/domain"

	"github.com/labstack/echo/v4"
)

type formUpload struct {
	file *domain.FileUpload
	src  multipart.File
}

func (u *formUpload) close() {
	u.src.Close()
}

// thumbnailFromForm extracts the optional thumbnail file from a
// multipart request. A missing file, or a non-multipart request, is not
// an error; the thumbnail is simply absent.
func thumbnailFromForm(c echo.Context) (*formUpload, error) {
	fileHeader, err := c.FormFile("thumbnail")
	if err != nil {
		return nil, nil
	}

	src, err := fileHeader.Open()
	if err != nil {
		return nil, err
	}

	return &formUpload{
		file: &domain.FileUpload{
			Filename: fileHeader.Filename,
			Content:  src,
		},
		src: src,
	}, nil
}
