package domain

import "io"

// FileUpload carries an incoming multipart file towards the blob store.
// Filename is only consulted for its extension.
type FileUpload struct {
	Filename string
	Content  io.Reader
}
