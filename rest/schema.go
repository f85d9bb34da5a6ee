package rest

// AutoSaveDraftRequest mirrors the editor's periodic save payload. Tags
// arrive as a comma-separated string; nil pointers mean the field was
// not supplied and keeps its stored value.
type AutoSaveDraftRequest struct {
	ID      string  `json:"id"`
	Title   *string `json:"title"`
	Content *string `json:"content"`
	Tags    *string `json:"tags"`
}

// AutoSaveDraftFailure is returned when the draft could not be stored.
// Auto-save is non-fatal by contract, so this rides a 200 and the
// editor keeps the user's work client-side.
type AutoSaveDraftFailure struct {
	Saved bool   `json:"saved"`
	ID    string `json:"id,omitempty"`
}

type AddCommentRequest struct {
	Message string `json:"message" validate:"required,max=2000"`
}

type DeleteArticleResponse struct {
	ID string `json:"id"`
}

type HealthResponse struct {
	Status string `json:"status"`
}
