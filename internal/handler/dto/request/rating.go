package request

type CreateRatingRequest struct {
	Score   int    `json:"score" example:"5"`
	Comment string `json:"comment" example:"Great courts!"`
}

type UpdateRatingRequest struct {
	Score   *int    `json:"score,omitempty"`
	Comment *string `json:"comment,omitempty"`
}
