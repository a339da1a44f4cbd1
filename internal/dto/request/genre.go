package request

type CreateGenreRequest struct {
	GenreName string `json:"genreName" validate:"required"`
}
