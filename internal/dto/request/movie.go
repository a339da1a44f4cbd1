package request

type CreateMovieRequest struct {
	Title    string `json:"title" validate:"required"`
	Year     int    `json:"year" validate:"required"`
	Genre    string `json:"genre" validate:"required"`
	Director string `json:"director" validate:"required"`
}
