package response

import (
	"movie-catalog/internal/data/entity"
)

type MovieResponse struct {
	ID       int64  `json:"id"`
	Title    string `json:"title"`
	Year     int    `json:"year"`
	Genre    string `json:"genre"`
	Director string `json:"director"`
}

// MovieListResponse wraps lookup results, single rows included.
type MovieListResponse struct {
	Movies []MovieResponse `json:"movies"`
}

// MovieMessageResponse is the body of create/delete operations.
type MovieMessageResponse struct {
	Message string        `json:"message"`
	Movie   MovieResponse `json:"movie"`
}

func MovieToResponse(movie *entity.Movie) MovieResponse {
	return MovieResponse{
		ID:       movie.ID,
		Title:    movie.Title,
		Year:     movie.Year,
		Genre:    movie.GenreName,
		Director: movie.DirectorName,
	}
}

func MoviesToResponse(movies []*entity.Movie) []MovieResponse {
	out := make([]MovieResponse, len(movies))
	for i, movie := range movies {
		out[i] = MovieToResponse(movie)
	}
	return out
}
