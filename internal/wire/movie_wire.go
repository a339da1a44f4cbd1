package wire

import (
	"movie-catalog/internal/adaptor"
	"movie-catalog/pkg/middleware"

	"github.com/go-chi/chi/v5"
)

func wireMovie(r chi.Router, movieHandler *adaptor.MovieHandler) {
	r.Get("/movies", movieHandler.GetMovies)
	r.Get("/movies/{id}", movieHandler.GetMovieByID)
	r.Delete("/movies/{id}", movieHandler.DeleteMovie)

	// Mutations must declare a JSON body
	r.With(middleware.RequireJSON()).Post("/movies", movieHandler.CreateMovie)
}
