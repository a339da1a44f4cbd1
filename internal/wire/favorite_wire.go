package wire

import (
	"movie-catalog/internal/adaptor"
	"movie-catalog/pkg/middleware"

	"github.com/go-chi/chi/v5"
)

func wireFavorite(r chi.Router, favoriteHandler *adaptor.FavoriteHandler) {
	r.Get("/favorites/{username}", favoriteHandler.GetFavoritesByUsername)

	r.With(middleware.RequireJSON()).Post("/favorites", favoriteHandler.AddFavorite)
}
