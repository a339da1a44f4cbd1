package adaptor

import (
	"errors"
	"net/http"

	"movie-catalog/internal/data/repository"
	"movie-catalog/internal/usecase"
	"movie-catalog/pkg/database"
	"movie-catalog/pkg/utils"

	"go.uber.org/zap"
)

type Handler struct {
	Health   *HealthHandler
	Movie    *MovieHandler
	Genre    *GenreHandler
	User     *UserHandler
	Review   *ReviewHandler
	Favorite *FavoriteHandler
}

func NewHandler(service *usecase.Service, db database.PgxIface, config *utils.Config, log *zap.Logger) *Handler {
	return &Handler{
		Health:   NewHealthHandler(db, config, log),
		Movie:    NewMovieHandler(service.Movie, log),
		Genre:    NewGenreHandler(service.Genre, log),
		User:     NewUserHandler(service.User, log),
		Review:   NewReviewHandler(service.Review, log),
		Favorite: NewFavoriteHandler(service.Favorite, log),
	}
}

// handleServiceError maps a service error to the HTTP taxonomy. Unknown
// errors become a generic 500, the detail stays in the server log.
func handleServiceError(w http.ResponseWriter, log *zap.Logger, err error, operation string) {
	var verr *usecase.ValidationError

	switch {
	case errors.As(err, &verr):
		log.Warn(operation+" validation failed", zap.Any("errors", verr.Fields))
		utils.ResponseValidationErrors(w, verr.Fields)

	case errors.Is(err, usecase.ErrMovieNotFound):
		log.Warn(operation+" failed - movie not found", zap.Error(err))
		utils.ResponseNotFound(w, "Movie not found")

	case errors.Is(err, usecase.ErrUserNotFound):
		log.Warn(operation+" failed - user not found", zap.Error(err))
		utils.ResponseNotFound(w, "User not found")

	case errors.Is(err, repository.ErrDuplicateMovie):
		log.Warn(operation+" failed - duplicate movie", zap.Error(err))
		utils.ResponseConflict(w, "Movie already exists")

	case errors.Is(err, repository.ErrDuplicateGenre):
		log.Warn(operation+" failed - duplicate genre", zap.Error(err))
		utils.ResponseConflict(w, "Genre already exists")

	case errors.Is(err, repository.ErrDuplicateUsername):
		log.Warn(operation+" failed - duplicate username", zap.Error(err))
		utils.ResponseConflict(w, "Username already taken")

	case errors.Is(err, repository.ErrDuplicateFavorite):
		log.Warn(operation+" failed - duplicate favorite", zap.Error(err))
		utils.ResponseConflict(w, "Favorite already exists")

	case errors.Is(err, repository.ErrForeignKeyViolation):
		log.Warn(operation+" failed - missing reference", zap.Error(err))
		utils.ResponseBadRequest(w, "Referenced user or movie does not exist")

	default:
		log.Error("Failed to "+operation, zap.Error(err))
		utils.ResponseInternalError(w)
	}
}
