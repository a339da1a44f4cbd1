package usecase

import (
	"movie-catalog/internal/data/repository"

	"go.uber.org/zap"
)

type Service struct {
	Movie    MovieService
	Genre    GenreService
	User     UserService
	Review   ReviewService
	Favorite FavoriteService
}

func NewService(repo *repository.Repository, log *zap.Logger) *Service {
	return &Service{
		Movie:    NewMovieService(repo, log),
		Genre:    NewGenreService(repo.Genre, log),
		User:     NewUserService(repo.User, log),
		Review:   NewReviewService(repo, log),
		Favorite: NewFavoriteService(repo, log),
	}
}
