package usecase

import (
	"context"
	"fmt"

	"movie-catalog/internal/data/entity"
	"movie-catalog/internal/data/repository"
	"movie-catalog/internal/dto/request"
	"movie-catalog/internal/dto/response"

	"go.uber.org/zap"
)

type FavoriteService interface {
	// AddFavorite inserts without pre-checking the referenced rows; a
	// missing user or movie surfaces as repository.ErrForeignKeyViolation.
	AddFavorite(ctx context.Context, req *request.CreateFavoriteRequest) (*response.FavoriteResponse, error)
	// GetFavoritesByUsername returns the user's favorite movies, an empty
	// list when there are none.
	GetFavoritesByUsername(ctx context.Context, username string) ([]response.MovieResponse, error)
}

type favoriteService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewFavoriteService(repo *repository.Repository, log *zap.Logger) FavoriteService {
	return &favoriteService{
		repo: repo,
		log:  log.With(zap.String("service", "favorite")),
	}
}

func (s *favoriteService) AddFavorite(ctx context.Context, req *request.CreateFavoriteRequest) (*response.FavoriteResponse, error) {
	if verr := validateRequest(req); verr != nil {
		s.log.Warn("Add favorite validation failed", zap.Any("errors", verr.Fields))
		return nil, verr
	}

	favorite := &entity.Favorite{
		UserID:  req.UserID,
		MovieID: req.MovieID,
	}

	if err := s.repo.Favorite.Create(ctx, favorite); err != nil {
		switch err {
		case repository.ErrForeignKeyViolation, repository.ErrDuplicateFavorite:
			s.log.Warn("Favorite rejected",
				zap.Error(err),
				zap.Int64("user_id", req.UserID),
				zap.Int64("movie_id", req.MovieID),
			)
		default:
			s.log.Error("Failed to add favorite",
				zap.Error(err),
				zap.Int64("user_id", req.UserID),
				zap.Int64("movie_id", req.MovieID),
			)
		}
		return nil, fmt.Errorf("add favorite: %w", err)
	}

	s.log.Info("Favorite added",
		zap.Int64("user_id", favorite.UserID),
		zap.Int64("movie_id", favorite.MovieID),
	)

	resp := response.FavoriteToResponse(favorite)
	return &resp, nil
}

func (s *favoriteService) GetFavoritesByUsername(ctx context.Context, username string) ([]response.MovieResponse, error) {
	user, err := s.repo.User.FindByUsername(ctx, username)
	if err != nil {
		s.log.Error("Failed to resolve username",
			zap.Error(err),
			zap.String("username", username),
		)
		return nil, fmt.Errorf("resolve username: %w", err)
	}
	if user == nil {
		return nil, fmt.Errorf("user %q: %w", username, ErrUserNotFound)
	}

	movies, err := s.repo.Favorite.FindMoviesByUserID(ctx, user.ID)
	if err != nil {
		s.log.Error("Failed to get favorite movies",
			zap.Error(err),
			zap.Int64("user_id", user.ID),
		)
		return nil, fmt.Errorf("get favorite movies: %w", err)
	}

	s.log.Debug("Favorites retrieved",
		zap.String("username", username),
		zap.Int("count", len(movies)),
	)

	// Zero favorites is a valid result, not an error
	return response.MoviesToResponse(movies), nil
}
