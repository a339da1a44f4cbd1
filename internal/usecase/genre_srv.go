package usecase

import (
	"context"
	"fmt"

	"movie-catalog/internal/data/repository"
	"movie-catalog/internal/dto/request"
	"movie-catalog/internal/dto/response"

	"go.uber.org/zap"
)

type GenreService interface {
	CreateGenre(ctx context.Context, req *request.CreateGenreRequest) (*response.GenreResponse, error)
}

type genreService struct {
	repo repository.GenreRepository
	log  *zap.Logger
}

func NewGenreService(repo repository.GenreRepository, log *zap.Logger) GenreService {
	return &genreService{
		repo: repo,
		log:  log.With(zap.String("service", "genre")),
	}
}

func (s *genreService) CreateGenre(ctx context.Context, req *request.CreateGenreRequest) (*response.GenreResponse, error) {
	if verr := validateRequest(req); verr != nil {
		s.log.Warn("Create genre validation failed", zap.Any("errors", verr.Fields))
		return nil, verr
	}

	if err := s.repo.Create(ctx, req.GenreName); err != nil {
		if err != repository.ErrDuplicateGenre {
			s.log.Error("Failed to create genre",
				zap.Error(err),
				zap.String("genre", req.GenreName),
			)
		}
		return nil, fmt.Errorf("create genre: %w", err)
	}

	s.log.Info("Genre created", zap.String("genre", req.GenreName))

	return &response.GenreResponse{GenreName: req.GenreName}, nil
}
