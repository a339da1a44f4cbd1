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

type MovieService interface {
	// SearchMovies returns all movies for an empty keyword, otherwise rows
	// whose title, genre or director contain the keyword, case-insensitive.
	SearchMovies(ctx context.Context, keyword string) ([]response.MovieResponse, error)
	GetMovieByID(ctx context.Context, id int64) (*response.MovieResponse, error)
	CreateMovie(ctx context.Context, req *request.CreateMovieRequest) (*response.MovieResponse, error)
	DeleteMovie(ctx context.Context, id int64) (*response.MovieResponse, error)
}

type movieService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewMovieService(repo *repository.Repository, log *zap.Logger) MovieService {
	return &movieService{
		repo: repo,
		log:  log.With(zap.String("service", "movie")),
	}
}

func (s *movieService) SearchMovies(ctx context.Context, keyword string) ([]response.MovieResponse, error) {
	var (
		movies []*entity.Movie
		err    error
	)

	if keyword == "" {
		movies, err = s.repo.Movie.FindAll(ctx)
	} else {
		movies, err = s.repo.Movie.SearchByKeyword(ctx, keyword)
	}
	if err != nil {
		s.log.Error("Failed to search movies",
			zap.Error(err),
			zap.String("keyword", keyword),
		)
		return nil, fmt.Errorf("search movies: %w", err)
	}

	s.log.Debug("Movies retrieved",
		zap.Int("count", len(movies)),
		zap.String("keyword", keyword),
	)

	return response.MoviesToResponse(movies), nil
}

func (s *movieService) GetMovieByID(ctx context.Context, id int64) (*response.MovieResponse, error) {
	movie, err := s.repo.Movie.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to get movie by ID",
			zap.Error(err),
			zap.Int64("movie_id", id),
		)
		return nil, fmt.Errorf("get movie by id: %w", err)
	}
	if movie == nil {
		return nil, fmt.Errorf("movie %d: %w", id, ErrMovieNotFound)
	}

	resp := response.MovieToResponse(movie)
	return &resp, nil
}

func (s *movieService) CreateMovie(ctx context.Context, req *request.CreateMovieRequest) (*response.MovieResponse, error) {
	if verr := validateRequest(req); verr != nil {
		s.log.Warn("Create movie validation failed", zap.Any("errors", verr.Fields))
		return nil, verr
	}

	movie := &entity.Movie{
		Title:        req.Title,
		Year:         req.Year,
		GenreName:    req.Genre,
		DirectorName: req.Director,
	}

	if err := s.repo.Movie.Create(ctx, movie); err != nil {
		if err == repository.ErrDuplicateMovie {
			s.log.Warn("Duplicate movie rejected",
				zap.String("title", req.Title),
				zap.Int("year", req.Year),
				zap.String("director", req.Director),
			)
			return nil, fmt.Errorf("create movie: %w", err)
		}
		s.log.Error("Failed to create movie",
			zap.Error(err),
			zap.String("title", req.Title),
		)
		return nil, fmt.Errorf("create movie: %w", err)
	}

	s.log.Info("Movie created",
		zap.Int64("movie_id", movie.ID),
		zap.String("title", movie.Title),
	)

	resp := response.MovieToResponse(movie)
	return &resp, nil
}

func (s *movieService) DeleteMovie(ctx context.Context, id int64) (*response.MovieResponse, error) {
	movie, err := s.repo.Movie.Delete(ctx, id)
	if err != nil {
		s.log.Error("Failed to delete movie",
			zap.Error(err),
			zap.Int64("movie_id", id),
		)
		return nil, fmt.Errorf("delete movie: %w", err)
	}
	if movie == nil {
		return nil, fmt.Errorf("movie %d: %w", id, ErrMovieNotFound)
	}

	s.log.Info("Movie deleted",
		zap.Int64("movie_id", id),
		zap.String("title", movie.Title),
	)

	resp := response.MovieToResponse(movie)
	return &resp, nil
}
