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

type ReviewService interface {
	CreateReview(ctx context.Context, req *request.CreateReviewRequest) (*response.ReviewResponse, error)
}

type reviewService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewReviewService(repo *repository.Repository, log *zap.Logger) ReviewService {
	return &reviewService{
		repo: repo,
		log:  log.With(zap.String("service", "review")),
	}
}

func (s *reviewService) CreateReview(ctx context.Context, req *request.CreateReviewRequest) (*response.ReviewResponse, error) {
	if verr := validateRequest(req); verr != nil {
		s.log.Warn("Create review validation failed", zap.Any("errors", verr.Fields))
		return nil, verr
	}

	// The referenced movie must exist
	movie, err := s.repo.Movie.FindByID(ctx, req.MovieID)
	if err != nil {
		s.log.Error("Failed to check movie for review",
			zap.Error(err),
			zap.Int64("movie_id", req.MovieID),
		)
		return nil, fmt.Errorf("check movie: %w", err)
	}
	if movie == nil {
		return nil, fmt.Errorf("movie %d: %w", req.MovieID, ErrMovieNotFound)
	}

	// The reviewer is optional, but a given id must reference a user
	if req.UserID != nil {
		user, err := s.repo.User.FindByID(ctx, *req.UserID)
		if err != nil {
			s.log.Error("Failed to check user for review",
				zap.Error(err),
				zap.Int64("user_id", *req.UserID),
			)
			return nil, fmt.Errorf("check user: %w", err)
		}
		if user == nil {
			return nil, fmt.Errorf("user %d: %w", *req.UserID, ErrUserNotFound)
		}
	}

	review := &entity.Review{
		MovieID:    req.MovieID,
		UserID:     req.UserID,
		Rating:     *req.Rating,
		ReviewText: req.ReviewText,
	}

	if err := s.repo.Review.Create(ctx, review); err != nil {
		s.log.Error("Failed to create review",
			zap.Error(err),
			zap.Int64("movie_id", req.MovieID),
		)
		return nil, fmt.Errorf("create review: %w", err)
	}

	s.log.Info("Review created",
		zap.Int64("review_id", review.ID),
		zap.Int64("movie_id", review.MovieID),
		zap.Int("rating", review.Rating),
	)

	resp := response.ReviewToResponse(review)
	return &resp, nil
}
