package repository

import (
	"context"
	"fmt"

	"movie-catalog/internal/data/entity"
	"movie-catalog/pkg/database"

	"go.uber.org/zap"
)

type ReviewRepository interface {
	// Create inserts a review. On success review.ID holds the generated id.
	Create(ctx context.Context, review *entity.Review) error
}

type reviewRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewReviewRepository(db database.PgxIface, log *zap.Logger) ReviewRepository {
	return &reviewRepository{
		db:  db,
		log: log.With(zap.String("repository", "review")),
	}
}

func (r *reviewRepository) Create(ctx context.Context, review *entity.Review) error {
	query := `
		INSERT INTO reviews (movie_id, user_id, rating, review_text)
		VALUES ($1, $2, $3, $4)
		RETURNING review_id
	`

	err := r.db.QueryRow(ctx, query,
		review.MovieID,
		review.UserID,
		review.Rating,
		review.ReviewText,
	).Scan(&review.ID)

	if err != nil {
		if isForeignKeyViolation(err) {
			return ErrForeignKeyViolation
		}
		r.log.Error("Failed to create review",
			zap.Error(err),
			zap.Int64("movie_id", review.MovieID),
		)
		return fmt.Errorf("create review: %w", err)
	}

	return nil
}
