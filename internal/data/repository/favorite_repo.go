package repository

import (
	"context"
	"fmt"

	"movie-catalog/internal/data/entity"
	"movie-catalog/pkg/database"

	"go.uber.org/zap"
)

type FavoriteRepository interface {
	// Create inserts the link without pre-checking the referenced rows; a
	// missing user or movie is reported by the foreign key constraint as
	// ErrForeignKeyViolation. One query instead of three.
	Create(ctx context.Context, favorite *entity.Favorite) error
	FindMoviesByUserID(ctx context.Context, userID int64) ([]*entity.Movie, error)
}

type favoriteRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewFavoriteRepository(db database.PgxIface, log *zap.Logger) FavoriteRepository {
	return &favoriteRepository{
		db:  db,
		log: log.With(zap.String("repository", "favorite")),
	}
}

func (r *favoriteRepository) Create(ctx context.Context, favorite *entity.Favorite) error {
	query := `INSERT INTO favorites (user_id, movie_id) VALUES ($1, $2)`

	_, err := r.db.Exec(ctx, query, favorite.UserID, favorite.MovieID)
	if err != nil {
		if isForeignKeyViolation(err) {
			return ErrForeignKeyViolation
		}
		if isUniqueViolation(err) {
			return ErrDuplicateFavorite
		}
		r.log.Error("Failed to create favorite",
			zap.Error(err),
			zap.Int64("user_id", favorite.UserID),
			zap.Int64("movie_id", favorite.MovieID),
		)
		return fmt.Errorf("create favorite: %w", err)
	}

	return nil
}

func (r *favoriteRepository) FindMoviesByUserID(ctx context.Context, userID int64) ([]*entity.Movie, error) {
	query := `
		SELECT m.movie_id, m.title, m.year, m.genre_name, m.director_name
		FROM movies m
		INNER JOIN favorites f ON f.movie_id = m.movie_id
		WHERE f.user_id = $1
		ORDER BY m.movie_id
	`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		r.log.Error("Failed to find favorite movies",
			zap.Error(err),
			zap.Int64("user_id", userID),
		)
		return nil, fmt.Errorf("find favorite movies: %w", err)
	}
	defer rows.Close()

	return scanMovies(rows)
}
