package repository

import (
	"context"
	"fmt"

	"movie-catalog/pkg/database"

	"go.uber.org/zap"
)

type GenreRepository interface {
	// Create inserts a genre and fails with ErrDuplicateGenre if the name
	// is already taken.
	Create(ctx context.Context, name string) error
}

type genreRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewGenreRepository(db database.PgxIface, log *zap.Logger) GenreRepository {
	return &genreRepository{
		db:  db,
		log: log.With(zap.String("repository", "genre")),
	}
}

func (r *genreRepository) Create(ctx context.Context, name string) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO genres (genre_name) VALUES ($1)`, name)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicateGenre
		}
		r.log.Error("Failed to create genre",
			zap.Error(err),
			zap.String("genre", name),
		)
		return fmt.Errorf("create genre: %w", err)
	}

	return nil
}
