package repository

import (
	"errors"

	"movie-catalog/pkg/database"

	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
)

// Errors surfaced by constraint violations. Services wrap these with %w so
// handlers can map them with errors.Is.
var (
	ErrDuplicateMovie      = errors.New("movie already exists")
	ErrDuplicateGenre      = errors.New("genre already exists")
	ErrDuplicateUsername   = errors.New("username already taken")
	ErrDuplicateFavorite   = errors.New("favorite already exists")
	ErrForeignKeyViolation = errors.New("referenced row does not exist")
)

// Postgres error codes, see https://www.postgresql.org/docs/current/errcodes-appendix.html
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation
}

func isForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgForeignKeyViolation
}

type Repository struct {
	Movie    MovieRepository
	Genre    GenreRepository
	User     UserRepository
	Review   ReviewRepository
	Favorite FavoriteRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		Movie:    NewMovieRepository(db, log),
		Genre:    NewGenreRepository(db, log),
		User:     NewUserRepository(db, log),
		Review:   NewReviewRepository(db, log),
		Favorite: NewFavoriteRepository(db, log),
	}
}
