package repository

import (
	"context"
	"fmt"

	"movie-catalog/internal/data/entity"
	"movie-catalog/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type MovieRepository interface {
	// Create resolves the genre and director, rejects duplicates on
	// (title, year, director_name) and inserts the movie, all inside one
	// transaction. On success movie.ID holds the generated id.
	Create(ctx context.Context, movie *entity.Movie) error
	FindByID(ctx context.Context, id int64) (*entity.Movie, error)
	FindAll(ctx context.Context) ([]*entity.Movie, error)
	SearchByKeyword(ctx context.Context, keyword string) ([]*entity.Movie, error)
	// Delete removes the movie and returns the deleted row, or (nil, nil)
	// when no such movie exists.
	Delete(ctx context.Context, id int64) (*entity.Movie, error)
}

type movieRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewMovieRepository(db database.PgxIface, log *zap.Logger) MovieRepository {
	return &movieRepository{
		db:  db,
		log: log.With(zap.String("repository", "movie")),
	}
}

func (r *movieRepository) Create(ctx context.Context, movie *entity.Movie) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		r.log.Error("Failed to begin transaction", zap.Error(err))
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	if err := findOrCreateGenre(ctx, tx, movie.GenreName); err != nil {
		r.log.Error("Failed to resolve genre",
			zap.Error(err),
			zap.String("genre", movie.GenreName),
		)
		return fmt.Errorf("resolve genre: %w", err)
	}

	if err := findOrCreateDirector(ctx, tx, movie.DirectorName); err != nil {
		r.log.Error("Failed to resolve director",
			zap.Error(err),
			zap.String("director", movie.DirectorName),
		)
		return fmt.Errorf("resolve director: %w", err)
	}

	// Duplicate check on the natural key
	var existingID int64
	err = tx.QueryRow(ctx,
		`SELECT movie_id FROM movies WHERE title = $1 AND year = $2 AND director_name = $3`,
		movie.Title, movie.Year, movie.DirectorName,
	).Scan(&existingID)
	if err == nil {
		return ErrDuplicateMovie
	}
	if err != pgx.ErrNoRows {
		r.log.Error("Failed to check duplicate movie",
			zap.Error(err),
			zap.String("title", movie.Title),
		)
		return fmt.Errorf("check duplicate movie: %w", err)
	}

	err = tx.QueryRow(ctx,
		`INSERT INTO movies (title, year, genre_name, director_name)
		 VALUES ($1, $2, $3, $4)
		 RETURNING movie_id`,
		movie.Title, movie.Year, movie.GenreName, movie.DirectorName,
	).Scan(&movie.ID)
	if err != nil {
		// Concurrent insert of the same natural key loses the race here
		if isUniqueViolation(err) {
			return ErrDuplicateMovie
		}
		r.log.Error("Failed to insert movie",
			zap.Error(err),
			zap.String("title", movie.Title),
		)
		return fmt.Errorf("insert movie: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		r.log.Error("Failed to commit movie transaction", zap.Error(err))
		return fmt.Errorf("commit transaction: %w", err)
	}

	return nil
}

func (r *movieRepository) FindByID(ctx context.Context, id int64) (*entity.Movie, error) {
	query := `
		SELECT movie_id, title, year, genre_name, director_name
		FROM movies
		WHERE movie_id = $1
	`

	var movie entity.Movie
	err := r.db.QueryRow(ctx, query, id).Scan(
		&movie.ID,
		&movie.Title,
		&movie.Year,
		&movie.GenreName,
		&movie.DirectorName,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find movie by ID",
			zap.Error(err),
			zap.Int64("movie_id", id),
		)
		return nil, fmt.Errorf("find movie by id: %w", err)
	}

	return &movie, nil
}

func (r *movieRepository) FindAll(ctx context.Context) ([]*entity.Movie, error) {
	query := `
		SELECT movie_id, title, year, genre_name, director_name
		FROM movies
		ORDER BY movie_id
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to find all movies", zap.Error(err))
		return nil, fmt.Errorf("find all movies: %w", err)
	}
	defer rows.Close()

	return scanMovies(rows)
}

func (r *movieRepository) SearchByKeyword(ctx context.Context, keyword string) ([]*entity.Movie, error) {
	query := `
		SELECT movie_id, title, year, genre_name, director_name
		FROM movies
		WHERE title ILIKE $1 OR genre_name ILIKE $1 OR director_name ILIKE $1
		ORDER BY movie_id
	`

	pattern := "%" + keyword + "%"
	rows, err := r.db.Query(ctx, query, pattern)
	if err != nil {
		r.log.Error("Failed to search movies",
			zap.Error(err),
			zap.String("keyword", keyword),
		)
		return nil, fmt.Errorf("search movies: %w", err)
	}
	defer rows.Close()

	return scanMovies(rows)
}

func (r *movieRepository) Delete(ctx context.Context, id int64) (*entity.Movie, error) {
	query := `
		DELETE FROM movies
		WHERE movie_id = $1
		RETURNING movie_id, title, year, genre_name, director_name
	`

	var movie entity.Movie
	err := r.db.QueryRow(ctx, query, id).Scan(
		&movie.ID,
		&movie.Title,
		&movie.Year,
		&movie.GenreName,
		&movie.DirectorName,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to delete movie",
			zap.Error(err),
			zap.Int64("movie_id", id),
		)
		return nil, fmt.Errorf("delete movie: %w", err)
	}

	r.log.Info("Movie deleted", zap.Int64("movie_id", id))
	return &movie, nil
}

// findOrCreateGenre runs against either the pool or an open transaction. The
// conflict clause makes a concurrent create of the same name benign: both
// callers observe the row as existing.
func findOrCreateGenre(ctx context.Context, q database.Querier, name string) error {
	_, err := q.Exec(ctx,
		`INSERT INTO genres (genre_name) VALUES ($1) ON CONFLICT (genre_name) DO NOTHING`,
		name)
	if err != nil {
		return fmt.Errorf("find or create genre: %w", err)
	}
	return nil
}

// findOrCreateDirector mirrors findOrCreateGenre, see the note there.
func findOrCreateDirector(ctx context.Context, q database.Querier, name string) error {
	_, err := q.Exec(ctx,
		`INSERT INTO directors (director_name) VALUES ($1) ON CONFLICT (director_name) DO NOTHING`,
		name)
	if err != nil {
		return fmt.Errorf("find or create director: %w", err)
	}
	return nil
}

func scanMovies(rows pgx.Rows) ([]*entity.Movie, error) {
	var movies []*entity.Movie
	for rows.Next() {
		var movie entity.Movie
		err := rows.Scan(
			&movie.ID,
			&movie.Title,
			&movie.Year,
			&movie.GenreName,
			&movie.DirectorName,
		)
		if err != nil {
			return nil, fmt.Errorf("scan movie row: %w", err)
		}
		movies = append(movies, &movie)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate movie rows: %w", err)
	}

	return movies, nil
}
