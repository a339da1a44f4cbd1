package usecase

import (
	"context"
	"testing"

	"movie-catalog/internal/data/repository"
	"movie-catalog/internal/dto/request"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestCreateGenre_Success(t *testing.T) {
	repo, f := newTestRepository()
	var gotName string
	f.genre.createFn = func(ctx context.Context, name string) error {
		gotName = name
		return nil
	}
	svc := NewGenreService(repo.Genre, zap.NewNop())

	genre, err := svc.CreateGenre(context.Background(), &request.CreateGenreRequest{
		GenreName: "Horror",
	})

	require.NoError(t, err)
	assert.Equal(t, "Horror", genre.GenreName)
	assert.Equal(t, "Horror", gotName)
}

func TestCreateGenre_AlreadyExists(t *testing.T) {
	repo, f := newTestRepository()
	f.genre.createFn = func(ctx context.Context, name string) error {
		return repository.ErrDuplicateGenre
	}
	svc := NewGenreService(repo.Genre, zap.NewNop())

	genre, err := svc.CreateGenre(context.Background(), &request.CreateGenreRequest{
		GenreName: "Horror",
	})

	assert.Nil(t, genre)
	assert.ErrorIs(t, err, repository.ErrDuplicateGenre)
}

func TestCreateGenre_MissingName(t *testing.T) {
	repo, f := newTestRepository()
	svc := NewGenreService(repo.Genre, zap.NewNop())

	genre, err := svc.CreateGenre(context.Background(), &request.CreateGenreRequest{})

	assert.Nil(t, genre)
	var verr *ValidationError
	assert.ErrorAs(t, err, &verr)
	assert.Zero(t, f.genre.createCalls)
}
