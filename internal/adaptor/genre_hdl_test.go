package adaptor

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"movie-catalog/internal/data/repository"
	"movie-catalog/internal/dto/request"
	"movie-catalog/internal/dto/response"
	"movie-catalog/internal/usecase"
	"movie-catalog/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newGenreRouter(svc usecase.GenreService) *chi.Mux {
	h := NewGenreHandler(svc, zap.NewNop())
	r := chi.NewRouter()
	r.With(middleware.RequireJSON()).Post("/genres", h.CreateGenre)
	return r
}

func TestCreateGenre_Created(t *testing.T) {
	r := newGenreRouter(&fakeGenreService{})

	body := `{"genreName":"Horror"}`
	req := httptest.NewRequest(http.MethodPost, "/genres", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.JSONEq(t,
		`{"message":"Genre added successfully","genre":{"genreName":"Horror"}}`,
		rec.Body.String())
}

func TestCreateGenre_DuplicateMapsToConflict(t *testing.T) {
	r := newGenreRouter(&fakeGenreService{
		createFn: func(ctx context.Context, req *request.CreateGenreRequest) (*response.GenreResponse, error) {
			return nil, fmt.Errorf("create genre: %w", repository.ErrDuplicateGenre)
		},
	})

	body := `{"genreName":"Horror"}`
	req := httptest.NewRequest(http.MethodPost, "/genres", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.JSONEq(t, `{"error":"Genre already exists"}`, rec.Body.String())
}
