package adaptor

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"movie-catalog/internal/dto/request"
	"movie-catalog/internal/dto/response"
	"movie-catalog/internal/usecase"
	"movie-catalog/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newReviewRouter(svc usecase.ReviewService) *chi.Mux {
	h := NewReviewHandler(svc, zap.NewNop())
	r := chi.NewRouter()
	r.With(middleware.RequireJSON()).Post("/reviews", h.CreateReview)
	return r
}

func TestCreateReview_Created(t *testing.T) {
	r := newReviewRouter(&fakeReviewService{})

	body := `{"movieId":1,"userId":5,"rating":9,"reviewText":"Still terrifying."}`
	req := httptest.NewRequest(http.MethodPost, "/reviews", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.JSONEq(t,
		`{"message":"Review added successfully","review":{"id":1,"movieId":1,"userId":5,"rating":9,"reviewText":"Still terrifying."}}`,
		rec.Body.String())
}

func TestCreateReview_MovieNotFound(t *testing.T) {
	r := newReviewRouter(&fakeReviewService{
		createFn: func(ctx context.Context, req *request.CreateReviewRequest) (*response.ReviewResponse, error) {
			return nil, fmt.Errorf("movie %d: %w", req.MovieID, usecase.ErrMovieNotFound)
		},
	})

	body := `{"movieId":999,"rating":5}`
	req := httptest.NewRequest(http.MethodPost, "/reviews", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error":"Movie not found"}`, rec.Body.String())
}

func TestCreateReview_UnknownReviewer(t *testing.T) {
	r := newReviewRouter(&fakeReviewService{
		createFn: func(ctx context.Context, req *request.CreateReviewRequest) (*response.ReviewResponse, error) {
			return nil, fmt.Errorf("user %d: %w", *req.UserID, usecase.ErrUserNotFound)
		},
	})

	body := `{"movieId":1,"userId":99,"rating":5}`
	req := httptest.NewRequest(http.MethodPost, "/reviews", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error":"User not found"}`, rec.Body.String())
}
