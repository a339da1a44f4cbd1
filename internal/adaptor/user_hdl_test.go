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

func newUserRouter(svc usecase.UserService) *chi.Mux {
	h := NewUserHandler(svc, zap.NewNop())
	r := chi.NewRouter()
	r.With(middleware.RequireJSON()).Post("/users", h.Register)
	return r
}

func TestRegister_Created(t *testing.T) {
	r := newUserRouter(&fakeUserService{})

	body := `{"username":"ripley","password":"nostromo1979"}`
	req := httptest.NewRequest(http.MethodPost, "/users", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"username":"ripley"`)
	// Credential material never appears in the response
	assert.NotContains(t, rec.Body.String(), "password")
	assert.NotContains(t, rec.Body.String(), "hash")
}

func TestRegister_RequiresJSONContentType(t *testing.T) {
	r := newUserRouter(&fakeUserService{})

	req := httptest.NewRequest(http.MethodPost, "/users", strings.NewReader("username=ripley"))
	req.Header.Set("Content-Type", "text/plain")

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnsupportedMediaType, rec.Code)
}

func TestRegister_ValidationErrorsBody(t *testing.T) {
	svc := &fakeUserService{
		registerFn: func(ctx context.Context, req *request.RegisterUserRequest) (*response.UserResponse, error) {
			return nil, &usecase.ValidationError{Fields: map[string]string{
				"Username": "Minimum length is 3",
			}}
		},
	}
	r := newUserRouter(svc)

	body := `{"username":"ab","password":"nostromo1979"}`
	req := httptest.NewRequest(http.MethodPost, "/users", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"errors":{"Username":"Minimum length is 3"}}`, rec.Body.String())
}

func TestRegister_MalformedBody(t *testing.T) {
	r := newUserRouter(&fakeUserService{})

	req := httptest.NewRequest(http.MethodPost, "/users", strings.NewReader("{not json"))
	req.Header.Set("Content-Type", "application/json")

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRegister_InternalErrorIsGeneric(t *testing.T) {
	svc := &fakeUserService{
		registerFn: func(ctx context.Context, req *request.RegisterUserRequest) (*response.UserResponse, error) {
			return nil, fmt.Errorf("register user: connection reset by peer")
		},
	}
	r := newUserRouter(svc)

	body := `{"username":"ripley","password":"nostromo1979"}`
	req := httptest.NewRequest(http.MethodPost, "/users", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "connection reset")
}
