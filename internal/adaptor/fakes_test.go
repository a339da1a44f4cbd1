package adaptor

import (
	"context"

	"movie-catalog/internal/dto/request"
	"movie-catalog/internal/dto/response"
)

// Hand-written fakes for the service interfaces.

type fakeMovieService struct {
	searchFn func(ctx context.Context, keyword string) ([]response.MovieResponse, error)
	getFn    func(ctx context.Context, id int64) (*response.MovieResponse, error)
	createFn func(ctx context.Context, req *request.CreateMovieRequest) (*response.MovieResponse, error)
	deleteFn func(ctx context.Context, id int64) (*response.MovieResponse, error)

	searchCalls int
}

func (f *fakeMovieService) SearchMovies(ctx context.Context, keyword string) ([]response.MovieResponse, error) {
	f.searchCalls++
	if f.searchFn != nil {
		return f.searchFn(ctx, keyword)
	}
	return []response.MovieResponse{}, nil
}

func (f *fakeMovieService) GetMovieByID(ctx context.Context, id int64) (*response.MovieResponse, error) {
	if f.getFn != nil {
		return f.getFn(ctx, id)
	}
	return &response.MovieResponse{ID: id}, nil
}

func (f *fakeMovieService) CreateMovie(ctx context.Context, req *request.CreateMovieRequest) (*response.MovieResponse, error) {
	if f.createFn != nil {
		return f.createFn(ctx, req)
	}
	return &response.MovieResponse{ID: 1, Title: req.Title, Year: req.Year, Genre: req.Genre, Director: req.Director}, nil
}

func (f *fakeMovieService) DeleteMovie(ctx context.Context, id int64) (*response.MovieResponse, error) {
	if f.deleteFn != nil {
		return f.deleteFn(ctx, id)
	}
	return &response.MovieResponse{ID: id}, nil
}

type fakeUserService struct {
	registerFn func(ctx context.Context, req *request.RegisterUserRequest) (*response.UserResponse, error)
}

func (f *fakeUserService) Register(ctx context.Context, req *request.RegisterUserRequest) (*response.UserResponse, error) {
	if f.registerFn != nil {
		return f.registerFn(ctx, req)
	}
	return &response.UserResponse{ID: 1, Username: req.Username}, nil
}

type fakeFavoriteService struct {
	addFn func(ctx context.Context, req *request.CreateFavoriteRequest) (*response.FavoriteResponse, error)
	getFn func(ctx context.Context, username string) ([]response.MovieResponse, error)

	getCalls int
}

func (f *fakeFavoriteService) AddFavorite(ctx context.Context, req *request.CreateFavoriteRequest) (*response.FavoriteResponse, error) {
	if f.addFn != nil {
		return f.addFn(ctx, req)
	}
	return &response.FavoriteResponse{UserID: req.UserID, MovieID: req.MovieID}, nil
}

func (f *fakeFavoriteService) GetFavoritesByUsername(ctx context.Context, username string) ([]response.MovieResponse, error) {
	f.getCalls++
	if f.getFn != nil {
		return f.getFn(ctx, username)
	}
	return []response.MovieResponse{}, nil
}

type fakeGenreService struct {
	createFn func(ctx context.Context, req *request.CreateGenreRequest) (*response.GenreResponse, error)
}

func (f *fakeGenreService) CreateGenre(ctx context.Context, req *request.CreateGenreRequest) (*response.GenreResponse, error) {
	if f.createFn != nil {
		return f.createFn(ctx, req)
	}
	return &response.GenreResponse{GenreName: req.GenreName}, nil
}

type fakeReviewService struct {
	createFn func(ctx context.Context, req *request.CreateReviewRequest) (*response.ReviewResponse, error)
}

func (f *fakeReviewService) CreateReview(ctx context.Context, req *request.CreateReviewRequest) (*response.ReviewResponse, error) {
	if f.createFn != nil {
		return f.createFn(ctx, req)
	}
	resp := &response.ReviewResponse{ID: 1, MovieID: req.MovieID, UserID: req.UserID, ReviewText: req.ReviewText}
	if req.Rating != nil {
		resp.Rating = *req.Rating
	}
	return resp, nil
}
