package usecase

import (
	"context"

	"movie-catalog/internal/data/entity"
	"movie-catalog/internal/data/repository"
)

// Hand-written fakes for the repository interfaces. Unset functions return
// zero values; call counters let tests assert that validation short-circuits
// before any repository access.

type fakeMovieRepo struct {
	createFn   func(ctx context.Context, movie *entity.Movie) error
	findByIDFn func(ctx context.Context, id int64) (*entity.Movie, error)
	findAllFn  func(ctx context.Context) ([]*entity.Movie, error)
	searchFn   func(ctx context.Context, keyword string) ([]*entity.Movie, error)
	deleteFn   func(ctx context.Context, id int64) (*entity.Movie, error)

	createCalls int
	findCalls   int
	searchCalls int
	deleteCalls int
}

func (f *fakeMovieRepo) Create(ctx context.Context, movie *entity.Movie) error {
	f.createCalls++
	if f.createFn != nil {
		return f.createFn(ctx, movie)
	}
	return nil
}

func (f *fakeMovieRepo) FindByID(ctx context.Context, id int64) (*entity.Movie, error) {
	f.findCalls++
	if f.findByIDFn != nil {
		return f.findByIDFn(ctx, id)
	}
	return nil, nil
}

func (f *fakeMovieRepo) FindAll(ctx context.Context) ([]*entity.Movie, error) {
	f.searchCalls++
	if f.findAllFn != nil {
		return f.findAllFn(ctx)
	}
	return nil, nil
}

func (f *fakeMovieRepo) SearchByKeyword(ctx context.Context, keyword string) ([]*entity.Movie, error) {
	f.searchCalls++
	if f.searchFn != nil {
		return f.searchFn(ctx, keyword)
	}
	return nil, nil
}

func (f *fakeMovieRepo) Delete(ctx context.Context, id int64) (*entity.Movie, error) {
	f.deleteCalls++
	if f.deleteFn != nil {
		return f.deleteFn(ctx, id)
	}
	return nil, nil
}

type fakeGenreRepo struct {
	createFn func(ctx context.Context, name string) error

	createCalls int
}

func (f *fakeGenreRepo) Create(ctx context.Context, name string) error {
	f.createCalls++
	if f.createFn != nil {
		return f.createFn(ctx, name)
	}
	return nil
}

type fakeUserRepo struct {
	createFn         func(ctx context.Context, user *entity.User) error
	findByIDFn       func(ctx context.Context, id int64) (*entity.User, error)
	findByUsernameFn func(ctx context.Context, username string) (*entity.User, error)

	createCalls int
	findCalls   int
}

func (f *fakeUserRepo) Create(ctx context.Context, user *entity.User) error {
	f.createCalls++
	if f.createFn != nil {
		return f.createFn(ctx, user)
	}
	return nil
}

func (f *fakeUserRepo) FindByID(ctx context.Context, id int64) (*entity.User, error) {
	f.findCalls++
	if f.findByIDFn != nil {
		return f.findByIDFn(ctx, id)
	}
	return nil, nil
}

func (f *fakeUserRepo) FindByUsername(ctx context.Context, username string) (*entity.User, error) {
	f.findCalls++
	if f.findByUsernameFn != nil {
		return f.findByUsernameFn(ctx, username)
	}
	return nil, nil
}

type fakeReviewRepo struct {
	createFn func(ctx context.Context, review *entity.Review) error

	createCalls int
}

func (f *fakeReviewRepo) Create(ctx context.Context, review *entity.Review) error {
	f.createCalls++
	if f.createFn != nil {
		return f.createFn(ctx, review)
	}
	return nil
}

type fakeFavoriteRepo struct {
	createFn       func(ctx context.Context, favorite *entity.Favorite) error
	findByUserIDFn func(ctx context.Context, userID int64) ([]*entity.Movie, error)

	createCalls int
}

func (f *fakeFavoriteRepo) Create(ctx context.Context, favorite *entity.Favorite) error {
	f.createCalls++
	if f.createFn != nil {
		return f.createFn(ctx, favorite)
	}
	return nil
}

func (f *fakeFavoriteRepo) FindMoviesByUserID(ctx context.Context, userID int64) ([]*entity.Movie, error) {
	if f.findByUserIDFn != nil {
		return f.findByUserIDFn(ctx, userID)
	}
	return nil, nil
}

type fakes struct {
	movie    *fakeMovieRepo
	genre    *fakeGenreRepo
	user     *fakeUserRepo
	review   *fakeReviewRepo
	favorite *fakeFavoriteRepo
}

func newTestRepository() (*repository.Repository, *fakes) {
	f := &fakes{
		movie:    &fakeMovieRepo{},
		genre:    &fakeGenreRepo{},
		user:     &fakeUserRepo{},
		review:   &fakeReviewRepo{},
		favorite: &fakeFavoriteRepo{},
	}
	repo := &repository.Repository{
		Movie:    f.movie,
		Genre:    f.genre,
		User:     f.user,
		Review:   f.review,
		Favorite: f.favorite,
	}
	return repo, f
}
