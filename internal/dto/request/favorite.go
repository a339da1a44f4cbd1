package request

type CreateFavoriteRequest struct {
	UserID  int64 `json:"userId" validate:"required"`
	MovieID int64 `json:"movieId" validate:"required"`
}
