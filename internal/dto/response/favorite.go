package response

import (
	"movie-catalog/internal/data/entity"
)

type FavoriteResponse struct {
	UserID  int64 `json:"userId"`
	MovieID int64 `json:"movieId"`
}

type FavoriteMessageResponse struct {
	Message  string           `json:"message"`
	Favorite FavoriteResponse `json:"favorite"`
}

func FavoriteToResponse(favorite *entity.Favorite) FavoriteResponse {
	return FavoriteResponse{
		UserID:  favorite.UserID,
		MovieID: favorite.MovieID,
	}
}
