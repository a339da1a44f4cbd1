package response

import (
	"movie-catalog/internal/data/entity"
)

type ReviewResponse struct {
	ID         int64   `json:"id"`
	MovieID    int64   `json:"movieId"`
	UserID     *int64  `json:"userId,omitempty"`
	Rating     int     `json:"rating"`
	ReviewText *string `json:"reviewText,omitempty"`
}

type ReviewMessageResponse struct {
	Message string         `json:"message"`
	Review  ReviewResponse `json:"review"`
}

func ReviewToResponse(review *entity.Review) ReviewResponse {
	return ReviewResponse{
		ID:         review.ID,
		MovieID:    review.MovieID,
		UserID:     review.UserID,
		Rating:     review.Rating,
		ReviewText: review.ReviewText,
	}
}
