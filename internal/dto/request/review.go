package request

// Rating is a pointer so an explicit 0 passes the required check.
type CreateReviewRequest struct {
	MovieID    int64   `json:"movieId" validate:"required"`
	UserID     *int64  `json:"userId,omitempty"`
	Rating     *int    `json:"rating" validate:"required,min=0,max=10"`
	ReviewText *string `json:"reviewText,omitempty"`
}
