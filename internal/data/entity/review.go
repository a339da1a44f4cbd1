package entity

type Review struct {
	ID         int64   `db:"review_id"`
	MovieID    int64   `db:"movie_id"`
	UserID     *int64  `db:"user_id"`
	Rating     int     `db:"rating"` // 0-10
	ReviewText *string `db:"review_text"`
}
