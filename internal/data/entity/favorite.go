package entity

// Favorite links a user to a movie; the pair is the identity.
type Favorite struct {
	UserID  int64 `db:"user_id"`
	MovieID int64 `db:"movie_id"`
}
