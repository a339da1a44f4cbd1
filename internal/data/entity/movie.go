package entity

type Movie struct {
	ID           int64  `db:"movie_id"`
	Title        string `db:"title"`
	Year         int    `db:"year"`
	GenreName    string `db:"genre_name"`
	DirectorName string `db:"director_name"`
}
