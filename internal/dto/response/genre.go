package response

type GenreResponse struct {
	GenreName string `json:"genreName"`
}

type GenreMessageResponse struct {
	Message string        `json:"message"`
	Genre   GenreResponse `json:"genre"`
}

// HealthResponse is the JSON body of GET /.
type HealthResponse struct {
	Message        string `json:"message"`
	DatabaseStatus string `json:"databaseStatus"`
}
