package adaptor

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"movie-catalog/internal/dto/request"
	"movie-catalog/internal/dto/response"
	"movie-catalog/internal/usecase"
	"movie-catalog/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type MovieHandler struct {
	service usecase.MovieService
	log     *zap.Logger
}

func NewMovieHandler(service usecase.MovieService, log *zap.Logger) *MovieHandler {
	return &MovieHandler{
		service: service,
		log:     log.With(zap.String("handler", "movie")),
	}
}

// GetMovies handles GET /movies?keyword=
func (h *MovieHandler) GetMovies(w http.ResponseWriter, r *http.Request) {
	keyword := ""
	if raw, ok := r.URL.Query()["keyword"]; ok {
		// A present-but-blank keyword is a validation error, not "no filter"
		keyword = strings.TrimSpace(raw[0])
		if len(keyword) < 3 {
			utils.ResponseBadRequest(w, "Keyword must be at least 3 characters")
			return
		}
	}

	movies, err := h.service.SearchMovies(r.Context(), keyword)
	if err != nil {
		handleServiceError(w, h.log, err, "get movies")
		return
	}

	utils.WriteJSON(w, http.StatusOK, response.MovieListResponse{Movies: movies})
}

// GetMovieByID handles GET /movies/{id}
func (h *MovieHandler) GetMovieByID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		utils.ResponseBadRequest(w, "Movie ID must be an integer")
		return
	}

	movie, err := h.service.GetMovieByID(r.Context(), id)
	if err != nil {
		handleServiceError(w, h.log, err, "get movie by ID")
		return
	}

	// A single row still ships wrapped in a collection
	utils.WriteJSON(w, http.StatusOK, response.MovieListResponse{
		Movies: []response.MovieResponse{*movie},
	})
}

// CreateMovie handles POST /movies
func (h *MovieHandler) CreateMovie(w http.ResponseWriter, r *http.Request) {
	var req request.CreateMovieRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body")
		return
	}

	movie, err := h.service.CreateMovie(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create movie")
		return
	}

	utils.WriteJSON(w, http.StatusCreated, response.MovieMessageResponse{
		Message: "Movie added successfully",
		Movie:   *movie,
	})
}

// DeleteMovie handles DELETE /movies/{id}
func (h *MovieHandler) DeleteMovie(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		utils.ResponseBadRequest(w, "Movie ID must be an integer")
		return
	}

	movie, err := h.service.DeleteMovie(r.Context(), id)
	if err != nil {
		handleServiceError(w, h.log, err, "delete movie")
		return
	}

	utils.WriteJSON(w, http.StatusOK, response.MovieMessageResponse{
		Message: "Movie deleted successfully",
		Movie:   *movie,
	})
}
