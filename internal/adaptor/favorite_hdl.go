package adaptor

import (
	"encoding/json"
	"net/http"
	"strings"

	"movie-catalog/internal/dto/request"
	"movie-catalog/internal/dto/response"
	"movie-catalog/internal/usecase"
	"movie-catalog/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type FavoriteHandler struct {
	service usecase.FavoriteService
	log     *zap.Logger
}

func NewFavoriteHandler(service usecase.FavoriteService, log *zap.Logger) *FavoriteHandler {
	return &FavoriteHandler{
		service: service,
		log:     log.With(zap.String("handler", "favorite")),
	}
}

// AddFavorite handles POST /favorites
func (h *FavoriteHandler) AddFavorite(w http.ResponseWriter, r *http.Request) {
	var req request.CreateFavoriteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body")
		return
	}

	favorite, err := h.service.AddFavorite(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "add favorite")
		return
	}

	utils.WriteJSON(w, http.StatusCreated, response.FavoriteMessageResponse{
		Message:  "Favorite added successfully",
		Favorite: *favorite,
	})
}

// GetFavoritesByUsername handles GET /favorites/{username}
func (h *FavoriteHandler) GetFavoritesByUsername(w http.ResponseWriter, r *http.Request) {
	username := strings.TrimSpace(chi.URLParam(r, "username"))
	if len(username) < 3 || !utils.ValidUsername(username) {
		utils.ResponseBadRequest(w, "Invalid username")
		return
	}

	movies, err := h.service.GetFavoritesByUsername(r.Context(), username)
	if err != nil {
		handleServiceError(w, h.log, err, "get favorites")
		return
	}

	// Bare array, empty for a user with no favorites
	utils.WriteJSON(w, http.StatusOK, movies)
}
