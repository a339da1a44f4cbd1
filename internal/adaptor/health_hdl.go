package adaptor

import (
	"fmt"
	"net/http"
	"strings"

	"movie-catalog/internal/dto/response"
	"movie-catalog/pkg/database"
	"movie-catalog/pkg/utils"

	"go.uber.org/zap"
)

type HealthHandler struct {
	db     database.PgxIface
	config *utils.Config
	log    *zap.Logger
}

func NewHealthHandler(db database.PgxIface, config *utils.Config, log *zap.Logger) *HealthHandler {
	return &HealthHandler{
		db:     db,
		config: config,
		log:    log.With(zap.String("handler", "health")),
	}
}

// Root handles GET / and reports database connectivity. Browsers get a small
// HTML fragment, everything else gets JSON.
func (h *HealthHandler) Root(w http.ResponseWriter, r *http.Request) {
	var dbStatus string
	if err := h.db.Ping(r.Context()); err != nil {
		h.log.Error("Database ping failed", zap.Error(err))
		dbStatus = "Database unavailable"
	} else {
		dbStatus = fmt.Sprintf("Connected to %s on port %s",
			h.config.Database.Name, h.config.Database.Port)
	}

	if strings.Contains(r.Header.Get("Accept"), "text/html") {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		fmt.Fprintf(w, "<p>Server listening on port %s</p>\n<p>Database status: %s</p>\n",
			h.config.App.Port, dbStatus)
		return
	}

	utils.WriteJSON(w, http.StatusOK, response.HealthResponse{
		Message:        fmt.Sprintf("Server is running on port %s", h.config.App.Port),
		DatabaseStatus: dbStatus,
	})
}
