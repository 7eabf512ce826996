package http

import (
	"net/http"

	"github.com/burningpaper/workfromhome/internal/pkg/database"
	"github.com/burningpaper/workfromhome/internal/repository/postgresql"
)

type AdminHandler interface {
	InitDB(w http.ResponseWriter, r *http.Request)
}

type adminHandlerImpl struct {
	db *database.DB
}

func NewAdminHandler(db *database.DB) AdminHandler {
	return &adminHandlerImpl{db: db}
}

// InitDB handles GET /init-db. Schema init also runs at startup; this
// endpoint re-runs it on demand and is idempotent.
func (h *adminHandlerImpl) InitDB(w http.ResponseWriter, r *http.Request) {
	if err := postgresql.InitSchema(r.Context(), h.db); err != nil {
		http.Error(w, "Error initializing database: "+err.Error(), http.StatusInternalServerError)
		return
	}

	w.Write([]byte("Database initialized successfully"))
}
