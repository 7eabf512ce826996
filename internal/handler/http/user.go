package http

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/burningpaper/workfromhome/internal/domain/user"
	"github.com/burningpaper/workfromhome/internal/handler/http/response"
)

type UserHandler interface {
	Import(w http.ResponseWriter, r *http.Request)
	Clear(w http.ResponseWriter, r *http.Request)
}

type userHandlerImpl struct {
	importer user.Importer
}

func NewUserHandler(importer user.Importer) UserHandler {
	return &userHandlerImpl{importer: importer}
}

// Import handles POST /api/import-users. The body must be a JSON array of
// user objects with loosely named fields.
func (h *userHandlerImpl) Import(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		response.BadRequest(w, "Failed to read request body")
		return
	}

	var records []map[string]any
	if err := json.Unmarshal(body, &records); err != nil {
		response.BadRequest(w, "Request body must be a JSON array of user objects")
		return
	}

	imported, err := h.importer.Import(r.Context(), records)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, map[string]int{"imported": imported})
}

// Clear handles POST /api/clear-users.
func (h *userHandlerImpl) Clear(w http.ResponseWriter, r *http.Request) {
	if err := h.importer.Clear(r.Context()); err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, map[string]bool{"cleared": true})
}
