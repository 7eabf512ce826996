package response

import (
	"errors"
	"net/http"

	"github.com/burningpaper/workfromhome/internal/domain/checkin"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, checkin.ErrInvalidPayload):
		BadRequest(w, err.Error())
	default:
		// Storage failures are echoed back; this is an internal ops tool,
		// not a hardened public service.
		InternalServerError(w, err.Error())
	}
}
