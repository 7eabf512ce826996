package http

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/burningpaper/workfromhome/internal/domain/checkin"
)

type WebhookHandler interface {
	Receive(w http.ResponseWriter, r *http.Request)
}

type webhookHandlerImpl struct {
	ingest checkin.Ingest
}

func NewWebhookHandler(ingest checkin.Ingest) WebhookHandler {
	return &webhookHandlerImpl{ingest: ingest}
}

// Receive handles POST /webhook. The sender often omits or mislabels
// Content-Type, so the body is parsed as JSON regardless of the declared
// type, and all responses are plain text the sender's run history can show.
func (h *webhookHandlerImpl) Receive(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		http.Error(w, fmt.Sprintf("Failed to read request body: %v", err), http.StatusBadRequest)
		return
	}

	slog.Debug("received webhook", "content_type", r.Header.Get("Content-Type"), "body", string(body))

	if len(strings.TrimSpace(string(body))) == 0 {
		http.Error(w, "Request body is empty", http.StatusBadRequest)
		return
	}

	result, err := h.ingest.ProcessWebhook(r.Context(), body)
	if err != nil {
		if errors.Is(err, checkin.ErrInvalidPayload) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		http.Error(w, fmt.Sprintf("Error processing webhook: %v", err), http.StatusInternalServerError)
		return
	}

	if result.Processed > 0 {
		fmt.Fprintf(w, "Processed %d checkins", result.Processed)
		return
	}

	// Nothing matched a keyword; echo what was seen for operator debugging.
	fmt.Fprintf(w, "Request received but no checkins recorded. Server saw content: \"%s\". Keywords looked for: wfh, office.",
		strings.Join(result.Seen, " | "))
}
