package handlers

import (
	"context"
	"errors"
	"log"
	"net/http"

	"klarhub-backend/internal/models"
	"klarhub-backend/internal/services"
)

type presenceSource interface {
	FetchPresence(ctx context.Context) (*models.PresenceSnapshot, error)
}

type DiscordHandler struct {
	presence presenceSource
}

func NewDiscordHandler(presence presenceSource) *DiscordHandler {
	return &DiscordHandler{presence: presence}
}

// Presence republishes the guild's online member count.
func (h *DiscordHandler) Presence(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Access-Control-Allow-Origin", "*")

	snapshot, err := h.presence.FetchPresence(r.Context())
	if err != nil {
		var ue *services.UpstreamError
		if errors.As(err, &ue) {
			log.Printf("Discord widget returned %d: %s", ue.StatusCode, ue.Body)
			writeJSON(w, ue.StatusCode, errorResp("Failed to fetch Discord widget data."))
			return
		}
		log.Printf("Error fetching Discord data: %v", err)
		writeJSON(w, http.StatusInternalServerError, errorResp("Internal Server Error"))
		return
	}

	writeJSON(w, http.StatusOK, snapshot)
}
