package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"klarhub-backend/internal/models"
	"klarhub-backend/internal/services"
)

type chatCompleter interface {
	Configured() bool
	Complete(ctx context.Context, systemPrompt string, history []models.ChatTurn, prompt string) (string, error)
}

type ChatHandler struct {
	presence presenceSource
	gemini   chatCompleter
	catalog  models.Catalog
}

func NewChatHandler(presence presenceSource, gemini chatCompleter, catalog models.Catalog) *ChatHandler {
	return &ChatHandler{
		presence: presence,
		gemini:   gemini,
		catalog:  catalog,
	}
}

// Complete proxies a question and recent history to Gemini.
func (h *ChatHandler) Complete(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeJSON(w, http.StatusMethodNotAllowed, errorResp("Method not allowed"))
		return
	}

	var req models.CompletionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Prompt == "" {
		writeJSON(w, http.StatusBadRequest, errorResp("Prompt is required"))
		return
	}

	if !h.gemini.Configured() {
		log.Println("GEMINI_API_KEY is not set in environment variables.")
		writeJSON(w, http.StatusInternalServerError, errorResp("Server configuration error."))
		return
	}

	systemPrompt := services.BuildSystemPrompt(h.catalog, h.membersOnline(r.Context()))

	text, err := h.gemini.Complete(r.Context(), systemPrompt, req.Turns(), req.Prompt)
	if err != nil {
		var ue *services.UpstreamError
		switch {
		case errors.As(err, &ue):
			log.Printf("Gemini API Error (%d): %s", ue.StatusCode, ue.Body)
			writeJSON(w, ue.StatusCode, errorRespWithDetails("Failed to fetch response from AI.", ue.Body))
		case errors.Is(err, services.ErrNotConfigured):
			writeJSON(w, http.StatusInternalServerError, errorResp("Server configuration error."))
		case errors.Is(err, services.ErrNoResponseText):
			writeJSON(w, http.StatusInternalServerError, errorResp("No response text received from AI."))
		default:
			log.Printf("Proxy Error: %v", err)
			writeJSON(w, http.StatusInternalServerError, errorResp("An internal error occurred."))
		}
		return
	}

	writeJSON(w, http.StatusOK, models.CompletionResponse{Text: text})
}

// membersOnline never fails: presence is decoration for the prompt.
func (h *ChatHandler) membersOnline(ctx context.Context) string {
	snapshot, err := h.presence.FetchPresence(ctx)
	if err != nil {
		log.Printf("Could not fetch Discord member count: %v", err)
		return services.MembersFallback
	}
	return services.MembersOnline(snapshot)
}
