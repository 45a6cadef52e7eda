package services

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"klarhub-backend/internal/models"
)

const maxWidgetBody = 1 << 20

type DiscordService struct {
	client    *http.Client
	widgetURL string
}

func NewDiscordService(apiBase, guildID string, timeout time.Duration) *DiscordService {
	return &DiscordService{
		client:    &http.Client{Timeout: timeout},
		widgetURL: fmt.Sprintf("%s/guilds/%s/widget.json", strings.TrimRight(apiBase, "/"), guildID),
	}
}

// FetchPresence reads the guild widget and returns the online member count.
// A non-2xx reply is returned as *UpstreamError with Discord's status.
func (s *DiscordService) FetchPresence(ctx context.Context) (*models.PresenceSnapshot, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.widgetURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build widget request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch widget: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxWidgetBody))
	if err != nil {
		return nil, fmt.Errorf("failed to read widget body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &UpstreamError{Service: "discord", StatusCode: resp.StatusCode, Body: string(body)}
	}

	var doc models.WidgetDocument
	if err := json.Unmarshal(body, &doc); err != nil {
		return nil, fmt.Errorf("failed to decode widget: %w", err)
	}

	return &models.PresenceSnapshot{OnlineCount: doc.OnlineCount()}, nil
}
