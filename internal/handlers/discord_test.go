package handlers

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"klarhub-backend/internal/models"
	"klarhub-backend/internal/services"
)

func TestDiscordHandler_Presence_Success(t *testing.T) {
	h := NewDiscordHandler(&stubPresence{snapshot: &models.PresenceSnapshot{OnlineCount: 87}})

	req := httptest.NewRequest(http.MethodGet, "/api/discord", nil)
	rr := httptest.NewRecorder()
	h.Presence(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, rr.Code)
	}
	if got := rr.Header().Get("Access-Control-Allow-Origin"); got != "*" {
		t.Fatalf("expected Access-Control-Allow-Origin '*', got %q", got)
	}
	assertExactBody(t, rr, map[string]interface{}{"onlineCount": float64(87)})
}

func TestDiscordHandler_Presence_ZeroCount(t *testing.T) {
	h := NewDiscordHandler(&stubPresence{snapshot: &models.PresenceSnapshot{}})

	rr := httptest.NewRecorder()
	h.Presence(rr, httptest.NewRequest(http.MethodGet, "/api/discord", nil))

	if rr.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, rr.Code)
	}
	assertExactBody(t, rr, map[string]interface{}{"onlineCount": float64(0)})
}

func TestDiscordHandler_Presence_UpstreamStatusPassthrough(t *testing.T) {
	statuses := []int{http.StatusNotFound, http.StatusForbidden, http.StatusTooManyRequests, http.StatusServiceUnavailable}

	for _, status := range statuses {
		t.Run(http.StatusText(status), func(t *testing.T) {
			h := NewDiscordHandler(&stubPresence{err: &services.UpstreamError{Service: "discord", StatusCode: status, Body: "{}"}})

			rr := httptest.NewRecorder()
			h.Presence(rr, httptest.NewRequest(http.MethodGet, "/api/discord", nil))

			if rr.Code != status {
				t.Fatalf("expected status %d, got %d", status, rr.Code)
			}
			assertExactBody(t, rr, map[string]interface{}{"error": "Failed to fetch Discord widget data."})
		})
	}
}

func TestDiscordHandler_Presence_TransportFailure(t *testing.T) {
	h := NewDiscordHandler(&stubPresence{err: errors.New("connection reset")})

	rr := httptest.NewRecorder()
	h.Presence(rr, httptest.NewRequest(http.MethodGet, "/api/discord", nil))

	if rr.Code != http.StatusInternalServerError {
		t.Fatalf("expected status %d, got %d", http.StatusInternalServerError, rr.Code)
	}
	assertExactBody(t, rr, map[string]interface{}{"error": "Internal Server Error"})
}

func TestDiscordHandler_Presence_AgainstWidgetServer(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id":"1","name":"Klar"}`))
	}))
	defer srv.Close()

	h := NewDiscordHandler(services.NewDiscordService(srv.URL, "1", 0))

	rr := httptest.NewRecorder()
	h.Presence(rr, httptest.NewRequest(http.MethodGet, "/api/discord", nil))

	if rr.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, rr.Code)
	}
	assertExactBody(t, rr, map[string]interface{}{"onlineCount": float64(0)})
}
