package handlers

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"klarhub-backend/internal/models"
)

type stubPresence struct {
	snapshot *models.PresenceSnapshot
	err      error
	calls    int
}

func (s *stubPresence) FetchPresence(ctx context.Context) (*models.PresenceSnapshot, error) {
	s.calls++
	return s.snapshot, s.err
}

type stubCompleter struct {
	configured bool
	text       string
	err        error

	calls      int
	gotSystem  string
	gotHistory []models.ChatTurn
	gotPrompt  string
}

func (s *stubCompleter) Configured() bool { return s.configured }

func (s *stubCompleter) Complete(ctx context.Context, systemPrompt string, history []models.ChatTurn, prompt string) (string, error) {
	s.calls++
	s.gotSystem = systemPrompt
	s.gotHistory = history
	s.gotPrompt = prompt
	return s.text, s.err
}

func decodeBody(t *testing.T, rr *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var m map[string]interface{}
	if err := json.Unmarshal(rr.Body.Bytes(), &m); err != nil {
		t.Fatalf("Failed to decode response: %v; body=%s", err, rr.Body.String())
	}
	return m
}

func assertExactBody(t *testing.T, rr *httptest.ResponseRecorder, want map[string]interface{}) {
	t.Helper()
	got := decodeBody(t, rr)
	if len(got) != len(want) {
		t.Fatalf("expected body %v, got %v", want, got)
	}
	for k, v := range want {
		if got[k] != v {
			t.Fatalf("expected %s=%v, got %v (body=%s)", k, v, got[k], rr.Body.String())
		}
	}
}
