package models

import "encoding/json"

// ChatTurn represents a single message in a conversation.
type ChatTurn struct {
	Role string `json:"role"` // "user" or "ai"
	Text string `json:"text"`
}

// CompletionRequest is the payload sent to the chat endpoint.
type CompletionRequest struct {
	Prompt  string          `json:"prompt"`
	History json.RawMessage `json:"history"`
}

// Turns decodes the history leniently. Anything that is not an array of
// turns yields an empty history.
func (r CompletionRequest) Turns() []ChatTurn {
	if len(r.History) == 0 {
		return nil
	}
	var turns []ChatTurn
	if err := json.Unmarshal(r.History, &turns); err != nil {
		return nil
	}
	return turns
}

// CompletionResponse is the reply from the AI chat.
type CompletionResponse struct {
	Text string `json:"text"`
}
