package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"github.com/googleapis/gax-go/v2/apierror"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"

	"klarhub-backend/internal/models"
)

const DefaultGeminiModel = "gemini-2.5-flash-preview-09-2025"

// contentGenerator sends an ordered turn list plus a system instruction to
// the model. The last turn is the one being answered.
type contentGenerator interface {
	Generate(ctx context.Context, system *genai.Content, turns []*genai.Content) (*genai.GenerateContentResponse, error)
}

type GeminiService struct {
	client *genai.Client
	gen    contentGenerator
	apiKey string
}

// NewGeminiService returns an unconfigured service when apiKey is empty so
// the chat endpoint can report the problem per request.
func NewGeminiService(apiKey, modelName, endpoint string) (*GeminiService, error) {
	if apiKey == "" {
		return &GeminiService{}, nil
	}
	if modelName == "" {
		modelName = DefaultGeminiModel
	}

	opts := []option.ClientOption{option.WithAPIKey(apiKey)}
	if endpoint != "" {
		opts = append(opts, option.WithEndpoint(endpoint))
	}

	client, err := genai.NewClient(context.Background(), opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiService{
		client: client,
		gen:    &chatGenerator{client: client, modelName: modelName},
		apiKey: apiKey,
	}, nil
}

func (s *GeminiService) Close() {
	if s.client != nil {
		s.client.Close()
	}
}

// Configured reports whether a credential was supplied.
func (s *GeminiService) Configured() bool {
	return s.gen != nil
}

// Complete answers prompt in the context of history. Upstream failures are
// returned as *UpstreamError; a reply without text yields ErrNoResponseText.
func (s *GeminiService) Complete(ctx context.Context, systemPrompt string, history []models.ChatTurn, prompt string) (string, error) {
	if !s.Configured() {
		return "", ErrNotConfigured
	}

	system := &genai.Content{Parts: []genai.Part{genai.Text(systemPrompt)}}
	resp, err := s.gen.Generate(ctx, system, buildContents(history, prompt))
	if err != nil {
		var blocked *genai.BlockedError
		if errors.As(err, &blocked) {
			log.Printf("Gemini blocked response: %v", blocked)
			return "", ErrNoResponseText
		}
		return "", s.upstreamError(err)
	}

	text, ok := firstCandidateText(resp)
	if !ok {
		return "", ErrNoResponseText
	}
	return text, nil
}

// upstreamError recovers the HTTP status and body from an SDK error.
// Transport failures without a status map to 502.
func (s *GeminiService) upstreamError(err error) *UpstreamError {
	ue := &UpstreamError{Service: "gemini", StatusCode: http.StatusBadGateway, Body: err.Error(), Err: err}

	var gerr *googleapi.Error
	var aerr *apierror.APIError
	switch {
	case errors.As(err, &gerr) && gerr.Code > 0:
		ue.StatusCode = gerr.Code
		if gerr.Body != "" {
			ue.Body = gerr.Body
		} else if gerr.Message != "" {
			ue.Body = gerr.Message
		}
	case errors.As(err, &aerr) && aerr.HTTPCode() > 0:
		ue.StatusCode = aerr.HTTPCode()
		ue.Body = aerr.Error()
	}

	ue.Body = s.redact(ue.Body)
	return ue
}

func (s *GeminiService) redact(text string) string {
	if s.apiKey == "" {
		return text
	}
	return strings.ReplaceAll(text, s.apiKey, "[REDACTED]")
}

type chatGenerator struct {
	client    *genai.Client
	modelName string
}

// Generate builds a fresh model per call because the system instruction
// changes with the live member count.
func (g *chatGenerator) Generate(ctx context.Context, system *genai.Content, turns []*genai.Content) (*genai.GenerateContentResponse, error) {
	if len(turns) == 0 {
		return nil, errors.New("at least one turn is required")
	}

	model := g.client.GenerativeModel(g.modelName)
	model.SystemInstruction = system

	cs := model.StartChat()
	cs.History = turns[:len(turns)-1]
	return cs.SendMessage(ctx, turns[len(turns)-1].Parts...)
}

// buildContents maps chat turns to the upstream shape and appends prompt
// as the final user turn.
func buildContents(history []models.ChatTurn, prompt string) []*genai.Content {
	contents := make([]*genai.Content, 0, len(history)+1)
	for _, turn := range history {
		role := "user"
		if turn.Role == "ai" {
			role = "model"
		}
		contents = append(contents, &genai.Content{
			Role:  role,
			Parts: []genai.Part{genai.Text(turn.Text)},
		})
	}
	return append(contents, &genai.Content{
		Role:  "user",
		Parts: []genai.Part{genai.Text(prompt)},
	})
}

func firstCandidateText(resp *genai.GenerateContentResponse) (string, bool) {
	if resp == nil || len(resp.Candidates) == 0 {
		return "", false
	}
	cand := resp.Candidates[0]
	if cand == nil || cand.Content == nil || len(cand.Content.Parts) == 0 {
		return "", false
	}
	text, ok := cand.Content.Parts[0].(genai.Text)
	if !ok || text == "" {
		return "", false
	}
	return string(text), true
}
