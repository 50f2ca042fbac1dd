package ai

import (
	"context"
	"errors"
	"strings"

	"google.golang.org/genai"

	"wellvest-go-be/models"
)

// systemPrompt frames every conversation. The companion is supportive, never
// clinical, and always defers to professionals for anything serious.
const systemPrompt = "You are WellVest's wellness companion: a warm, supportive listener " +
	"inside a personal finance and wellness app. Keep replies short and conversational. " +
	"You are not a therapist or doctor; gently suggest professional help for anything serious."

// Gemini implements Inference over the Gemini API.
type Gemini struct {
	client *genai.Client
	model  string
}

// NewGemini creates a Gemini inference backend.
func NewGemini(ctx context.Context, apiKey string) (*Gemini, error) {
	if apiKey == "" {
		return nil, errors.New("gemini api key is empty")
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{APIKey: apiKey})
	if err != nil {
		return nil, err
	}
	// Flash keeps latency and cost down for chat turns.
	return &Gemini{client: client, model: "gemini-1.5-flash"}, nil
}

// Generate sends the conversation plus the new message and returns the
// model's reply text.
func (g *Gemini) Generate(ctx context.Context, history []models.ChatMessage, message string) (string, error) {
	contents := make([]*genai.Content, 0, len(history)+2)
	contents = append(contents, &genai.Content{
		Role:  "user",
		Parts: []*genai.Part{{Text: systemPrompt}},
	})
	for _, m := range history {
		role := "user"
		if m.Role == models.RoleModel {
			role = "model"
		}
		contents = append(contents, &genai.Content{
			Role:  role,
			Parts: []*genai.Part{{Text: m.Text}},
		})
	}
	contents = append(contents, &genai.Content{
		Role:  "user",
		Parts: []*genai.Part{{Text: message}},
	})

	resp, err := g.client.Models.GenerateContent(ctx, g.model, contents, nil)
	if err != nil {
		return "", err
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", errors.New("empty response from model")
	}

	var text strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if part.Text != "" {
			text.WriteString(part.Text)
		}
	}

	// Strip markdown fences if the model wraps its reply anyway.
	reply := strings.TrimSpace(text.String())
	reply = strings.TrimPrefix(reply, "```")
	reply = strings.TrimSuffix(reply, "```")
	reply = strings.TrimSpace(reply)
	if reply == "" {
		return "", errors.New("blank reply from model")
	}
	return reply, nil
}
