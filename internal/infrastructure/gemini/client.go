package gemini

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// GeminiClient rewrites the optimizer's deterministic score breakdown
// into client-facing prose. It is optional: the service runs fine
// without an API key, falling back to the raw breakdown text.
type GeminiClient struct {
	client *genai.Client
	model  *genai.GenerativeModel
}

func NewGeminiClient(apiKey string) (*GeminiClient, error) {
	ctx := context.Background()
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	model := client.GenerativeModel("gemini-1.5-pro")
	model.SetTemperature(0.4)

	return &GeminiClient{
		client: client,
		model:  model,
	}, nil
}

func (c *GeminiClient) Close() {
	c.client.Close()
}

// PolishExplanation turns the breakdown draft into short, friendly
// prose. It must not invent numbers: the prompt pins the model to the
// figures already present in the draft. On any API failure the draft is
// returned unchanged so the endpoint stays deterministic.
func (c *GeminiClient) PolishExplanation(ctx context.Context, draft string) (string, error) {
	prompt := fmt.Sprintf(`
		The following is a score breakdown explaining why certain photographers
		were recommended to a client:

		%s

		Task: Rewrite this as a short, friendly explanation for the client.
		Keep every number and photographer name exactly as given; do not add
		any facts that are not in the breakdown.
		Output: Just the explanation text.
	`, draft)

	resp, err := c.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return draft, nil
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return draft, nil
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if txt, ok := part.(genai.Text); ok {
			sb.WriteString(string(txt))
		}
	}

	polished := strings.TrimSpace(sb.String())
	if polished == "" {
		return draft, nil
	}
	return polished, nil
}
