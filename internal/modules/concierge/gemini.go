package concierge

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

const systemPrompt = `You are the AI Concierge for Tonga VIP Transfers.
Your goal is to assist potential customers visiting Tonga.

Key Information:
- Service: Premium airport transfers, private chauffeurs, island tours.
- Location: Tonga (primarily Tongatapu).
- Key Destinations: Fua'amotu International Airport (TBU), Nuku'alofa (Capital), Ha'atafu Beach, Ancient Tonga.
- Tone: Professional, warm, welcoming, polynesian hospitality ("Malo e lelei" is the greeting).
- Pricing: Do not give specific prices, ask them to use the booking form for a quote.
- Travel Times: Give estimates (e.g., Airport to Town is approx 30-40 mins).

Keep answers concise (under 100 words) and encourage booking via the form.`

// GeminiGenerator implements Generator against the Gemini API with the fixed
// concierge system prompt. Each call sends only the current message.
type GeminiGenerator struct {
	client *genai.Client
	model  string
}

func NewGeminiGenerator(ctx context.Context, apiKey, model string) (*GeminiGenerator, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}
	return &GeminiGenerator{client: client, model: model}, nil
}

func (g *GeminiGenerator) Generate(ctx context.Context, message string) (string, error) {
	model := g.client.GenerativeModel(g.model)
	model.SystemInstruction = &genai.Content{
		Parts: []genai.Part{genai.Text(systemPrompt)},
	}

	resp, err := model.GenerateContent(ctx, genai.Text(message))
	if err != nil {
		return "", fmt.Errorf("generate content: %w", err)
	}

	var b strings.Builder
	for _, cand := range resp.Candidates {
		if cand.Content == nil {
			continue
		}
		for _, part := range cand.Content.Parts {
			if text, ok := part.(genai.Text); ok {
				b.WriteString(string(text))
			}
		}
	}
	return b.String(), nil
}

func (g *GeminiGenerator) Close() error {
	return g.client.Close()
}
