package services

import (
	"context"
	"fmt"
	"log"

	"google.golang.org/genai"

	"careerpath/api/internal/models"
)

type GeminiService interface {
	GenerateContent(ctx context.Context, modelName, systemInstruction, prompt string) (string, *models.TokenStats, error)
}

type geminiService struct {
	client *genai.Client
}

func NewGeminiService(apiKey string) (GeminiService, error) {
	ctx := context.Background()

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	return &geminiService{client: client}, nil
}

// GenerateContent implements GeminiService.
func (g *geminiService) GenerateContent(ctx context.Context, modelName, systemInstruction, prompt string) (string, *models.TokenStats, error) {
	temperature := float32(0.3)

	config := &genai.GenerateContentConfig{
		Temperature:     &temperature,
		MaxOutputTokens: 8192,
	}
	if systemInstruction != "" {
		config.SystemInstruction = genai.NewContentFromText(systemInstruction, genai.RoleUser)
	}

	resp, err := g.client.Models.GenerateContent(ctx, modelName, genai.Text(prompt), config)
	if err != nil {
		log.Printf("❌ Gemini API error: %v\n", err)
		return "", nil, fmt.Errorf("failed to generate content: %w", err)
	}

	if resp == nil {
		log.Println("❌ Gemini API returned nil response")
		return "", nil, fmt.Errorf("no response generated (nil response)")
	}

	return resp.Text(), tokenUsage(resp), nil
}

func tokenUsage(resp *genai.GenerateContentResponse) *models.TokenStats {
	usage := resp.UsageMetadata
	if usage == nil {
		log.Println("⚠️  No token usage metadata in response")
		return nil
	}

	log.Printf("📊 Tokens - prompt: %d, output: %d, total: %d\n",
		usage.PromptTokenCount, usage.CandidatesTokenCount, usage.TotalTokenCount)

	return &models.TokenStats{
		PromptTokens: usage.PromptTokenCount,
		OutputTokens: usage.CandidatesTokenCount,
		TotalTokens:  usage.TotalTokenCount,
	}
}
