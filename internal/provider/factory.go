// Package provider selects and constructs the configured LLM provider.
// Call sites depend only on models.Provider; the provider name is branched
// on exactly once, here.
package provider

import (
	"context"
	"fmt"

	"github.com/laichithien/chatbot-customer-service/internal/config"
	"github.com/laichithien/chatbot-customer-service/internal/provider/gemini"
	"github.com/laichithien/chatbot-customer-service/internal/provider/models"
	"google.golang.org/genai"
)

// New creates the provider named in configuration.
func New(ctx context.Context, cfg *config.Config) (models.Provider, error) {
	switch cfg.Provider {
	case "gemini":
		genaiClient, err := genai.NewClient(ctx, &genai.ClientConfig{APIKey: cfg.GeminiAPIKey})
		if err != nil {
			return nil, fmt.Errorf("failed to create Gemini client: %w", err)
		}
		return gemini.New(gemini.NewRealClient(genaiClient), cfg.ModelName), nil
	default:
		return nil, fmt.Errorf("%w: %q", models.ErrUnknownProvider, cfg.Provider)
	}
}
