// Package gemini implements the provider contract on top of the Google
// Gemini SDK (google.golang.org/genai).
package gemini

import (
	"context"
	"sync"

	provider "github.com/laichithien/chatbot-customer-service/internal/provider/models"
)

// Provider implements provider.Provider for Google Gemini.
type Provider struct {
	client    Client
	modelName string
	mu        sync.RWMutex
	tools     []provider.ToolDefinition
}

// New creates a Gemini provider with the specified client and model.
func New(client Client, modelName string) *Provider {
	return &Provider{
		client:    client,
		modelName: modelName,
	}
}

// Send submits the history plus current prompt to the Gemini API and maps
// the response to the provider-agnostic reply union.
func (p *Provider) Send(ctx context.Context, req *provider.SendRequest) (*provider.Reply, error) {
	p.mu.RLock()
	model := p.modelName
	tools := p.tools
	p.mu.RUnlock()

	contents, err := toGeminiContents(req)
	if err != nil {
		return nil, err
	}

	resp, err := p.client.GenerateContent(ctx, model, contents, toGeminiConfig(tools))
	if err != nil {
		return nil, mapGeminiError(err)
	}

	return fromGeminiResponse(resp), nil
}

// DefineTools registers tool definitions advertised on every Send.
func (p *Provider) DefineTools(ctx context.Context, tools []provider.ToolDefinition) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.tools = tools
	return nil
}

// GetModel returns the active model name.
func (p *Provider) GetModel() string {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.modelName
}
