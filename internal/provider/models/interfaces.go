package models

import (
	"context"
)

// Provider is the uniform interface to an LLM backend. Implementations
// must be provider-agnostic at this boundary: they accept the history as
// role-tagged messages and convert to their own wire shapes internally.
type Provider interface {
	// Send submits the history plus the current prompt and attachments,
	// and returns exactly one reply variant. Provider or network failure
	// is returned as an error (typically a *ProviderError); Send never
	// panics past this boundary. An empty or unusable model response is
	// mapped to a fallback text reply, not an error.
	Send(ctx context.Context, req *SendRequest) (*Reply, error)

	// DefineTools registers the tool schemas advertised to the model.
	// Called once at startup, before the first Send.
	DefineTools(ctx context.Context, tools []ToolDefinition) error

	// GetModel returns the active model name, for logging.
	GetModel() string
}
