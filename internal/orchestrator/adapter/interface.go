package adapter

import (
	"context"

	provider "github.com/laichithien/chatbot-customer-service/internal/provider/models"
)

// Registered tool names.
const (
	ToolGetFAQAnswer       = "get_faq_answer"
	ToolInitiateChangeFlow = "initiate_change_booking_time_flow"
	ToolProvideBookingID   = "provide_booking_id_for_change"
	ToolConfirmChange      = "confirm_booking_time_change"
)

// Tool represents a capability the model can invoke.
// Each tool must be stateless and safe for concurrent use.
type Tool interface {
	// Name returns the unique identifier for this tool
	Name() string

	// Description returns the purpose description the model uses to decide
	// when to invoke the tool
	Description() string

	// Definition returns the structured tool definition for the provider
	Definition() provider.ToolDefinition

	// Execute runs the tool with the given arguments.
	// Args is a map of argument names to values, as provided by the model.
	Execute(ctx context.Context, args map[string]any) (string, error)
}
