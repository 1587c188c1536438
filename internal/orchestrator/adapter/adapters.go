package adapter

import (
	"context"

	provider "github.com/laichithien/chatbot-customer-service/internal/provider/models"
	"github.com/laichithien/chatbot-customer-service/internal/tool/booking"
	"github.com/laichithien/chatbot-customer-service/internal/tool/faq"
)

// This file consolidates the tool adapters using the BaseAdapter pattern.
// The descriptions are consumed by the model to decide when to invoke
// each tool, so they spell out the triggering conditions.

type faqRequest struct {
	Question string `mapstructure:"question"`
}

type faqResponse struct {
	Answer string `json:"answer,omitempty"`
	Error  string `json:"error,omitempty"`
}

// NewFAQAnswer creates the get_faq_answer adapter.
func NewFAQAnswer(kb *faq.KnowledgeBase) Tool {
	return NewBaseAdapter(
		ToolGetFAQAnswer,
		"Searches and retrieves answers to frequently asked questions (FAQs) about services, policies, and general information. Use this tool when the user asks a question that is likely an FAQ (e.g., 'How do I cancel my ticket?', 'What payment methods are accepted?').",
		&provider.ParameterSchema{
			Type: "object",
			Properties: map[string]provider.PropertySchema{
				"question": {
					Type:        "string",
					Description: "The user's question that needs an FAQ answer.",
				},
			},
			Required: []string{"question"},
		},
		func(ctx context.Context, req faqRequest) (faqResponse, error) {
			if kb.Len() == 0 {
				return faqResponse{Error: faq.UnavailableAnswer}, nil
			}
			return faqResponse{Answer: kb.Answer(req.Question)}, nil
		},
	)
}

type emptyRequest struct{}

// NewInitiateChangeFlow creates the initiate_change_booking_time_flow adapter.
func NewInitiateChangeFlow(svc *booking.Service) Tool {
	return NewBaseAdapter(
		ToolInitiateChangeFlow,
		"Starts the process for a user wanting to change their bus ticket booking time. Call this tool when the user expresses a clear intent to change their booking time or schedule (e.g., 'I want to change my ticket time', 'reschedule my booking'). Do not ask for booking ID or new time yet; this tool just starts the flow.",
		&provider.ParameterSchema{
			Type:       "object",
			Properties: map[string]provider.PropertySchema{},
		},
		func(ctx context.Context, req emptyRequest) (booking.InitiateResult, error) {
			return svc.Initiate(), nil
		},
	)
}

// NewProvideBookingID creates the provide_booking_id_for_change adapter.
func NewProvideBookingID(svc *booking.Service) Tool {
	return NewBaseAdapter(
		ToolProvideBookingID,
		"Processes the booking ID provided by the user as part of the 'change booking time' flow. Call this tool after the user has supplied their booking ID in response to a prompt from the system.",
		&provider.ParameterSchema{
			Type: "object",
			Properties: map[string]provider.PropertySchema{
				"booking_id": {
					Type:        "string",
					Description: "The booking ID (e.g., VX12345, ABC987) provided by the user.",
				},
			},
			Required: []string{"booking_id"},
		},
		func(ctx context.Context, req booking.ProvideIDRequest) (booking.ProvideIDResult, error) {
			return svc.ProvideID(req), nil
		},
	)
}

// NewConfirmChange creates the confirm_booking_time_change adapter.
func NewConfirmChange(svc *booking.Service) Tool {
	return NewBaseAdapter(
		ToolConfirmChange,
		"Attempts to finalize the change of a booking to a new time by calling the booking system. This tool should be called only after the user has provided both their booking ID and the new desired time for their ticket.",
		&provider.ParameterSchema{
			Type: "object",
			Properties: map[string]provider.PropertySchema{
				"booking_id": {
					Type:        "string",
					Description: "The booking ID of the ticket to be changed, previously collected from the user.",
				},
				"new_time": {
					Type:        "string",
					Description: "The new desired date and time for the booking, in 'YYYY-MM-DD HH:MM:SS' format (e.g., '2025-12-31 14:30:00'), previously collected from the user.",
				},
			},
			Required: []string{"booking_id", "new_time"},
		},
		func(ctx context.Context, req booking.ConfirmRequest) (booking.ChangeResponse, error) {
			return svc.Confirm(ctx, req), nil
		},
	)
}
