// Package booking implements the three booking-change tools and the
// client for the downstream booking service.
package booking

import (
	"context"
	"errors"
	"strings"
)

// Service holds the booking-change tool handlers. Stateless apart from the
// downstream client; cross-turn flow progress lives in the orchestrator's
// flow state, not here.
type Service struct {
	client Client
}

// NewService creates a Service calling the downstream service via client.
func NewService(client Client) *Service {
	return &Service{client: client}
}

// Initiate starts the change-booking flow. It only signals that the
// conversation should proceed to ask for a booking id; the orchestrator
// records the flow stage.
func (s *Service) Initiate() InitiateResult {
	return InitiateResult{
		Status:           StatusFlowInitiated,
		NextActionPrompt: promptAskBookingID,
	}
}

// ProvideID records the booking id supplied by the user. A blank id is
// rejected as a structured error result so the model can re-prompt.
func (s *Service) ProvideID(req ProvideIDRequest) ProvideIDResult {
	if strings.TrimSpace(req.BookingID) == "" {
		return ProvideIDResult{
			Status:  StatusErrorValue,
			Message: "Booking ID is invalid or missing. Please provide a valid booking ID.",
		}
	}

	return ProvideIDResult{
		Status:           StatusBookingIDReceived,
		BookingID:        req.BookingID,
		NextActionPrompt: promptAskNewTime,
	}
}

// Confirm attempts the booking change against the downstream service.
// Missing arguments and a malformed time are rejected before any network
// call. All failure modes come back as a ChangeResponse with Success=false;
// transport failures and service rejections carry distinct messages.
func (s *Service) Confirm(ctx context.Context, req ConfirmRequest) ChangeResponse {
	if req.BookingID == "" {
		return ChangeResponse{Success: false, Message: "Booking ID was not provided for confirmation."}
	}
	if req.NewTime == "" {
		return ChangeResponse{Success: false, Message: "New time was not provided for confirmation."}
	}
	if !ValidTimeFormat(req.NewTime) {
		return ChangeResponse{Success: false, Message: "Invalid new_time format. Please use YYYY-MM-DD HH:MM:SS."}
	}

	resp, err := s.client.ChangeBooking(ctx, req.wire())
	if err != nil {
		var transportErr *TransportError
		if errors.As(err, &transportErr) {
			return ChangeResponse{Success: false, Message: "Network error when trying to change booking: " + transportErr.Err.Error()}
		}
		var statusErr *StatusError
		if errors.As(err, &statusErr) {
			return ChangeResponse{Success: false, Message: "Failed to change booking: " + statusErr.Message}
		}
		return ChangeResponse{Success: false, Message: "An unexpected error occurred while attempting to change booking: " + err.Error()}
	}

	return *resp
}

func (r ConfirmRequest) wire() ChangeRequest {
	return ChangeRequest{BookingID: r.BookingID, NewTime: r.NewTime}
}
