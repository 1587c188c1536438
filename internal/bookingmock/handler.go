// Package bookingmock provides the mock downstream booking service used
// by the proof of concept in place of a real reservation system.
package bookingmock

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/laichithien/chatbot-customer-service/internal/tool/booking"
)

// Handler answers booking-change requests. Bookings whose id contains
// "FAIL" are rejected as not eligible, which lets conversations exercise
// the failure path end to end.
func Handler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req booking.ChangeRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, http.StatusBadRequest, booking.ChangeResponse{
				Success: false,
				Message: "Malformed change booking request.",
			})
			return
		}

		slog.Debug("mock booking service received change request",
			"booking_id", req.BookingID, "new_time", req.NewTime)

		writeJSON(w, http.StatusOK, change(req))
	}
}

// change applies the mock service's rules to one request.
func change(req booking.ChangeRequest) booking.ChangeResponse {
	if req.BookingID == "" {
		return booking.ChangeResponse{Success: false, Message: "Booking ID is required."}
	}
	if req.NewTime == "" {
		return booking.ChangeResponse{Success: false, Message: "New time is required."}
	}
	if !booking.ValidTimeFormat(req.NewTime) {
		return booking.ChangeResponse{Success: false, Message: "Invalid new_time format. Please use YYYY-MM-DD HH:MM:SS."}
	}
	if strings.Contains(strings.ToUpper(req.BookingID), "FAIL") {
		return booking.ChangeResponse{
			Success: false,
			Message: fmt.Sprintf("Failed to change booking for %s. Reason: Ticket not eligible for change.", req.BookingID),
		}
	}

	return booking.ChangeResponse{
		Success: true,
		Message: fmt.Sprintf("Successfully changed booking %s to new time: %s.", req.BookingID, req.NewTime),
		Data: map[string]any{
			"booking_id": req.BookingID,
			"new_time":   req.NewTime,
			"status":     "CONFIRMED",
		},
	}
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		slog.Error("failed to encode mock booking response", "error", err)
	}
}
