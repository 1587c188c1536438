package bookingmock

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/laichithien/chatbot-customer-service/internal/tool/booking"
)

func postChange(t *testing.T, body any) (*httptest.ResponseRecorder, booking.ChangeResponse) {
	t.Helper()

	var buf bytes.Buffer
	switch b := body.(type) {
	case string:
		buf.WriteString(b)
	default:
		if err := json.NewEncoder(&buf).Encode(b); err != nil {
			t.Fatalf("encode request: %v", err)
		}
	}

	req := httptest.NewRequest(http.MethodPost, "/mock/change_booking", &buf)
	rec := httptest.NewRecorder()
	Handler().ServeHTTP(rec, req)

	var resp booking.ChangeResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v (body: %s)", err, rec.Body.String())
	}
	return rec, resp
}

func TestHandler_Success(t *testing.T) {
	rec, resp := postChange(t, booking.ChangeRequest{BookingID: "VX7890", NewTime: "2025-12-31 14:30:00"})

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !resp.Success {
		t.Fatalf("expected success, got %+v", resp)
	}
	if resp.Message != "Successfully changed booking VX7890 to new time: 2025-12-31 14:30:00." {
		t.Errorf("unexpected message: %q", resp.Message)
	}
	if resp.Data["booking_id"] != "VX7890" || resp.Data["new_time"] != "2025-12-31 14:30:00" || resp.Data["status"] != "CONFIRMED" {
		t.Errorf("unexpected data: %+v", resp.Data)
	}
}

func TestHandler_NotEligible(t *testing.T) {
	for _, id := range []string{"VXFAIL01", "vxfail01", "PREFAILSUF"} {
		_, resp := postChange(t, booking.ChangeRequest{BookingID: id, NewTime: "2025-12-31 14:30:00"})
		if resp.Success {
			t.Errorf("id %q: expected rejection", id)
		}
		if !strings.Contains(resp.Message, "Ticket not eligible for change.") {
			t.Errorf("id %q: unexpected message %q", id, resp.Message)
		}
	}
}

func TestHandler_Validation(t *testing.T) {
	tests := []struct {
		name        string
		req         booking.ChangeRequest
		wantMessage string
	}{
		{
			name:        "missing booking id",
			req:         booking.ChangeRequest{NewTime: "2025-12-31 14:30:00"},
			wantMessage: "Booking ID is required.",
		},
		{
			name:        "missing new time",
			req:         booking.ChangeRequest{BookingID: "VX7890"},
			wantMessage: "New time is required.",
		},
		{
			name:        "malformed new time",
			req:         booking.ChangeRequest{BookingID: "VX7890", NewTime: "31-12-2025 14:30"},
			wantMessage: "Invalid new_time format. Please use YYYY-MM-DD HH:MM:SS.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, resp := postChange(t, tt.req)
			if rec.Code != http.StatusOK {
				t.Errorf("validation replies ride a 200, got %d", rec.Code)
			}
			if resp.Success || resp.Message != tt.wantMessage {
				t.Errorf("unexpected response: %+v", resp)
			}
		})
	}
}

func TestHandler_MalformedBody(t *testing.T) {
	rec, resp := postChange(t, "{not json")
	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", rec.Code)
	}
	if resp.Success {
		t.Errorf("expected failure response, got %+v", resp)
	}
}
