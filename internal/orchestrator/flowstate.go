package orchestrator

import (
	"encoding/json"

	"github.com/laichithien/chatbot-customer-service/internal/chat"
	"github.com/laichithien/chatbot-customer-service/internal/orchestrator/adapter"
	"github.com/laichithien/chatbot-customer-service/internal/tool/booking"
)

// applyFlowTransition updates the session's flow state after a tool has
// run. Tools outside the booking-change flow leave the state unchanged.
//
// Confirm clears the flow whenever its handler ran, regardless of the
// downstream outcome: the flow is treated as attempted and closed, not
// retryable.
func applyFlowTransition(flow chat.FlowState, toolName string, result chat.ToolResult) chat.FlowState {
	switch toolName {
	case adapter.ToolInitiateChangeFlow:
		if resultStatus(result) == booking.StatusFlowInitiated {
			return chat.FlowState{Flow: chat.FlowChangeBooking, Stage: chat.StageAwaitingID}
		}

	case adapter.ToolProvideBookingID:
		if resultStatus(result) == booking.StatusBookingIDReceived {
			flow.CollectedID = resultField(result, "booking_id")
			flow.Stage = chat.StageAwaitingTime
		}

	case adapter.ToolConfirmChange:
		if result.Error == "" {
			return chat.FlowState{}
		}
	}

	return flow
}

// resultStatus extracts the "status" field from a tool result's JSON
// content. A failed result or non-object content yields "".
func resultStatus(result chat.ToolResult) string {
	return resultField(result, "status")
}

func resultField(result chat.ToolResult, field string) string {
	if result.Error != "" || result.Content == "" {
		return ""
	}

	var payload map[string]any
	if err := json.Unmarshal([]byte(result.Content), &payload); err != nil {
		return ""
	}

	value, _ := payload[field].(string)
	return value
}
