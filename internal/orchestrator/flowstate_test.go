package orchestrator

import (
	"testing"

	"github.com/laichithien/chatbot-customer-service/internal/chat"
	"github.com/laichithien/chatbot-customer-service/internal/orchestrator/adapter"
)

func TestApplyFlowTransition(t *testing.T) {
	active := chat.FlowState{
		Flow:        chat.FlowChangeBooking,
		Stage:       chat.StageAwaitingTime,
		CollectedID: "VX7890",
	}

	tests := []struct {
		name   string
		flow   chat.FlowState
		tool   string
		result chat.ToolResult
		want   chat.FlowState
	}{
		{
			name:   "initiate starts flow",
			tool:   adapter.ToolInitiateChangeFlow,
			result: chat.ToolResult{Name: adapter.ToolInitiateChangeFlow, Content: `{"status":"flow_initiated"}`},
			want:   chat.FlowState{Flow: chat.FlowChangeBooking, Stage: chat.StageAwaitingID},
		},
		{
			name:   "initiate with unexpected status leaves state alone",
			tool:   adapter.ToolInitiateChangeFlow,
			result: chat.ToolResult{Name: adapter.ToolInitiateChangeFlow, Content: `{"status":"error"}`},
			want:   chat.FlowState{},
		},
		{
			name:   "provide id records the collected id",
			flow:   chat.FlowState{Flow: chat.FlowChangeBooking, Stage: chat.StageAwaitingID},
			tool:   adapter.ToolProvideBookingID,
			result: chat.ToolResult{Name: adapter.ToolProvideBookingID, Content: `{"status":"booking_id_received","booking_id":"VX7890"}`},
			want:   active,
		},
		{
			name:   "provide id rejection keeps the stage",
			flow:   chat.FlowState{Flow: chat.FlowChangeBooking, Stage: chat.StageAwaitingID},
			tool:   adapter.ToolProvideBookingID,
			result: chat.ToolResult{Name: adapter.ToolProvideBookingID, Content: `{"status":"error","message":"Booking ID is invalid or missing. Please provide a valid booking ID."}`},
			want:   chat.FlowState{Flow: chat.FlowChangeBooking, Stage: chat.StageAwaitingID},
		},
		{
			name:   "confirm success clears the flow",
			flow:   active,
			tool:   adapter.ToolConfirmChange,
			result: chat.ToolResult{Name: adapter.ToolConfirmChange, Content: `{"success":true,"message":"done"}`},
			want:   chat.FlowState{},
		},
		{
			name:   "confirm business failure still clears the flow",
			flow:   active,
			tool:   adapter.ToolConfirmChange,
			result: chat.ToolResult{Name: adapter.ToolConfirmChange, Content: `{"success":false,"message":"Ticket not eligible for change."}`},
			want:   chat.FlowState{},
		},
		{
			name:   "confirm tool error keeps the flow",
			flow:   active,
			tool:   adapter.ToolConfirmChange,
			result: chat.ToolResult{Name: adapter.ToolConfirmChange, Error: "argument decoding failed"},
			want:   active,
		},
		{
			name:   "unrelated tool leaves state alone",
			flow:   active,
			tool:   adapter.ToolGetFAQAnswer,
			result: chat.ToolResult{Name: adapter.ToolGetFAQAnswer, Content: `{"answer":"..."}`},
			want:   active,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := applyFlowTransition(tt.flow, tt.tool, tt.result)
			if got != tt.want {
				t.Errorf("applyFlowTransition() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestFlowStateKeys(t *testing.T) {
	flow := chat.FlowState{Flow: chat.FlowChangeBooking, Stage: chat.StageAwaitingTime, CollectedID: "VX1"}
	keys := flow.Keys()
	want := []string{"collected_id", "flow", "stage"}
	if len(keys) != len(want) {
		t.Fatalf("expected %v, got %v", want, keys)
	}
	for i := range want {
		if keys[i] != want[i] {
			t.Errorf("key %d: expected %q, got %q", i, want[i], keys[i])
		}
	}

	if got := (chat.FlowState{}).Keys(); len(got) != 0 {
		t.Errorf("zero state must have no keys, got %v", got)
	}
}
