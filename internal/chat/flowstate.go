package chat

import "sort"

// Flow and stage values for the booking-change flow.
const (
	FlowChangeBooking = "change_booking"

	StageAwaitingID   = "awaiting_id"
	StageAwaitingTime = "awaiting_time"
)

// FlowState tracks cross-turn progress of the single multi-step tool flow
// a session may have active. The zero value means no active flow. Only the
// orchestrator reads or writes flow state; it is opaque to the provider.
type FlowState struct {
	Flow        string
	Stage       string
	CollectedID string
}

// IsZero reports whether no flow is active and nothing has been collected.
func (f FlowState) IsZero() bool {
	return f == FlowState{}
}

// Keys returns the names of the populated fields, sorted, for the
// session-state summary returned to callers.
func (f FlowState) Keys() []string {
	keys := make([]string, 0, 3)
	if f.Flow != "" {
		keys = append(keys, "flow")
	}
	if f.Stage != "" {
		keys = append(keys, "stage")
	}
	if f.CollectedID != "" {
		keys = append(keys, "collected_id")
	}
	sort.Strings(keys)
	return keys
}
