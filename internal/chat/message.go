// Package chat defines the conversation data model shared by the store,
// the orchestrator, and the provider layer.
package chat

// Message roles. "function" carries tool results back to the model,
// mirroring the Gemini content role of the same name.
const (
	RoleUser     = "user"
	RoleModel    = "model"
	RoleFunction = "function"
)

// Message is a single entry in a session's conversation history.
// Messages are immutable once appended.
type Message struct {
	Role string
	Text string

	// Binary segments attached to a user message (image, audio).
	Attachments []Attachment

	// For model messages requesting a tool invocation.
	ToolCall *ToolCall

	// For function messages carrying a tool execution result.
	ToolResult *ToolResult
}

// Attachment is an opaque binary content segment with a declared MIME type.
type Attachment struct {
	MIMEType string
	Data     []byte
}

// ToolCall is a tool invocation request produced by the model.
type ToolCall struct {
	Name string
	Args map[string]any
}

// ToolResult is the outcome of executing a tool, serialized into history.
type ToolResult struct {
	Name    string
	Content string // JSON-encoded structured result
	Error   string // non-empty if the tool failed or was not found
}

// IsEmpty reports whether the message carries no content at all.
func (m Message) IsEmpty() bool {
	return m.Text == "" && len(m.Attachments) == 0 && m.ToolCall == nil && m.ToolResult == nil
}

// Clone returns a copy of the message with its own attachment slice.
// Attachment data and tool payloads are treated as immutable and shared.
func (m Message) Clone() Message {
	out := m
	if len(m.Attachments) > 0 {
		out.Attachments = make([]Attachment, len(m.Attachments))
		copy(out.Attachments, m.Attachments)
	}
	return out
}
