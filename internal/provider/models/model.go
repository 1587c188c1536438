package models

import (
	"github.com/laichithien/chatbot-customer-service/internal/chat"
)

// SendRequest encapsulates one model invocation: the full conversation
// history (including any tool-call and tool-result messages) plus the
// current prompt and its attachments.
type SendRequest struct {
	// History contains the conversation so far, in order.
	History []chat.Message

	// Prompt is the text of the current turn. May be empty when the turn
	// consists only of attachments, or when the history already carries
	// everything the model needs.
	Prompt string

	// Attachments are binary segments sent alongside the prompt.
	Attachments []chat.Attachment
}

// ReplyType indicates what the model produced.
type ReplyType string

const (
	ReplyTypeText         ReplyType = "text"
	ReplyTypeFunctionCall ReplyType = "function_call"
)

// Reply is a union type: exactly one of Text or FunctionCall is populated,
// according to Type. Provider failures are returned as errors, never as a
// Reply variant.
type Reply struct {
	Type ReplyType

	// For Type = ReplyTypeText
	Text string

	// For Type = ReplyTypeFunctionCall
	FunctionCall *chat.ToolCall
}

// ToolDefinition describes a tool advertised to the model.
type ToolDefinition struct {
	Name        string
	Description string
	Parameters  *ParameterSchema // nil when the tool takes no arguments
}

// ParameterSchema maps directly to standard JSON Schema.
type ParameterSchema struct {
	Type       string                    `json:"type"`
	Properties map[string]PropertySchema `json:"properties"`
	Required   []string                  `json:"required,omitempty"`
}

// PropertySchema defines a single parameter property.
type PropertySchema struct {
	Type        string          `json:"type"`
	Description string          `json:"description,omitempty"`
	Enum        []string        `json:"enum,omitempty"`
	Items       *PropertySchema `json:"items,omitempty"`
}
