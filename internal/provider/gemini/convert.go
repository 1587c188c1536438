package gemini

import (
	"fmt"

	"github.com/laichithien/chatbot-customer-service/internal/chat"
	provider "github.com/laichithien/chatbot-customer-service/internal/provider/models"
	"google.golang.org/genai"
)

// Fallback replies for responses the model produced but the adapter cannot
// use. Returned as text so the conversation keeps moving.
const (
	fallbackEmptyResponse   = "I'm sorry, I encountered an issue processing your request with the AI model."
	fallbackUnusualResponse = "I received an unusual response from the AI model. Please try again."
)

// toGeminiContents converts the request history plus the current prompt and
// attachments to Gemini Content format. Rejects a request that carries no
// content at all.
func toGeminiContents(req *provider.SendRequest) ([]*genai.Content, error) {
	contents := make([]*genai.Content, 0, len(req.History)+1)

	for _, msg := range req.History {
		if content := messageToGeminiContent(msg); content != nil {
			contents = append(contents, content)
		}
	}

	parts := make([]*genai.Part, 0, 1+len(req.Attachments))
	if req.Prompt != "" {
		parts = append(parts, genai.NewPartFromText(req.Prompt))
	}
	for _, att := range req.Attachments {
		parts = append(parts, genai.NewPartFromBytes(att.Data, att.MIMEType))
	}
	if len(parts) > 0 {
		contents = append(contents, &genai.Content{Role: "user", Parts: parts})
	}

	if len(contents) == 0 {
		return nil, &provider.ProviderError{
			Code:    provider.ErrorCodeInvalidRequest,
			Message: "cannot send an empty message to the model",
		}
	}

	return contents, nil
}

// messageToGeminiContent converts a single message to Gemini Content format.
func messageToGeminiContent(msg chat.Message) *genai.Content {
	role := "user"
	if msg.Role == chat.RoleModel {
		role = "model"
	}

	parts := make([]*genai.Part, 0, 1)

	if msg.Text != "" {
		parts = append(parts, genai.NewPartFromText(msg.Text))
	}

	for _, att := range msg.Attachments {
		parts = append(parts, genai.NewPartFromBytes(att.Data, att.MIMEType))
	}

	if msg.ToolCall != nil {
		parts = append(parts, &genai.Part{
			FunctionCall: &genai.FunctionCall{
				Name: msg.ToolCall.Name,
				Args: msg.ToolCall.Args,
			},
		})
	}

	if msg.ToolResult != nil {
		responseContent := msg.ToolResult.Content
		if msg.ToolResult.Error != "" {
			responseContent = fmt.Sprintf("Error: %s", msg.ToolResult.Error)
		}

		parts = append(parts, &genai.Part{
			FunctionResponse: &genai.FunctionResponse{
				Name: msg.ToolResult.Name,
				Response: map[string]any{
					"content": responseContent,
				},
			},
		})
	}

	// Skip empty messages
	if len(parts) == 0 {
		return nil
	}

	return &genai.Content{
		Role:  role,
		Parts: parts,
	}
}

// toGeminiConfig builds the generation config, including any registered
// tool declarations.
func toGeminiConfig(tools []provider.ToolDefinition) *genai.GenerateContentConfig {
	config := &genai.GenerateContentConfig{}
	if len(tools) > 0 {
		config.Tools = toGeminiTools(tools)
	}
	return config
}

// toGeminiTools converts internal ToolDefinition to Gemini tools.
func toGeminiTools(tools []provider.ToolDefinition) []*genai.Tool {
	functionDeclarations := make([]*genai.FunctionDeclaration, 0, len(tools))

	for _, tool := range tools {
		fd := &genai.FunctionDeclaration{
			Name:        tool.Name,
			Description: tool.Description,
		}

		if tool.Parameters != nil {
			fd.Parameters = toGeminiSchema(tool.Parameters)
		}

		functionDeclarations = append(functionDeclarations, fd)
	}

	return []*genai.Tool{
		{FunctionDeclarations: functionDeclarations},
	}
}

// toGeminiSchema converts ParameterSchema to Gemini Schema.
func toGeminiSchema(params *provider.ParameterSchema) *genai.Schema {
	schema := &genai.Schema{
		Type: genai.TypeObject,
	}

	if params.Properties != nil {
		schema.Properties = make(map[string]*genai.Schema)
		for name, prop := range params.Properties {
			schema.Properties[name] = &genai.Schema{
				Type:        toGeminiType(prop.Type),
				Description: prop.Description,
			}

			if len(prop.Enum) > 0 {
				schema.Properties[name].Enum = prop.Enum
			}

			if prop.Items != nil {
				schema.Properties[name].Items = &genai.Schema{
					Type:        toGeminiType(prop.Items.Type),
					Description: prop.Items.Description,
				}
			}
		}
	}

	if len(params.Required) > 0 {
		schema.Required = params.Required
	}

	return schema
}

// toGeminiType converts string type to Gemini Type.
func toGeminiType(typeStr string) genai.Type {
	switch typeStr {
	case "string":
		return genai.TypeString
	case "number":
		return genai.TypeNumber
	case "integer":
		return genai.TypeInteger
	case "boolean":
		return genai.TypeBoolean
	case "array":
		return genai.TypeArray
	case "object":
		return genai.TypeObject
	default:
		return genai.TypeString
	}
}

// fromGeminiResponse maps a Gemini response to the reply union. A response
// with no usable content becomes a fallback text reply, not an error.
func fromGeminiResponse(resp *genai.GenerateContentResponse) *provider.Reply {
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return &provider.Reply{
			Type: provider.ReplyTypeText,
			Text: fallbackEmptyResponse,
		}
	}

	part := resp.Candidates[0].Content.Parts[0]

	if part.FunctionCall != nil {
		return &provider.Reply{
			Type: provider.ReplyTypeFunctionCall,
			FunctionCall: &chat.ToolCall{
				Name: part.FunctionCall.Name,
				Args: part.FunctionCall.Args,
			},
		}
	}

	if part.Text != "" {
		return &provider.Reply{
			Type: provider.ReplyTypeText,
			Text: part.Text,
		}
	}

	return &provider.Reply{
		Type: provider.ReplyTypeText,
		Text: fallbackUnusualResponse,
	}
}

// mapGeminiError maps Gemini API errors to provider errors.
func mapGeminiError(err error) error {
	if err == nil {
		return nil
	}

	apiErr, ok := err.(*genai.APIError)
	if !ok {
		return &provider.ProviderError{
			Code:       provider.ErrorCodeNetwork,
			Message:    "network error",
			Underlying: err,
			Retryable:  true,
		}
	}

	switch apiErr.Code {
	case 401, 403:
		return &provider.ProviderError{
			Code:       provider.ErrorCodeAuth,
			Message:    "authentication failed",
			Underlying: err,
			Retryable:  false,
		}
	case 429:
		return &provider.ProviderError{
			Code:       provider.ErrorCodeRateLimit,
			Message:    "rate limit exceeded",
			Underlying: err,
			Retryable:  true,
		}
	case 400:
		return &provider.ProviderError{
			Code:       provider.ErrorCodeInvalidRequest,
			Message:    fmt.Sprintf("invalid request: %s", apiErr.Message),
			Underlying: err,
			Retryable:  false,
		}
	case 500, 502, 503, 504:
		return &provider.ProviderError{
			Code:       provider.ErrorCodeUnavailable,
			Message:    "service unavailable",
			Underlying: err,
			Retryable:  true,
		}
	default:
		return &provider.ProviderError{
			Code:       provider.ErrorCodeNetwork,
			Message:    fmt.Sprintf("API error: %s", apiErr.Message),
			Underlying: err,
			Retryable:  true,
		}
	}
}
