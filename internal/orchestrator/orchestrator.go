// Package orchestrator drives one chat turn end to end: it appends the
// user turn to the session history, invokes the model, dispatches any
// requested tool, folds the result back into history, re-invokes the model
// for the final reply, and commits the session state.
package orchestrator

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/laichithien/chatbot-customer-service/internal/chat"
	"github.com/laichithien/chatbot-customer-service/internal/conversation"
	"github.com/laichithien/chatbot-customer-service/internal/orchestrator/adapter"
	provider "github.com/laichithien/chatbot-customer-service/internal/provider/models"
)

// followUpPrompt is the synthetic internal message sent with the extended
// history after a tool execution. It is never appended to history.
const followUpPrompt = "Based on the tool's output, what should I say to the user?"

// Replies for responses the turn loop cannot act on.
const (
	fallbackAcknowledgement = "I've processed that action. How else can I help?"
	unexpectedFormatReply   = "The AI agent returned an unexpected response format."
)

// Orchestrator manages the turn loop, tool execution, and per-session
// conversation state. Safe for concurrent use; turns on the same session
// are serialized by the store's session lock.
type Orchestrator struct {
	provider provider.Provider
	store    *conversation.Store
	tools    map[string]adapter.Tool
	timeout  time.Duration
}

// New creates an Orchestrator. timeout bounds each model call.
func New(p provider.Provider, store *conversation.Store, tools []adapter.Tool, timeout time.Duration) *Orchestrator {
	toolMap := make(map[string]adapter.Tool)
	for _, t := range tools {
		toolMap[t.Name()] = t
	}

	return &Orchestrator{
		provider: p,
		store:    store,
		tools:    toolMap,
		timeout:  timeout,
	}
}

// ToolDefinitions returns the schemas of all registered tools, for
// advertising to the provider at startup.
func (o *Orchestrator) ToolDefinitions() []provider.ToolDefinition {
	defs := make([]provider.ToolDefinition, 0, len(o.tools))
	for _, t := range o.tools {
		defs = append(defs, t.Definition())
	}
	return defs
}

// TurnRequest is one inbound chat turn.
type TurnRequest struct {
	SessionID   string
	Text        string
	Attachments []chat.Attachment
}

// TurnResult is the reply plus a summary of the committed session state.
type TurnResult struct {
	Reply          string
	HistoryLength  int
	ActiveFlowKeys []string
}

// HandleTurn executes one turn. Session state is committed only when the
// turn completes or definitively errors; a cancelled turn leaves the
// stored history and flow state untouched.
func (o *Orchestrator) HandleTurn(ctx context.Context, req TurnRequest) (*TurnResult, error) {
	if req.SessionID == "" {
		return nil, ErrMissingSession
	}

	sess := o.store.Acquire(req.SessionID)
	defer sess.Release()

	history := sess.History()
	flow := sess.Flow()

	userMsg := chat.Message{Role: chat.RoleUser, Text: req.Text, Attachments: req.Attachments}
	if userMsg.IsEmpty() {
		if len(history) == 0 {
			return nil, ErrEmptyMessage
		}
		// Nothing to append, but the history can still carry the turn.
	} else {
		history = append(history, userMsg)
	}

	slog.Debug("turn started", "session_id", req.SessionID, "history_length", len(history))

	reply, err := o.send(ctx, history, "")
	if err != nil {
		// The raw model failure is surfaced as the reply, not recorded as
		// a model message. Flow state keeps its pre-turn value.
		return o.commit(sess, req.SessionID, history, flow, err.Error())
	}

	switch reply.Type {
	case provider.ReplyTypeText:
		history = append(history, chat.Message{Role: chat.RoleModel, Text: reply.Text})
		return o.commit(sess, req.SessionID, history, flow, reply.Text)

	case provider.ReplyTypeFunctionCall:
		return o.handleFunctionCall(ctx, sess, req.SessionID, history, flow, reply.FunctionCall)

	default:
		history = append(history, chat.Message{Role: chat.RoleModel, Text: unexpectedFormatReply})
		return o.commit(sess, req.SessionID, history, flow, unexpectedFormatReply)
	}
}

// handleFunctionCall runs the tool requested by the model and re-invokes
// the model for the final reply.
func (o *Orchestrator) handleFunctionCall(
	ctx context.Context,
	sess *conversation.Session,
	sessionID string,
	history []chat.Message,
	flow chat.FlowState,
	call *chat.ToolCall,
) (*TurnResult, error) {
	slog.Debug("model requested tool", "session_id", sessionID, "tool", call.Name, "args", call.Args)

	history = append(history, chat.Message{Role: chat.RoleModel, ToolCall: call})

	args := resolveArgs(call, flow)
	result := o.executeTool(ctx, call.Name, args)
	history = append(history, chat.Message{Role: chat.RoleFunction, ToolResult: &result})

	flow = applyFlowTransition(flow, call.Name, result)

	finalReply, err := o.send(ctx, history, followUpPrompt)
	if err != nil {
		return o.commit(sess, sessionID, history, flow, err.Error())
	}

	replyText := fallbackAcknowledgement
	if finalReply.Type == provider.ReplyTypeText {
		replyText = finalReply.Text
	} else {
		// A second function call here is unexpected; acknowledge
		// generically so the tool result is still followed by a model
		// message in history.
		slog.Warn("unexpected second function call", "session_id", sessionID, "tool", call.Name)
	}
	history = append(history, chat.Message{Role: chat.RoleModel, Text: replyText})

	return o.commit(sess, sessionID, history, flow, replyText)
}

// resolveArgs copies the call's arguments and injects the collected
// booking id into a confirm call that omitted it.
func resolveArgs(call *chat.ToolCall, flow chat.FlowState) map[string]any {
	args := make(map[string]any, len(call.Args))
	for k, v := range call.Args {
		args[k] = v
	}

	if call.Name == adapter.ToolConfirmChange && flow.CollectedID != "" {
		if _, ok := args["booking_id"]; !ok {
			args["booking_id"] = flow.CollectedID
		}
	}

	return args
}

// executeTool dispatches to the named tool, converting every failure mode
// into an error ToolResult. Tool failures never abort the turn; they are
// fed back to the model.
func (o *Orchestrator) executeTool(ctx context.Context, name string, args map[string]any) chat.ToolResult {
	tool, ok := o.tools[name]
	if !ok {
		return chat.ToolResult{
			Name:  name,
			Error: fmt.Sprintf("tool %q not found", name),
		}
	}

	content, err := tool.Execute(ctx, args)
	if err != nil {
		slog.Warn("tool execution failed", "tool", name, "error", err)
		return chat.ToolResult{
			Name:  name,
			Error: err.Error(),
		}
	}

	slog.Debug("tool executed", "tool", name)
	return chat.ToolResult{
		Name:    name,
		Content: content,
	}
}

// send invokes the provider with the model-call timeout applied.
func (o *Orchestrator) send(ctx context.Context, history []chat.Message, prompt string) (*provider.Reply, error) {
	ctx, cancel := context.WithTimeout(ctx, o.timeout)
	defer cancel()

	return o.provider.Send(ctx, &provider.SendRequest{
		History: history,
		Prompt:  prompt,
	})
}

// commit persists the turn's state and builds the result summary.
func (o *Orchestrator) commit(
	sess *conversation.Session,
	sessionID string,
	history []chat.Message,
	flow chat.FlowState,
	reply string,
) (*TurnResult, error) {
	if err := sess.Commit(history, flow); err != nil {
		return nil, fmt.Errorf("commit session %q: %w", sessionID, err)
	}

	slog.Debug("turn committed", "session_id", sessionID,
		"history_length", len(history), "flow_keys", flow.Keys())

	return &TurnResult{
		Reply:          reply,
		HistoryLength:  len(history),
		ActiveFlowKeys: flow.Keys(),
	}, nil
}
