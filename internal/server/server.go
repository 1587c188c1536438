// Package server exposes the chat orchestrator and the mock booking
// service over HTTP.
package server

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/laichithien/chatbot-customer-service/internal/bookingmock"
	"github.com/laichithien/chatbot-customer-service/internal/chat"
	"github.com/laichithien/chatbot-customer-service/internal/config"
	"github.com/laichithien/chatbot-customer-service/internal/orchestrator"
)

// TurnHandler processes one chat turn. Implemented by the orchestrator.
type TurnHandler interface {
	HandleTurn(ctx context.Context, req orchestrator.TurnRequest) (*orchestrator.TurnResult, error)
}

// Server routes HTTP requests to the orchestrator and the mock booking
// service.
type Server struct {
	turns   TurnHandler
	limiter *sessionLimiter
	handler http.Handler
}

// NewServer wires up routes and middleware.
func NewServer(turns TurnHandler, cfg *config.Config) *Server {
	s := &Server{
		turns:   turns,
		limiter: newSessionLimiter(cfg.RateLimitPerSecond, cfg.RateLimitBurst),
	}

	mux := http.NewServeMux()
	mux.HandleFunc("POST /chat", s.handleChat)
	mux.HandleFunc("POST /mock/change_booking", bookingmock.Handler())
	mux.HandleFunc("GET /health", s.handleHealth)

	s.handler = Recover(Logging(mux))
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.handler.ServeHTTP(w, r)
}

func (s *Server) handleChat(w http.ResponseWriter, r *http.Request) {
	var req ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "malformed request body")
		return
	}
	if req.UserID == "" {
		writeError(w, http.StatusBadRequest, "user_id is required")
		return
	}

	if !s.limiter.Allow(req.UserID) {
		writeError(w, http.StatusTooManyRequests, "too many requests for this session")
		return
	}

	attachments, err := decodeAttachments(req)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	result, err := s.turns.HandleTurn(r.Context(), orchestrator.TurnRequest{
		SessionID:   req.UserID,
		Text:        req.Message,
		Attachments: attachments,
	})
	if err != nil {
		if errors.Is(err, orchestrator.ErrEmptyMessage) || errors.Is(err, orchestrator.ErrMissingSession) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		slog.Error("turn failed", "user_id", req.UserID, "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	writeJSON(w, http.StatusOK, ChatResponse{
		BotResponse: result.Reply,
		SessionState: SessionState{
			HistoryLength:       result.HistoryLength,
			ActiveFlowStateKeys: result.ActiveFlowKeys,
		},
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// decodeAttachments converts the request's base64 payloads into binary
// attachment segments. A payload without its MIME type (or vice versa) is
// rejected.
func decodeAttachments(req ChatRequest) ([]chat.Attachment, error) {
	var attachments []chat.Attachment

	for _, part := range []struct {
		kind string
		data string
		mime string
	}{
		{"image", req.ImageBase64, req.ImageMIMEType},
		{"audio", req.AudioBase64, req.AudioMIMEType},
	} {
		if part.data == "" && part.mime == "" {
			continue
		}
		if part.data == "" || part.mime == "" {
			return nil, fmt.Errorf("%s attachment requires both payload and MIME type", part.kind)
		}
		decoded, err := base64.StdEncoding.DecodeString(part.data)
		if err != nil {
			return nil, fmt.Errorf("invalid base64 %s payload", part.kind)
		}
		attachments = append(attachments, chat.Attachment{MIMEType: part.mime, Data: decoded})
	}

	return attachments, nil
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, ErrorResponse{Error: msg})
}
