package services

import (
	"context"
	"strings"

	"retailbrain-dashboard/pkg/logger"
	"retailbrain-dashboard/pkg/models"
	"retailbrain-dashboard/pkg/retail"
	"retailbrain-dashboard/pkg/viewstate"
)

// Transcript roles.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Literal fallback turns; these exact texts are part of the UI contract.
const (
	copilotNoAnswerFallback  = "I could not generate a response."
	copilotUnreachableAnswer = "Unable to reach the copilot service right now. Please try again."
)

// CopilotService owns the per-session conversation with the copilot backend.
type CopilotService struct {
	client *retail.Client
	state  *viewstate.State
	log    *logger.Logger
}

// NewCopilotService creates a copilot controller.
func NewCopilotService(client *retail.Client, state *viewstate.State, log *logger.Logger) *CopilotService {
	return &CopilotService{client: client, state: state, log: log}
}

// Ask submits one query for a session and returns the transcript afterwards.
// Empty input is a no-op. The user turn is appended before the request is
// issued, and every outcome appends exactly one assistant turn: the answer, a
// fallback when the answer field is absent, or a fallback when the service is
// unreachable. The conversation is never left hanging.
func (s *CopilotService) Ask(ctx context.Context, sessionID, query string) []models.ChatMessage {
	trimmed := strings.TrimSpace(query)
	if trimmed == "" {
		return s.state.Transcript(sessionID)
	}

	s.state.AppendMessage(sessionID, RoleUser, trimmed)

	resp, err := s.client.CopilotChat(ctx, trimmed)
	switch {
	case err != nil:
		s.log.Warn().Err(err).Msg("copilot request failed")
		s.state.AppendMessage(sessionID, RoleAssistant, copilotUnreachableAnswer)
	case resp.Answer == "":
		s.state.AppendMessage(sessionID, RoleAssistant, copilotNoAnswerFallback)
	default:
		s.state.AppendMessage(sessionID, RoleAssistant, resp.Answer)
	}

	return s.state.Transcript(sessionID)
}

// Transcript returns the session transcript in append order.
func (s *CopilotService) Transcript(sessionID string) []models.ChatMessage {
	return s.state.Transcript(sessionID)
}
