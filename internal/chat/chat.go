package chat

import (
	"context"
	"log/slog"

	"mailroom.app/triage/common/llm"
	"mailroom.app/triage/internal/domain"
)

// Degraded-service replies. Neither counts as a completed turn, so the
// history goes back to the caller unchanged.
const (
	replyUnavailable = "Desculpe, o serviço de chat não está disponível no momento. Por favor, verifique a configuração da API."
	replyError       = "Desculpe, ocorreu um erro ao processar sua mensagem. Por favor, tente novamente."
)

// UnavailableReply is the fixed answer when no generative service is
// configured.
func UnavailableReply() string { return replyUnavailable }

// ErrorReply is the fixed apology when the generative service fails.
func ErrorReply() string { return replyError }

// Session relays conversations to the generative service. It holds no
// cross-request state; each call receives the full prior history and returns
// the extended one.
type Session struct {
	llm llm.Client
}

func New(client llm.Client) *Session {
	return &Session{llm: client}
}

// Converse replays the turn history, submits the new message once, and
// returns the reply plus the history extended by the user and assistant
// turns. On an unconfigured or failing service the fixed reply is returned
// and the history comes back unchanged, keeping the transcript replayable.
func (s *Session) Converse(ctx context.Context, message string, history []domain.ChatTurn) (string, []domain.ChatTurn) {
	if s.llm == nil {
		slog.WarnContext(ctx, "chat requested but no generative service configured")
		return replyUnavailable, history
	}

	turns := make([]llm.Message, 0, len(history))
	for _, turn := range history {
		turns = append(turns, llm.Message{Role: string(turn.Role), Content: turn.Content})
	}

	reply, err := s.llm.Chat(ctx, turns, message)
	if err != nil {
		slog.ErrorContext(ctx, "chat turn failed", "history_turns", len(history), "error", err)
		return replyError, history
	}

	updated := append(append([]domain.ChatTurn(nil), history...),
		domain.ChatTurn{Role: domain.RoleUser, Content: message},
		domain.ChatTurn{Role: domain.RoleAssistant, Content: reply},
	)
	return reply, updated
}
