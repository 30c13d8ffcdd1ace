package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"mailroom.app/triage/internal/domain"
	"mailroom.app/triage/internal/http/dto"
)

// Conversation is the chat session contract consumed by the HTTP layer.
type Conversation interface {
	Converse(ctx context.Context, message string, history []domain.ChatTurn) (string, []domain.ChatTurn)
}

type ChatHandler struct {
	session Conversation
}

func NewChatHandler(session Conversation) *ChatHandler {
	return &ChatHandler{session: session}
}

// Chat relays one conversational turn.
func (h *ChatHandler) Chat(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.WarnContext(ctx, "invalid chat request", "error", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	history := make([]domain.ChatTurn, len(req.History))
	for i, turn := range req.History {
		history[i] = domain.ChatTurn{Role: domain.Role(turn.Role), Content: turn.Content}
	}

	reply, updated := h.session.Converse(ctx, req.Message, history)

	out := make([]dto.ChatTurn, len(updated))
	for i, turn := range updated {
		out[i] = dto.ChatTurn{Role: string(turn.Role), Content: turn.Content}
	}
	c.JSON(http.StatusOK, dto.ChatResponse{Reply: reply, History: out})
}
