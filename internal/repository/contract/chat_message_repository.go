package contract

import (
	"context"

	"chatbot-assistant-be/internal/entity"

	"github.com/google/uuid"
)

type ChatMessageRepository interface {
	Create(ctx context.Context, message *entity.ChatMessage) error
	// FindAllByChatSessionId returns messages ordered by creation time,
	// oldest first.
	FindAllByChatSessionId(ctx context.Context, sessionId uuid.UUID) ([]*entity.ChatMessage, error)
	DeleteByChatSessionId(ctx context.Context, sessionId uuid.UUID) error
}
