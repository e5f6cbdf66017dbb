package contract

import (
	"context"

	"chatbot-assistant-be/internal/entity"

	"github.com/google/uuid"
)

type ChatSessionRepository interface {
	Create(ctx context.Context, session *entity.ChatSession) error
	Update(ctx context.Context, session *entity.ChatSession) error
	Delete(ctx context.Context, id uuid.UUID) error
	// FindByIdAndUser checks existence and ownership in one query so the
	// caller cannot distinguish "absent" from "someone else's".
	FindByIdAndUser(ctx context.Context, id, userId uuid.UUID) (*entity.ChatSession, error)
	// FindAllByUserId returns the user's sessions ordered by creation time,
	// newest first.
	FindAllByUserId(ctx context.Context, userId uuid.UUID) ([]*entity.ChatSession, error)
}
