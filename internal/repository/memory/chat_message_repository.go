package memory

import (
	"context"
	"sort"

	"chatbot-assistant-be/internal/entity"
	"chatbot-assistant-be/internal/repository/contract"

	"github.com/google/uuid"
)

type ChatMessageRepository struct {
	store *Store
}

func NewChatMessageRepository(store *Store) contract.ChatMessageRepository {
	return &ChatMessageRepository{store: store}
}

func (r *ChatMessageRepository) Create(ctx context.Context, message *entity.ChatMessage) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	r.store.messages[message.ChatSessionId] = append(r.store.messages[message.ChatSessionId], *message)
	return nil
}

func (r *ChatMessageRepository) FindAllByChatSessionId(ctx context.Context, sessionId uuid.UUID) ([]*entity.ChatMessage, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	stored := r.store.messages[sessionId]
	messages := make([]*entity.ChatMessage, len(stored))
	for i, m := range stored {
		found := m
		messages[i] = &found
	}
	sort.SliceStable(messages, func(i, j int) bool {
		return messages[i].CreatedAt.Before(messages[j].CreatedAt)
	})
	return messages, nil
}

func (r *ChatMessageRepository) DeleteByChatSessionId(ctx context.Context, sessionId uuid.UUID) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	delete(r.store.messages, sessionId)
	return nil
}
