package memory

import (
	"context"
	"sort"

	"chatbot-assistant-be/internal/entity"
	"chatbot-assistant-be/internal/repository/contract"

	"github.com/google/uuid"
)

type ChatSessionRepository struct {
	store *Store
}

func NewChatSessionRepository(store *Store) contract.ChatSessionRepository {
	return &ChatSessionRepository{store: store}
}

func (r *ChatSessionRepository) Create(ctx context.Context, session *entity.ChatSession) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	r.store.sessions[session.Id] = *session
	return nil
}

func (r *ChatSessionRepository) Update(ctx context.Context, session *entity.ChatSession) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	r.store.sessions[session.Id] = *session
	return nil
}

func (r *ChatSessionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	delete(r.store.sessions, id)
	return nil
}

func (r *ChatSessionRepository) FindByIdAndUser(ctx context.Context, id, userId uuid.UUID) (*entity.ChatSession, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	if s, ok := r.store.sessions[id]; ok && s.UserId == userId {
		found := s
		return &found, nil
	}
	return nil, nil
}

func (r *ChatSessionRepository) FindAllByUserId(ctx context.Context, userId uuid.UUID) ([]*entity.ChatSession, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	var sessions []*entity.ChatSession
	for _, s := range r.store.sessions {
		if s.UserId == userId {
			found := s
			sessions = append(sessions, &found)
		}
	}
	sort.SliceStable(sessions, func(i, j int) bool {
		return sessions[i].CreatedAt.After(sessions[j].CreatedAt)
	})
	return sessions, nil
}
