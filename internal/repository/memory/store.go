// Package memory provides map-backed implementations of the repository
// contracts. They back the service and controller tests and are handy for
// running the API without a database.
package memory

import (
	"sync"

	"chatbot-assistant-be/internal/entity"

	"github.com/google/uuid"
)

type Store struct {
	mu       sync.RWMutex
	users    map[uuid.UUID]entity.User
	sessions map[uuid.UUID]entity.ChatSession
	messages map[uuid.UUID][]entity.ChatMessage // keyed by chat session id
}

func NewStore() *Store {
	return &Store{
		users:    make(map[uuid.UUID]entity.User),
		sessions: make(map[uuid.UUID]entity.ChatSession),
		messages: make(map[uuid.UUID][]entity.ChatMessage),
	}
}
