package memory

import (
	"context"

	"chatbot-assistant-be/internal/repository/contract"
	"chatbot-assistant-be/internal/repository/unitofwork"
)

// UnitOfWork satisfies the unitofwork interfaces over the in-memory store.
// Begin/Commit/Rollback are no-ops: the store mutex already serializes
// writes and the tests don't need rollback semantics.
type UnitOfWork struct {
	store *Store
}

type Factory struct {
	store *Store
}

func NewFactory(store *Store) unitofwork.RepositoryFactory {
	return &Factory{store: store}
}

func (f *Factory) NewUnitOfWork(ctx context.Context) unitofwork.UnitOfWork {
	return &UnitOfWork{store: f.store}
}

func (u *UnitOfWork) Begin(ctx context.Context) error { return nil }
func (u *UnitOfWork) Commit() error                   { return nil }
func (u *UnitOfWork) Rollback() error                 { return nil }

func (u *UnitOfWork) UserRepository() contract.UserRepository {
	return NewUserRepository(u.store)
}

func (u *UnitOfWork) ChatSessionRepository() contract.ChatSessionRepository {
	return NewChatSessionRepository(u.store)
}

func (u *UnitOfWork) ChatMessageRepository() contract.ChatMessageRepository {
	return NewChatMessageRepository(u.store)
}
