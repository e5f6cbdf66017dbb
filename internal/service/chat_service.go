package service

import (
	"context"
	"errors"
	"time"

	"chatbot-assistant-be/internal/constant"
	"chatbot-assistant-be/internal/entity"
	"chatbot-assistant-be/internal/pkg/logger"
	"chatbot-assistant-be/internal/repository/unitofwork"
	"chatbot-assistant-be/pkg/chatbot"

	"github.com/google/uuid"
)

// ErrChatNotFound covers both "does not exist" and "owned by someone else"
// so existence of other users' chats is never leaked.
var ErrChatNotFound = errors.New("chat not found")

type IChatService interface {
	CreateChat(ctx context.Context, userId uuid.UUID, title string) (*entity.ChatSession, error)
	ListChats(ctx context.Context, userId uuid.UUID) ([]*entity.ChatSession, error)
	RenameChat(ctx context.Context, chatId, userId uuid.UUID, title string) error
	DeleteChat(ctx context.Context, chatId, userId uuid.UUID) error
	ListMessages(ctx context.Context, chatId, userId uuid.UUID) ([]*entity.ChatMessage, error)
	SendMessage(ctx context.Context, chatId, userId uuid.UUID, content string) (*entity.ChatMessage, *entity.ChatMessage, error)
}

type chatService struct {
	uowFactory   unitofwork.RepositoryFactory
	provider     chatbot.Provider
	logger       logger.ILogger
	replyTimeout time.Duration
}

func NewChatService(uowFactory unitofwork.RepositoryFactory, provider chatbot.Provider, l logger.ILogger, replyTimeout time.Duration) IChatService {
	return &chatService{
		uowFactory:   uowFactory,
		provider:     provider,
		logger:       l,
		replyTimeout: replyTimeout,
	}
}

func (s *chatService) CreateChat(ctx context.Context, userId uuid.UUID, title string) (*entity.ChatSession, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	session := &entity.ChatSession{
		Id:        uuid.New(),
		UserId:    userId,
		Title:     title,
		CreatedAt: time.Now(),
	}
	if err := uow.ChatSessionRepository().Create(ctx, session); err != nil {
		return nil, err
	}

	s.logger.Info("chat", "chat session created", map[string]interface{}{
		"chat_id": session.Id,
		"user_id": userId,
	})
	return session, nil
}

func (s *chatService) ListChats(ctx context.Context, userId uuid.UUID) ([]*entity.ChatSession, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	return uow.ChatSessionRepository().FindAllByUserId(ctx, userId)
}

func (s *chatService) RenameChat(ctx context.Context, chatId, userId uuid.UUID, title string) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	session, err := uow.ChatSessionRepository().FindByIdAndUser(ctx, chatId, userId)
	if err != nil {
		return err
	}
	if session == nil {
		return ErrChatNotFound
	}

	session.Title = title
	return uow.ChatSessionRepository().Update(ctx, session)
}

// DeleteChat removes the session and all of its messages in one transaction.
func (s *chatService) DeleteChat(ctx context.Context, chatId, userId uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	session, err := uow.ChatSessionRepository().FindByIdAndUser(ctx, chatId, userId)
	if err != nil {
		return err
	}
	if session == nil {
		return ErrChatNotFound
	}

	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer uow.Rollback()

	if err := uow.ChatMessageRepository().DeleteByChatSessionId(ctx, chatId); err != nil {
		return err
	}
	if err := uow.ChatSessionRepository().Delete(ctx, chatId); err != nil {
		return err
	}

	if err := uow.Commit(); err != nil {
		return err
	}

	s.logger.Info("chat", "chat session deleted", map[string]interface{}{
		"chat_id": chatId,
		"user_id": userId,
	})
	return nil
}

func (s *chatService) ListMessages(ctx context.Context, chatId, userId uuid.UUID) ([]*entity.ChatMessage, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	session, err := uow.ChatSessionRepository().FindByIdAndUser(ctx, chatId, userId)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, ErrChatNotFound
	}

	return uow.ChatMessageRepository().FindAllByChatSessionId(ctx, chatId)
}

// SendMessage persists the user message, asks the completion provider for a
// reply, and persists the reply as the bot message. Provider failures never
// surface: they turn into a stored fallback reply. The two writes are
// deliberately separate statements so no transaction stays open across the
// provider round trip.
func (s *chatService) SendMessage(ctx context.Context, chatId, userId uuid.UUID, content string) (*entity.ChatMessage, *entity.ChatMessage, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	session, err := uow.ChatSessionRepository().FindByIdAndUser(ctx, chatId, userId)
	if err != nil {
		return nil, nil, err
	}
	if session == nil {
		return nil, nil, ErrChatNotFound
	}

	// 1. Persist the user message. This write must be durable before the
	// provider is called.
	userMessage := &entity.ChatMessage{
		Id:            uuid.New(),
		ChatSessionId: chatId,
		Sender:        constant.MessageSenderUser,
		Content:       content,
		CreatedAt:     time.Now(),
	}
	if err := uow.ChatMessageRepository().Create(ctx, userMessage); err != nil {
		return nil, nil, err
	}

	// 2. Generate the reply. Each turn is stateless: only the current
	// message is sent, no history.
	reply := s.generateReply(ctx, chatId, content)

	// 3. Persist the bot message. A failure here leaves the user message in
	// place without a reply; that is accepted, best-effort behavior.
	botMessage := &entity.ChatMessage{
		Id:            uuid.New(),
		ChatSessionId: chatId,
		Sender:        constant.MessageSenderBot,
		Content:       reply,
		CreatedAt:     time.Now(),
	}
	if err := uow.ChatMessageRepository().Create(ctx, botMessage); err != nil {
		return nil, nil, err
	}

	return userMessage, botMessage, nil
}

func (s *chatService) generateReply(ctx context.Context, chatId uuid.UUID, content string) string {
	callCtx, cancel := context.WithTimeout(ctx, s.replyTimeout)
	defer cancel()

	reply, err := s.provider.Complete(callCtx, content)
	if err != nil {
		if errors.Is(err, chatbot.ErrSafetyBlocked) {
			s.logger.Warn("chatbot", "prompt blocked by safety filters", map[string]interface{}{
				"chat_id": chatId,
			})
			return constant.SafetyFallbackReply
		}
		s.logger.Error("chatbot", "completion provider failed", map[string]interface{}{
			"chat_id": chatId,
			"error":   err.Error(),
		})
		return constant.FallbackReply
	}
	return reply
}
