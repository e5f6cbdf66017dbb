package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateChatRequest struct {
	Title string `json:"title"`
}

type CreateChatResponse struct {
	Id        uuid.UUID `json:"id"`
	Title     string    `json:"title"`
	UserId    uuid.UUID `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
}

type ChatListItem struct {
	Id        uuid.UUID `json:"id"`
	Title     string    `json:"title"`
	CreatedAt time.Time `json:"created_at"`
}

type RenameChatRequest struct {
	Title string `json:"title" validate:"required"`
}

type MessageListItem struct {
	Id        uuid.UUID `json:"id"`
	Sender    string    `json:"sender"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

type SendMessageRequest struct {
	Content string `json:"content" validate:"required"`
}

type MessageDTO struct {
	Id        uuid.UUID `json:"id"`
	Content   string    `json:"content"`
	Sender    string    `json:"sender"`
	ChatId    uuid.UUID `json:"chat_id"`
	CreatedAt time.Time `json:"created_at"`
}

type SendMessageResponse struct {
	UserMessage MessageDTO `json:"user_message"`
	BotMessage  MessageDTO `json:"bot_message"`
}
