package controller

import (
	"errors"

	"chatbot-assistant-be/internal/dto"
	"chatbot-assistant-be/internal/pkg/serverutils"
	"chatbot-assistant-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IChatController interface {
	RegisterRoutes(r fiber.Router, authGuard fiber.Handler)
	CreateChat(ctx *fiber.Ctx) error
	ListChats(ctx *fiber.Ctx) error
	RenameChat(ctx *fiber.Ctx) error
	DeleteChat(ctx *fiber.Ctx) error
	ListMessages(ctx *fiber.Ctx) error
	SendMessage(ctx *fiber.Ctx) error
}

type chatController struct {
	service service.IChatService
}

func NewChatController(svc service.IChatService) IChatController {
	return &chatController{service: svc}
}

func (c *chatController) RegisterRoutes(r fiber.Router, authGuard fiber.Handler) {
	chats := r.Group("/chats", authGuard)
	chats.Post("/", c.CreateChat)
	chats.Get("/", c.ListChats)
	chats.Put("/:chatId", c.RenameChat)
	chats.Delete("/:chatId", c.DeleteChat)
	chats.Get("/:chatId/messages", c.ListMessages)
	chats.Post("/:chatId/messages", c.SendMessage)
}

func (c *chatController) CreateChat(ctx *fiber.Ctx) error {
	var req dto.CreateChatRequest
	// Title is optional; an empty body is a chat without a title.
	_ = ctx.BodyParser(&req)

	session, err := c.service.CreateChat(ctx.Context(), serverutils.UserId(ctx), req.Title)
	if err != nil {
		return internalError(ctx)
	}

	return ctx.Status(fiber.StatusCreated).JSON(dto.CreateChatResponse{
		Id:        session.Id,
		Title:     session.Title,
		UserId:    session.UserId,
		CreatedAt: session.CreatedAt,
	})
}

func (c *chatController) ListChats(ctx *fiber.Ctx) error {
	sessions, err := c.service.ListChats(ctx.Context(), serverutils.UserId(ctx))
	if err != nil {
		return internalError(ctx)
	}

	items := make([]dto.ChatListItem, 0, len(sessions))
	for _, s := range sessions {
		items = append(items, dto.ChatListItem{
			Id:        s.Id,
			Title:     s.Title,
			CreatedAt: s.CreatedAt,
		})
	}
	return ctx.JSON(items)
}

func (c *chatController) RenameChat(ctx *fiber.Ctx) error {
	chatId, err := uuid.Parse(ctx.Params("chatId"))
	if err != nil {
		return renameNotFound(ctx)
	}

	var req dto.RenameChatRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Title is required"})
	}
	if err := serverutils.ValidateStruct(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Title is required"})
	}

	if err := c.service.RenameChat(ctx.Context(), chatId, serverutils.UserId(ctx), req.Title); err != nil {
		if errors.Is(err, service.ErrChatNotFound) {
			return renameNotFound(ctx)
		}
		return internalError(ctx)
	}
	return ctx.JSON(fiber.Map{"message": "Chat title updated"})
}

func (c *chatController) DeleteChat(ctx *fiber.Ctx) error {
	chatId, err := uuid.Parse(ctx.Params("chatId"))
	if err != nil {
		return chatNotFound(ctx)
	}

	if err := c.service.DeleteChat(ctx.Context(), chatId, serverutils.UserId(ctx)); err != nil {
		if errors.Is(err, service.ErrChatNotFound) {
			return chatNotFound(ctx)
		}
		return internalError(ctx)
	}
	return ctx.JSON(fiber.Map{"message": "Chat deleted successfully"})
}

func (c *chatController) ListMessages(ctx *fiber.Ctx) error {
	chatId, err := uuid.Parse(ctx.Params("chatId"))
	if err != nil {
		return chatNotFound(ctx)
	}

	messages, err := c.service.ListMessages(ctx.Context(), chatId, serverutils.UserId(ctx))
	if err != nil {
		if errors.Is(err, service.ErrChatNotFound) {
			return chatNotFound(ctx)
		}
		return internalError(ctx)
	}

	items := make([]dto.MessageListItem, 0, len(messages))
	for _, m := range messages {
		items = append(items, dto.MessageListItem{
			Id:        m.Id,
			Sender:    m.Sender,
			Content:   m.Content,
			CreatedAt: m.CreatedAt,
		})
	}
	return ctx.JSON(items)
}

func (c *chatController) SendMessage(ctx *fiber.Ctx) error {
	chatId, err := uuid.Parse(ctx.Params("chatId"))
	if err != nil {
		return chatNotFound(ctx)
	}

	var req dto.SendMessageRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Content is required"})
	}
	if err := serverutils.ValidateStruct(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Content is required"})
	}

	userMessage, botMessage, err := c.service.SendMessage(ctx.Context(), chatId, serverutils.UserId(ctx), req.Content)
	if err != nil {
		if errors.Is(err, service.ErrChatNotFound) {
			return chatNotFound(ctx)
		}
		return internalError(ctx)
	}

	return ctx.JSON(dto.SendMessageResponse{
		UserMessage: dto.MessageDTO{
			Id:        userMessage.Id,
			Content:   userMessage.Content,
			Sender:    userMessage.Sender,
			ChatId:    userMessage.ChatSessionId,
			CreatedAt: userMessage.CreatedAt,
		},
		BotMessage: dto.MessageDTO{
			Id:        botMessage.Id,
			Content:   botMessage.Content,
			Sender:    botMessage.Sender,
			ChatId:    botMessage.ChatSessionId,
			CreatedAt: botMessage.CreatedAt,
		},
	})
}

func chatNotFound(ctx *fiber.Ctx) error {
	return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Chat not found"})
}

func renameNotFound(ctx *fiber.Ctx) error {
	return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Chat not found or you do not have permission to rename it"})
}

func internalError(ctx *fiber.Ctx) error {
	return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Something went wrong"})
}
