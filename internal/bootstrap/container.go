package bootstrap

import (
	"log"

	"chatbot-assistant-be/internal/config"
	"chatbot-assistant-be/internal/controller"
	"chatbot-assistant-be/internal/pkg/logger"
	"chatbot-assistant-be/internal/pkg/serverutils"
	"chatbot-assistant-be/internal/pkg/token"
	"chatbot-assistant-be/internal/repository/unitofwork"
	"chatbot-assistant-be/internal/service"
	"chatbot-assistant-be/pkg/chatbot"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type Container struct {
	AuthController controller.IAuthController
	ChatController controller.IChatController

	// AuthGuard is the middleware the server mounts in front of
	// token-protected routes.
	AuthGuard fiber.Handler
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	// 2. Token service (signed once at startup, process-wide lifetime)
	tokenService := token.NewService(cfg.Auth.JWTSecret, token.DefaultTTL)

	// 3. Completion provider, constructed once and injected
	provider, err := chatbot.NewProvider(
		cfg.Chatbot.Provider,
		cfg.Chatbot.Model,
		cfg.Chatbot.APIKey,
		cfg.Chatbot.Timeout,
	)
	if err != nil {
		log.Fatalf("[FATAL] Failed to initialize completion provider: %v", err)
	}
	log.Printf("[INFO] Using completion provider: %s", cfg.Chatbot.Provider)

	// 4. Services
	authService := service.NewAuthService(uowFactory, tokenService, sysLogger)
	chatService := service.NewChatService(uowFactory, provider, sysLogger, cfg.Chatbot.Timeout)

	// 5. Controllers
	return &Container{
		AuthController: controller.NewAuthController(authService, cfg.Auth.TokenTransport, tokenService.TTL()),
		ChatController: controller.NewChatController(chatService),
		AuthGuard:      serverutils.AuthGuard(tokenService, cfg.Auth.TokenTransport),
	}
}
