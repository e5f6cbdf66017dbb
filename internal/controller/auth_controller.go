package controller

import (
	"errors"
	"time"

	"chatbot-assistant-be/internal/dto"
	"chatbot-assistant-be/internal/pkg/serverutils"
	"chatbot-assistant-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IAuthController interface {
	RegisterRoutes(r fiber.Router, authGuard fiber.Handler)
	Index(ctx *fiber.Ctx) error
	Test(ctx *fiber.Ctx) error
	Register(ctx *fiber.Ctx) error
	Login(ctx *fiber.Ctx) error
	AuthCheck(ctx *fiber.Ctx) error
	Logout(ctx *fiber.Ctx) error
}

type authController struct {
	service   service.IAuthService
	transport string
	tokenTTL  time.Duration
}

func NewAuthController(svc service.IAuthService, transport string, tokenTTL time.Duration) IAuthController {
	return &authController{
		service:   svc,
		transport: transport,
		tokenTTL:  tokenTTL,
	}
}

func (c *authController) RegisterRoutes(r fiber.Router, authGuard fiber.Handler) {
	r.Get("/", c.Index)
	r.Get("/test", c.Test)
	r.Post("/register", c.Register)
	r.Post("/login", c.Login)
	r.Get("/auth-check", authGuard, c.AuthCheck)
	r.Post("/logout", authGuard, c.Logout)
}

func (c *authController) Index(ctx *fiber.Ctx) error {
	return ctx.JSON(fiber.Map{"message": "AI Chatbot Assistant API"})
}

// Test is the unauthenticated liveness probe the web client pings.
func (c *authController) Test(ctx *fiber.Ctx) error {
	return ctx.JSON(fiber.Map{"msg": "hey"})
}

func (c *authController) Register(ctx *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Username and password are required"})
	}
	if err := serverutils.ValidateStruct(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Username and password are required"})
	}

	res, err := c.service.Register(ctx.Context(), &req)
	if err != nil {
		if errors.Is(err, service.ErrUsernameTaken) {
			return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Username already taken"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Something went wrong"})
	}

	body := fiber.Map{
		"message": "User registered successfully",
		"user":    res.User,
	}
	c.deliverToken(ctx, res.Token, body)
	return ctx.Status(fiber.StatusCreated).JSON(body)
}

func (c *authController) Login(ctx *fiber.Ctx) error {
	var req dto.LoginRequest
	// A malformed or incomplete body can't match any credentials; it falls
	// through to the same 401 as a wrong password.
	_ = ctx.BodyParser(&req)

	res, err := c.service.Login(ctx.Context(), &req)
	if err != nil {
		return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid credentials"})
	}

	body := fiber.Map{
		"message": "Login successful",
		"user":    res.User,
	}
	c.deliverToken(ctx, res.Token, body)
	return ctx.JSON(body)
}

func (c *authController) AuthCheck(ctx *fiber.Ctx) error {
	user, err := c.service.CurrentUser(ctx.Context(), serverutils.UserId(ctx))
	if err != nil {
		return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}
	return ctx.JSON(fiber.Map{"user": user})
}

// Logout is stateless on the server: tokens stay valid until expiry. In
// cookie mode the cookie is cleared so the client forgets the token.
func (c *authController) Logout(ctx *fiber.Ctx) error {
	if c.transport == serverutils.TransportCookie {
		ctx.Cookie(&fiber.Cookie{
			Name:     serverutils.AuthCookieName,
			Value:    "",
			Expires:  time.Unix(0, 0),
			HTTPOnly: true,
			Secure:   true,
		})
	}
	return ctx.JSON(fiber.Map{"message": "Logged out successfully"})
}

// deliverToken puts the token where the configured transport expects it:
// an HTTP-only secure cookie, or the JSON body for bearer-header clients.
func (c *authController) deliverToken(ctx *fiber.Ctx, signedToken string, body fiber.Map) {
	if c.transport == serverutils.TransportCookie {
		ctx.Cookie(&fiber.Cookie{
			Name:     serverutils.AuthCookieName,
			Value:    signedToken,
			Expires:  time.Now().Add(c.tokenTTL),
			MaxAge:   int(c.tokenTTL.Seconds()),
			HTTPOnly: true,
			Secure:   true,
		})
		return
	}
	body["token"] = signedToken
}
