package service

import (
	"context"
	"errors"
	"time"

	"chatbot-assistant-be/internal/dto"
	"chatbot-assistant-be/internal/entity"
	"chatbot-assistant-be/internal/pkg/logger"
	"chatbot-assistant-be/internal/pkg/token"
	"chatbot-assistant-be/internal/repository/unitofwork"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrUsernameTaken      = errors.New("username already taken")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserNotFound       = errors.New("user not found")
)

type IAuthService interface {
	Register(ctx context.Context, req *dto.RegisterRequest) (*dto.AuthResult, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResult, error)
	CurrentUser(ctx context.Context, userId uuid.UUID) (*dto.UserDTO, error)
}

type authService struct {
	uowFactory   unitofwork.RepositoryFactory
	tokenService *token.Service
	logger       logger.ILogger
	userCache    *cache.Cache
}

func NewAuthService(uowFactory unitofwork.RepositoryFactory, tokenService *token.Service, l logger.ILogger) IAuthService {
	return &authService{
		uowFactory:   uowFactory,
		tokenService: tokenService,
		logger:       l,
		// Short-lived read-through cache for the auth-check lookup.
		userCache: cache.New(5*time.Minute, 10*time.Minute),
	}
}

func (s *authService) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.AuthResult, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	// 1. Check for existing user
	existing, _ := uow.UserRepository().FindByUsername(ctx, req.Username)
	if existing != nil {
		return nil, ErrUsernameTaken
	}

	// 2. Hash password
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	// 3. Create and persist the user
	user := &entity.User{
		Id:           uuid.New(),
		Username:     req.Username,
		PasswordHash: string(hash),
		CreatedAt:    time.Now(),
	}
	if err := uow.UserRepository().Create(ctx, user); err != nil {
		return nil, err
	}

	// 4. Issue the identity token
	signedToken, err := s.tokenService.Issue(user.Id)
	if err != nil {
		return nil, err
	}

	s.logger.Info("auth", "user registered", map[string]interface{}{
		"user_id":  user.Id,
		"username": user.Username,
	})

	return &dto.AuthResult{
		Token: signedToken,
		User:  toUserDTO(user),
	}, nil
}

func (s *authService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResult, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := uow.UserRepository().FindByUsername(ctx, req.Username)
	if err != nil {
		return nil, ErrInvalidCredentials
	}
	if user == nil {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	signedToken, err := s.tokenService.Issue(user.Id)
	if err != nil {
		return nil, err
	}

	s.logger.Info("auth", "user logged in", map[string]interface{}{
		"user_id": user.Id,
	})

	return &dto.AuthResult{
		Token: signedToken,
		User:  toUserDTO(user),
	}, nil
}

func (s *authService) CurrentUser(ctx context.Context, userId uuid.UUID) (*dto.UserDTO, error) {
	if cached, found := s.userCache.Get(userId.String()); found {
		u := cached.(dto.UserDTO)
		return &u, nil
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	user, err := uow.UserRepository().FindById(ctx, userId)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	u := toUserDTO(user)
	s.userCache.Set(userId.String(), u, cache.DefaultExpiration)
	return &u, nil
}

func toUserDTO(u *entity.User) dto.UserDTO {
	return dto.UserDTO{
		Username:  u.Username,
		Id:        u.Id,
		CreatedAt: u.CreatedAt,
	}
}
