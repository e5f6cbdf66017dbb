package service

import (
	"context"
	"testing"
	"time"

	"chatbot-assistant-be/internal/dto"
	"chatbot-assistant-be/internal/pkg/token"
	"chatbot-assistant-be/internal/repository/memory"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopLogger struct{}

func (nopLogger) Debug(module, message string, details map[string]interface{}) {}
func (nopLogger) Info(module, message string, details map[string]interface{})  {}
func (nopLogger) Warn(module, message string, details map[string]interface{})  {}
func (nopLogger) Error(module, message string, details map[string]interface{}) {}
func (nopLogger) Sync() error                                                  { return nil }

func newAuthService() IAuthService {
	factory := memory.NewFactory(memory.NewStore())
	tokenService := token.NewService("test-secret", time.Hour)
	return NewAuthService(factory, tokenService, nopLogger{})
}

func TestRegister(t *testing.T) {
	svc := newAuthService()

	res, err := svc.Register(context.Background(), &dto.RegisterRequest{
		Username: "alice",
		Password: "s3cret",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, res.Token)
	assert.Equal(t, "alice", res.User.Username)
	assert.NotEqual(t, uuid.Nil, res.User.Id)
}

func TestRegisterDuplicateUsername(t *testing.T) {
	svc := newAuthService()

	_, err := svc.Register(context.Background(), &dto.RegisterRequest{Username: "alice", Password: "s3cret"})
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), &dto.RegisterRequest{Username: "alice", Password: "other"})
	assert.ErrorIs(t, err, ErrUsernameTaken)
}

func TestLogin(t *testing.T) {
	svc := newAuthService()

	registered, err := svc.Register(context.Background(), &dto.RegisterRequest{Username: "alice", Password: "s3cret"})
	require.NoError(t, err)

	res, err := svc.Login(context.Background(), &dto.LoginRequest{Username: "alice", Password: "s3cret"})
	require.NoError(t, err)
	assert.NotEmpty(t, res.Token)
	assert.Equal(t, registered.User.Id, res.User.Id)
}

func TestLoginWrongPassword(t *testing.T) {
	svc := newAuthService()

	_, err := svc.Register(context.Background(), &dto.RegisterRequest{Username: "alice", Password: "s3cret"})
	require.NoError(t, err)

	_, err = svc.Login(context.Background(), &dto.LoginRequest{Username: "alice", Password: "wrong"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginUnknownUser(t *testing.T) {
	svc := newAuthService()

	_, err := svc.Login(context.Background(), &dto.LoginRequest{Username: "nobody", Password: "s3cret"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestCurrentUser(t *testing.T) {
	svc := newAuthService()

	registered, err := svc.Register(context.Background(), &dto.RegisterRequest{Username: "alice", Password: "s3cret"})
	require.NoError(t, err)

	user, err := svc.CurrentUser(context.Background(), registered.User.Id)
	require.NoError(t, err)
	assert.Equal(t, "alice", user.Username)

	// Second lookup hits the cache and must return the same user.
	cached, err := svc.CurrentUser(context.Background(), registered.User.Id)
	require.NoError(t, err)
	assert.Equal(t, user.Id, cached.Id)
}

func TestCurrentUserUnknown(t *testing.T) {
	svc := newAuthService()

	_, err := svc.CurrentUser(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrUserNotFound)
}
