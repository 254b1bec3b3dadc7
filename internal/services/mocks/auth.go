package mocks

import (
	"context"

	"github.com/storepro/storefront/internal/models"
	"github.com/stretchr/testify/mock"
)

type AuthService struct {
	mock.Mock
}

func (m *AuthService) Login(ctx context.Context, username, password string) (*models.AuthSession, error) {
	args := m.Called(ctx, username, password)

	session, _ := args.Get(0).(*models.AuthSession)

	return session, args.Error(1)
}

func (m *AuthService) Logout(ctx context.Context) *models.AuthSession {
	args := m.Called(ctx)

	session, _ := args.Get(0).(*models.AuthSession)

	return session
}

func (m *AuthService) ClearError(ctx context.Context) *models.AuthSession {
	args := m.Called(ctx)

	session, _ := args.Get(0).(*models.AuthSession)

	return session
}

func (m *AuthService) Session() *models.AuthSession {
	args := m.Called()

	session, _ := args.Get(0).(*models.AuthSession)

	return session
}
