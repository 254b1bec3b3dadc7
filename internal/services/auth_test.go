package service_test

import (
	"context"
	"database/sql"
	"encoding/json"
	"testing"

	apperrors "github.com/storepro/storefront/internal/errors"
	"github.com/storepro/storefront/internal/models"
	repository "github.com/storepro/storefront/internal/repositories"
	service "github.com/storepro/storefront/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type fakestoreClientMock struct {
	mock.Mock
}

func (m *fakestoreClientMock) ListProducts(ctx context.Context, sort string) ([]models.Product, error) {
	args := m.Called(ctx, sort)

	products, _ := args.Get(0).([]models.Product)

	return products, args.Error(1)
}

func (m *fakestoreClientMock) GetProduct(ctx context.Context, id int64) (*models.Product, error) {
	args := m.Called(ctx, id)

	product, _ := args.Get(0).(*models.Product)

	return product, args.Error(1)
}

func (m *fakestoreClientMock) ListCategories(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)

	categories, _ := args.Get(0).([]string)

	return categories, args.Error(1)
}

func (m *fakestoreClientMock) ListProductsByCategory(ctx context.Context, category, sort string) ([]models.Product, error) {
	args := m.Called(ctx, category, sort)

	products, _ := args.Get(0).([]models.Product)

	return products, args.Error(1)
}

func (m *fakestoreClientMock) Login(ctx context.Context, username, password string) (string, error) {
	args := m.Called(ctx, username, password)

	return args.String(0), args.Error(1)
}

func newAnonymousAuthService(t *testing.T, client *fakestoreClientMock) (service.AuthService, *snapshotRepoMock) {
	t.Helper()

	snapshots := new(snapshotRepoMock)
	snapshots.On("Load", mock.Anything, repository.AuthStateKey).Return(nil, sql.ErrNoRows).Once()
	snapshots.On("Save", mock.Anything, repository.AuthStateKey, mock.Anything).Return(nil)

	return service.NewAuthService(context.Background(), client, snapshots), snapshots
}

func TestLogin(t *testing.T) {
	ctx := context.Background()

	t.Run("Demo Credentials Authenticate", func(t *testing.T) {
		// Arrange
		client := new(fakestoreClientMock)
		client.On("Login", ctx, "mor_2314", "83r5^_").Return("header.payload.signature", nil).Once()

		authService, snapshots := newAnonymousAuthService(t, client)

		// Act
		session, err := authService.Login(ctx, "mor_2314", "83r5^_")

		// Assert
		require.NoError(t, err)
		assert.True(t, session.Authenticated)
		assert.Equal(t, "header.payload.signature", session.Token)
		assert.Empty(t, session.Error)
		client.AssertExpectations(t)
		snapshots.AssertCalled(t, "Save", mock.Anything, repository.AuthStateKey, mock.Anything)
	})

	t.Run("Wrong Credentials Stay Anonymous With Message", func(t *testing.T) {
		// Arrange
		client := new(fakestoreClientMock)
		client.On("Login", ctx, "mor_2314", "wrong").
			Return("", apperrors.AuthFailedError("username or password is incorrect")).Once()

		authService, _ := newAnonymousAuthService(t, client)

		// Act
		session, err := authService.Login(ctx, "mor_2314", "wrong")

		// Assert
		require.Error(t, err)
		assert.False(t, session.Authenticated)
		assert.Empty(t, session.Token)
		assert.NotEmpty(t, session.Error)
		assert.Equal(t, "username or password is incorrect", session.Error)

		appErr, ok := apperrors.IsAppError(err)
		require.True(t, ok)
		assert.Equal(t, apperrors.ErrCodeAuthFailed, appErr.Code)
	})

	t.Run("Successful Login Clears A Previous Error", func(t *testing.T) {
		// Arrange
		client := new(fakestoreClientMock)
		client.On("Login", ctx, "mor_2314", "wrong").
			Return("", apperrors.AuthFailedError("username or password is incorrect")).Once()
		client.On("Login", ctx, "mor_2314", "83r5^_").Return("tok", nil).Once()

		authService, _ := newAnonymousAuthService(t, client)

		// Act
		authService.Login(ctx, "mor_2314", "wrong")
		session, err := authService.Login(ctx, "mor_2314", "83r5^_")

		// Assert
		require.NoError(t, err)
		assert.True(t, session.Authenticated)
		assert.Empty(t, session.Error)
	})
}

func TestLogout(t *testing.T) {
	ctx := context.Background()

	t.Run("Clears Token Flag And Error", func(t *testing.T) {
		// Arrange
		client := new(fakestoreClientMock)
		client.On("Login", ctx, "mor_2314", "83r5^_").Return("tok", nil).Once()

		authService, _ := newAnonymousAuthService(t, client)
		_, err := authService.Login(ctx, "mor_2314", "83r5^_")
		require.NoError(t, err)

		// Act
		session := authService.Logout(ctx)

		// Assert
		assert.False(t, session.Authenticated)
		assert.Empty(t, session.Token)
		assert.Empty(t, session.Error)
		assert.Empty(t, session.UserID)
	})
}

func TestClearError(t *testing.T) {
	ctx := context.Background()

	t.Run("Clears Only The Error", func(t *testing.T) {
		// Arrange
		client := new(fakestoreClientMock)
		client.On("Login", ctx, "mor_2314", "wrong").
			Return("", apperrors.AuthFailedError("username or password is incorrect")).Once()

		authService, _ := newAnonymousAuthService(t, client)
		authService.Login(ctx, "mor_2314", "wrong")

		// Act
		session := authService.ClearError(ctx)

		// Assert
		assert.Empty(t, session.Error)
		assert.False(t, session.Authenticated)
	})
}

func TestAuthPersistence(t *testing.T) {
	ctx := context.Background()

	t.Run("Restores Authenticated Session From Snapshot", func(t *testing.T) {
		// Arrange
		stored := models.AuthSession{Token: "tok", Authenticated: true}
		data, err := json.Marshal(stored)
		require.NoError(t, err)

		snapshots := new(snapshotRepoMock)
		snapshots.On("Load", mock.Anything, repository.AuthStateKey).Return(data, nil).Once()

		// Act
		authService := service.NewAuthService(ctx, new(fakestoreClientMock), snapshots)

		// Assert
		session := authService.Session()
		assert.True(t, session.Authenticated)
		assert.Equal(t, "tok", session.Token)
	})

	t.Run("Flag Without Token Reads As Anonymous", func(t *testing.T) {
		// Arrange: a blob that claims authenticated without a token
		data := []byte(`{"authenticated": true}`)

		snapshots := new(snapshotRepoMock)
		snapshots.On("Load", mock.Anything, repository.AuthStateKey).Return(data, nil).Once()

		// Act
		authService := service.NewAuthService(ctx, new(fakestoreClientMock), snapshots)

		// Assert
		assert.False(t, authService.Session().Authenticated)
	})
}
