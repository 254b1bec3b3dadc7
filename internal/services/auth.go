package service

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"log/slog"
	"strconv"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	apperrors "github.com/storepro/storefront/internal/errors"
	"github.com/storepro/storefront/internal/models"
	repository "github.com/storepro/storefront/internal/repositories"
	"github.com/storepro/storefront/pkg/fakestore"
)

// AuthService mirrors the remote mock login. A successful login stores the
// returned bearer token and flips the authenticated flag; a failed one keeps
// the error message but reads as not authenticated. No retries.
type AuthService interface {
	Login(ctx context.Context, username, password string) (*models.AuthSession, error)
	Logout(ctx context.Context) *models.AuthSession
	ClearError(ctx context.Context) *models.AuthSession
	Session() *models.AuthSession
}

type authService struct {
	mu        sync.Mutex
	session   models.AuthSession
	client    fakestore.Client
	snapshots repository.SnapshotRepository
}

func NewAuthService(ctx context.Context, client fakestore.Client, snapshots repository.SnapshotRepository) AuthService {

	s := &authService{client: client, snapshots: snapshots}

	data, err := snapshots.Load(ctx, repository.AuthStateKey)
	if err != nil {
		if !errors.Is(err, sql.ErrNoRows) {
			slog.Warn("Failed to load auth snapshot, starting anonymous", slog.String("error", err.Error()))
		}
		return s
	}

	if err := json.Unmarshal(data, &s.session); err != nil {
		slog.Warn("Corrupt auth snapshot, starting anonymous", slog.String("error", err.Error()))
		s.session = models.AuthSession{}
	}

	// The flag is true iff a token is present; never trust them separately.
	s.session.Authenticated = s.session.Token != ""

	return s
}

func (s *authService) Login(ctx context.Context, username, password string) (*models.AuthSession, error) {

	token, err := s.client.Login(ctx, username, password)

	s.mu.Lock()
	defer s.mu.Unlock()

	if err != nil {

		message := "Login failed"
		if appErr, ok := apperrors.IsAppError(err); ok {
			message = appErr.Message
		}

		s.session = models.AuthSession{Error: message, UpdatedAt: time.Now()}
		s.persist(ctx)

		return s.snapshot(), err
	}

	s.session = models.AuthSession{
		Token:         token,
		UserID:        subjectOf(token),
		Authenticated: true,
		UpdatedAt:     time.Now(),
	}
	s.persist(ctx)

	return s.snapshot(), nil
}

func (s *authService) Logout(ctx context.Context) *models.AuthSession {

	s.mu.Lock()
	defer s.mu.Unlock()

	s.session = models.AuthSession{UpdatedAt: time.Now()}
	s.persist(ctx)

	return s.snapshot()
}

func (s *authService) ClearError(ctx context.Context) *models.AuthSession {

	s.mu.Lock()
	defer s.mu.Unlock()

	s.session.Error = ""
	s.session.UpdatedAt = time.Now()
	s.persist(ctx)

	return s.snapshot()
}

func (s *authService) Session() *models.AuthSession {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.snapshot()
}

func (s *authService) persist(ctx context.Context) {

	data, err := json.Marshal(s.session)
	if err != nil {
		slog.Error("Failed to marshal auth snapshot", slog.String("error", err.Error()))
		return
	}

	if err := s.snapshots.Save(ctx, repository.AuthStateKey, data); err != nil {
		slog.Warn("Failed to persist auth snapshot", slog.String("error", err.Error()))
	}
}

func (s *authService) snapshot() *models.AuthSession {
	out := s.session

	return &out
}

// subjectOf peeks at the remote token's sub claim without verifying the
// signature; the signing key belongs to the remote API. An opaque or
// malformed token just leaves the user id empty.
func subjectOf(tokenString string) string {

	token, _, err := jwt.NewParser().ParseUnverified(tokenString, jwt.MapClaims{})
	if err != nil {
		return ""
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return ""
	}

	switch sub := claims["sub"].(type) {
	case string:
		return sub
	case float64:
		return strconv.FormatInt(int64(sub), 10)
	default:
		return ""
	}
}
