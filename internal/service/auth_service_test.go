package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/josedavimartini-ship-it/publimicro-sub003/internal/entity"

	"github.com/google/uuid"
)

func newAuthService(users *fakeUserRepo, sessions *fakeSessionRepo) *AuthService {
	return NewAuthService(
		users,
		sessions,
		plainHasher{},
		staticTokenIssuer{token: "token-1"},
		fixedClock{now: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)},
		AuthConfig{SessionTTL: 24 * time.Hour},
	)
}

func TestAuthService_Register(t *testing.T) {
	t.Run("missing fields", func(t *testing.T) {
		svc := newAuthService(newFakeUserRepo(), newFakeSessionRepo())
		_, err := svc.Register(context.Background(), RegisterInput{Email: "ana@example.com", Password: "secret"})
		if !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("expected ErrInvalidInput, got %v", err)
		}
	})

	t.Run("creates a regular active user", func(t *testing.T) {
		users := newFakeUserRepo()
		svc := newAuthService(users, newFakeSessionRepo())

		user, err := svc.Register(context.Background(), RegisterInput{
			Name:     "Ana Souza",
			Email:    " Ana@Example.com ",
			Password: "secret",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if user.Email != "ana@example.com" {
			t.Fatalf("expected normalized email, got %q", user.Email)
		}
		if user.Role != entity.UserRoleUser || !user.IsActive {
			t.Fatalf("unexpected role/active: %s %v", user.Role, user.IsActive)
		}
		if user.PasswordHash == "secret" {
			t.Fatal("plaintext password must not be stored")
		}
	})

	t.Run("duplicate email", func(t *testing.T) {
		users := newFakeUserRepo()
		svc := newAuthService(users, newFakeSessionRepo())
		input := RegisterInput{Name: "Ana", Email: "ana@example.com", Password: "secret"}

		if _, err := svc.Register(context.Background(), input); err != nil {
			t.Fatalf("first register: %v", err)
		}
		_, err := svc.Register(context.Background(), input)
		if !errors.Is(err, ErrEmailAlreadyRegistered) {
			t.Fatalf("expected ErrEmailAlreadyRegistered, got %v", err)
		}
	})
}

func TestAuthService_Login(t *testing.T) {
	register := func(t *testing.T, svc *AuthService) {
		t.Helper()
		if _, err := svc.Register(context.Background(), RegisterInput{
			Name:     "Ana",
			Email:    "ana@example.com",
			Password: "secret",
		}); err != nil {
			t.Fatalf("register: %v", err)
		}
	}

	t.Run("valid credentials issue token and session", func(t *testing.T) {
		users := newFakeUserRepo()
		sessions := newFakeSessionRepo()
		svc := newAuthService(users, sessions)
		register(t, svc)

		result, err := svc.Login(context.Background(), LoginInput{Email: "ana@example.com", Password: "secret"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result.AccessToken != "token-1" {
			t.Fatalf("unexpected token %q", result.AccessToken)
		}
		if result.ExpiresIn <= 0 {
			t.Fatalf("unexpected expiry %d", result.ExpiresIn)
		}
		if len(sessions.sessions) != 1 {
			t.Fatalf("expected one session, got %d", len(sessions.sessions))
		}
	})

	t.Run("wrong password", func(t *testing.T) {
		svc := newAuthService(newFakeUserRepo(), newFakeSessionRepo())
		register(t, svc)

		_, err := svc.Login(context.Background(), LoginInput{Email: "ana@example.com", Password: "wrong"})
		if !errors.Is(err, ErrInvalidCredentials) {
			t.Fatalf("expected ErrInvalidCredentials, got %v", err)
		}
	})

	t.Run("unknown email gets the same error", func(t *testing.T) {
		svc := newAuthService(newFakeUserRepo(), newFakeSessionRepo())

		_, err := svc.Login(context.Background(), LoginInput{Email: "nobody@example.com", Password: "secret"})
		if !errors.Is(err, ErrInvalidCredentials) {
			t.Fatalf("expected ErrInvalidCredentials, got %v", err)
		}
	})
}

func TestAuthService_Logout(t *testing.T) {
	users := newFakeUserRepo()
	sessions := newFakeSessionRepo()
	svc := newAuthService(users, sessions)

	if _, err := svc.Register(context.Background(), RegisterInput{Name: "Ana", Email: "ana@example.com", Password: "secret"}); err != nil {
		t.Fatalf("register: %v", err)
	}
	if _, err := svc.Login(context.Background(), LoginInput{Email: "ana@example.com", Password: "secret"}); err != nil {
		t.Fatalf("login: %v", err)
	}

	var sessionID uuid.UUID
	for key := range sessions.sessions {
		sessionID = key
	}

	if err := svc.Logout(context.Background(), sessionID); err != nil {
		t.Fatalf("logout: %v", err)
	}
	active, err := sessions.FindActive(context.Background(), sessionID)
	if err != nil {
		t.Fatalf("find active: %v", err)
	}
	if active != nil {
		t.Fatal("expected session to be revoked")
	}
}
