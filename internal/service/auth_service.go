package service

import (
	"context"
	"strings"
	"time"

	"github.com/josedavimartini-ship-it/publimicro-sub003/internal/entity"
	"github.com/josedavimartini-ship-it/publimicro-sub003/internal/repository"
	"github.com/josedavimartini-ship-it/publimicro-sub003/internal/utils"

	"github.com/google/uuid"
)

// dummy bcrypt hash compared against when the email is unknown, keeping
// login timing flat for existing and unknown accounts.
const dummyPasswordHash = "$2a$10$CwTycUXWue0Thq9StjUM0uJ8yQbWc1x9uxw2sQ2sXUNx5x9xJ9F2S"

type RegisterInput struct {
	Name     string
	Email    string
	Phone    string
	Password string
}

type LoginInput struct {
	Email     string
	Password  string
	IPAddress *string
	UserAgent *string
}

type LoginResult struct {
	AccessToken string
	ExpiresIn   int64
	User        *entity.User
}

type AuthService struct {
	users        repository.UserRepository
	sessions     repository.SessionRepository
	passwordHash PasswordHasher
	accessTokens AccessTokenIssuer
	clock        Clock
	config       AuthConfig
}

func NewAuthService(
	users repository.UserRepository,
	sessions repository.SessionRepository,
	passwordHash PasswordHasher,
	accessTokens AccessTokenIssuer,
	clock Clock,
	config AuthConfig,
) *AuthService {
	return &AuthService{
		users:        users,
		sessions:     sessions,
		passwordHash: passwordHash,
		accessTokens: accessTokens,
		clock:        clock,
		config:       config,
	}
}

func (s *AuthService) Register(ctx context.Context, input RegisterInput) (*entity.User, error) {
	if strings.TrimSpace(input.Name) == "" || strings.TrimSpace(input.Email) == "" || strings.TrimSpace(input.Password) == "" {
		return nil, ErrInvalidInput
	}

	email := utils.NormalizeEmail(input.Email)
	existing, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrEmailAlreadyRegistered
	}

	hash, err := s.passwordHash.Hash(input.Password)
	if err != nil {
		return nil, err
	}

	user := &entity.User{
		Name:         strings.TrimSpace(input.Name),
		Email:        email,
		Phone:        strings.TrimSpace(input.Phone),
		PasswordHash: hash,
		Role:         entity.UserRoleUser,
		IsActive:     true,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *AuthService) Login(ctx context.Context, input LoginInput) (*LoginResult, error) {
	if strings.TrimSpace(input.Email) == "" || input.Password == "" {
		return nil, ErrInvalidCredentials
	}

	user, err := s.users.FindByEmail(ctx, utils.NormalizeEmail(input.Email))
	if err != nil {
		return nil, err
	}
	if user == nil {
		s.passwordHash.Verify(dummyPasswordHash, input.Password)
		return nil, ErrInvalidCredentials
	}
	if !s.passwordHash.Verify(user.PasswordHash, input.Password) {
		return nil, ErrInvalidCredentials
	}

	session := &entity.Session{
		UserID:    user.ID,
		IPAddress: input.IPAddress,
		UserAgent: input.UserAgent,
		ExpiresAt: s.clock.Now().Add(s.sessionTTL()),
	}
	if err := s.sessions.Create(ctx, session); err != nil {
		return nil, err
	}

	token, ttl, err := s.accessTokens.IssueAccessToken(*user, session.ID)
	if err != nil {
		return nil, err
	}
	return &LoginResult{
		AccessToken: token,
		ExpiresIn:   int64(ttl / time.Second),
		User:        user,
	}, nil
}

func (s *AuthService) Logout(ctx context.Context, sessionID uuid.UUID) error {
	return s.sessions.Revoke(ctx, sessionID)
}

func (s *AuthService) GetCurrentUser(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

func (s *AuthService) sessionTTL() time.Duration {
	if s.config.SessionTTL == 0 {
		return 30 * 24 * time.Hour
	}
	return s.config.SessionTTL
}
