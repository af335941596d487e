package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"unicode/utf8"

	"github.com/hongminglow/movies-be/internal/apperr"
	"github.com/hongminglow/movies-be/internal/models"
	"github.com/hongminglow/movies-be/internal/models/dto"
	"github.com/hongminglow/movies-be/internal/storage"
)

// Service runs the register, login and profile flows over a UserStore.
type Service struct {
	users  storage.UserStore
	hasher *Hasher
	tokens *TokenManager
	logger *slog.Logger
}

// NewService constructs the service.
func NewService(users storage.UserStore, hasher *Hasher, tokens *TokenManager, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{users: users, hasher: hasher, tokens: tokens, logger: logger}
}

// Register validates creds, hashes the password and stores a user with role.
func (s *Service) Register(ctx context.Context, creds dto.Credentials, role models.Role) (models.User, error) {
	username := storage.NormalizeUsername(creds.Username)
	if username == "" || creds.Password == "" {
		return models.User{}, apperr.Validation("username and password are required")
	}
	if utf8.RuneCountInString(creds.Password) < MinPasswordLength {
		return models.User{}, apperr.Validation(fmt.Sprintf("password must be at least %d characters", MinPasswordLength))
	}

	hash, err := s.hasher.Hash(creds.Password)
	if err != nil {
		if errors.Is(err, ErrPasswordTooLong) {
			return models.User{}, apperr.Validation("password must be at most 72 bytes")
		}
		return models.User{}, apperr.Internal(err)
	}

	user, err := s.users.CreateUser(ctx, username, hash, role)
	if err != nil {
		if errors.Is(err, storage.ErrDuplicateUsername) {
			return models.User{}, apperr.Conflict("username already exists")
		}
		return models.User{}, apperr.Internal(fmt.Errorf("create user: %w", err))
	}

	s.logger.InfoContext(ctx, "user registered", slog.Int64("user_id", user.ID), slog.String("role", string(user.Role)))
	return user, nil
}

// Login checks creds and issues a token. Unknown usernames and wrong
// passwords produce the same error after the same amount of hashing work.
func (s *Service) Login(ctx context.Context, creds dto.Credentials) (string, error) {
	username := storage.NormalizeUsername(creds.Username)
	if username == "" || creds.Password == "" {
		return "", apperr.Validation("username and password are required")
	}

	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			s.hasher.Burn(creds.Password)
			return "", apperr.InvalidCredentials()
		}
		return "", apperr.Internal(fmt.Errorf("find user: %w", err))
	}
	if !s.hasher.Verify(creds.Password, user.PasswordHash) {
		return "", apperr.InvalidCredentials()
	}

	token, err := s.tokens.Issue(Claims{UserID: user.ID, Username: user.Username, Role: user.Role})
	if err != nil {
		return "", apperr.Internal(err)
	}
	return token, nil
}

// Profile loads the user behind an authenticated identity.
func (s *Service) Profile(ctx context.Context, claims Claims) (models.Profile, error) {
	user, err := s.users.FindByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return models.Profile{}, apperr.NotFound("user")
		}
		return models.Profile{}, apperr.Internal(fmt.Errorf("find user by id: %w", err))
	}
	return user.Profile(), nil
}
