// Package auth resolves the session of a request. The strategy is picked
// once at startup: "jwt" verifies bearer tokens, "dev" signs everyone in
// as a single local user.
package auth

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/amirasaad/networth/pkg/config"
	"github.com/amirasaad/networth/pkg/domain"
	"github.com/amirasaad/networth/pkg/dto"
	"github.com/amirasaad/networth/pkg/repository"
	usersvc "github.com/amirasaad/networth/pkg/service/user"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

type contextKey string

const userContextKey contextKey = "user"

const (
	devEmail = "dev@localhost"
	devName  = "Dev User"
)

// Strategy resolves the user behind a request.
type Strategy interface {
	Name() string
	// CurrentUser returns the authenticated user or domain.ErrUnauthorized.
	CurrentUser(ctx context.Context) (*dto.UserRead, error)
	GenerateToken(ctx context.Context, u *dto.UserRead) (string, error)
}

type Service struct {
	strategy Strategy
	logger   *slog.Logger
}

func New(strategy Strategy, logger *slog.Logger) *Service {
	return &Service{strategy: strategy, logger: logger}
}

func NewWithJWT(
	uow repository.UnitOfWork,
	cfg *config.Jwt,
	logger *slog.Logger,
) *Service {
	return New(NewJWTStrategy(uow, cfg, logger), logger)
}

func NewWithDev(users *usersvc.Service, logger *slog.Logger) *Service {
	return New(NewDevStrategy(users, logger), logger)
}

// FromConfig builds the Service for the configured strategy.
func FromConfig(
	cfg *config.Auth,
	uow repository.UnitOfWork,
	users *usersvc.Service,
	logger *slog.Logger,
) (*Service, error) {
	switch cfg.Strategy {
	case config.AuthStrategyJWT:
		return NewWithJWT(uow, cfg.Jwt, logger), nil
	case config.AuthStrategyDev:
		logger.Warn("dev auth strategy enabled; every request is signed in as " + devEmail)
		return NewWithDev(users, logger), nil
	default:
		return nil, fmt.Errorf("unknown auth strategy %q", cfg.Strategy)
	}
}

// RequiresToken reports whether requests must carry a bearer token.
func (s *Service) RequiresToken() bool {
	return s.strategy.Name() == config.AuthStrategyJWT
}

// Session resolves the session for a request. token is the verified
// bearer token, nil when the strategy does not use one.
func (s *Service) Session(ctx context.Context, token *jwt.Token) (*dto.Session, error) {
	if token != nil {
		ctx = context.WithValue(ctx, userContextKey, token)
	}
	u, err := s.strategy.CurrentUser(ctx)
	if err != nil {
		s.logger.Debug("session rejected", "strategy", s.strategy.Name(), "error", err)
		return nil, err
	}
	return dto.NewSession(u), nil
}

func (s *Service) GenerateToken(
	ctx context.Context,
	u *dto.UserRead,
) (string, error) {
	log := s.logger.With("userID", u.ID)
	token, err := s.strategy.GenerateToken(ctx, u)
	if err != nil {
		log.Error("GenerateToken failed", "error", err)
		return "", err
	}
	log.Info("GenerateToken successful")
	return token, nil
}

// JWTStrategy resolves the user_id claim of a verified HS256 token
// against the users table.
type JWTStrategy struct {
	uow    repository.UnitOfWork
	cfg    *config.Jwt
	logger *slog.Logger
}

func NewJWTStrategy(
	uow repository.UnitOfWork,
	cfg *config.Jwt,
	logger *slog.Logger,
) *JWTStrategy {
	return &JWTStrategy{uow: uow, cfg: cfg, logger: logger}
}

func (s *JWTStrategy) Name() string { return config.AuthStrategyJWT }

func (s *JWTStrategy) GenerateToken(
	ctx context.Context,
	u *dto.UserRead,
) (string, error) {
	token := jwt.New(jwt.SigningMethodHS256)
	claims := token.Claims.(jwt.MapClaims)
	claims["name"] = u.Name
	claims["email"] = u.Email
	claims["user_id"] = u.ID.String()
	claims["exp"] = time.Now().Add(s.cfg.Expiry).Unix()
	return token.SignedString([]byte(s.cfg.Secret))
}

func (s *JWTStrategy) CurrentUser(ctx context.Context) (u *dto.UserRead, err error) {
	log := s.logger.With("context", "CurrentUser")
	userID, err := userIDFromToken(ctx)
	if err != nil {
		log.Debug("token without usable user_id", "error", err)
		return nil, domain.ErrUnauthorized
	}
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		repo, err := uow.UserRepository()
		if err != nil {
			return err
		}
		u, err = repo.Get(ctx, userID)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("resolve session: %w", err)
	}
	if u == nil {
		log.Info("token for unknown user", "userID", userID)
		return nil, domain.ErrUnauthorized
	}
	return u, nil
}

func userIDFromToken(ctx context.Context) (uuid.UUID, error) {
	token, ok := ctx.Value(userContextKey).(*jwt.Token)
	if !ok || token == nil {
		return uuid.Nil, domain.ErrUnauthorized
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return uuid.Nil, domain.ErrUnauthorized
	}
	raw, ok := claims["user_id"].(string)
	if !ok {
		return uuid.Nil, domain.ErrUnauthorized
	}
	return uuid.Parse(raw)
}

// DevStrategy signs every request in as the local development user,
// creating it on first use. It keeps no state between requests.
type DevStrategy struct {
	users  *usersvc.Service
	logger *slog.Logger
}

func NewDevStrategy(users *usersvc.Service, logger *slog.Logger) *DevStrategy {
	return &DevStrategy{users: users, logger: logger}
}

func (s *DevStrategy) Name() string { return config.AuthStrategyDev }

func (s *DevStrategy) CurrentUser(ctx context.Context) (*dto.UserRead, error) {
	return s.users.UpsertByEmail(ctx, devEmail, devName)
}

// GenerateToken returns no token; the dev strategy does not check any.
func (s *DevStrategy) GenerateToken(ctx context.Context, u *dto.UserRead) (string, error) {
	return "", nil
}
