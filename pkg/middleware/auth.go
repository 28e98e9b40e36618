package middleware

import (
	"errors"

	"github.com/amirasaad/networth/pkg/config"
	"github.com/amirasaad/networth/pkg/domain"
	"github.com/amirasaad/networth/pkg/dto"
	"github.com/amirasaad/networth/pkg/service/auth"
	jwtware "github.com/gofiber/contrib/jwt"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/golang-jwt/jwt/v5"
)

// SessionKey is the fiber local holding the *dto.Session of a request.
const SessionKey = "session"

// tokenKey is where the bearer middleware stores the verified token.
const tokenKey = "user"

// Protected resolves the session of every request it guards and rejects
// the request with 401 when there is none. With the jwt strategy the
// request must carry a valid HS256 bearer token.
func Protected(authSvc *auth.Service, cfg *config.Auth) fiber.Handler {
	if !authSvc.RequiresToken() {
		return func(c *fiber.Ctx) error {
			return resolveSession(c, authSvc, nil)
		}
	}
	return jwtware.New(jwtware.Config{
		SigningKey:   jwtware.SigningKey{JWTAlg: jwtware.HS256, Key: []byte(cfg.Jwt.Secret)},
		ContextKey:   tokenKey,
		ErrorHandler: jwtError,
		SuccessHandler: func(c *fiber.Ctx) error {
			token, _ := c.Locals(tokenKey).(*jwt.Token)
			return resolveSession(c, authSvc, token)
		},
	})
}

// Session returns the session resolved by Protected.
func Session(c *fiber.Ctx) (*dto.Session, bool) {
	s, ok := c.Locals(SessionKey).(*dto.Session)
	return s, ok && s != nil
}

func resolveSession(c *fiber.Ctx, authSvc *auth.Service, token *jwt.Token) error {
	sess, err := authSvc.Session(c.Context(), token)
	if err != nil {
		if !errors.Is(err, domain.ErrUnauthorized) {
			log.Errorf("session lookup failed: %v", err)
			return err
		}
		return jwtError(c, err)
	}
	c.Locals(SessionKey, sess)
	return c.Next()
}

func jwtError(c *fiber.Ctx, _ error) error {
	return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Unauthorized"})
}
