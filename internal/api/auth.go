package api

import (
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"

	"github.com/hireloop/interviewd/internal/users"
	"github.com/hireloop/interviewd/pkg/errors"
)

const identityKey = "identity"

type identity struct {
	UserID string
	Role   users.Role
}

// authenticate resolves the calling user from a Bearer token. Claims:
// sub is the user id, role is candidate or recruiter.
func (s *server) authenticate(c *fiber.Ctx) error {
	header := c.Get(fiber.HeaderAuthorization)
	if !strings.HasPrefix(header, "Bearer ") {
		return s.sendError(c, http.StatusUnauthorized, "missing bearer token")
	}

	token, err := jwt.Parse(
		strings.TrimPrefix(header, "Bearer "),
		func(t *jwt.Token) (any, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, errors.Errorf("unexpected signing method %v", t.Header["alg"])
			}
			return []byte(s.secret), nil
		},
	)
	if err != nil || !token.Valid {
		return s.sendError(c, http.StatusUnauthorized, "invalid token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return s.sendError(c, http.StatusUnauthorized, "invalid token claims")
	}

	sub, err := claims.GetSubject()
	if err != nil || sub == "" {
		return s.sendError(c, http.StatusUnauthorized, "token has no subject")
	}

	role, _ := claims["role"].(string)
	switch users.Role(role) {
	case users.RoleCandidate, users.RoleRecruiter:
	default:
		return s.sendError(c, http.StatusUnauthorized, "token has no usable role")
	}

	c.Locals(identityKey, identity{UserID: sub, Role: users.Role(role)})
	return c.Next()
}

func caller(c *fiber.Ctx) identity {
	id, _ := c.Locals(identityKey).(identity)
	return id
}
