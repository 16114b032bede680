package state

import (
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

// TokenCookieName is the fixed key under which the bearer token is persisted
// on the client.
const TokenCookieName = "token"

// Session is the identity derived from a bearer token. The token payload is
// decoded without signature verification, so the claims are advisory and for
// display only. The backend remains the sole authority for authorization.
type Session struct {
	Token  string `json:"-"`
	UserID int    `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Role   string `json:"role"`
}

func (s Session) IsAuthenticated() bool {
	return s.Token != ""
}

func (s Session) IsAdmin() bool {
	return s.Role == "admin"
}

// DecodeSession parses the token's embedded claims without verifying the
// signature. A malformed token yields an error; callers treat that as
// unauthenticated and discard the token.
func DecodeSession(token string) (Session, error) {
	parsed, _, err := jwt.NewParser().ParseUnverified(token, jwt.MapClaims{})
	if err != nil {
		return Session{}, fmt.Errorf("malformed token payload: %w", err)
	}

	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return Session{}, fmt.Errorf("unexpected claims type %T", parsed.Claims)
	}

	session := Session{
		Token: token,
		Name:  "User",
		Role:  "user",
	}
	if id, ok := claims["id"].(float64); ok {
		session.UserID = int(id)
	}
	if name, ok := claims["name"].(string); ok && name != "" {
		session.Name = name
	}
	if email, ok := claims["email"].(string); ok {
		session.Email = email
	}
	if role, ok := claims["role"].(string); ok && role != "" {
		session.Role = role
	}
	return session, nil
}
