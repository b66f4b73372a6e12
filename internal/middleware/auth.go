package middleware

import (
	"fmt"
	"net/http"

	"github.com/golang-jwt/jwt/v5"
	"github.com/satya-ranjon/doccureserver/internal/domain"
	"github.com/wb-go/wbf/ginext"
)

const principalKey = "principal"

// Auth resolves the principal from the token cookie once per request.
// Token issuance lives in an external collaborator; this only verifies.
func Auth(secret string) ginext.HandlerFunc {
	return func(c *ginext.Context) {
		token, err := c.Cookie("token")
		if err != nil || token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, ginext.H{"error": "unauthorized access"})
			return
		}

		principal, err := parsePrincipal(token, secret)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, ginext.H{"error": "unauthorized access"})
			return
		}

		c.Set(principalKey, principal)
		c.Next()
	}
}

func parsePrincipal(token, secret string) (domain.Principal, error) {
	claims := jwt.MapClaims{}
	_, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return domain.Principal{}, fmt.Errorf("parse token: %w", err)
	}

	email, _ := claims["email"].(string)
	if email == "" {
		return domain.Principal{}, fmt.Errorf("token has no email claim")
	}
	role, _ := claims["role"].(string)

	return domain.Principal{Email: email, IsAdmin: role == "admin"}, nil
}

// PrincipalFrom returns the principal stored by Auth.
func PrincipalFrom(c *ginext.Context) (domain.Principal, bool) {
	v, ok := c.Get(principalKey)
	if !ok {
		return domain.Principal{}, false
	}
	p, ok := v.(domain.Principal)
	return p, ok
}
