// Package auth verifies the access tokens callers present to the HTTP API.
package auth

import (
	"strings"

	"guardian/config"
	"guardian/internal/domain/service"
	"guardian/internal/errors"

	"github.com/golang-jwt/jwt/v5"
)

const tokenTypeAccess = "access"

// jwtVerifier checks HMAC-signed access tokens issued by the identity service.
type jwtVerifier struct {
	secret []byte
}

// NewJWTVerifier is the constructor for jwtVerifier.
func NewJWTVerifier(cfg *config.Config) (service.TokenVerifier, error) {
	if cfg.SecretKey.Access == "" {
		return nil, errors.New("jwt access secret must be provided")
	}

	return &jwtVerifier{secret: []byte(cfg.SecretKey.Access)}, nil
}

// Verify returns the subject of a valid, unexpired access token.
func (v *jwtVerifier) Verify(tokenString string) (string, error) {
	claims := jwt.MapClaims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return v.secret, nil
	}, jwt.WithExpirationRequired())
	if err != nil {
		return "", errors.Wrap(err, "invalid access token")
	}

	// Tokens without a type claim predate typed tokens and are accepted.
	if typ, ok := claims["type"].(string); ok && typ != tokenTypeAccess {
		return "", errors.Errorf("unexpected token type %q", typ)
	}

	subject, err := claims.GetSubject()
	if err != nil || strings.TrimSpace(subject) == "" {
		return "", errors.New("access token has no subject")
	}

	return subject, nil
}
