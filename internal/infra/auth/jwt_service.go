// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"

	"cinelog/config"
	"cinelog/internal/domain/service"
)

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
type jwtService struct {
	secret          string        // Active secret, used for signing and verified first.
	previousSecrets []string      // Retired secrets still accepted for verification during rotation.
	ttl             time.Duration // Default time-to-live for issued tokens.
	now             func() time.Time
}

// NewJWTService is the constructor for jwtService.
// It takes configuration values to create a new token service instance.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.Auth == nil || cfg.Auth.Secret == "" {
		return nil, errors.New("jwt secret must be provided")
	}

	return &jwtService{
		secret:          cfg.Auth.Secret,
		previousSecrets: cfg.Auth.PreviousSecrets,
		ttl:             cfg.Auth.AccessTokenTTL,
		now:             time.Now,
	}, nil
}

// Issue creates a token for the given subject using the configured TTL.
func (s *jwtService) Issue(subject string) (string, error) {
	return s.IssueWithTTL(subject, s.ttl)
}

// IssueWithTTL creates a signed HS256 token for the given subject.
// The payload carries exactly the `sub` and `exp` claims, matching the
// wire contract expected by existing clients.
func (s *jwtService) IssueWithTTL(subject string, ttl time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"sub": subject,
		"exp": s.now().Add(ttl).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.secret))
	if err != nil {
		return "", errors.Wrap(err, "failed to sign token")
	}

	return signed, nil
}

// Verify decodes and validates a token, returning its subject claim.
// Every failure mode collapses into service.ErrInvalidToken: signature
// mismatch, wrong algorithm, malformed payload, absent subject, or expiry.
func (s *jwtService) Verify(tokenString string) (string, error) {
	for _, secret := range s.verificationSecrets() {
		subject, err := s.verifyWithSecret(tokenString, secret)
		if err == nil {
			return subject, nil
		}
	}

	return "", service.ErrInvalidToken
}

// verificationSecrets returns the active secret followed by any retired
// secrets kept valid for rotation.
func (s *jwtService) verificationSecrets() []string {
	return append([]string{s.secret}, s.previousSecrets...)
}

func (s *jwtService) verifyWithSecret(tokenString, secret string) (string, error) {
	token, err := jwt.Parse(tokenString,
		func(token *jwt.Token) (any, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}

			return []byte(secret), nil
		},
		jwt.WithTimeFunc(s.now),
		jwt.WithExpirationRequired(),
	)
	if err != nil || !token.Valid {
		return "", service.ErrInvalidToken
	}

	subject, err := token.Claims.GetSubject()
	if err != nil || subject == "" {
		return "", service.ErrInvalidToken
	}

	return subject, nil
}
