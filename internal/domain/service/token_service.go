package service

import (
	"errors"
	"time"
)

// ErrInvalidToken is returned by Verify for every rejected token: bad
// signature, wrong algorithm, malformed payload, missing subject, or expiry.
// Callers must not distinguish these causes to the client.
var ErrInvalidToken = errors.New("invalid or expired token")

// TokenService defines the interface for issuing and verifying signed,
// time-limited bearer tokens. Tokens are stateless: nothing is persisted,
// validity is reconstructed by verification on every call.
type TokenService interface {
	// Issue creates a token for the given subject using the configured TTL.
	Issue(subject string) (string, error)

	// IssueWithTTL creates a token for the given subject expiring after ttl.
	IssueWithTTL(subject string, ttl time.Duration) (string, error)

	// Verify decodes the token, checks its signature and expiry, and returns
	// the subject claim. Returns ErrInvalidToken on any failure.
	Verify(token string) (subject string, err error)
}
