package auth

import (
	"context"
	"errors"
	"strings"
)

var (
	ErrEmailExists        = errors.New("email already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

type User struct {
	ID    string
	Email string
	Hash  []byte
}

// Store holds registered users. Users are never updated or deleted; the
// only invariant is email uniqueness.
type Store interface {
	// Create registers a new user. ErrEmailExists if the email is taken;
	// the existing record is left untouched in that case.
	Create(ctx context.Context, email, password, id string) error
	// Verify returns the user when email and password match exactly,
	// ErrInvalidCredentials otherwise.
	Verify(ctx context.Context, email, password string) (User, error)
	Ping(ctx context.Context) error
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
