package ports

import (
	"context"

	"ev-trip-service/internal/domain"
)

// Port: a boundary for persisting User records.
type UserRepository interface {
	// Store a new user and return its assigned id.
	CreateUser(ctx context.Context, user *domain.User) (int64, error)
}
