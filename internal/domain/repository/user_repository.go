// Package repository defines the data access interfaces of the domain.
package repository

import (
	"context"

	"garage/internal/domain/entity"
)

// UserRepository reads user records from the external user directory.
// "Nothing matched" is a valid terminal state, not an error: FindByRole
// returns an empty slice and FindByID returns (nil, nil). Errors are
// reserved for directory failures (unreachable store, rejected query).
type UserRepository interface {
	// FindByRole returns all users whose role equals the given role.
	FindByRole(ctx context.Context, role entity.Role) ([]*entity.User, error)

	// FindByID fetches a single user by id, or (nil, nil) when no such
	// record exists.
	FindByID(ctx context.Context, id string) (*entity.User, error)
}
