package session

//go:generate go run go.uber.org/mock/mockgen -destination=mocks/mock_repository.go -package=mocks . Repository

import (
	"context"
)

// Repository defines persistence for sessions, keyed by user identifier.
// Get returns (nil, nil) when no session exists for the user.
type Repository interface {
	Get(ctx context.Context, userID string) (*Session, error)
	Upsert(ctx context.Context, session *Session) error
	Delete(ctx context.Context, userID string) error
}
