package client

import (
	"context"

	"github.com/BruksfildServices01/client-registry/internal/models"
)

// Repository is the whole storage contract. Every call checks out its own
// connection and releases it before returning.
type Repository interface {
	// -------- Schema --------
	InitializeSchema(ctx context.Context) error

	// -------- Client --------
	CreateClient(
		ctx context.Context,
		in NewClient,
	) (uint, error)

	// UpdateClient is a silent no-op for an unknown clientID.
	UpdateClient(
		ctx context.Context,
		clientID uint,
		fields Fields,
	) error

	// DeleteClient returns nil, nil when nothing was deleted.
	DeleteClient(
		ctx context.Context,
		clientID uint,
	) (*uint, error)

	FindClients(
		ctx context.Context,
		filters Fields,
	) ([]models.ClientRow, error)

	// -------- Phone --------
	AddPhone(
		ctx context.Context,
		clientID uint,
		phone string,
	) (*models.Phone, error)

	// DeletePhone returns nil, nil when nothing was deleted.
	DeletePhone(
		ctx context.Context,
		clientID uint,
		phone string,
	) (*uint, error)

	ListPhones(
		ctx context.Context,
		clientID uint,
	) ([]models.Phone, error)
}
