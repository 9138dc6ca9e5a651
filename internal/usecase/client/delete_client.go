package client

import (
	"context"

	"github.com/BruksfildServices01/client-registry/internal/audit"
	domain "github.com/BruksfildServices01/client-registry/internal/domain/client"
)

type DeleteClient struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewDeleteClient(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *DeleteClient {
	return &DeleteClient{
		repo:  repo,
		audit: audit,
	}
}

// Execute returns nil, nil when there is no such client.
func (uc *DeleteClient) Execute(
	ctx context.Context,
	clientID uint,
) (*uint, error) {

	id, err := uc.repo.DeleteClient(ctx, clientID)
	if err != nil || id == nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "client_deleted",
		Entity:   "client",
		EntityID: id,
	})

	return id, nil
}
