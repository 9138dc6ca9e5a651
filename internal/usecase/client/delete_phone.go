package client

import (
	"context"

	"github.com/BruksfildServices01/client-registry/internal/audit"
	domain "github.com/BruksfildServices01/client-registry/internal/domain/client"
)

type DeletePhone struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewDeletePhone(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *DeletePhone {
	return &DeletePhone{
		repo:  repo,
		audit: audit,
	}
}

// Execute returns nil, nil when the client has no such phone.
func (uc *DeletePhone) Execute(
	ctx context.Context,
	clientID uint,
	phone string,
) (*uint, error) {

	id, err := uc.repo.DeletePhone(ctx, clientID, phone)
	if err != nil || id == nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "phone_deleted",
		Entity:   "phone",
		EntityID: id,
		Metadata: map[string]uint{"client_id": clientID},
	})

	return id, nil
}
