package client

import (
	"context"
	"sort"

	"github.com/BruksfildServices01/client-registry/internal/audit"
	domain "github.com/BruksfildServices01/client-registry/internal/domain/client"
)

type UpdateClient struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewUpdateClient(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *UpdateClient {
	return &UpdateClient{
		repo:  repo,
		audit: audit,
	}
}

// Execute applies the present fields. An unknown client is not an error.
func (uc *UpdateClient) Execute(
	ctx context.Context,
	clientID uint,
	fields domain.Fields,
) error {

	if err := uc.repo.UpdateClient(ctx, clientID, fields); err != nil {
		return err
	}

	var changed []string
	for f, v := range fields {
		if v != nil {
			changed = append(changed, string(f))
		}
	}
	if len(changed) == 0 {
		return nil
	}
	sort.Strings(changed)

	uc.audit.Dispatch(audit.Event{
		Action:   "client_updated",
		Entity:   "client",
		EntityID: &clientID,
		Metadata: map[string][]string{"fields": changed},
	})

	return nil
}
