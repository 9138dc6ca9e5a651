package client

import (
	"context"

	"github.com/BruksfildServices01/client-registry/internal/audit"
	domain "github.com/BruksfildServices01/client-registry/internal/domain/client"
	"github.com/BruksfildServices01/client-registry/internal/dto"
)

type AddPhone struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewAddPhone(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *AddPhone {
	return &AddPhone{
		repo:  repo,
		audit: audit,
	}
}

func (uc *AddPhone) Execute(
	ctx context.Context,
	clientID uint,
	phone string,
) (*dto.PhoneDTO, error) {

	p, err := uc.repo.AddPhone(ctx, clientID, phone)
	if err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "phone_added",
		Entity:   "phone",
		EntityID: &p.ID,
		Metadata: map[string]uint{"client_id": clientID},
	})

	return &dto.PhoneDTO{ID: p.ID, Phone: p.Phone}, nil
}
