package client

import (
	"context"

	domain "github.com/BruksfildServices01/client-registry/internal/domain/client"
	"github.com/BruksfildServices01/client-registry/internal/dto"
)

type FindClients struct {
	repo domain.Repository
}

func NewFindClients(
	repo domain.Repository,
) *FindClients {
	return &FindClients{
		repo: repo,
	}
}

func (uc *FindClients) Execute(
	ctx context.Context,
	filters domain.Fields,
) ([]dto.ClientRowDTO, error) {

	rows, err := uc.repo.FindClients(ctx, filters)
	if err != nil {
		return nil, err
	}

	out := make([]dto.ClientRowDTO, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.ClientRowDTO{
			ClientID:         r.ClientID,
			ClientName:       r.ClientName,
			ClientSecondname: r.ClientSecondname,
			ClientEmail:      r.ClientEmail,
			Phone:            r.Phone,
		})
	}

	return out, nil
}
