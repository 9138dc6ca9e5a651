package client

import (
	"context"

	domain "github.com/BruksfildServices01/client-registry/internal/domain/client"
	"github.com/BruksfildServices01/client-registry/internal/dto"
)

type ListPhones struct {
	repo domain.Repository
}

func NewListPhones(
	repo domain.Repository,
) *ListPhones {
	return &ListPhones{
		repo: repo,
	}
}

func (uc *ListPhones) Execute(
	ctx context.Context,
	clientID uint,
) ([]dto.PhoneDTO, error) {

	phones, err := uc.repo.ListPhones(ctx, clientID)
	if err != nil {
		return nil, err
	}

	out := make([]dto.PhoneDTO, 0, len(phones))
	for _, p := range phones {
		out = append(out, dto.PhoneDTO{ID: p.ID, Phone: p.Phone})
	}

	return out, nil
}
