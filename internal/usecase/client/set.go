package client

import (
	"github.com/BruksfildServices01/client-registry/internal/audit"
	domain "github.com/BruksfildServices01/client-registry/internal/domain/client"
)

// Set bundles the client use cases for the transports.
type Set struct {
	Create       *CreateClient
	AddPhone     *AddPhone
	Update       *UpdateClient
	DeletePhone  *DeletePhone
	DeleteClient *DeleteClient
	Find         *FindClients
	ListPhones   *ListPhones
}

func NewSet(repo domain.Repository, dispatcher *audit.Dispatcher) *Set {
	return &Set{
		Create:       NewCreateClient(repo, dispatcher),
		AddPhone:     NewAddPhone(repo, dispatcher),
		Update:       NewUpdateClient(repo, dispatcher),
		DeletePhone:  NewDeletePhone(repo, dispatcher),
		DeleteClient: NewDeleteClient(repo, dispatcher),
		Find:         NewFindClients(repo),
		ListPhones:   NewListPhones(repo),
	}
}
