package usecase

import (
	"github.com/m-mizutani/gitfrost/pkg/domain/interfaces"
	"github.com/m-mizutani/gitfrost/pkg/domain/model"
	"github.com/m-mizutani/gitfrost/pkg/domain/types"
	"github.com/m-mizutani/gitfrost/pkg/infra"
)

type UseCase struct {
	clients  *infra.Clients
	upstream model.UpstreamRepo
	secret   types.ClientSecret
}

var _ interfaces.UseCase = (*UseCase)(nil)

func New(clients *infra.Clients, upstream model.UpstreamRepo, secret types.ClientSecret) *UseCase {
	return &UseCase{
		clients:  clients,
		upstream: upstream,
		secret:   secret,
	}
}
