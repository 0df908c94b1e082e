package service

import (
	"context"

	"github.com/dealerbook/dealerbook/internal/interfaces"
	"github.com/dealerbook/dealerbook/internal/types"
)

type ProvisioningService = interfaces.ProvisioningService

type provisioningService struct {
	ServiceParams
}

func NewProvisioningService(params ServiceParams) ProvisioningService {
	return &provisioningService{
		ServiceParams: params,
	}
}

// Provision creates every missing record set file with its canonical
// header and returns the kinds that were created. Existing files are left
// untouched.
func (s *provisioningService) Provision(ctx context.Context) ([]types.EntityKind, error) {
	created := make([]types.EntityKind, 0, len(types.EntityKinds))
	for _, kind := range types.EntityKinds {
		repo, err := s.Records.Get(kind)
		if err != nil {
			return created, err
		}

		ok, err := repo.Provision(ctx)
		if err != nil {
			return created, err
		}
		if ok {
			created = append(created, kind)
		}
	}

	if len(created) > 0 {
		s.Logger.Infow("provisioned record sets", "kinds", created)
	} else {
		s.Logger.Debugw("all record sets present")
	}
	return created, nil
}
