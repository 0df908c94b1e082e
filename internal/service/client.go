package service

import (
	"context"

	"github.com/dealerbook/dealerbook/internal/api/dto"
	"github.com/dealerbook/dealerbook/internal/domain/client"
	"github.com/dealerbook/dealerbook/internal/interfaces"
	"github.com/dealerbook/dealerbook/internal/types"
	"github.com/samber/lo"
)

type ClientService = interfaces.ClientService

type clientService struct {
	ServiceParams
}

func NewClientService(params ServiceParams) ClientService {
	return &clientService{
		ServiceParams: params,
	}
}

func (s *clientService) ListClients(ctx context.Context, filter *types.ClientFilter, page types.PageRequest) (*dto.ListClientsResponse, error) {
	clients, err := s.ClientRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	response := types.Paginate(lo.Map(clients, func(c *client.Client, _ int) *dto.ClientResponse {
		return &dto.ClientResponse{Client: c}
	}), page)
	return &response, nil
}

func (s *clientService) GetClient(ctx context.Context, id int) (*dto.ClientResponse, error) {
	c, err := s.ClientRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return &dto.ClientResponse{Client: c}, nil
}

func (s *clientService) SaveClient(ctx context.Context, req dto.SaveClientRequest) (*dto.ClientResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	c := req.ToClient()
	status, err := canonicalStatus(client.Schema, c.Status)
	if err != nil {
		return nil, err
	}
	c.Status = status
	if err := c.Validate(); err != nil {
		return nil, err
	}

	id, err := s.ClientRepo.Save(ctx, c)
	if err != nil {
		return nil, err
	}

	s.Logger.Infow("client saved", "client_id", id, "updated", req.ID > 0)
	return s.GetClient(ctx, id)
}

func (s *clientService) DeleteClient(ctx context.Context, id int) error {
	if err := s.ClientRepo.Delete(ctx, id); err != nil {
		return err
	}
	s.Logger.Infow("client deleted", "client_id", id)
	return nil
}
