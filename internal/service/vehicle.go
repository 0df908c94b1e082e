package service

import (
	"context"

	"github.com/dealerbook/dealerbook/internal/api/dto"
	"github.com/dealerbook/dealerbook/internal/domain/vehicle"
	"github.com/dealerbook/dealerbook/internal/interfaces"
	"github.com/dealerbook/dealerbook/internal/types"
	"github.com/samber/lo"
)

type VehicleService = interfaces.VehicleService

type vehicleService struct {
	ServiceParams
}

func NewVehicleService(params ServiceParams) VehicleService {
	return &vehicleService{
		ServiceParams: params,
	}
}

func (s *vehicleService) ListVehicles(ctx context.Context, filter *types.VehicleFilter, page types.PageRequest) (*dto.ListVehiclesResponse, error) {
	vehicles, err := s.VehicleRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	response := types.Paginate(lo.Map(vehicles, func(v *vehicle.Vehicle, _ int) *dto.VehicleResponse {
		return &dto.VehicleResponse{Vehicle: v}
	}), page)
	return &response, nil
}

func (s *vehicleService) GetVehicle(ctx context.Context, id int) (*dto.VehicleResponse, error) {
	v, err := s.VehicleRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return &dto.VehicleResponse{Vehicle: v}, nil
}

// SaveVehicle stores the vehicle. The owner reference is not checked
// against the clients record set.
func (s *vehicleService) SaveVehicle(ctx context.Context, req dto.SaveVehicleRequest) (*dto.VehicleResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	v := req.ToVehicle()
	status, err := canonicalStatus(vehicle.Schema, v.Status)
	if err != nil {
		return nil, err
	}
	v.Status = status
	if err := v.Validate(); err != nil {
		return nil, err
	}

	id, err := s.VehicleRepo.Save(ctx, v)
	if err != nil {
		return nil, err
	}

	s.Logger.Infow("vehicle saved", "vehicle_id", id, "updated", req.ID > 0)
	return s.GetVehicle(ctx, id)
}

func (s *vehicleService) DeleteVehicle(ctx context.Context, id int) error {
	if err := s.VehicleRepo.Delete(ctx, id); err != nil {
		return err
	}
	s.Logger.Infow("vehicle deleted", "vehicle_id", id)
	return nil
}
