package service

import (
	"context"

	"github.com/dealerbook/dealerbook/internal/api/dto"
	"github.com/dealerbook/dealerbook/internal/domain/supplier"
	"github.com/dealerbook/dealerbook/internal/interfaces"
	"github.com/dealerbook/dealerbook/internal/types"
	"github.com/samber/lo"
)

type SupplierService = interfaces.SupplierService

type supplierService struct {
	ServiceParams
}

func NewSupplierService(params ServiceParams) SupplierService {
	return &supplierService{
		ServiceParams: params,
	}
}

func (s *supplierService) ListSuppliers(ctx context.Context, filter *types.SupplierFilter, page types.PageRequest) (*dto.ListSuppliersResponse, error) {
	suppliers, err := s.SupplierRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	response := types.Paginate(lo.Map(suppliers, func(sp *supplier.Supplier, _ int) *dto.SupplierResponse {
		return &dto.SupplierResponse{Supplier: sp}
	}), page)
	return &response, nil
}

func (s *supplierService) GetSupplier(ctx context.Context, id int) (*dto.SupplierResponse, error) {
	sp, err := s.SupplierRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return &dto.SupplierResponse{Supplier: sp}, nil
}

func (s *supplierService) SaveSupplier(ctx context.Context, req dto.SaveSupplierRequest) (*dto.SupplierResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	sp := req.ToSupplier()
	status, err := canonicalStatus(supplier.Schema, sp.Status)
	if err != nil {
		return nil, err
	}
	sp.Status = status
	if err := sp.Validate(); err != nil {
		return nil, err
	}

	id, err := s.SupplierRepo.Save(ctx, sp)
	if err != nil {
		return nil, err
	}

	s.Logger.Infow("supplier saved", "supplier_id", id, "updated", req.ID > 0)
	return s.GetSupplier(ctx, id)
}

func (s *supplierService) DeleteSupplier(ctx context.Context, id int) error {
	if err := s.SupplierRepo.Delete(ctx, id); err != nil {
		return err
	}
	s.Logger.Infow("supplier deleted", "supplier_id", id)
	return nil
}
