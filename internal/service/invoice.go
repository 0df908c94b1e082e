package service

import (
	"context"
	"strings"
	"time"

	"github.com/dealerbook/dealerbook/internal/api/dto"
	"github.com/dealerbook/dealerbook/internal/domain/invoice"
	ierr "github.com/dealerbook/dealerbook/internal/errors"
	"github.com/dealerbook/dealerbook/internal/interfaces"
	"github.com/dealerbook/dealerbook/internal/types"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

// InvoiceDateLayout is the layout of the fecha column
const InvoiceDateLayout = "2006-01-02"

type InvoiceService = interfaces.InvoiceService

type invoiceService struct {
	ServiceParams
	now func() time.Time
}

func NewInvoiceService(params ServiceParams) InvoiceService {
	return &invoiceService{
		ServiceParams: params,
		now:           time.Now,
	}
}

func (s *invoiceService) ListInvoices(ctx context.Context, filter *types.InvoiceFilter, page types.PageRequest) (*dto.ListInvoicesResponse, error) {
	invoices, err := s.InvoiceRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	response := types.Paginate(lo.Map(invoices, func(inv *invoice.Invoice, _ int) *dto.InvoiceResponse {
		return &dto.InvoiceResponse{Invoice: inv}
	}), page)
	return &response, nil
}

func (s *invoiceService) GetInvoiceByNumber(ctx context.Context, number string) (*dto.InvoiceResponse, error) {
	inv, err := s.InvoiceRepo.GetByNumber(ctx, number)
	if err != nil {
		return nil, err
	}
	return &dto.InvoiceResponse{Invoice: inv}, nil
}

// NextInvoiceNumber returns the number the next invoice of pointOfSale
// would get. A blank point of sale means the configured one.
func (s *invoiceService) NextInvoiceNumber(ctx context.Context, pointOfSale string) (string, error) {
	return nextInvoiceNumber(ctx, s.InvoiceRepo, pointOfSale, s.Config.Business.PointOfSale)
}

// IssueInvoice numbers, prices, authorizes and stores a new invoice
func (s *invoiceService) IssueInvoice(ctx context.Context, req dto.IssueInvoiceRequest) (*dto.InvoiceResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	business := s.Config.Business
	if !lo.Contains(business.DocumentTypes, req.Type) {
		return nil, ierr.NewError("unknown document type").
			WithHintf("Document type must be one of %v", business.DocumentTypes).
			WithReportableDetails(map[string]any{"tipo": req.Type}).
			Mark(ierr.ErrValidation)
	}
	if !lo.Contains(business.PaymentConditions, req.PaymentCondition) {
		return nil, ierr.NewError("unknown payment condition").
			WithHintf("Payment condition must be one of %v", business.PaymentConditions).
			WithReportableDetails(map[string]any{"pago": req.PaymentCondition}).
			Mark(ierr.ErrValidation)
	}

	if err := s.fillFromRecords(ctx, &req); err != nil {
		return nil, err
	}
	if err := validateParties(req); err != nil {
		return nil, err
	}

	number, err := s.NextInvoiceNumber(ctx, req.PointOfSale)
	if err != nil {
		return nil, err
	}

	subtotal := req.Price.Round(2)
	tax := subtotal.Mul(decimal.NewFromFloat(business.TaxRate)).Round(2)
	inv := &invoice.Invoice{
		Number:           number,
		Date:             s.now().Format(InvoiceDateLayout),
		Client:           strings.TrimSpace(req.Client),
		ClientTaxID:      strings.TrimSpace(req.ClientTaxID),
		Vehicle:          strings.TrimSpace(req.Vehicle),
		Plate:            strings.TrimSpace(req.Plate),
		Type:             req.Type,
		PaymentCondition: req.PaymentCondition,
		Subtotal:         subtotal,
		Tax:              tax,
		Total:            subtotal.Add(tax),
	}

	auth, err := s.Authorizer.Authorize(ctx, inv)
	if err != nil {
		return nil, err
	}
	inv.AuthCode = auth.Code
	inv.AuthExpiration = auth.Expiration.Format(invoice.AuthExpirationLayout)

	if err := s.InvoiceRepo.Append(ctx, inv); err != nil {
		return nil, err
	}

	s.Logger.Infow("invoice issued",
		"number", inv.Number,
		"type", inv.Type,
		"total", inv.Total.String(),
		"cae", inv.AuthCode,
	)
	return &dto.InvoiceResponse{Invoice: inv}, nil
}

// fillFromRecords completes blank client and vehicle fields from the
// referenced records
func (s *invoiceService) fillFromRecords(ctx context.Context, req *dto.IssueInvoiceRequest) error {
	if req.ClientID != nil {
		c, err := s.ClientRepo.Get(ctx, *req.ClientID)
		if err != nil {
			return err
		}
		if strings.TrimSpace(req.Client) == "" {
			req.Client = c.FullName()
		}
		if strings.TrimSpace(req.ClientTaxID) == "" {
			req.ClientTaxID = c.TaxID()
		}
	}

	if req.VehicleID != nil {
		v, err := s.VehicleRepo.Get(ctx, *req.VehicleID)
		if err != nil {
			return err
		}
		if strings.TrimSpace(req.Vehicle) == "" {
			req.Vehicle = v.Description()
		}
		if req.Price.IsZero() {
			req.Price = decimal.NewFromFloat(v.Price)
		}
	}
	return nil
}

func validateParties(req dto.IssueInvoiceRequest) error {
	missing := lo.PickBy(map[string]string{
		"cliente":          req.Client,
		"cuit_dni_cliente": req.ClientTaxID,
		"vehiculo":         req.Vehicle,
	}, func(_ string, v string) bool {
		return strings.TrimSpace(v) == ""
	})
	if len(missing) == 0 {
		return nil
	}

	details := make(map[string]any, len(missing))
	for field := range missing {
		details[field] = "required"
	}
	return ierr.NewError("missing invoice data").
		WithHint("The invoice needs a client, the client's CUIT or DNI and a vehicle").
		WithReportableDetails(details).
		Mark(ierr.ErrValidation)
}
