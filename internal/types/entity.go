package types

import (
	ierr "github.com/dealerbook/dealerbook/internal/errors"
	"github.com/samber/lo"
)

// EntityKind names one of the record sets kept by the application.
// Each kind is persisted as its own spreadsheet file.
type EntityKind string

const (
	EntityKindClient   EntityKind = "clients"
	EntityKindVehicle  EntityKind = "vehicles"
	EntityKindSupplier EntityKind = "suppliers"
	EntityKindInvoice  EntityKind = "invoices"
)

// EntityKinds lists every kind in provisioning order
var EntityKinds = []EntityKind{
	EntityKindClient,
	EntityKindVehicle,
	EntityKindSupplier,
	EntityKindInvoice,
}

func (k EntityKind) String() string {
	return string(k)
}

func (k EntityKind) Validate() error {
	if !lo.Contains(EntityKinds, k) {
		return ierr.NewError("unknown entity kind").
			WithHintf("Entity kind must be one of %v", EntityKinds).
			WithReportableDetails(map[string]any{
				"kind": string(k),
			}).
			Mark(ierr.ErrValidation)
	}
	return nil
}

// IsAppendOnly reports whether records of this kind can only be appended.
// Invoices are never updated nor deleted once issued.
func (k EntityKind) IsAppendOnly() bool {
	return k == EntityKindInvoice
}
