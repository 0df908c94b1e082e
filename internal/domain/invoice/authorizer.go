package invoice

import (
	"context"
	"math/rand/v2"
	"strings"
	"time"

	ierr "github.com/dealerbook/dealerbook/internal/errors"
)

const (
	// AuthExpirationLayout is the date layout of the vto_cae column
	AuthExpirationLayout = "02/01/2006"

	authCodeDigits = 14
)

// Authorization is the electronic authorization granted to an invoice
type Authorization struct {
	Code       string
	Expiration time.Time
}

// Authorizer obtains the electronic authorization for an invoice before it
// is stored.
type Authorizer interface {
	Authorize(ctx context.Context, inv *Invoice) (*Authorization, error)
}

// StubAuthorizer grants a random authorization code without contacting the
// tax authority. It is the only Authorizer the application ships with.
type StubAuthorizer struct {
	validDays int
	now       func() time.Time
	rng       *rand.Rand
}

// NewStubAuthorizer returns a stub granting codes valid for validDays
func NewStubAuthorizer(validDays int) *StubAuthorizer {
	return &StubAuthorizer{
		validDays: validDays,
		now:       time.Now,
		rng:       rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
	}
}

// NewStubAuthorizerWithClock is NewStubAuthorizer with a fixed clock and
// seed, for tests.
func NewStubAuthorizerWithClock(validDays int, now func() time.Time, seed uint64) *StubAuthorizer {
	return &StubAuthorizer{
		validDays: validDays,
		now:       now,
		rng:       rand.New(rand.NewPCG(seed, seed)),
	}
}

func (a *StubAuthorizer) Authorize(ctx context.Context, inv *Invoice) (*Authorization, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if inv == nil || strings.TrimSpace(inv.ClientTaxID) == "" {
		return nil, ierr.NewError("client tax id is required for authorization").
			WithHint("The client must have a CUIT or DNI to issue an invoice").
			Mark(ierr.ErrValidation)
	}

	var code strings.Builder
	code.Grow(authCodeDigits)
	for range authCodeDigits {
		code.WriteByte(byte('0' + a.rng.IntN(10)))
	}

	today := a.now()
	return &Authorization{
		Code:       code.String(),
		Expiration: today.AddDate(0, 0, a.validDays),
	}, nil
}
