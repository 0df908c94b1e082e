package invoice

import (
	"context"
	"testing"
	"time"

	ierr "github.com/dealerbook/dealerbook/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStubAuthorizer(t *testing.T) {
	now := time.Date(2024, 3, 25, 15, 0, 0, 0, time.UTC)
	a := NewStubAuthorizerWithClock(10, func() time.Time { return now }, 7)

	auth, err := a.Authorize(context.Background(), &Invoice{ClientTaxID: "20-12345678-9"})
	require.NoError(t, err)

	assert.Len(t, auth.Code, 14)
	assert.Regexp(t, `^[0-9]{14}$`, auth.Code)
	assert.Equal(t, "04/04/2024", auth.Expiration.Format(AuthExpirationLayout))
}

func TestStubAuthorizer_RequiresTaxID(t *testing.T) {
	a := NewStubAuthorizer(10)

	_, err := a.Authorize(context.Background(), &Invoice{ClientTaxID: "  "})
	require.Error(t, err)
	assert.True(t, ierr.IsValidation(err))
}
