package invoice

import (
	"fmt"
	"strconv"
	"strings"

	ierr "github.com/dealerbook/dealerbook/internal/errors"
)

const (
	pointOfSaleDigits = 4
	sequenceDigits    = 8
)

// Number is a parsed invoice number
type Number struct {
	PointOfSale int
	Sequence    int
}

func (n Number) String() string {
	return fmt.Sprintf("%0*d-%0*d", pointOfSaleDigits, n.PointOfSale, sequenceDigits, n.Sequence)
}

// ParseNumber parses text shaped exactly like PPPP-NNNNNNNN: four digits, a
// dash and eight digits, with surrounding spaces allowed.
func ParseNumber(s string) (Number, bool) {
	pos, seq, ok := strings.Cut(strings.TrimSpace(s), "-")
	if !ok || !isDigits(pos, pointOfSaleDigits) || !isDigits(seq, sequenceDigits) {
		return Number{}, false
	}
	p, err := strconv.Atoi(pos)
	if err != nil {
		return Number{}, false
	}
	n, err := strconv.Atoi(seq)
	if err != nil {
		return Number{}, false
	}
	return Number{PointOfSale: p, Sequence: n}, true
}

// ParsePointOfSale accepts a point of sale written with or without leading
// zeros ("1", "0001") and returns its numeric value.
func ParsePointOfSale(s string) (int, error) {
	s = strings.TrimSpace(s)
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 || n > 9999 {
		return 0, ierr.NewError("invalid point of sale").
			WithHint("Point of sale must be a number of up to 4 digits").
			WithReportableDetails(map[string]any{
				"point_of_sale": s,
			}).
			Mark(ierr.ErrValidation)
	}
	return n, nil
}

// NextNumber returns the number following the highest sequence issued for
// pointOfSale. Numbers of other points of sale and malformed numbers are
// ignored. The first invoice of a point of sale gets sequence 1.
func NextNumber(existing []string, pointOfSale int) string {
	highest := 0
	for _, s := range existing {
		n, ok := ParseNumber(s)
		if !ok || n.PointOfSale != pointOfSale {
			continue
		}
		highest = max(highest, n.Sequence)
	}
	return Number{PointOfSale: pointOfSale, Sequence: highest + 1}.String()
}

func isDigits(s string, n int) bool {
	if len(s) != n {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
