package invoice

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseNumber(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want Number
		ok   bool
	}{
		{name: "valid", in: "0001-00000042", want: Number{PointOfSale: 1, Sequence: 42}, ok: true},
		{name: "spaces", in: " 0003-00000001 ", want: Number{PointOfSale: 3, Sequence: 1}, ok: true},
		{name: "short sequence", in: "0001-123", ok: false},
		{name: "short point of sale", in: "1-00000001", ok: false},
		{name: "letters", in: "abc-123", ok: false},
		{name: "no dash", in: "000100000001", ok: false},
		{name: "signed", in: "0001-+0000001", ok: false},
		{name: "empty", in: "", ok: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseNumber(tt.in)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestNumberString(t *testing.T) {
	assert.Equal(t, "0001-00000001", Number{PointOfSale: 1, Sequence: 1}.String())
	assert.Equal(t, "0123-00004567", Number{PointOfSale: 123, Sequence: 4567}.String())
}

func TestNextNumber(t *testing.T) {
	tests := []struct {
		name        string
		existing    []string
		pointOfSale int
		want        string
	}{
		{
			name:        "empty history",
			existing:    nil,
			pointOfSale: 1,
			want:        "0001-00000001",
		},
		{
			name:        "other points of sale ignored",
			existing:    []string{"0001-00000003", "0001-00000007", "0002-00000099"},
			pointOfSale: 1,
			want:        "0001-00000008",
		},
		{
			name:        "first of a new point of sale",
			existing:    []string{"0001-00000003"},
			pointOfSale: 5,
			want:        "0005-00000001",
		},
		{
			name:        "malformed ignored",
			existing:    []string{"abc-123", "", "0001-5"},
			pointOfSale: 1,
			want:        "0001-00000001",
		},
		{
			name:        "order does not matter",
			existing:    []string{"0002-00000010", "0002-00000002"},
			pointOfSale: 2,
			want:        "0002-00000011",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NextNumber(tt.existing, tt.pointOfSale))
		})
	}
}

func TestParsePointOfSale(t *testing.T) {
	n, err := ParsePointOfSale("0001")
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	n, err = ParsePointOfSale(" 12 ")
	require.NoError(t, err)
	assert.Equal(t, 12, n)

	for _, bad := range []string{"", "abc", "-1", "10000"} {
		_, err := ParsePointOfSale(bad)
		assert.Error(t, err, "value %q", bad)
	}
}
