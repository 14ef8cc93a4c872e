package agreement //nolint:testpackage // exercises unexported construction and rendering

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCoefficient_Decimal(t *testing.T) {
	tests := []struct {
		name   string
		num    int64
		den    int64
		digits int
		want   string
	}{
		{
			name:   "repeating expansion rounds at the final digit",
			num:    39, den: 55,
			digits: 28,
			want:   "0.7090909090909090909090909091",
		},
		{
			name:   "repeating ones",
			num:    1, den: 9,
			digits: 28,
			want:   "0.1111111111111111111111111111",
		},
		{
			name:   "terminating expansion prints without padding",
			num:    3, den: 4,
			digits: 28,
			want:   "0.75",
		},
		{
			name:   "exact one",
			num:    1, den: 1,
			digits: 28,
			want:   "1",
		},
		{
			name:   "negative repeating expansion",
			num:    -4, den: 21,
			digits: 28,
			want:   "-0.1904761904761904761904761905",
		},
		{
			name:   "integer above one",
			num:    100, den: 1,
			digits: 28,
			want:   "100",
		},
		{
			name:   "integer part with repeating fraction",
			num:    1000, den: 3,
			digits: 28,
			want:   "333.3333333333333333333333333",
		},
		{
			name:   "leading zeros after the point",
			num:    1, den: 2000,
			digits: 28,
			want:   "0.0005",
		},
		{
			name:   "half-even tie rounds down to even",
			num:    1, den: 8,
			digits: 2,
			want:   "0.12",
		},
		{
			name:   "half-even tie rounds up to even",
			num:    3, den: 8,
			digits: 2,
			want:   "0.38",
		},
		{
			name:   "rounding carries across the point",
			num:    199, den: 200,
			digits: 2,
			want:   "1.0",
		},
		{
			name:   "digit count clamps to one",
			num:    39, den: 55,
			digits: 0,
			want:   "0.7",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newCoefficient(big.NewRat(tt.num, tt.den))
			assert.Equal(t, tt.want, c.Decimal(tt.digits))
		})
	}
}

func TestCoefficient_ZeroValue(t *testing.T) {
	var c Coefficient

	assert.Equal(t, "0", c.String())
	assert.Equal(t, "0", c.Decimal(5))
	assert.Zero(t, c.Float64())
	assert.Equal(t, 0, c.Rat().Sign())
}

func TestCoefficient_String(t *testing.T) {
	c := newCoefficient(big.NewRat(39, 55))
	assert.Equal(t, c.Decimal(DefaultDigits), c.String())
}

func TestCoefficient_Rat_ReturnsCopy(t *testing.T) {
	c := newCoefficient(big.NewRat(1, 3))

	r := c.Rat()
	r.SetInt64(7)

	assert.Equal(t, "1/3", c.Rat().RatString(), "mutating a returned rational must not affect the coefficient")
}

func TestCoefficient_Cmp(t *testing.T) {
	low := newCoefficient(big.NewRat(1, 9))
	high := newCoefficient(big.NewRat(39, 55))

	assert.Equal(t, -1, low.Cmp(high))
	assert.Equal(t, 1, high.Cmp(low))
	assert.Equal(t, 0, low.Cmp(newCoefficient(big.NewRat(1, 9))))
}

func TestCoefficient_Float64(t *testing.T) {
	c := newCoefficient(big.NewRat(3, 4))
	assert.InDelta(t, 0.75, c.Float64(), 1e-15)

	neg := newCoefficient(big.NewRat(-4, 21))
	assert.Negative(t, neg.Float64())
}
