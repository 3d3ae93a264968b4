package money_test

import (
	"testing"

	"github.com/amirasaad/retailbank/pkg/money"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{"whole units", "1000", "1000.00", false},
		{"cents", "99.99", "99.99", false},
		{"negative overdraft", "-500", "-500.00", false},
		{"surrounding spaces", "  12.5 ", "12.50", false},
		{"empty", "", "", true},
		{"garbage", "12,50", "", true},
		{"currency symbol", "$10", "", true},
		{"trailing zeros", "1.500", "1.50", false},
		{"sub-cent", "0.005", "", true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			got, err := money.Parse(tt.input)
			if tt.wantErr {
				require.ErrorIs(t, err, money.ErrInvalidAmount)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, money.Format(got))
		})
	}
}

func TestFormatRoundsToStorePlaces(t *testing.T) {
	assert.Equal(t, "0.93", money.Format(money.NewRate("0.00075").Apply(money.MustParse("1234.56"))))
	assert.Equal(t, "1000.25", money.Format(money.MustParse("1000.25")))
	assert.Equal(t, "0.00", money.Format(money.Zero))
}

func TestMustParsePanics(t *testing.T) {
	assert.Panics(t, func() { money.MustParse("not-a-number") })
}

func TestRateApply(t *testing.T) {
	savings := money.NewRate("0.00025")
	got := savings.Apply(money.New(1000))
	assert.True(t, got.Equal(money.MustParse("0.25")), "got %s", got)
	assert.Equal(t, "0.025%", savings.String())

	investment := money.NewRate("0.00075")
	got = investment.Apply(money.MustParse("1234.56"))
	assert.Equal(t, "0.92592", got.String(), "Apply does not round")
}

func TestRateAccrueRoundsToCents(t *testing.T) {
	investment := money.NewRate("0.00075")
	assert.True(t, investment.Accrue(money.MustParse("1234.56")).Equal(money.MustParse("0.93")))
	assert.True(t, investment.Accrue(money.MustParse("500")).Equal(money.MustParse("0.38")), "half rounds up")
	assert.True(t, investment.Accrue(money.New(1)).IsZero())
	assert.Equal(t, "-0.13", money.Round(money.NewRate("-0.125").Apply(money.New(1))).String())
}

func TestIsPositive(t *testing.T) {
	assert.True(t, money.IsPositive(money.MustParse("0.01")))
	assert.False(t, money.IsPositive(money.Zero))
	assert.False(t, money.IsPositive(money.New(-1)))
}
