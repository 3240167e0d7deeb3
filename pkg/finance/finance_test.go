package finance

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMonthlyPayment_ReferenceLoan(t *testing.T) {
	t.Parallel()

	// 10M property, 2M down, 8M principal at 12.5% over 15 years.
	payment := MonthlyPayment(8_000_000, 0.125, 180)

	// Closed-form check against the amortization formula.
	r := 0.125 / 12
	pow := math.Pow(1+r, 180)
	want := 8_000_000 * r * pow / (pow - 1)

	assert.InDelta(t, want, payment, 0.01)
	assert.InDelta(t, 98_593, payment, 100, "sanity: ~98.6k KES per month")
}

func TestMonthlyPayment_ZeroRate(t *testing.T) {
	t.Parallel()

	assert.InDelta(t, 1000.0, MonthlyPayment(120_000, 0, 120), 0.001)
}

func TestMonthlyPayment_DegenerateInputs(t *testing.T) {
	t.Parallel()

	assert.Zero(t, MonthlyPayment(0, 0.125, 180))
	assert.Zero(t, MonthlyPayment(-5, 0.125, 180))
	assert.Zero(t, MonthlyPayment(1000, 0.125, 0))
}

func TestQuote_ReferenceTerms(t *testing.T) {
	t.Parallel()

	q := Quote(10_000_000)

	assert.InDelta(t, 2_000_000, q.DownPayment, 0.001)
	assert.InDelta(t, 8_000_000, q.Principal, 0.001)
	assert.Equal(t, 180, q.TermMonths)
	assert.InDelta(t, MonthlyPayment(8_000_000, 0.125, 180), q.MonthlyPayment, 0.001)
}

func TestQuoteWith_Fallbacks(t *testing.T) {
	t.Parallel()

	q := QuoteWith(5_000_000, 0, 0)
	assert.InDelta(t, 1_000_000, q.DownPayment, 0.001)
	assert.Equal(t, DefaultTermMonths, q.TermMonths)

	q = QuoteWith(5_000_000, 2_500_000, 120)
	assert.InDelta(t, 2_500_000, q.Principal, 0.001)
	assert.Equal(t, 120, q.TermMonths)
}

func TestFormatKES(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   float64
		want string
	}{
		{0, "KES 0"},
		{950, "KES 950"},
		{83_000, "KES 83,000"},
		{8_500_000, "KES 8,500,000"},
		{8_500_000.49, "KES 8,500,000"},
		{8_499_999.7, "KES 8,500,000"},
		{-250_000, "KES -250,000"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, FormatKES(tt.in))
		})
	}
}
