// Package finance implements the loan arithmetic used across keja-match:
// the standard amortization formula and the reference rent-to-own terms
// applied when quoting a listing.
package finance

import (
	"math"
	"strconv"
)

// Reference loan terms for affordability estimates.
const (
	DefaultDownPaymentPct = 0.20
	DefaultAnnualRate     = 0.125
	DefaultTermMonths     = 180
)

// MonthlyPayment computes the payment on an amortizing loan:
// P * r(1+r)^n / ((1+r)^n - 1) with monthly rate r and n payments.
// A zero rate degrades to straight-line principal/n. Non-positive
// principal or term yields 0.
func MonthlyPayment(principal, annualRate float64, months int) float64 {
	if principal <= 0 || months <= 0 {
		return 0
	}
	if annualRate == 0 {
		return principal / float64(months)
	}

	r := annualRate / 12
	pow := math.Pow(1+r, float64(months))
	return principal * r * pow / (pow - 1)
}

// LoanQuote describes the reference financing terms for a property price.
type LoanQuote struct {
	PropertyPrice  float64 `json:"property_price"`
	DownPayment    float64 `json:"down_payment"`
	Principal      float64 `json:"principal"`
	AnnualRate     float64 `json:"annual_rate"`
	TermMonths     int     `json:"term_months"`
	MonthlyPayment float64 `json:"monthly_payment"`
}

// Quote returns the reference 20%-down, 15-year, 12.5%-APR terms for a price.
func Quote(price float64) LoanQuote {
	down := price * DefaultDownPaymentPct
	principal := price - down
	return LoanQuote{
		PropertyPrice:  price,
		DownPayment:    down,
		Principal:      principal,
		AnnualRate:     DefaultAnnualRate,
		TermMonths:     DefaultTermMonths,
		MonthlyPayment: MonthlyPayment(principal, DefaultAnnualRate, DefaultTermMonths),
	}
}

// FormatKES renders an amount as a whole-shilling display string with
// thousands separators, e.g. "KES 8,500,000".
func FormatKES(amount float64) string {
	n := int64(math.Round(amount))
	neg := n < 0
	if neg {
		n = -n
	}

	s := strconv.FormatInt(n, 10)
	out := make([]byte, 0, len(s)+len(s)/3)
	for i, c := range []byte(s) {
		if i > 0 && (len(s)-i)%3 == 0 {
			out = append(out, ',')
		}
		out = append(out, c)
	}

	if neg {
		return "KES -" + string(out)
	}
	return "KES " + string(out)
}

// QuoteWith returns terms for an explicit down payment and term, falling back
// to the reference values when either is unset.
func QuoteWith(price, downPayment float64, termMonths int) LoanQuote {
	if downPayment <= 0 {
		downPayment = price * DefaultDownPaymentPct
	}
	if termMonths <= 0 {
		termMonths = DefaultTermMonths
	}
	principal := price - downPayment
	return LoanQuote{
		PropertyPrice:  price,
		DownPayment:    downPayment,
		Principal:      principal,
		AnnualRate:     DefaultAnnualRate,
		TermMonths:     termMonths,
		MonthlyPayment: MonthlyPayment(principal, DefaultAnnualRate, termMonths),
	}
}
