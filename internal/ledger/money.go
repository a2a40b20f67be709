package ledger

import (
	"math"
	"regexp"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/shopspring/decimal"

	apperrors "theark/internal/errors"
)

// Money is an amount in cents. Sums are computed on cents so that many small
// entries never drift.
type Money int64

var maxCents = decimal.NewFromInt(math.MaxInt64)

// amountPattern admits plain decimal notation only. Exponent forms are
// refused before they reach decimal arithmetic.
var amountPattern = regexp.MustCompile(`^\d*\.?\d+$`)

const maxAmountLen = 32

// ParseAmount parses user-entered amount text. Either "." or "," may be the
// fractional separator. The value is rounded to 2 places, half away from
// zero, and must stay positive after rounding.
func ParseAmount(text string) (Money, error) {
	raw := strings.Replace(strings.TrimSpace(text), ",", ".", 1)
	if len(raw) > maxAmountLen || !amountPattern.MatchString(raw) {
		return 0, apperrors.ErrBadAmount
	}

	d, err := decimal.NewFromString(raw)
	if err != nil {
		return 0, apperrors.ErrBadAmount
	}

	cents := d.Round(2).Shift(2)
	if !cents.IsPositive() || cents.GreaterThan(maxCents) {
		return 0, apperrors.ErrBadAmount
	}
	return Money(cents.IntPart()), nil
}

// Decimal returns the amount as a decimal with two places.
func (m Money) Decimal() decimal.Decimal {
	return decimal.New(int64(m), -2)
}

// String formats the amount as "12.50".
func (m Money) String() string {
	return m.Decimal().StringFixed(2)
}

// MarshalJSON encodes the amount as a JSON number with two decimals.
func (m Money) MarshalJSON() ([]byte, error) {
	return []byte(m.String()), nil
}

// FormatBYN renders the amount the way the dashboard shows it, e.g.
// "1 200,00 BYN" with a non-breaking thousands separator.
func FormatBYN(m Money) string {
	f, _ := m.Decimal().Float64()
	return humanize.FormatFloat("#\u00a0###,##", f) + " BYN"
}
