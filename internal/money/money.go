package money

import (
	"errors"
	"regexp"
	"strconv"

	"github.com/shopspring/decimal"
)

// ErrInvalidAmountFormat is returned when an amount string does not match the
// canonical dollars-and-cents format or is not strictly positive.
var ErrInvalidAmountFormat = errors.New("invalid amount format")

// amountPattern is the canonical amount format: up to 9 integer digits with an
// optional fractional part of up to 2 digits. Integer-only strings like "1500"
// are valid; the looser float fallback some clients used is not supported.
var amountPattern = regexp.MustCompile(`^\d{1,9}(?:\.\d{1,2})?$`)

// ParseDollarsToCents converts a user-entered dollar string into integer cents.
// The value must match amountPattern and be strictly greater than zero.
// Conversion goes through decimal arithmetic so no float ever carries an amount.
func ParseDollarsToCents(input string) (int64, error) {
	if !amountPattern.MatchString(input) {
		return 0, ErrInvalidAmountFormat
	}

	dollars, err := decimal.NewFromString(input)
	if err != nil {
		return 0, ErrInvalidAmountFormat
	}

	cents := dollars.Mul(decimal.NewFromInt(100))
	if !cents.IsPositive() {
		return 0, ErrInvalidAmountFormat
	}

	return cents.IntPart(), nil
}

// FormatCentsAsCurrency renders integer cents as a USD display string with
// thousands separators and exactly two fractional digits, e.g. 150000 -> "$1,500.00".
// Negative values render as "-$…" although stored amounts are always positive.
func FormatCentsAsCurrency(cents int64) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}

	dollars := cents / 100
	fraction := cents % 100

	digits := strconv.FormatInt(dollars, 10)
	grouped := make([]byte, 0, len(digits)+len(digits)/3)
	for i, d := range []byte(digits) {
		if i > 0 && (len(digits)-i)%3 == 0 {
			grouped = append(grouped, ',')
		}
		grouped = append(grouped, d)
	}

	return sign + "$" + string(grouped) + "." + twoDigits(fraction)
}

func twoDigits(n int64) string {
	if n < 10 {
		return "0" + strconv.FormatInt(n, 10)
	}
	return strconv.FormatInt(n, 10)
}
