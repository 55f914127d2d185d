package currency

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// The smallest and largest amounts, in cents, for which a payment
// request can be generated.
const (
	MinimumRequestCents = 1
	MaximumRequestCents = 1000000
)

// InvalidAmountError describes an amount that falls outside of the
// range for which payment requests can be generated.
type InvalidAmountError struct {
	Cents int
}

func (e *InvalidAmountError) Error() string {
	return fmt.Sprintf("amount must be between %s and %s, got %s",
		FromCents(MinimumRequestCents).String(),
		FromCents(MaximumRequestCents).String(),
		FromCents(e.Cents).String())
}

// Amount represents an amount of USD expressed as whole dollars and cents.
type Amount struct {
	Dollars int
	Cents   int
}

// FromCents expresses the given number of cents as an Amount.
func FromCents(cents int) Amount {
	remainderCents := cents % 100
	dollars := (cents - remainderCents) / 100

	return Amount{
		Dollars: dollars,
		Cents:   remainderCents,
	}
}

// ParseAmount parses a decimal string such as "5", "5.5", or "5.50"
// into an Amount. At most two fraction digits are allowed, since USDC
// request amounts are expressed in whole cents.
func ParseAmount(text string) (Amount, error) {
	dollarsText, centsText, hasFraction := strings.Cut(text, ".")

	dollars, err := strconv.Atoi(dollarsText)
	if err != nil {
		return Amount{}, fmt.Errorf("failed to parse dollars in amount '%s': %w", text, err)
	}

	if dollars < 0 || strings.HasPrefix(dollarsText, "-") {
		return Amount{}, fmt.Errorf("amount cannot be negative: '%s'", text)
	}

	cents := 0
	if hasFraction {
		if len(centsText) == 0 || len(centsText) > 2 {
			return Amount{}, fmt.Errorf("amount '%s' must have one or two fraction digits", text)
		}

		cents, err = strconv.Atoi(centsText)
		if err != nil {
			return Amount{}, fmt.Errorf("failed to parse cents in amount '%s': %w", text, err)
		}

		if cents < 0 {
			return Amount{}, fmt.Errorf("amount cannot be negative: '%s'", text)
		}

		// "5.5" means fifty cents, not five
		if len(centsText) == 1 {
			cents *= 10
		}
	}

	return Amount{
		Dollars: dollars,
		Cents:   cents,
	}, nil
}

// ToCents expresses the amount in just cents.
func (a Amount) ToCents() int {
	return (a.Dollars * 100) + a.Cents
}

// Format formats the amount with exactly two decimal places, as it
// appears in a payment request (e.g., "5.00").
func (a Amount) Format() string {
	absoluteDollars := int(math.Abs(float64(a.Dollars)))
	absoluteCents := int(math.Abs(float64(a.Cents)))

	formatted := fmt.Sprintf("%d.%02d", absoluteDollars, absoluteCents)

	if a.Dollars < 0 || a.Cents < 0 {
		return "-" + formatted
	}

	return formatted
}

func (a Amount) String() string {
	if a.Dollars < 0 || a.Cents < 0 {
		return "-$" + strings.TrimPrefix(a.Format(), "-")
	}

	return "$" + a.Format()
}

// Validate verifies that the amount is within the acceptable range for
// a payment request: $0.01 to $10,000.00, inclusive on both ends.
func (a Amount) Validate() error {
	totalCents := a.ToCents()
	if totalCents < MinimumRequestCents || totalCents > MaximumRequestCents {
		return &InvalidAmountError{Cents: totalCents}
	}

	return nil
}
