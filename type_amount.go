package bankbook

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// Amount represents a monetary value.
//
// It is kept exact using decimal arithmetic; the persisted form is a plain
// JSON number so the data file stays readable outside this tool.
type Amount struct {
	value decimal.Decimal
}

func A[T float32 | float64 | int | int32 | int64 | uint | uint32 | uint64 | decimal.Decimal](value T) Amount {
	return Amount{value: newDecimal(value)}
}

func newDecimal[T float32 | float64 | int | int32 | int64 | uint | uint32 | uint64 | decimal.Decimal](value T) decimal.Decimal {
	switch v := any(value).(type) {
	case float32:
		return decimal.NewFromFloat32(v)
	case float64:
		return decimal.NewFromFloat(v)
	case int:
		return decimal.NewFromInt(int64(v))
	case int32:
		return decimal.NewFromInt32(v)
	case int64:
		return decimal.NewFromInt(v)
	case uint:
		return decimal.NewFromUint64(uint64(v))
	case uint32:
		return decimal.NewFromUint64(uint64(v))
	case uint64:
		return decimal.NewFromUint64(v)
	case decimal.Decimal:
		return v
	}
	return decimal.Zero
}

// ParseAmount parses a decimal number in its usual textual form.
func ParseAmount(s string) (Amount, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Amount{}, err
	}
	return Amount{value: d}, nil
}

// String returns the plain decimal representation, without currency.
func (a Amount) String() string { return a.value.String() }

// Display formats the amount for humans using the given 3-letter currency
// code (e.g. "USD" renders 1250 as "$1,250.00").
func (a Amount) Display(code string) string {
	// to get a never nil currency I need to call the Money constructor
	cur := *money.New(0, code).Currency()
	dec := a.value.Shift(int32(cur.Fraction))
	return cur.Formatter().Format(dec.Round(0).IntPart())
}

// Simple wrappers around decimal.Decimal.

func (a Amount) Equal(b Amount) bool       { return a.value.Equal(b.value) }
func (a Amount) IsZero() bool              { return a.value.IsZero() }
func (a Amount) IsPositive() bool          { return a.value.IsPositive() }
func (a Amount) IsNegative() bool          { return a.value.IsNegative() }
func (a Amount) LessThan(b Amount) bool    { return a.value.LessThan(b.value) }
func (a Amount) GreaterThan(b Amount) bool { return a.value.GreaterThan(b.value) }
func (a Amount) Add(b Amount) Amount       { return Amount{value: a.value.Add(b.value)} }
func (a Amount) Sub(b Amount) Amount       { return Amount{value: a.value.Sub(b.value)} }
func (a Amount) Div(b Amount) Amount       { return Amount{value: a.value.Div(b.value)} }

// AsFloat returns the nearest float64; only for display and ratio math,
// the stored value stays exact.
func (a Amount) AsFloat() float64 { return a.value.InexactFloat64() }

func (a Amount) MarshalJSON() ([]byte, error) { return a.value.MarshalJSON() }

func (a *Amount) UnmarshalJSON(data []byte) error { return a.value.UnmarshalJSON(data) }
