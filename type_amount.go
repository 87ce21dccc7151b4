package ledger

import (
	"bytes"
	"encoding/json"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Amount represents a monetary value in the ledger's single currency.
//
// It is backed by a decimal so that totals and groupings are exact and
// reproducible regardless of summation order.
type Amount struct {
	value decimal.Decimal
}

// N builds an Amount from any numeric value.
func N[T float32 | float64 | int | int32 | int64 | uint | uint32 | uint64 | decimal.Decimal](value T) Amount {
	return Amount{value: newDecimal(value)}
}

func newDecimal[T float32 | float64 | int | int32 | int64 | uint | uint32 | uint64 | decimal.Decimal](value T) decimal.Decimal {
	switch v := any(value).(type) {
	case decimal.Decimal:
		return v
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
	}
	return decimal.Zero
}

// ParseAmount coerces arbitrary text into an Amount. Anything that does not
// parse as a number coerces to zero, so that NaN or garbage never reaches
// stored state.
func ParseAmount(str string) Amount {
	d, err := decimal.NewFromString(str)
	if err != nil {
		return Amount{}
	}
	return Amount{value: d}
}

func (a Amount) Add(b Amount) Amount { return Amount{value: a.value.Add(b.value)} }
func (a Amount) Sub(b Amount) Amount { return Amount{value: a.value.Sub(b.value)} }
func (a Amount) Equal(b Amount) bool { return a.value.Equal(b.value) }
func (a Amount) Cmp(b Amount) int    { return a.value.Cmp(b.value) }
func (a Amount) IsZero() bool        { return a.value.IsZero() }

// InexactFloat64 returns the nearest float64. Display only, never stored back.
func (a Amount) InexactFloat64() float64 { return a.value.InexactFloat64() }

// String formats the amount as Brazilian reais.
func (a Amount) String() string {
	cur := *money.New(0, money.BRL).Currency()
	dec := a.value.Shift(int32(cur.Fraction))
	return cur.Formatter().Format(dec.IntPart())
}

// MarshalJSON writes the amount as a plain json number.
func (a Amount) MarshalJSON() ([]byte, error) {
	return []byte(a.value.String()), nil
}

// UnmarshalJSON coerces a json value into an Amount: numbers and numeric
// strings parse normally, anything else (null, empty or malformed text)
// coerces to zero. Historical snapshots hold values in both shapes.
func (a *Amount) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*a = Amount{}
		return nil
	}
	if data[0] == '"' {
		var str string
		if err := json.Unmarshal(data, &str); err != nil {
			*a = Amount{}
			return nil
		}
		*a = ParseAmount(str)
		return nil
	}
	d, err := decimal.NewFromString(string(data))
	if err != nil {
		*a = Amount{}
		return nil
	}
	*a = Amount{value: d}
	return nil
}

var _ json.Marshaler = (*Amount)(nil)
var _ json.Unmarshaler = (*Amount)(nil)
