package ledger

import (
	"encoding/json"
	"fmt"
	"time"
)

const readDateFormat = "2006-1-2" // Permissive read date format (allows single-digit month/day).

// DateFormat is the format used to represent dates as strings in ISO-8601 format.
const DateFormat = "2006-01-02" // write date format

const readPeriodFormat = "2006-1" // Permissive read period format (allows single-digit month).

// PeriodFormat is the format used to represent calendar months as strings (e.g. "2025-09").
const PeriodFormat = "2006-01"

// Date represents a date with day-level granularity.
type Date struct {
	y int        // year
	m time.Month // month
	d int        // day
}

// NewDate returns a normalized Date for the given year, month, and day.
func NewDate(year int, month time.Month, day int) Date {
	d := Date{year, month, day}
	d.y, d.m, d.d = d.time().Date()
	return d
}

// time returns a time.Time that is a canonical representation of that day (at midnight UTC).
func (d Date) time() time.Time { return time.Date(d.y, d.m, d.d, 0, 0, 0, 0, time.UTC) }

// Year returns current year.
func (d Date) Year() int { return d.y }

// Month returns the month of the date.
func (d Date) Month() time.Month { return d.m }

// Day returns current day of the month.
func (d Date) Day() int { return d.d }

// String format the date in its standard format.
func (d Date) String() string { return d.time().Format(DateFormat) }

// IsZero returns true if the date is the zero value.
func (d Date) IsZero() bool { return d.y == 0 && d.m == 0 && d.d == 0 }

// Before reports whether the day d is before x.
func (d Date) Before(x Date) bool { return d.time().Before(x.time()) }

// After reports whether the day d is after x.
func (d Date) After(x Date) bool { return d.time().After(x.time()) }

// Period returns the calendar month containing the date.
func (d Date) Period() Period { return Period{d.y, d.m} }

// In reports whether the date falls in the given calendar month.
func (d Date) In(p Period) bool { return d.y == p.y && d.m == p.m }

// Today returns the current date.
func Today() Date { return NewDate(time.Now().Date()) }

// ParseDate parses a Date from a string. It is lenient and accepts formats like "2025-7-1".
func ParseDate(str string) (Date, error) {
	on, err := time.Parse(readDateFormat, str)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q want format %q: %w", str, readDateFormat, err)
	}
	return NewDate(on.Date()), nil
}

// MustParseDate is like ParseDate but panics on error.
func MustParseDate(str string) Date {
	d, err := ParseDate(str)
	if err != nil {
		panic(err.Error())
	}
	return d
}

// UnmarshalJSON implements the json specific way to unmarshall a date from a json string.
//
// Empty strings and null decode to the zero Date, so that records missing a
// date survive decoding and get a default stamped during normalization.
func (d *Date) UnmarshalJSON(bytes []byte) error {
	var str string
	if err := json.Unmarshal(bytes, &str); err != nil {
		return err
	}
	if str == "" {
		*d = Date{}
		return nil
	}
	parsed, err := ParseDate(str)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

func (d Date) MarshalJSON() ([]byte, error) {
	str := d.String()
	return json.Marshal(&str)
}

// check that a Date pointer is a valid json marshall/unmarshaller type.
var _ json.Marshaler = (*Date)(nil)
var _ json.Unmarshaler = (*Date)(nil)

// Period represents a calendar month, the unit that scopes assets, fixed
// expenses, receivables and the monthly transaction views.
type Period struct {
	y int
	m time.Month
}

// NewPeriod returns a normalized Period for the given year and month.
func NewPeriod(year int, month time.Month) Period {
	y, m, _ := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC).Date()
	return Period{y, m}
}

// ThisMonth returns the current calendar month.
func ThisMonth() Period { return Today().Period() }

// Year returns the period's year.
func (p Period) Year() int { return p.y }

// Month returns the period's month.
func (p Period) Month() time.Month { return p.m }

// String formats the period in its standard "YYYY-MM" form.
func (p Period) String() string {
	return time.Date(p.y, p.m, 1, 0, 0, 0, 0, time.UTC).Format(PeriodFormat)
}

// IsZero returns true if the period is the zero value.
func (p Period) IsZero() bool { return p.y == 0 && p.m == 0 }

// First returns the first day of the period.
func (p Period) First() Date { return NewDate(p.y, p.m, 1) }

// Before reports whether the period p is before x.
func (p Period) Before(x Period) bool {
	return p.y < x.y || (p.y == x.y && p.m < x.m)
}

// Compare returns -1, 0 or 1 when p is before, equal to, or after x.
func (p Period) Compare(x Period) int {
	switch {
	case p.Before(x):
		return -1
	case x.Before(p):
		return 1
	default:
		return 0
	}
}

// ParsePeriod parses a Period from a string. It is lenient and accepts formats like "2025-7".
func ParsePeriod(str string) (Period, error) {
	on, err := time.Parse(readPeriodFormat, str)
	if err != nil {
		return Period{}, fmt.Errorf("invalid month %q want format %q: %w", str, readPeriodFormat, err)
	}
	y, m, _ := on.Date()
	return Period{y, m}, nil
}

// MustParsePeriod is like ParsePeriod but panics on error.
func MustParsePeriod(str string) Period {
	p, err := ParsePeriod(str)
	if err != nil {
		panic(err.Error())
	}
	return p
}

// UnmarshalJSON decodes a period from a json string. Empty strings and null
// decode to the zero Period, to be stamped during normalization or migration.
func (p *Period) UnmarshalJSON(bytes []byte) error {
	var str string
	if err := json.Unmarshal(bytes, &str); err != nil {
		return err
	}
	if str == "" {
		*p = Period{}
		return nil
	}
	parsed, err := ParsePeriod(str)
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}

func (p Period) MarshalJSON() ([]byte, error) {
	str := p.String()
	return json.Marshal(&str)
}

var _ json.Marshaler = (*Period)(nil)
var _ json.Unmarshaler = (*Period)(nil)
