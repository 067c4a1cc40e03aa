package model

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgtype"
)

// DateLayout is the wire format of calendar dates.
const DateLayout = "2006-01-02"

// Date is a calendar date without time of day. Value and MarshalJSON come
// from pgtype.Date; Scan and UnmarshalJSON always truncate to the day.
type Date struct {
	pgtype.Date
}

func NewDate(year int, month time.Month, day int) Date {
	return Date{pgtype.Date{Time: time.Date(year, month, day, 0, 0, 0, 0, time.UTC), Valid: true}}
}

// DateOf drops the time of day from t.
func DateOf(t time.Time) Date {
	return NewDate(t.Year(), t.Month(), t.Day())
}

func ParseDate(s string) (Date, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		// timestamps are accepted and truncated
		if ts, tsErr := time.Parse(time.RFC3339, s); tsErr == nil {
			return DateOf(ts), nil
		}
		return Date{}, fmt.Errorf("invalid date %q: want YYYY-MM-DD", s)
	}
	return DateOf(t), nil
}

// Before reports whether d is an earlier calendar day than other.
func (d Date) Before(other Date) bool {
	return d.String() < other.String()
}

func (d Date) String() string {
	if !d.Valid {
		return ""
	}
	return d.Time.Format(DateLayout)
}

func (d *Date) UnmarshalJSON(b []byte) error {
	var s *string
	if err := json.Unmarshal(b, &s); err != nil {
		return fmt.Errorf("invalid date %s: want YYYY-MM-DD", b)
	}
	if s == nil || *s == "" {
		*d = Date{}
		return nil
	}
	parsed, err := ParseDate(*s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

func (d *Date) Scan(src interface{}) error {
	if b, ok := src.([]byte); ok {
		src = string(b)
	}
	var scanned pgtype.Date
	if err := scanned.Scan(src); err != nil {
		return fmt.Errorf("cannot scan %T into Date: %w", src, err)
	}
	if !scanned.Valid || scanned.InfinityModifier != pgtype.Finite {
		*d = Date{scanned}
		return nil
	}
	*d = DateOf(scanned.Time)
	return nil
}

// CompactDate encodes the calendar day of t as YYYYMMDD.
func CompactDate(t time.Time) int {
	return t.Year()*10000 + int(t.Month())*100 + t.Day()
}
