package domain

import (
	"bytes"
	"strings"
	"time"
)

// dateFormats lists the layouts found in stored documents, most specific
// first.
var dateFormats = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// Date is a tolerant timestamp. Stored documents mix full RFC 3339 instants
// with bare calendar dates, and some records have no date at all; anything
// unparseable decodes to the zero value. A zero Date sorts before every dated
// entry and stays that way.
type Date struct {
	time.Time
}

// NewDate wraps a time as a Date.
func NewDate(t time.Time) Date {
	return Date{Time: t}
}

// ParseDate parses s using the known document layouts. Unparseable input
// yields the zero Date.
func ParseDate(s string) Date {
	s = strings.TrimSpace(s)
	for _, layout := range dateFormats {
		if t, err := time.Parse(layout, s); err == nil {
			return Date{Time: t}
		}
	}
	return Date{}
}

// MarshalJSON encodes the date as an RFC 3339 string; the zero value encodes
// as the empty string, matching records saved without a date.
func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte(`""`), nil
	}
	return []byte(`"` + d.UTC().Format(time.RFC3339Nano) + `"`), nil
}

// UnmarshalJSON decodes any of the stored layouts; null, empty and
// unparseable values become the zero Date.
func (d *Date) UnmarshalJSON(data []byte) error {
	s := string(bytes.Trim(bytes.TrimSpace(data), `"`))
	if s == "" || s == "null" {
		d.Time = time.Time{}
		return nil
	}
	*d = ParseDate(s)
	return nil
}
