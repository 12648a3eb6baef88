// Package dateutil normalizes last-modification and publication timestamps
// into the canonical W3C form used by the sitemap protocol.
package dateutil

import (
	"errors"
	"fmt"
	"time"

	"github.com/araddon/dateparse"
)

// ErrInvalidDate is returned when an input cannot be interpreted as a date.
var ErrInvalidDate = errors.New("invalid date")

// Parse interprets value using lenient format detection. It accepts the wide
// range of formats dateparse recognizes, which means some partial and
// unconventional inputs pass; this is a documented property of the lenient
// contract, not an oversight.
func Parse(value string) (time.Time, error) {
	t, err := dateparse.ParseAny(value)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, value)
	}

	return t, nil
}

// Format converts a time.Time or a date string into the canonical
// full-precision UTC timestamp string. Unparseable input yields
// ErrInvalidDate.
func Format(value any) (string, error) {
	switch v := value.(type) {
	case time.Time:
		if v.IsZero() {
			return "", fmt.Errorf("%w: zero time", ErrInvalidDate)
		}
		return v.UTC().Format(time.RFC3339), nil
	case *time.Time:
		if v == nil {
			return "", fmt.Errorf("%w: nil time", ErrInvalidDate)
		}
		return Format(*v)
	case string:
		t, err := Parse(v)
		if err != nil {
			return "", err
		}
		return t.UTC().Format(time.RFC3339), nil
	default:
		return "", fmt.Errorf("%w: unsupported type %T", ErrInvalidDate, value)
	}
}

// IsValidDate reports whether value parses as a date at all. Lenient by
// delegation to Parse.
func IsValidDate(value string) bool {
	_, err := Parse(value)
	return err == nil
}

// IsValidLastMod reports whether value parses as a date that is not strictly
// in the future at the moment of the call. "Now" itself and any earlier
// instant pass.
func IsValidLastMod(value any) bool {
	var t time.Time

	switch v := value.(type) {
	case time.Time:
		t = v
	case string:
		parsed, err := Parse(v)
		if err != nil {
			return false
		}
		t = parsed
	default:
		return false
	}

	return !t.After(time.Now())
}

// FormatW3C renders t in W3C datetime form: the date-only variant
// ("2006-01-02") when dateOnly is set, the full UTC timestamp otherwise.
func FormatW3C(t time.Time, dateOnly bool) string {
	if dateOnly {
		return t.UTC().Format("2006-01-02")
	}

	return t.UTC().Format(time.RFC3339)
}

// IsSameDay reports whether a and b fall on the same UTC calendar day.
func IsSameDay(a, b time.Time) bool {
	ay, am, ad := a.UTC().Date()
	by, bm, bd := b.UTC().Date()

	return ay == by && am == bm && ad == bd
}
