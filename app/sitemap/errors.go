package sitemap

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrNotImplemented is returned for render formats that are declared in
	// the contract but intentionally not built (html, rss).
	ErrNotImplemented = errors.New("not implemented")

	// ErrLimitExceeded is returned by Index.AddSitemap once the configured
	// maximum number of sitemap references is reached.
	ErrLimitExceeded = errors.New("sitemap limit exceeded")
)

// Validation error kinds.
const (
	KindRequired = "required"
	KindURL      = "url"
	KindDate     = "date"
	KindEnum     = "enum"
	KindRange    = "range"
	KindLanguage = "language"
)

// ValidationError describes one rule violation on one field.
type ValidationError struct {
	Kind    string
	Field   string
	Message string
	Value   string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationErrors aggregates every violation found in a single pass, so a
// caller sees all problems at once.
type ValidationErrors []ValidationError

func (e ValidationErrors) Error() string {
	msgs := make([]string, len(e))
	for i, err := range e {
		msgs[i] = err.Error()
	}
	return strings.Join(msgs, "; ")
}

// withPrefix returns a copy with every field path prefixed, used by
// ValidateAll to pinpoint the failing record inside the collection.
func (e ValidationErrors) withPrefix(prefix string) ValidationErrors {
	out := make(ValidationErrors, len(e))
	for i, err := range e {
		err.Field = prefix + err.Field
		out[i] = err
	}
	return out
}
