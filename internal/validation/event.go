// Package validation is the single validation and sanitization choke point
// for event input. Field rules run in a fixed order and sanitization is
// applied exactly once, before values reach persistence, so stored text is
// always safe to render without executing as markup.
package validation

import (
	"fmt"
	"strings"
	"time"
)

// FieldError describes a single failed field rule.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Error is the aggregate validation failure for a request. It carries every
// field-level failure, not just the first one.
type Error struct {
	Fields []FieldError
}

func (e *Error) Error() string {
	msgs := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		msgs[i] = fmt.Sprintf("%s: %s", f.Field, f.Message)
	}
	return "validation failed: " + strings.Join(msgs, "; ")
}

// EventInput carries raw request fields for event create and update.
// A nil field is absent from the request body.
type EventInput struct {
	Name     *string
	Location *string
	Date     *string
}

// EventFields holds the validated, sanitized output of the pipeline.
// Nil fields were absent on input and must be left unchanged by the caller.
type EventFields struct {
	Name     *string
	Location *string
	Date     *time.Time
}

// Date lexical forms accepted on input. Dates are canonicalized to UTC.
var dateLayouts = []string{time.RFC3339, "2006-01-02"}

// ValidateEvent runs the per-field rules in order (name, location, date) and
// returns the sanitized fields. When partial is false every field is
// required; when true, absent fields are skipped and present fields use the
// same rules as create. On any rule failure it returns *Error and the store
// must not be touched.
func ValidateEvent(in EventInput, partial bool) (EventFields, error) {
	var out EventFields
	var errs []FieldError

	if in.Name == nil {
		if !partial {
			errs = append(errs, FieldError{Field: "name", Message: "Event name is required"})
		}
	} else if s := sanitizeText(*in.Name); s == "" {
		errs = append(errs, FieldError{Field: "name", Message: "Event name is required"})
	} else {
		out.Name = &s
	}

	if in.Location == nil {
		if !partial {
			errs = append(errs, FieldError{Field: "location", Message: "Location is required"})
		}
	} else if s := sanitizeText(*in.Location); s == "" {
		errs = append(errs, FieldError{Field: "location", Message: "Location is required"})
	} else {
		out.Location = &s
	}

	if in.Date == nil {
		if !partial {
			errs = append(errs, FieldError{Field: "date", Message: "Valid date is required"})
		}
	} else if t, ok := parseDate(*in.Date); !ok {
		errs = append(errs, FieldError{Field: "date", Message: "Valid date is required"})
	} else {
		out.Date = &t
	}

	if len(errs) > 0 {
		return EventFields{}, &Error{Fields: errs}
	}
	return out, nil
}

// escaper rewrites markup-significant characters so stored values contain no
// literal markup. Matches the escaping applied by the frontend's renderer.
var escaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#x27;",
	"/", "&#x2F;",
)

// sanitizeText trims surrounding whitespace and escapes markup characters.
// Irreversible; callers must apply it exactly once per value.
func sanitizeText(s string) string {
	return escaper.Replace(strings.TrimSpace(s))
}

func parseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), true
		}
	}
	return time.Time{}, false
}
