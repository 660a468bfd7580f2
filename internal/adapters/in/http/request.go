package http

import (
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
)

// optionalID converts an optional numeric reference from a request body.
func optionalID(value *int64) (*kernel.ID, error) {
	if value == nil {
		return nil, nil
	}
	id, err := kernel.NewID(*value)
	if err != nil {
		return nil, err
	}
	return &id, nil
}

// timestampLayouts are accepted for date fields, most specific first.
var timestampLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// parseOptionalTime parses an optional timestamp field. Empty means absent.
func parseOptionalTime(value, name string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}

	for _, layout := range timestampLayouts {
		if parsed, err := time.Parse(layout, value); err == nil {
			return &parsed, nil
		}
	}

	return nil, errs.NewValueIsInvalidError(name)
}
