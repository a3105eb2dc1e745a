package port

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrNotFound is returned when an entity does not exist inside the caller's
// visible (tenant-scoped) set. The HTTP layer maps it to 404.
var ErrNotFound = errors.New("not found")

// ValidationError carries a field-level error set produced when validating
// create/update input. The HTTP layer serialises it verbatim into the
// {"errors": {field: [messages]}} envelope with a 400 status.
type ValidationError map[string][]string

// Add appends a message to the given field.
func (v ValidationError) Add(field, msg string) {
	v[field] = append(v[field], msg)
}

// Error renders fields in a stable order so log lines are comparable.
func (v ValidationError) Error() string {
	fields := make([]string, 0, len(v))
	for f := range v {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	parts := make([]string, 0, len(fields))
	for _, f := range fields {
		parts = append(parts, fmt.Sprintf("%s: %s", f, strings.Join(v[f], "; ")))
	}
	return "validation failed: " + strings.Join(parts, ", ")
}

// AsValidationError unwraps err into a ValidationError if it is one.
func AsValidationError(err error) (ValidationError, bool) {
	var v ValidationError
	if errors.As(err, &v) {
		return v, true
	}
	return nil, false
}
