package validate

import (
	"fmt"
	"regexp"
	"strconv"
)

var emailRx = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// dateRx matches the YYYY-MM-DD form the usage endpoints expect.
var dateRx = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

func NonEmpty(field, v string) error {
	if v == "" {
		return fmt.Errorf("%s is required", field)
	}
	return nil
}

func Email(v string) error {
	if v == "" {
		return fmt.Errorf("email is required")
	}
	if len(v) > 320 || !emailRx.MatchString(v) {
		return fmt.Errorf("invalid email")
	}
	return nil
}

// ID parses a required numeric identifier query parameter. Upstream
// identifiers are numeric; the canonical type is int64 and the coercion
// happens exactly once, here at the boundary.
func ID(field, v string) (int64, error) {
	if v == "" {
		return 0, fmt.Errorf("%s is required", field)
	}
	id, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%s must be a numeric id", field)
	}
	return id, nil
}

// OptionalID parses a numeric identifier when present; empty means absent.
func OptionalID(field, v string) (int64, error) {
	if v == "" {
		return 0, nil
	}
	return ID(field, v)
}

func Date(field, v string) error {
	if v == "" {
		return fmt.Errorf("%s is required", field)
	}
	if !dateRx.MatchString(v) {
		return fmt.Errorf("%s must be YYYY-MM-DD", field)
	}
	return nil
}
