package model

import "strings"

// Flags carries the three legacy disable signals the upstream service has
// accumulated over the years: a boolean "enabled", a boolean "disabled" and a
// string-or-numeric "status". Any of the three can veto a record on its own,
// so evaluation order matters. Embed Flags in a record and call IsEnabled to
// decide inclusion; the record itself is never mutated.
type Flags struct {
	Enabled  *bool       `json:"enabled,omitempty"`
	Disabled *bool       `json:"disabled,omitempty"`
	Status   interface{} `json:"status,omitempty"`
}

// IsEnabled reconciles the legacy conventions:
//
//  1. enabled == false always excludes.
//  2. otherwise disabled == true excludes.
//  3. otherwise a non-nil status decides: numeric 0 excludes, any other
//     number includes; a string includes only when it is "enabled" or
//     "active" (case-insensitive).
//  4. with no disabling field present the record is included.
//
// A non-nil status of an unrecognized type excludes, matching rule 3's
// "anything not explicitly allowed is off" posture.
func (f Flags) IsEnabled() bool {
	if f.Enabled != nil && !*f.Enabled {
		return false
	}
	if f.Disabled != nil && *f.Disabled {
		return false
	}
	if f.Status == nil {
		return true
	}
	switch s := f.Status.(type) {
	case float64:
		return s != 0
	case int:
		return s != 0
	case int64:
		return s != 0
	case string:
		return strings.EqualFold(s, "enabled") || strings.EqualFold(s, "active")
	default:
		return false
	}
}

// EnabledApps returns the apps that pass the IsEnabled predicate.
func EnabledApps(apps []App) []App {
	out := make([]App, 0, len(apps))
	for _, a := range apps {
		if a.IsEnabled() {
			out = append(out, a)
		}
	}
	return out
}

// EnabledKeysets returns the keysets that pass the IsEnabled predicate.
func EnabledKeysets(keys []Keyset) []Keyset {
	out := make([]Keyset, 0, len(keys))
	for _, k := range keys {
		if k.IsEnabled() {
			out = append(out, k)
		}
	}
	return out
}
