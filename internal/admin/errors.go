package admin

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrTimeout marks an upstream call that produced no response within its
// per-call deadline. It is distinct from an upstream HTTP error: the service
// answered nothing at all.
var ErrTimeout = errors.New("admin: request timed out")

// UpstreamError is an HTTP error response (status >= 400) from the admin
// service. The body is carried verbatim so handlers can echo it back in a
// details field. The client never retries; retry policy belongs to callers.
type UpstreamError struct {
	Status int
	Body   string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("admin: upstream status %d: %s", e.Status, e.Body)
}

// AsUpstream extracts an UpstreamError from err, if present.
func AsUpstream(err error) (*UpstreamError, bool) {
	var ue *UpstreamError
	if errors.As(err, &ue) {
		return ue, true
	}
	return nil, false
}

// IsNotFound reports whether err is an upstream 404. Callers treat this as
// "no data" on the deployment and event-handler endpoints.
func IsNotFound(err error) bool {
	ue, ok := AsUpstream(err)
	return ok && ue.Status == http.StatusNotFound
}

// IsTimeout reports whether err wraps ErrTimeout.
func IsTimeout(err error) bool { return errors.Is(err, ErrTimeout) }
