package services

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/PubNubDevelopers/pn-tool-usage-history-sub001/internal/model"
)

// Usage scopes accepted by the upstream metrics endpoint.
const (
	UsageScopeKey     = "key"
	UsageScopeApp     = "app"
	UsageScopeAccount = "account"
)

type UsageService struct {
	admin Admin
}

func NewUsageService(a Admin) *UsageService { return &UsageService{admin: a} }

// Counts fetches usage metrics for one scope and date range. The upstream
// payload is passed through untouched.
func (s *UsageService) Counts(ctx context.Context, sess model.Session, scope string, id int64, start, end, delegated string) (json.RawMessage, error) {
	switch scope {
	case UsageScopeKey, UsageScopeApp, UsageScopeAccount:
	default:
		return nil, fmt.Errorf("%w: unknown usage scope %q", model.ErrValidation, scope)
	}
	return s.admin.Usage(ctx, sess, scope, id, start, end, delegated)
}
