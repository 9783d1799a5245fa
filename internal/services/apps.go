package services

import (
	"context"
	"fmt"

	"github.com/PubNubDevelopers/pn-tool-usage-history-sub001/internal/model"
)

type AppService struct {
	admin Admin
}

func NewAppService(a Admin) *AppService { return &AppService{admin: a} }

// List returns the enabled apps owned by the account. Disabled apps (by any
// of the three legacy conventions) are dropped; within each surviving app the
// embedded keysets are filtered the same way.
func (s *AppService) List(ctx context.Context, sess model.Session, ownerID int64, delegated string) ([]model.App, error) {
	apps, err := s.admin.Apps(ctx, sess, ownerID, delegated)
	if err != nil {
		return nil, err
	}
	enabled := model.EnabledApps(apps)
	for i := range enabled {
		enabled[i].Keysets = model.EnabledKeysets(enabled[i].Keysets)
	}
	return enabled, nil
}

type KeysetService struct {
	admin Admin
}

func NewKeysetService(a Admin) *KeysetService { return &KeysetService{admin: a} }

// List returns the enabled keysets of one app. When ownerID is zero the
// owning account is resolved through the session's account listing, so
// callers that only know the app id still get an answer.
func (s *KeysetService) List(ctx context.Context, sess model.Session, ownerID, appID int64, delegated string) ([]model.Keyset, error) {
	owners := []int64{ownerID}
	if ownerID == 0 {
		accounts, err := s.admin.Accounts(ctx, sess, delegated)
		if err != nil {
			return nil, err
		}
		owners = owners[:0]
		for _, a := range accounts {
			owners = append(owners, a.ID)
		}
	}

	for _, owner := range owners {
		apps, err := s.admin.Apps(ctx, sess, owner, delegated)
		if err != nil {
			return nil, err
		}
		for _, a := range apps {
			if a.ID != appID {
				continue
			}
			if !a.IsEnabled() {
				return nil, fmt.Errorf("%w: app %d", model.ErrNotFound, appID)
			}
			return model.EnabledKeysets(a.Keysets), nil
		}
	}
	return nil, fmt.Errorf("%w: app %d", model.ErrNotFound, appID)
}

// Get fetches one keyset by id, pass-through.
func (s *KeysetService) Get(ctx context.Context, sess model.Session, keyID int64, delegated string) (model.Keyset, error) {
	return s.admin.Keyset(ctx, sess, keyID, delegated)
}
