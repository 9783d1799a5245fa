package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/PubNubDevelopers/pn-tool-usage-history-sub001/internal/model"
)

func boolPtr(b bool) *bool { return &b }

func TestAppList_FiltersDisabledAppsAndKeysets(t *testing.T) {
	fa := &fakeAdmin{
		apps: func(context.Context, model.Session, int64, string) ([]model.App, error) {
			return []model.App{
				{ID: 1, Name: "live", Keysets: []model.Keyset{
					{ID: 10, SubscribeKey: "sub-a"},
					{ID: 11, SubscribeKey: "sub-b", Flags: model.Flags{Disabled: boolPtr(true)}},
				}},
				{ID: 2, Name: "dead", Flags: model.Flags{Enabled: boolPtr(false)}},
			}, nil
		},
	}
	got, err := NewAppService(fa).List(context.Background(), testSession, 7, "")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, int64(1), got[0].ID)
	require.Len(t, got[0].Keysets, 1)
	assert.Equal(t, int64(10), got[0].Keysets[0].ID)
}

func TestKeysetList_ResolvesOwnerFromSessionAccounts(t *testing.T) {
	var queriedOwners []int64
	fa := &fakeAdmin{
		accounts: func(context.Context, model.Session, string) ([]model.Account, error) {
			return []model.Account{{ID: 7}, {ID: 9}}, nil
		},
		apps: func(_ context.Context, _ model.Session, ownerID int64, _ string) ([]model.App, error) {
			queriedOwners = append(queriedOwners, ownerID)
			if ownerID != 9 {
				return nil, nil
			}
			return []model.App{{ID: 42, Name: "found", Keysets: []model.Keyset{{ID: 100, SubscribeKey: "sub-a"}}}}, nil
		},
	}
	got, err := NewKeysetService(fa).List(context.Background(), testSession, 0, 42, "")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, int64(100), got[0].ID)
	assert.Equal(t, []int64{7, 9}, queriedOwners)
}

func TestKeysetList_ExplicitOwnerSkipsAccountLookup(t *testing.T) {
	fa := &fakeAdmin{
		// accounts stays nil: touching it panics the test.
		apps: func(_ context.Context, _ model.Session, ownerID int64, _ string) ([]model.App, error) {
			require.Equal(t, int64(7), ownerID)
			return []model.App{{ID: 42, Keysets: []model.Keyset{{ID: 100}}}}, nil
		},
	}
	got, err := NewKeysetService(fa).List(context.Background(), testSession, 7, 42, "")
	require.NoError(t, err)
	require.Len(t, got, 1)
}

func TestKeysetList_UnknownAppIsNotFound(t *testing.T) {
	fa := &fakeAdmin{
		apps: func(context.Context, model.Session, int64, string) ([]model.App, error) {
			return []model.App{{ID: 1, Name: "only"}}, nil
		},
	}
	_, err := NewKeysetService(fa).List(context.Background(), testSession, 7, 42, "")
	require.Error(t, err)
	assert.True(t, model.IsNotFound(err))
}

func TestUsageCounts_RejectsUnknownScope(t *testing.T) {
	svc := NewUsageService(&fakeAdmin{})
	_, err := svc.Counts(context.Background(), testSession, "galaxy", 1, "2026-01-01", "2026-01-31", "")
	require.Error(t, err)
	assert.True(t, model.IsValidation(err))
}

func TestAuthLogin_RequiresCredentials(t *testing.T) {
	svc := NewAuthService(&fakeAdmin{})
	_, err := svc.Login(context.Background(), "", "pw")
	require.Error(t, err)
	assert.True(t, model.IsValidation(err))

	_, err = svc.Login(context.Background(), "a@b.co", "")
	require.Error(t, err)
	assert.True(t, model.IsValidation(err))
}
