package services

import (
	"context"
	"encoding/json"

	"github.com/PubNubDevelopers/pn-tool-usage-history-sub001/internal/model"
)

// Admin is the slice of the upstream admin API the services consume.
// *admin.Client satisfies it; tests substitute fakes.
type Admin interface {
	Login(ctx context.Context, email, password string) (model.Session, error)
	Accounts(ctx context.Context, sess model.Session, delegated string) ([]model.Account, error)
	Apps(ctx context.Context, sess model.Session, ownerID int64, delegated string) ([]model.App, error)
	Keyset(ctx context.Context, sess model.Session, keyID int64, delegated string) (model.Keyset, error)
	Usage(ctx context.Context, sess model.Session, scope string, id int64, start, end, delegated string) (json.RawMessage, error)
	Packages(ctx context.Context, sess model.Session, delegated string) ([]model.Package, error)
	Revisions(ctx context.Context, sess model.Session, packageID int64, delegated string) ([]model.Revision, error)
	Deployments(ctx context.Context, sess model.Session, packageID, revisionID int64, delegated string) ([]model.Deployment, error)
	EventListeners(ctx context.Context, sess model.Session, subscribeKey, delegated string) ([]model.EventListener, error)
}
