package services

import (
	"context"
	"encoding/json"

	"github.com/PubNubDevelopers/pn-tool-usage-history-sub001/internal/model"
)

// fakeAdmin implements Admin with overridable behavior per test. Unset
// methods panic so a test fails loudly when it touches an endpoint it did
// not expect to.
type fakeAdmin struct {
	login          func(ctx context.Context, email, password string) (model.Session, error)
	accounts       func(ctx context.Context, sess model.Session, delegated string) ([]model.Account, error)
	apps           func(ctx context.Context, sess model.Session, ownerID int64, delegated string) ([]model.App, error)
	keyset         func(ctx context.Context, sess model.Session, keyID int64, delegated string) (model.Keyset, error)
	usage          func(ctx context.Context, sess model.Session, scope string, id int64, start, end, delegated string) (json.RawMessage, error)
	packages       func(ctx context.Context, sess model.Session, delegated string) ([]model.Package, error)
	revisions      func(ctx context.Context, sess model.Session, packageID int64, delegated string) ([]model.Revision, error)
	deployments    func(ctx context.Context, sess model.Session, packageID, revisionID int64, delegated string) ([]model.Deployment, error)
	eventListeners func(ctx context.Context, sess model.Session, subscribeKey, delegated string) ([]model.EventListener, error)
}

func (f *fakeAdmin) Login(ctx context.Context, email, password string) (model.Session, error) {
	if f.login == nil {
		panic("unused")
	}
	return f.login(ctx, email, password)
}

func (f *fakeAdmin) Accounts(ctx context.Context, sess model.Session, delegated string) ([]model.Account, error) {
	if f.accounts == nil {
		panic("unused")
	}
	return f.accounts(ctx, sess, delegated)
}

func (f *fakeAdmin) Apps(ctx context.Context, sess model.Session, ownerID int64, delegated string) ([]model.App, error) {
	if f.apps == nil {
		panic("unused")
	}
	return f.apps(ctx, sess, ownerID, delegated)
}

func (f *fakeAdmin) Keyset(ctx context.Context, sess model.Session, keyID int64, delegated string) (model.Keyset, error) {
	if f.keyset == nil {
		panic("unused")
	}
	return f.keyset(ctx, sess, keyID, delegated)
}

func (f *fakeAdmin) Usage(ctx context.Context, sess model.Session, scope string, id int64, start, end, delegated string) (json.RawMessage, error) {
	if f.usage == nil {
		panic("unused")
	}
	return f.usage(ctx, sess, scope, id, start, end, delegated)
}

func (f *fakeAdmin) Packages(ctx context.Context, sess model.Session, delegated string) ([]model.Package, error) {
	if f.packages == nil {
		panic("unused")
	}
	return f.packages(ctx, sess, delegated)
}

func (f *fakeAdmin) Revisions(ctx context.Context, sess model.Session, packageID int64, delegated string) ([]model.Revision, error) {
	if f.revisions == nil {
		panic("unused")
	}
	return f.revisions(ctx, sess, packageID, delegated)
}

func (f *fakeAdmin) Deployments(ctx context.Context, sess model.Session, packageID, revisionID int64, delegated string) ([]model.Deployment, error) {
	if f.deployments == nil {
		panic("unused")
	}
	return f.deployments(ctx, sess, packageID, revisionID, delegated)
}

func (f *fakeAdmin) EventListeners(ctx context.Context, sess model.Session, subscribeKey, delegated string) ([]model.EventListener, error) {
	if f.eventListeners == nil {
		panic("unused")
	}
	return f.eventListeners(ctx, sess, subscribeKey, delegated)
}
