package services

import (
	"context"
	"strings"

	"github.com/PubNubDevelopers/pn-tool-usage-history-sub001/internal/model"
)

type AccountService struct {
	admin Admin
}

func NewAccountService(a Admin) *AccountService { return &AccountService{admin: a} }

// List returns every account visible to the session.
func (s *AccountService) List(ctx context.Context, sess model.Session, delegated string) ([]model.Account, error) {
	accounts, err := s.admin.Accounts(ctx, sess, delegated)
	if err != nil {
		return nil, err
	}
	return accounts, nil
}

// Search returns the accounts whose owner email matches the given email,
// case-insensitively. The upstream service has no email filter of its own, so
// the match happens here over the visible account list.
func (s *AccountService) Search(ctx context.Context, sess model.Session, email, delegated string) ([]model.Account, error) {
	accounts, err := s.admin.Accounts(ctx, sess, delegated)
	if err != nil {
		return nil, err
	}
	matched := make([]model.Account, 0, 1)
	for _, a := range accounts {
		if strings.EqualFold(a.Email, email) {
			matched = append(matched, a)
		}
	}
	return matched, nil
}
