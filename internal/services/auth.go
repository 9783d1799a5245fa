package services

import (
	"context"
	"fmt"

	"github.com/PubNubDevelopers/pn-tool-usage-history-sub001/internal/model"
)

type AuthService struct {
	admin Admin
}

func NewAuthService(a Admin) *AuthService { return &AuthService{admin: a} }

// Login exchanges credentials for a session. Upstream failures (including
// bad credentials) propagate with the upstream status and body.
func (s *AuthService) Login(ctx context.Context, email, password string) (model.Session, error) {
	if email == "" {
		return model.Session{}, fmt.Errorf("%w: email is required", model.ErrValidation)
	}
	if password == "" {
		return model.Session{}, fmt.Errorf("%w: password is required", model.ErrValidation)
	}
	return s.admin.Login(ctx, email, password)
}
