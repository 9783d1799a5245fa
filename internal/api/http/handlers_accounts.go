package http

import (
	"net/http"

	"github.com/PubNubDevelopers/pn-tool-usage-history-sub001/internal/api/respond"
	"github.com/PubNubDevelopers/pn-tool-usage-history-sub001/internal/api/validate"
	"github.com/PubNubDevelopers/pn-tool-usage-history-sub001/internal/model"
	"github.com/PubNubDevelopers/pn-tool-usage-history-sub001/internal/services"
)

type AccountHandler struct {
	accounts *services.AccountService
}

func NewAccountHandler(svc *services.AccountService) *AccountHandler {
	return &AccountHandler{accounts: svc}
}

// Search GET /api/accounts?token=...[&email=...]
// With an email parameter the visible accounts are matched against it;
// without one the full visible list is returned.
func (h *AccountHandler) Search(w http.ResponseWriter, r *http.Request) {
	sess, delegated, err := sessionFromRequest(r)
	if err != nil {
		respond.WriteBadRequest(w, err.Error())
		return
	}

	email := r.URL.Query().Get("email")
	var accounts []model.Account
	if email != "" {
		if err := validate.Email(email); err != nil {
			respond.WriteBadRequest(w, err.Error())
			return
		}
		accounts, err = h.accounts.Search(r.Context(), sess, email, delegated)
	} else {
		accounts, err = h.accounts.List(r.Context(), sess, delegated)
	}
	if err != nil {
		respond.WriteUpstream(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"accounts": accounts,
		"count":    len(accounts),
	})
}
