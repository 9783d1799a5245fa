package http

import (
	"errors"
	"net/http"

	"github.com/PubNubDevelopers/pn-tool-usage-history-sub001/internal/api/respond"
	"github.com/PubNubDevelopers/pn-tool-usage-history-sub001/internal/api/validate"
	"github.com/PubNubDevelopers/pn-tool-usage-history-sub001/internal/model"
	"github.com/PubNubDevelopers/pn-tool-usage-history-sub001/internal/services"
)

type UsageHandler struct {
	usage *services.UsageService
}

func NewUsageHandler(svc *services.UsageService) *UsageHandler {
	return &UsageHandler{usage: svc}
}

// Counts GET /api/usage?token=...&start=...&end=...&keyid=|appid=|accountid=
// Exactly one of keyid, appid, accountid selects the scope.
func (h *UsageHandler) Counts(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	token := q.Get("token")
	if token == "" {
		respond.WriteBadRequest(w, "token is required")
		return
	}
	sess := model.Session{Token: token}

	if err := validate.Date("start", q.Get("start")); err != nil {
		respond.WriteBadRequest(w, err.Error())
		return
	}
	if err := validate.Date("end", q.Get("end")); err != nil {
		respond.WriteBadRequest(w, err.Error())
		return
	}

	scope, id, err := usageScope(q.Get("keyid"), q.Get("appid"), q.Get("accountid"))
	if err != nil {
		respond.WriteBadRequest(w, err.Error())
		return
	}

	raw, err := h.usage.Counts(r.Context(), sess, scope, id, q.Get("start"), q.Get("end"), "")
	if err != nil {
		if model.IsValidation(err) {
			respond.WriteBadRequest(w, err.Error())
			return
		}
		respond.WriteUpstream(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(raw)
}

func usageScope(keyID, appID, accountID string) (string, int64, error) {
	switch {
	case keyID != "":
		id, err := validate.ID("keyid", keyID)
		return services.UsageScopeKey, id, err
	case appID != "":
		id, err := validate.ID("appid", appID)
		return services.UsageScopeApp, id, err
	case accountID != "":
		id, err := validate.ID("accountid", accountID)
		return services.UsageScopeAccount, id, err
	default:
		return "", 0, errMissingUsageScope
	}
}

var errMissingUsageScope = errors.New("one of keyid, appid or accountid is required")
