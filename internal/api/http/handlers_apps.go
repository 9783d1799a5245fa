package http

import (
	"net/http"

	"github.com/PubNubDevelopers/pn-tool-usage-history-sub001/internal/api/respond"
	"github.com/PubNubDevelopers/pn-tool-usage-history-sub001/internal/api/validate"
	"github.com/PubNubDevelopers/pn-tool-usage-history-sub001/internal/model"
	"github.com/PubNubDevelopers/pn-tool-usage-history-sub001/internal/services"
)

type AppHandler struct {
	apps    *services.AppService
	keysets *services.KeysetService
}

func NewAppHandler(apps *services.AppService, keysets *services.KeysetService) *AppHandler {
	return &AppHandler{apps: apps, keysets: keysets}
}

// ListApps GET /api/apps?token=...&ownerid=...
func (h *AppHandler) ListApps(w http.ResponseWriter, r *http.Request) {
	sess, delegated, err := sessionFromRequest(r)
	if err != nil {
		respond.WriteBadRequest(w, err.Error())
		return
	}
	ownerID, err := validate.ID("ownerid", r.URL.Query().Get("ownerid"))
	if err != nil {
		respond.WriteBadRequest(w, err.Error())
		return
	}

	apps, err := h.apps.List(r.Context(), sess, ownerID, delegated)
	if err != nil {
		respond.WriteUpstream(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"apps":  apps,
		"count": len(apps),
	})
}

// ListKeysets GET /api/keysets?token=...&appid=...[&ownerid=...]
// ownerid narrows the lookup to one account; without it the owning account
// is resolved from the session.
func (h *AppHandler) ListKeysets(w http.ResponseWriter, r *http.Request) {
	sess, delegated, err := sessionFromRequest(r)
	if err != nil {
		respond.WriteBadRequest(w, err.Error())
		return
	}
	ownerID, err := validate.OptionalID("ownerid", r.URL.Query().Get("ownerid"))
	if err != nil {
		respond.WriteBadRequest(w, err.Error())
		return
	}
	appID, err := validate.ID("appid", r.URL.Query().Get("appid"))
	if err != nil {
		respond.WriteBadRequest(w, err.Error())
		return
	}

	keysets, err := h.keysets.List(r.Context(), sess, ownerID, appID, delegated)
	if err != nil {
		if model.IsNotFound(err) {
			respond.WriteNotFound(w, err.Error())
			return
		}
		respond.WriteUpstream(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"keysets": keysets,
		"count":   len(keysets),
	})
}

// GetKeyset GET /api/keyset?token=...&keyid=...
func (h *AppHandler) GetKeyset(w http.ResponseWriter, r *http.Request) {
	sess, delegated, err := sessionFromRequest(r)
	if err != nil {
		respond.WriteBadRequest(w, err.Error())
		return
	}
	keyID, err := validate.ID("keyid", r.URL.Query().Get("keyid"))
	if err != nil {
		respond.WriteBadRequest(w, err.Error())
		return
	}

	keyset, err := h.keysets.Get(r.Context(), sess, keyID, delegated)
	if err != nil {
		respond.WriteUpstream(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusOK, keyset)
}
