package http

import (
	"net/http"

	"github.com/PubNubDevelopers/pn-tool-usage-history-sub001/internal/api/respond"
	"github.com/PubNubDevelopers/pn-tool-usage-history-sub001/internal/api/validate"
	"github.com/PubNubDevelopers/pn-tool-usage-history-sub001/internal/services"
)

type FunctionsHandler struct {
	modules *services.ModuleService
}

func NewFunctionsHandler(svc *services.ModuleService) *FunctionsHandler {
	return &FunctionsHandler{modules: svc}
}

// Modules GET /api/functions?token=...&keyid=...[&accountid=...]
// Always answers a list-shaped body; a keyset with no serverless modules
// (or an unreachable functions backend) gets an empty list, not an error.
func (h *FunctionsHandler) Modules(w http.ResponseWriter, r *http.Request) {
	sess, delegated, err := sessionFromRequest(r)
	if err != nil {
		respond.WriteBadRequest(w, err.Error())
		return
	}
	keysetID, err := validate.ID("keyid", r.URL.Query().Get("keyid"))
	if err != nil {
		respond.WriteBadRequest(w, err.Error())
		return
	}

	modules := h.modules.ActiveModules(r.Context(), sess, keysetID, delegated)
	respond.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"modules": modules,
	})
}
