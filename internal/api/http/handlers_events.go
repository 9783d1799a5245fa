package http

import (
	"net/http"

	"github.com/PubNubDevelopers/pn-tool-usage-history-sub001/internal/api/respond"
	"github.com/PubNubDevelopers/pn-tool-usage-history-sub001/internal/services"
)

type EventsHandler struct {
	events *services.EventService
}

func NewEventsHandler(svc *services.EventService) *EventsHandler {
	return &EventsHandler{events: svc}
}

// ListenersAndActions GET /api/events-actions?token=...&subscribekey=...[&accountid=...]
// A missing subscribe key short-circuits to an empty bundle without touching
// the upstream service: "nothing configured" is a normal answer here.
func (h *EventsHandler) ListenersAndActions(w http.ResponseWriter, r *http.Request) {
	sess, delegated, err := sessionFromRequest(r)
	if err != nil {
		respond.WriteBadRequest(w, err.Error())
		return
	}
	subscribeKey := r.URL.Query().Get("subscribekey")

	bundle := h.events.ListenersAndActions(r.Context(), sess, subscribeKey, delegated)
	respond.WriteJSON(w, http.StatusOK, bundle)
}
