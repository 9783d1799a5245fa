package services

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/PubNubDevelopers/pn-tool-usage-history-sub001/internal/admin"
	"github.com/PubNubDevelopers/pn-tool-usage-history-sub001/internal/model"
)

// EventBundle is the flattened view of a subscribe key's event handlers.
// Both slices are always non-nil so callers get a list-shaped JSON body.
type EventBundle struct {
	Listeners []model.NormalizedListener `json:"listeners"`
	Actions   []model.NormalizedAction   `json:"actions"`
}

func emptyBundle() EventBundle {
	return EventBundle{
		Listeners: []model.NormalizedListener{},
		Actions:   []model.NormalizedAction{},
	}
}

// EventService flattens raw event-handler records into deduplicated listener
// and action collections.
type EventService struct {
	admin Admin
	log   zerolog.Logger
}

func NewEventService(a Admin, log zerolog.Logger) *EventService {
	return &EventService{admin: a, log: log}
}

// ListenersAndActions fetches the event handlers for a subscribe key. An
// empty subscribe key short-circuits without touching the upstream service,
// and every upstream failure collapses to an empty bundle: most keys have no
// handlers configured and callers treat absence as normal.
func (s *EventService) ListenersAndActions(ctx context.Context, sess model.Session, subscribeKey, delegated string) EventBundle {
	if subscribeKey == "" {
		return emptyBundle()
	}

	raw, err := s.admin.EventListeners(ctx, sess, subscribeKey, delegated)
	if err != nil {
		if !admin.IsNotFound(err) {
			s.log.Warn().Err(err).Msg("event handler listing failed; reporting none")
		}
		return emptyBundle()
	}

	bundle := emptyBundle()
	seen := make(map[int64]struct{})
	for _, l := range raw {
		bundle.Listeners = append(bundle.Listeners, model.NormalizedListener{
			ID:      l.ID,
			Name:    l.Name,
			Event:   l.Event,
			Enabled: l.Status == model.StatusOn,
		})
		// The same action can hang off several listeners; it is one upstream
		// entity, so the first occurrence wins.
		for _, a := range l.Actions {
			if _, dup := seen[a.ID]; dup {
				continue
			}
			seen[a.ID] = struct{}{}
			bundle.Actions = append(bundle.Actions, model.NormalizedAction{
				ID:      a.ID,
				Name:    a.Name,
				Type:    a.Type,
				Enabled: a.Status == model.StatusOn,
			})
		}
	}
	return bundle
}
