package http

import (
	"fmt"
	"net/http"

	"github.com/PubNubDevelopers/pn-tool-usage-history-sub001/internal/api/validate"
	"github.com/PubNubDevelopers/pn-tool-usage-history-sub001/internal/model"
)

// sessionFromRequest builds the per-request session credential from the
// token query parameter, plus the delegated account id (the "accountid"
// parameter) used for ghosting. Nothing is cached between requests.
func sessionFromRequest(r *http.Request) (model.Session, string, error) {
	token := r.URL.Query().Get("token")
	if token == "" {
		return model.Session{}, "", fmt.Errorf("token is required")
	}
	delegated := r.URL.Query().Get("accountid")
	if _, err := validate.OptionalID("accountid", delegated); err != nil {
		return model.Session{}, "", err
	}
	return model.Session{Token: token}, delegated, nil
}
