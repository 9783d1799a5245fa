package http

import (
	"encoding/json"
	"net/http"

	"github.com/PubNubDevelopers/pn-tool-usage-history-sub001/internal/api/respond"
	"github.com/PubNubDevelopers/pn-tool-usage-history-sub001/internal/model"
	"github.com/PubNubDevelopers/pn-tool-usage-history-sub001/internal/services"
)

type AuthHandler struct {
	auth *services.AuthService
}

func NewAuthHandler(svc *services.AuthService) *AuthHandler {
	return &AuthHandler{auth: svc}
}

// Login POST /api/login
// Credentials come as a JSON body; the legacy query-parameter form
// (username, password) is still accepted.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if r.Body != nil {
		_ = json.NewDecoder(r.Body).Decode(&req)
	}
	if req.Username == "" {
		req.Username = r.URL.Query().Get("username")
	}
	if req.Password == "" {
		req.Password = r.URL.Query().Get("password")
	}

	sess, err := h.auth.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		if model.IsValidation(err) {
			respond.WriteBadRequest(w, err.Error())
			return
		}
		respond.WriteUpstream(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusOK, sess)
}
