package handlers

import (
	"encoding/json"
	"net/http"
)

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	Status   string `json:"status"`
	Token    string `json:"token"`
	Username string `json:"username"`
}

// Login checks the credentials against the startup credential table and
// issues a session token on match.
func (a *App) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.fail(w, http.StatusBadRequest, "invalid payload")
		return
	}
	for _, cred := range a.Config.Credentials {
		if cred.Username == req.Username && cred.Password == req.Password {
			token := a.Sessions.Create(req.Username)
			a.Logger.Info().Str("username", req.Username).Msg("login succeeded")
			a.json(w, http.StatusOK, loginResponse{Status: "success", Token: token, Username: req.Username})
			return
		}
	}
	a.Logger.Warn().Str("username", req.Username).Msg("login rejected")
	a.fail(w, http.StatusUnauthorized, "Invalid credentials")
}
