package rest

import (
	"log/slog"
	"net/http"

	"github.com/heartmarshall/pinmoji/internal/domain"
	"github.com/heartmarshall/pinmoji/internal/transport/middleware"
)

type sessionService interface {
	SignIn(token string) (domain.User, error)
	SignOut()
	CurrentUser() (domain.User, bool)
}

// SessionHandler signs the local user in and out.
type SessionHandler struct {
	session sessionService
	log     *slog.Logger
}

// NewSessionHandler creates a SessionHandler.
func NewSessionHandler(session sessionService, logger *slog.Logger) *SessionHandler {
	return &SessionHandler{session: session, log: logger.With("handler", "session")}
}

type signInRequest struct {
	IDToken string `json:"idToken"`
}

type sessionResponse struct {
	SignedIn    bool   `json:"signedIn"`
	UID         string `json:"uid,omitempty"`
	DisplayName string `json:"displayName,omitempty"`
}

func toSessionResponse(u domain.User) sessionResponse {
	return sessionResponse{SignedIn: true, UID: u.UID, DisplayName: u.DisplayName}
}

// Get handles GET /v1/session.
func (h *SessionHandler) Get(w http.ResponseWriter, r *http.Request) {
	user, ok := h.session.CurrentUser()
	if !ok {
		writeJSON(w, http.StatusOK, sessionResponse{})
		return
	}
	writeJSON(w, http.StatusOK, toSessionResponse(user))
}

// SignIn handles PUT /v1/session. The ID token comes from an
// "Authorization: Bearer" header or an {"idToken"} body.
func (h *SessionHandler) SignIn(w http.ResponseWriter, r *http.Request) {
	token := middleware.BearerToken(r)
	if token == "" {
		var req signInRequest
		if err := decodeJSON(w, r, &req); err != nil {
			handleError(h.log, w, r, err)
			return
		}
		token = req.IDToken
	}

	user, err := h.session.SignIn(token)
	if err != nil {
		h.log.InfoContext(r.Context(), "sign-in rejected", slog.String("error", err.Error()))
		handleError(h.log, w, r, err)
		return
	}

	h.log.InfoContext(r.Context(), "signed in", slog.String("user_id", user.UID))
	writeJSON(w, http.StatusOK, toSessionResponse(user))
}

// SignOut handles DELETE /v1/session.
func (h *SessionHandler) SignOut(w http.ResponseWriter, r *http.Request) {
	h.session.SignOut()
	w.WriteHeader(http.StatusNoContent)
}
