package rest

import (
	"net/http"

	"github.com/heartmarshall/pinmoji/internal/transport/middleware"
)

// Routes holds everything the router serves. Nil limiters leave a route
// group unlimited; a nil Blobs handler serves no blobs.
type Routes struct {
	Health  *HealthHandler
	Mirror  *MirrorHandler
	Session *SessionHandler

	Blobs      http.Handler
	BlobPrefix string

	ItemsLimit    middleware.Middleware
	MessagesLimit middleware.Middleware
}

// NewRouter registers all endpoints on a new mux.
func NewRouter(rt Routes) *http.ServeMux {
	items := orPassThrough(rt.ItemsLimit)
	messages := orPassThrough(rt.MessagesLimit)

	mux := http.NewServeMux()

	mux.HandleFunc("GET /live", rt.Health.Live)
	mux.HandleFunc("GET /ready", rt.Health.Ready)
	mux.HandleFunc("GET /health", rt.Health.Health)

	mux.HandleFunc("GET /v1/state", rt.Mirror.GetState)
	mux.HandleFunc("GET /v1/events", rt.Mirror.Events)
	mux.Handle("POST /v1/items", items(http.HandlerFunc(rt.Mirror.AddItem)))
	mux.HandleFunc("PUT /v1/items/{id}/likes", rt.Mirror.SetLikes)
	mux.HandleFunc("PUT /v1/items/{id}/dislikes", rt.Mirror.SetDislikes)
	mux.HandleFunc("POST /v1/items/{id}/votes", rt.Mirror.Vote)
	mux.HandleFunc("PUT /v1/room", rt.Mirror.SelectRoom)
	mux.HandleFunc("DELETE /v1/room", rt.Mirror.LeaveRoom)
	mux.Handle("POST /v1/rooms/{id}/messages", messages(http.HandlerFunc(rt.Mirror.SendMessage)))

	mux.HandleFunc("GET /v1/session", rt.Session.Get)
	mux.HandleFunc("PUT /v1/session", rt.Session.SignIn)
	mux.HandleFunc("DELETE /v1/session", rt.Session.SignOut)

	if rt.Blobs != nil && rt.BlobPrefix != "" && rt.BlobPrefix != "/" {
		mux.Handle("GET "+rt.BlobPrefix, http.StripPrefix(rt.BlobPrefix, rt.Blobs))
	}

	return mux
}

func orPassThrough(mw middleware.Middleware) middleware.Middleware {
	if mw == nil {
		return func(next http.Handler) http.Handler { return next }
	}
	return mw
}
