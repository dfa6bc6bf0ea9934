package rest

import (
	"cmp"
	"context"
	"log/slog"
	"maps"
	"net/http"
	"slices"
	"sync"

	"github.com/heartmarshall/pinmoji/internal/domain"
	"github.com/heartmarshall/pinmoji/internal/mirror"
)

// mirrorService is the part of the sync mirror driven over HTTP.
type mirrorService interface {
	State() mirror.State
	Subscribe(fn func(mirror.State)) (cancel func())
	AddNewItem(ctx context.Context, input mirror.AddItemInput) error
	SetLikes(ctx context.Context, itemID string, likes int) error
	SetDislikes(ctx context.Context, itemID string, dislikes int) error
	Vote(ctx context.Context, itemID string, counter domain.Counter) error
	SubscribeRoom(ctx context.Context, roomID string) error
	SendMessage(ctx context.Context, roomID, body string) error
}

// MirrorHandler exposes the mirror state and its actions.
type MirrorHandler struct {
	mirror mirrorService
	log    *slog.Logger

	closeOnce sync.Once
	done      chan struct{}
}

// NewMirrorHandler creates a MirrorHandler.
func NewMirrorHandler(m mirrorService, logger *slog.Logger) *MirrorHandler {
	return &MirrorHandler{
		mirror: m,
		log:    logger.With("handler", "mirror"),
		done:   make(chan struct{}),
	}
}

// Close ends all open event streams. Safe to call more than once.
func (h *MirrorHandler) Close() {
	h.closeOnce.Do(func() { close(h.done) })
}

// stateResponse is the wire form of mirror.State. Items are sorted newest
// first, ties broken by id.
type stateResponse struct {
	Items    []domain.Item    `json:"items"`
	Messages []domain.Message `json:"messages"`
	Room     string           `json:"room"`
	Loading  bool             `json:"loading"`
	Error    string           `json:"error,omitempty"`
}

func toStateResponse(s mirror.State) stateResponse {
	items := slices.SortedFunc(maps.Values(s.Items), func(a, b domain.Item) int {
		if c := cmp.Compare(b.At, a.At); c != 0 {
			return c
		}
		return cmp.Compare(a.ID, b.ID)
	})
	if items == nil {
		items = []domain.Item{}
	}
	msgs := s.Messages
	if msgs == nil {
		msgs = []domain.Message{}
	}

	resp := stateResponse{
		Items:    items,
		Messages: msgs,
		Room:     s.Room,
		Loading:  s.Loading,
	}
	if s.Err != nil {
		resp.Error = s.Err.Error()
	}
	return resp
}

// GetState handles GET /v1/state.
func (h *MirrorHandler) GetState(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, toStateResponse(h.mirror.State()))
}

type addItemRequest struct {
	Emoji       string             `json:"emoji"`
	Coordinates domain.Coordinates `json:"coordinates"`
	PictureURI  string             `json:"pictureUri"`
}

// AddItem handles POST /v1/items. The new item shows up in the state once
// the items subscription delivers it.
func (h *MirrorHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	var req addItemRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	err := h.mirror.AddNewItem(r.Context(), mirror.AddItemInput{
		Emoji:       req.Emoji,
		Coordinates: req.Coordinates,
		Picture:     mirror.Picture{URI: req.PictureURI},
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	w.WriteHeader(http.StatusAccepted)
}

type counterRequest struct {
	Value *int `json:"value"`
}

// SetLikes handles PUT /v1/items/{id}/likes.
func (h *MirrorHandler) SetLikes(w http.ResponseWriter, r *http.Request) {
	h.setCounter(w, r, h.mirror.SetLikes)
}

// SetDislikes handles PUT /v1/items/{id}/dislikes.
func (h *MirrorHandler) SetDislikes(w http.ResponseWriter, r *http.Request) {
	h.setCounter(w, r, h.mirror.SetDislikes)
}

func (h *MirrorHandler) setCounter(w http.ResponseWriter, r *http.Request, set func(context.Context, string, int) error) {
	var req counterRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	if req.Value == nil {
		handleError(h.log, w, r, domain.NewValidationError("value", "required"))
		return
	}

	if err := set(r.Context(), r.PathValue("id"), *req.Value); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

type voteRequest struct {
	Counter domain.Counter `json:"counter"`
}

// Vote handles POST /v1/items/{id}/votes.
func (h *MirrorHandler) Vote(w http.ResponseWriter, r *http.Request) {
	var req voteRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	if err := h.mirror.Vote(r.Context(), r.PathValue("id"), req.Counter); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

type roomRequest struct {
	ID string `json:"id"`
}

// SelectRoom handles PUT /v1/room. An empty id leaves no room selected.
func (h *MirrorHandler) SelectRoom(w http.ResponseWriter, r *http.Request) {
	var req roomRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	h.subscribeRoom(w, r, req.ID)
}

// LeaveRoom handles DELETE /v1/room.
func (h *MirrorHandler) LeaveRoom(w http.ResponseWriter, r *http.Request) {
	h.subscribeRoom(w, r, "")
}

func (h *MirrorHandler) subscribeRoom(w http.ResponseWriter, r *http.Request, id string) {
	if err := h.mirror.SubscribeRoom(r.Context(), id); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type messageRequest struct {
	Body string `json:"body"`
}

// SendMessage handles POST /v1/rooms/{id}/messages.
func (h *MirrorHandler) SendMessage(w http.ResponseWriter, r *http.Request) {
	var req messageRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	if err := h.mirror.SendMessage(r.Context(), r.PathValue("id"), req.Body); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	w.WriteHeader(http.StatusAccepted)
}
