package rest

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/heartmarshall/pinmoji/internal/mirror"
)

const heartbeatInterval = 25 * time.Second

// latestState keeps only the newest published state. Observers must not
// block, so a slow stream skips intermediate states rather than queueing them.
type latestState struct {
	mu     sync.Mutex
	state  mirror.State
	filled bool
	notify chan struct{}
}

func newLatestState() *latestState {
	return &latestState{notify: make(chan struct{}, 1)}
}

func (l *latestState) set(s mirror.State) {
	l.store(s, true)
}

// seed stores the initial state unless a published one already arrived.
func (l *latestState) seed(s mirror.State) {
	l.store(s, false)
}

func (l *latestState) store(s mirror.State, overwrite bool) {
	l.mu.Lock()
	if l.filled && !overwrite {
		l.mu.Unlock()
		return
	}
	l.state = s
	l.filled = true
	l.mu.Unlock()

	select {
	case l.notify <- struct{}{}:
	default:
	}
}

func (l *latestState) get() mirror.State {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.state
}

// Events handles GET /v1/events: a server-sent event stream carrying the full
// state as a "state" event after every update, starting with the current one.
func (h *MirrorHandler) Events(w http.ResponseWriter, r *http.Request) {
	rc := http.NewResponseController(w)

	// The stream outlives the server's write timeout.
	if err := rc.SetWriteDeadline(time.Time{}); err != nil && !errors.Is(err, http.ErrNotSupported) {
		h.log.WarnContext(r.Context(), "clear write deadline", slog.String("error", err.Error()))
	}

	latest := newLatestState()
	cancel := h.mirror.Subscribe(latest.set)
	defer cancel()
	latest.seed(h.mirror.State())

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)
	if err := rc.Flush(); err != nil {
		h.log.ErrorContext(r.Context(), "event stream unsupported", slog.String("error", err.Error()))
		return
	}

	heartbeat := time.NewTicker(heartbeatInterval)
	defer heartbeat.Stop()

	var seq uint64
	for {
		select {
		case <-r.Context().Done():
			return
		case <-h.done:
			return
		case <-heartbeat.C:
			if _, err := io.WriteString(w, ": ping\n\n"); err != nil {
				return
			}
		case <-latest.notify:
			seq++
			if err := writeEvent(w, seq, "state", toStateResponse(latest.get())); err != nil {
				h.log.DebugContext(r.Context(), "event stream closed", slog.String("error", err.Error()))
				return
			}
		}
		if err := rc.Flush(); err != nil {
			return
		}
	}
}

func writeEvent(w io.Writer, id uint64, event string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshal %s event: %w", event, err)
	}
	_, err = fmt.Fprintf(w, "id: %d\nevent: %s\ndata: %s\n\n", id, event, data)
	return err
}
