// internal/app/features/chat/stream.go
package chat

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// streamEvent is the JSON payload of one SSE data frame.
type streamEvent struct {
	ID         string `json:"id"`
	SenderID   string `json:"sender_id"`
	SenderName string `json:"sender_name"`
	Body       string `json:"body"`
	SentAt     string `json:"sent_at"`
}

// ServeStream pushes new messages for one department as server-sent
// events. The change stream is keyed to the request context: when the
// client disconnects, the subscription closes with it, so a client never
// receives events for a room it already left.
func (h *Handler) ServeStream(w http.ResponseWriter, r *http.Request) {
	deptID := chi.URLParam(r, "id")

	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "streaming unsupported", http.StatusInternalServerError)
		return
	}

	ctx := r.Context()
	events, err := h.Chat.Watch(ctx, deptID)
	if err != nil {
		h.Log.Error("chat change stream failed",
			zap.String("department_id", deptID),
			zap.Error(err))
		http.Error(w, "stream unavailable", http.StatusServiceUnavailable)
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)
	flusher.Flush()

	for {
		select {
		case <-ctx.Done():
			return
		case m, open := <-events:
			if !open {
				return
			}
			payload, err := json.Marshal(streamEvent{
				ID:         m.ID,
				SenderID:   m.SenderID,
				SenderName: m.SenderName,
				Body:       m.Body,
				SentAt:     m.CreatedAt.UTC().Format(time.RFC3339),
			})
			if err != nil {
				continue
			}
			fmt.Fprintf(w, "data: %s\n\n", payload)
			flusher.Flush()
		}
	}
}
