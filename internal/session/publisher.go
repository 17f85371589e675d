package session

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	"github.com/r3labs/sse/v2"
)

// Publisher pushes session snapshots to whoever is watching the session.
type Publisher interface {
	Open(id uuid.UUID)
	Publish(id uuid.UUID, snap Snapshot)
	Close(id uuid.UUID)
}

type NopPublisher struct{}

func (NopPublisher) Open(uuid.UUID)              {}
func (NopPublisher) Publish(uuid.UUID, Snapshot) {}
func (NopPublisher) Close(uuid.UUID)             {}

const stateEvent = "state"

// StreamPublisher publishes snapshots as server-sent events, one stream per
// session id.
type StreamPublisher struct {
	server *sse.Server
}

func NewStreamPublisher() *StreamPublisher {
	server := sse.New()
	server.AutoStream = false
	server.AutoReplay = false

	return &StreamPublisher{server: server}
}

func (p *StreamPublisher) Open(id uuid.UUID) {
	p.server.CreateStream(id.String())
}

func (p *StreamPublisher) Publish(id uuid.UUID, snap Snapshot) {
	data, err := json.Marshal(snap)
	if err != nil {
		slog.Error("Failed to marshal session snapshot", "error", err, "id", id)
		return
	}
	if !p.server.TryPublish(id.String(), &sse.Event{Event: []byte(stateEvent), Data: data}) {
		slog.Debug("Snapshot dropped, stream is busy", "id", id)
	}
}

func (p *StreamPublisher) Close(id uuid.UUID) {
	p.server.RemoveStream(id.String())
}

func (p *StreamPublisher) HasStream(id uuid.UUID) bool {
	return p.server.StreamExists(id.String())
}

// ServeStream subscribes the request to the stream of session id.
func (p *StreamPublisher) ServeStream(w http.ResponseWriter, r *http.Request, id uuid.UUID) {
	q := r.URL.Query()
	q.Set("stream", id.String())
	r.URL.RawQuery = q.Encode()
	p.server.ServeHTTP(w, r)
}

func (p *StreamPublisher) Shutdown() {
	p.server.Close()
}
