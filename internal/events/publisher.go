// Package events publishes relationship and message events for downstream
// consumers such as notification and feed services.
package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/anonto42/nano-midea/relations/pkg/logger"
	"github.com/nats-io/nats.go"
)

const (
	SubjectFollowCreated   = "relations.follow.created"
	SubjectFollowDeleted   = "relations.follow.deleted"
	SubjectBookmarkCreated = "relations.bookmark.created"
	SubjectDislikeCreated  = "relations.dislike.created"
	SubjectMessageSent     = "relations.message.sent"
	SubjectMessagesPurged  = "relations.message.purged"
)

// Publisher publishes an event payload on a subject
type Publisher interface {
	Publish(ctx context.Context, subject string, payload any) error
}

// Envelope is the wire format of every event
type Envelope struct {
	Subject    string          `json:"subject"`
	OccurredAt time.Time       `json:"occurred_at"`
	Data       json.RawMessage `json:"data"`
}

func encode(subject string, payload any, at time.Time) ([]byte, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("marshalling error: %w", err)
	}
	return json.Marshal(Envelope{Subject: subject, OccurredAt: at.UTC(), Data: data})
}

type NatsPublisher struct {
	nc *nats.Conn
}

func NewNatsPublisher(nc *nats.Conn) *NatsPublisher {
	return &NatsPublisher{nc: nc}
}

// Connect dials the NATS server at url
func Connect(url string) (*nats.Conn, error) {
	nc, err := nats.Connect(url, nats.Name("relations"), nats.MaxReconnects(-1))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS: %w", err)
	}
	return nc, nil
}

func (p *NatsPublisher) Publish(ctx context.Context, subject string, payload any) error {
	data, err := encode(subject, payload, time.Now())
	if err != nil {
		return err
	}
	msg := &nats.Msg{
		Subject: subject,
		Data:    data,
		Header:  nats.Header{},
	}
	if reqID := logger.RequestID(ctx); reqID != "" {
		msg.Header.Set("X-Request-ID", reqID)
	}
	return p.nc.PublishMsg(msg)
}

// NopPublisher drops every event. Used when NATS is not configured.
type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, string, any) error { return nil }
