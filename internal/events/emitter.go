// Package events publishes observed wallet activity to NATS so other
// consumers can react without polling the RPC endpoint themselves.
package events

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/nats-io/nats.go"
)

// Activity event types.
const (
	TypeTransaction   = "transaction"
	TypeBalanceChange = "balance_change"
)

// DefaultSubject is the NATS subject activity events are published to.
const DefaultSubject = "wallet.activity"

// ActivityEvent is one observed wallet event.
type ActivityEvent struct {
	ID        string `json:"id"`
	Type      string `json:"type"`
	Address   string `json:"address"`
	Signature string `json:"signature,omitempty"`
	Lamports  uint64 `json:"lamports,omitempty"`
	Slot      int64  `json:"slot"`
	Timestamp int64  `json:"timestamp"`
}

// NewTransactionEvent builds an event for a signature seen in the logs stream.
func NewTransactionEvent(address, signature string, slot int64) ActivityEvent {
	return ActivityEvent{
		ID:        uuid.NewString(),
		Type:      TypeTransaction,
		Address:   address,
		Signature: signature,
		Slot:      slot,
		Timestamp: time.Now().UTC().Unix(),
	}
}

// NewBalanceEvent builds an event for an account state change.
func NewBalanceEvent(address string, lamports uint64, slot int64) ActivityEvent {
	return ActivityEvent{
		ID:        uuid.NewString(),
		Type:      TypeBalanceChange,
		Address:   address,
		Lamports:  lamports,
		Slot:      slot,
		Timestamp: time.Now().UTC().Unix(),
	}
}

// Emitter publishes activity events.
type Emitter interface {
	Emit(event ActivityEvent) error
	Close()
}

// NATSEmitter publishes activity events to a NATS subject as JSON.
type NATSEmitter struct {
	conn    *nats.Conn
	subject string
}

var _ Emitter = (*NATSEmitter)(nil)

// NewNATSEmitter connects to NATS and returns an emitter bound to the subject.
func NewNATSEmitter(natsURL, subject string) (*NATSEmitter, error) {
	conn, err := nats.Connect(natsURL, nats.Name("wallet-watch"))
	if err != nil {
		return nil, fmt.Errorf("connect to NATS: %w", err)
	}

	if subject == "" {
		subject = DefaultSubject
	}

	return &NATSEmitter{conn: conn, subject: subject}, nil
}

// Emit publishes one event.
func (e *NATSEmitter) Emit(event ActivityEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}
	return e.conn.Publish(e.subject, data)
}

// Close flushes and closes the NATS connection.
func (e *NATSEmitter) Close() {
	if e.conn != nil {
		e.conn.Close()
	}
}
