package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	pkgkafka "github.com/ltorres832/AutoDealers-sub014/pkg/kafka"
)

// Notifier implements port.Notifier by publishing notification requests to
// a Kafka topic consumed by the delivery service. Delivery itself (email,
// SMS, in-app) happens downstream.
type Notifier struct {
	producer *pkgkafka.Producer
	topic    string
}

// NewNotifier creates a notifier targeting the given producer and topic.
func NewNotifier(producer *pkgkafka.Producer, topic string) *Notifier {
	return &Notifier{producer: producer, topic: topic}
}

type notification struct {
	TenantID  string    `json:"tenant_id"`
	Recipient string    `json:"recipient"`
	Message   string    `json:"message"`
	SentAt    time.Time `json:"sent_at"`
}

// Notify enqueues one notification.
func (n *Notifier) Notify(ctx context.Context, tenantID, recipient, message string) error {
	payload, err := json.Marshal(notification{
		TenantID:  tenantID,
		Recipient: recipient,
		Message:   message,
		SentAt:    time.Now().UTC(),
	})
	if err != nil {
		return fmt.Errorf("marshal notification: %w", err)
	}

	err = n.producer.Publish(ctx, n.topic, pkgkafka.Message{
		Key:   []byte(tenantID + ":" + recipient),
		Value: payload,
		Headers: map[string]string{
			"tenant_id": tenantID,
		},
	})
	if err != nil {
		return fmt.Errorf("publish notification: %w", err)
	}
	return nil
}
