// Package kafka publishes order status change events to a Kafka topic so
// downstream consumers (analytics, customer messaging, merchant dashboards)
// can react without coupling to the order workflow.
package kafka

import (
	"encoding/json"
	"fmt"
	"time"

	"marketplace/internal/core/ports"

	"github.com/IBM/sarama"
)

// statusChangedMessage is the wire payload for one published status change.
type statusChangedMessage struct {
	OrderID    string `json:"orderId"`
	Recipient  string `json:"recipient"`
	FromStatus string `json:"fromStatus"`
	ToStatus   string `json:"toStatus"`
	Reason     string `json:"reason,omitempty"`
	OccurredAt string `json:"occurredAt"`
}

// OrderEventProducer publishes order status changes via a synchronous Kafka
// producer. Messages are keyed by order id so transitions of the same order
// land on one partition in order.
type OrderEventProducer struct {
	producer sarama.SyncProducer
	topic    string
}

// NewOrderEventProducer connects a synchronous producer to the given brokers.
func NewOrderEventProducer(brokers []string, topic string) (*OrderEventProducer, error) {
	config := sarama.NewConfig()
	config.Producer.Return.Successes = true
	config.Producer.Timeout = 5 * time.Second

	producer, err := sarama.NewSyncProducer(brokers, config)
	if err != nil {
		return nil, fmt.Errorf("create kafka producer: %w", err)
	}

	return &OrderEventProducer{producer: producer, topic: topic}, nil
}

// Publish sends one status change to the topic.
func (p *OrderEventProducer) Publish(notification ports.Notification) error {
	payload, err := json.Marshal(statusChangedMessage{
		OrderID:    notification.OrderID.String(),
		Recipient:  notification.Recipient.String(),
		FromStatus: notification.From.String(),
		ToStatus:   notification.To.String(),
		Reason:     notification.Reason,
		OccurredAt: time.Now().UTC().Format(time.RFC3339),
	})
	if err != nil {
		return fmt.Errorf("marshal status change: %w", err)
	}

	msg := &sarama.ProducerMessage{
		Topic: p.topic,
		Key:   sarama.StringEncoder(notification.OrderID.String()),
		Value: sarama.ByteEncoder(payload),
	}

	if _, _, err := p.producer.SendMessage(msg); err != nil {
		return fmt.Errorf("send status change to topic %s: %w", p.topic, err)
	}

	return nil
}

// Close shuts down the underlying producer.
func (p *OrderEventProducer) Close() error {
	return p.producer.Close()
}
