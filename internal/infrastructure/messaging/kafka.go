package messaging

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"hospital-admin-api/config"
	"hospital-admin-api/internal/service"

	"github.com/segmentio/kafka-go"
	"github.com/sirupsen/logrus"
)

// KafkaPublisher writes appointment events to a Kafka topic keyed by appointment id
type KafkaPublisher struct {
	writer *kafka.Writer
	log    *logrus.Logger
}

// NewEventPublisher returns a Kafka-backed publisher, or a no-op one when no brokers are configured
func NewEventPublisher(cfg config.KafkaConfig, log *logrus.Logger) service.EventPublisher {
	brokers := splitBrokers(cfg.Brokers)
	if len(brokers) == 0 {
		log.Info("Kafka brokers not configured, appointment events disabled")
		return service.NewNoopEventPublisher()
	}

	writer := &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        cfg.AppointmentTopic,
		Balancer:     &kafka.Hash{},
		BatchTimeout: 50 * time.Millisecond,
		RequiredAcks: kafka.RequireOne,
		Async:        true,
		Completion: func(messages []kafka.Message, err error) {
			if err != nil {
				log.Warnf("Failed to deliver %d appointment event(s): %+v", len(messages), err)
			}
		},
	}

	log.Infof("Kafka publisher created for topic: %s", cfg.AppointmentTopic)
	return &KafkaPublisher{writer: writer, log: log}
}

// Publish enqueues the event; delivery errors surface through the writer completion hook
func (p *KafkaPublisher) Publish(ctx context.Context, event service.AppointmentEvent) error {
	msg, err := eventMessage(event)
	if err != nil {
		return err
	}

	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("publish appointment event: %w", err)
	}

	p.log.Debugf("Appointment event queued: type=%s, id=%d", event.Type, event.AppointmentID)
	return nil
}

// eventMessage keys the message by appointment id so one appointment's events stay ordered
func eventMessage(event service.AppointmentEvent) (kafka.Message, error) {
	value, err := json.Marshal(event)
	if err != nil {
		return kafka.Message{}, fmt.Errorf("marshal appointment event: %w", err)
	}

	return kafka.Message{
		Key:   []byte(strconv.FormatUint(uint64(event.AppointmentID), 10)),
		Value: value,
		Headers: []kafka.Header{
			{Key: "event-type", Value: []byte(event.Type)},
		},
	}, nil
}

// Close flushes pending messages
func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}

func splitBrokers(raw string) []string {
	var brokers []string
	for _, b := range strings.Split(raw, ",") {
		if b = strings.TrimSpace(b); b != "" {
			brokers = append(brokers, b)
		}
	}
	return brokers
}
