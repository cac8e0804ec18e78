package publisher

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"

	"portfolio_content/internal/domain"
)

type RabbitMQ struct {
	conn       *amqp.Connection
	channel    *amqp.Channel
	exchange   string
	routingKey string
	logger     *slog.Logger
}

type Config struct {
	URL        string
	Exchange   string
	RoutingKey string
	QueueName  string
}

func NewRabbitMQ(cfg Config, logger *slog.Logger) (*RabbitMQ, error) {
	conn, err := amqp.Dial(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("connect to rabbitmq: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}

	err = ch.ExchangeDeclare(
		cfg.Exchange,
		"direct",
		true,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		ch.Close()
		conn.Close()
		return nil, fmt.Errorf("declare exchange: %w", err)
	}

	q, err := ch.QueueDeclare(
		cfg.QueueName,
		true,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		ch.Close()
		conn.Close()
		return nil, fmt.Errorf("declare queue: %w", err)
	}

	err = ch.QueueBind(
		q.Name,
		cfg.RoutingKey,
		cfg.Exchange,
		false,
		nil,
	)
	if err != nil {
		ch.Close()
		conn.Close()
		return nil, fmt.Errorf("bind queue: %w", err)
	}

	logger.Info("connected to rabbitmq",
		"exchange", cfg.Exchange,
		"queue", cfg.QueueName,
		"routing_key", cfg.RoutingKey,
	)

	return &RabbitMQ{
		conn:       conn,
		channel:    ch,
		exchange:   cfg.Exchange,
		routingKey: cfg.RoutingKey,
		logger:     logger.With("component", "publisher"),
	}, nil
}

// EventContentSynced tells the site that fresh content and images are available.
const EventContentSynced = "content.synced"

type CategorySummary struct {
	Category string `json:"category"`
	Records  int    `json:"records"`
	Error    string `json:"error,omitempty"`
}

type ContentSyncedMessage struct {
	ID         string            `json:"id"`
	Event      string            `json:"event"`
	Categories []CategorySummary `json:"categories"`
	Records    int               `json:"records"`
	Errors     int               `json:"errors"`
	SyncedAt   time.Time         `json:"synced_at"`
}

func NewContentSyncedMessage(stats *domain.SyncStats) ContentSyncedMessage {
	msg := ContentSyncedMessage{
		ID:         uuid.NewString(),
		Event:      EventContentSynced,
		Categories: make([]CategorySummary, 0, len(stats.Categories)),
		Records:    stats.Records(),
		Errors:     stats.Errors,
		SyncedAt:   stats.StartedAt.UTC(),
	}
	for _, c := range stats.Categories {
		summary := CategorySummary{Category: string(c.Category), Records: c.Records}
		if c.Err != nil {
			summary.Error = c.Err.Error()
		}
		msg.Categories = append(msg.Categories, summary)
	}
	return msg
}

func (r *RabbitMQ) Publish(ctx context.Context, stats *domain.SyncStats) error {
	msg := NewContentSyncedMessage(stats)
	body, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("marshal message: %w", err)
	}

	err = r.channel.PublishWithContext(
		ctx,
		r.exchange,
		r.routingKey,
		false,
		false,
		amqp.Publishing{
			DeliveryMode: amqp.Persistent,
			ContentType:  "application/json",
			MessageId:    msg.ID,
			Type:         EventContentSynced,
			Body:         body,
			Timestamp:    time.Now(),
		},
	)
	if err != nil {
		return fmt.Errorf("publish message: %w", err)
	}

	r.logger.Debug("published content synced",
		"message_id", msg.ID,
		"records", stats.Records(),
		"errors", stats.Errors,
	)

	return nil
}

func (r *RabbitMQ) Close() error {
	if r.channel != nil {
		r.channel.Close()
	}
	if r.conn != nil {
		return r.conn.Close()
	}
	return nil
}
