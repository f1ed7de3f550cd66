package rabbitmq

import (
	"context"
	"encoding/json"
	"fmt"

	amqp "github.com/rabbitmq/amqp091-go"

	"gamestore-hub/internal/model"
)

type SubscriberPublisher struct {
	conn      *amqp.Connection
	queueName string
}

func NewSubscriberPublisher(conn *amqp.Connection, queueName string) *SubscriberPublisher {
	return &SubscriberPublisher{
		conn:      conn,
		queueName: queueName,
	}
}

func (p *SubscriberPublisher) Publish(ctx context.Context, subscriber model.Subscriber) error {
	ch, err := p.conn.Channel()
	if err != nil {
		return fmt.Errorf("open rabbitmq channel failed: %w", err)
	}
	defer ch.Close()

	_, err = ch.QueueDeclare(
		p.queueName,
		true,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		return fmt.Errorf("declare queue failed: %w", err)
	}

	payload, err := json.Marshal(subscriber)
	if err != nil {
		return fmt.Errorf("marshal subscriber payload failed: %w", err)
	}

	if err := ch.PublishWithContext(
		ctx,
		"",
		p.queueName,
		false,
		false,
		amqp.Publishing{
			ContentType:  "application/json",
			Body:         payload,
			DeliveryMode: amqp.Persistent,
		},
	); err != nil {
		return fmt.Errorf("publish subscriber failed: %w", err)
	}
	return nil
}
