package worker

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"sync"

	amqp "github.com/rabbitmq/amqp091-go"

	"gamestore-hub/internal/model"
	"gamestore-hub/internal/repository"
)

// SubscriberStore is the persistence slice the worker needs.
type SubscriberStore interface {
	Create(subscriber *model.Subscriber) error
}

type deliveryOutcome int

const (
	// outcomeAck acknowledges the delivery; the message is done.
	outcomeAck deliveryOutcome = iota
	// outcomeReject drops the delivery without requeueing it.
	outcomeReject
)

// SubscriberPersistWorker drains the signup queue into MySQL.
type SubscriberPersistWorker struct {
	conn      *amqp.Connection
	store     SubscriberStore
	queueName string

	cancel context.CancelFunc
	wg     sync.WaitGroup
}

func NewSubscriberPersistWorker(conn *amqp.Connection, store SubscriberStore, queueName string) *SubscriberPersistWorker {
	return &SubscriberPersistWorker{
		conn:      conn,
		store:     store,
		queueName: queueName,
	}
}

func (w *SubscriberPersistWorker) Start(ctx context.Context) error {
	if w.cancel != nil {
		return nil
	}

	workerCtx, cancel := context.WithCancel(ctx)
	w.cancel = cancel

	ch, err := w.conn.Channel()
	if err != nil {
		cancel()
		return fmt.Errorf("open worker channel failed: %w", err)
	}

	_, err = ch.QueueDeclare(
		w.queueName,
		true,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		_ = ch.Close()
		cancel()
		return fmt.Errorf("declare worker queue failed: %w", err)
	}

	deliveries, err := ch.Consume(
		w.queueName,
		"",
		false,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		_ = ch.Close()
		cancel()
		return fmt.Errorf("consume queue failed: %w", err)
	}

	w.wg.Add(1)
	go func() {
		defer w.wg.Done()
		defer ch.Close()

		for {
			select {
			case <-workerCtx.Done():
				return
			case d, ok := <-deliveries:
				if !ok {
					return
				}
				if w.handleDelivery(d.Body) == outcomeAck {
					_ = d.Ack(false)
				} else {
					_ = d.Nack(false, false)
				}
			}
		}
	}()

	return nil
}

// handleDelivery decides the fate of one queued signup. Undecodable
// payloads and store failures are rejected; duplicates are absorbed.
func (w *SubscriberPersistWorker) handleDelivery(body []byte) deliveryOutcome {
	var subscriber model.Subscriber
	if err := json.Unmarshal(body, &subscriber); err != nil {
		log.Printf("worker decode subscriber failed: %v", err)
		return outcomeReject
	}

	if err := w.store.Create(&subscriber); err != nil {
		if errors.Is(err, repository.ErrDuplicateEntry) {
			// Already subscribed; drop the message.
			return outcomeAck
		}
		log.Printf("worker persist subscriber failed: %v", err)
		return outcomeReject
	}

	return outcomeAck
}

func (w *SubscriberPersistWorker) Close() {
	if w.cancel != nil {
		w.cancel()
	}
	w.wg.Wait()
}
