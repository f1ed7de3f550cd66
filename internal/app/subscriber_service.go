package app

import (
	"context"
	"strings"

	"gamestore-hub/internal/model"
)

const msgSubscriberEmailInvalid = "A valid email address is required"

// SubscriberPublisher hands a signup off to the queue; a worker
// persists it out of band.
type SubscriberPublisher interface {
	Publish(ctx context.Context, subscriber model.Subscriber) error
}

type SubscriberService struct {
	publisher SubscriberPublisher
}

func NewSubscriberService(publisher SubscriberPublisher) *SubscriberService {
	return &SubscriberService{publisher: publisher}
}

func (s *SubscriberService) Subscribe(ctx context.Context, email, source string) error {
	email = strings.ToLower(strings.TrimSpace(email))
	if !model.ValidateEmail(email) {
		return &ValidationError{Message: msgSubscriberEmailInvalid}
	}
	if source == "" {
		source = "web"
	}
	return s.publisher.Publish(ctx, model.Subscriber{Email: email, Source: source})
}
