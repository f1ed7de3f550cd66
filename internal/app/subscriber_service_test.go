package app

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gamestore-hub/internal/model"
)

type fakePublisher struct {
	published []model.Subscriber
	err       error
}

func (f *fakePublisher) Publish(_ context.Context, subscriber model.Subscriber) error {
	if f.err != nil {
		return f.err
	}
	f.published = append(f.published, subscriber)
	return nil
}

func TestSubscribePublishesNormalizedEmail(t *testing.T) {
	publisher := &fakePublisher{}
	svc := NewSubscriberService(publisher)

	err := svc.Subscribe(context.Background(), "  News@Example.COM ", "")
	require.NoError(t, err)

	require.Len(t, publisher.published, 1)
	assert.Equal(t, "news@example.com", publisher.published[0].Email)
	assert.Equal(t, "web", publisher.published[0].Source)
}

func TestSubscribeRejectsInvalidEmail(t *testing.T) {
	publisher := &fakePublisher{}
	svc := NewSubscriberService(publisher)

	err := svc.Subscribe(context.Background(), "not-an-email", "footer")

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Empty(t, publisher.published)
}
