package notify

import (
	"context"
	"errors"
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSQS struct {
	sent       []string
	failNTimes int
	calls      int
}

func (f *fakeSQS) SendMessage(ctx context.Context, params *sqs.SendMessageInput, optFns ...func(*sqs.Options)) (*sqs.SendMessageOutput, error) {
	f.calls++
	if f.calls <= f.failNTimes {
		return nil, errors.New("throttled")
	}
	f.sent = append(f.sent, *params.MessageBody)
	return &sqs.SendMessageOutput{}, nil
}

func TestPublishAllSendsOneMessagePerEvent(t *testing.T) {
	fake := &fakeSQS{}
	pub := &Publisher{client: fake, queueURL: "queue-url", attempts: 3}

	events := []AdmittedEvent{
		{ScenarioID: "a", Freq: "hourly", StartsAtMS: 1000, DurationMS: 60000},
		{ScenarioID: "b", Freq: "daily", StartsAtMS: 2000, DurationMS: 60000},
	}
	err := pub.PublishAll(context.Background(), events)
	require.NoError(t, err)
	assert.Len(t, fake.sent, 2)
}

func TestPublishOneRetriesOnTransientFailure(t *testing.T) {
	fake := &fakeSQS{failNTimes: 2}
	pub := &Publisher{client: fake, queueURL: "queue-url", attempts: 3}

	err := pub.publishOne(context.Background(), AdmittedEvent{ScenarioID: "a"})
	require.NoError(t, err)
	assert.Equal(t, 3, fake.calls)
}

func TestPublishAllReturnsFirstErrorAfterExhaustingRetries(t *testing.T) {
	fake := &fakeSQS{failNTimes: 100}
	pub := &Publisher{client: fake, queueURL: "queue-url", attempts: 2}

	events := []AdmittedEvent{{ScenarioID: "a"}, {ScenarioID: "b"}}
	err := pub.PublishAll(context.Background(), events)
	require.Error(t, err)
	// both events attempted despite the first one failing
	assert.Equal(t, 4, fake.calls)
}
