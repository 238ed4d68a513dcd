// Package notify publishes admitted tournaments to an external SQS
// queue, standing in for whatever downstream calendar service acts on
// a plan run's result. It has no bearing on the planner's own
// semantics; a scenario plans identically whether or not this package
// is ever invoked.
package notify

import (
	"context"
	"encoding/json"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	retry "github.com/avast/retry-go"
	"github.com/pkg/errors"
)

// AdmittedEvent is the wire shape published for each admitted plan.
type AdmittedEvent struct {
	ScenarioID string `json:"scenarioId"`
	Freq       string `json:"freq"`
	StartsAtMS int64  `json:"startsAtMs"`
	DurationMS int64  `json:"durationMs"`
}

// sqsAPI is the subset of the SQS client the publisher needs, so
// tests can substitute a fake without standing up real AWS config.
type sqsAPI interface {
	SendMessage(ctx context.Context, params *sqs.SendMessageInput, optFns ...func(*sqs.Options)) (*sqs.SendMessageOutput, error)
}

// Publisher sends admitted-plan events to a single SQS queue, with
// bounded retries on transient failures.
type Publisher struct {
	client   sqsAPI
	queueURL string
	attempts uint
}

// NewSQSPublisher builds a Publisher backed by the default AWS config
// resolution chain (environment, shared config, IAM role).
func NewSQSPublisher(ctx context.Context, queueURL string) (*Publisher, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "loading AWS config")
	}
	return &Publisher{
		client:   sqs.NewFromConfig(cfg),
		queueURL: queueURL,
		attempts: 3,
	}, nil
}

// PublishAll sends one message per event, retrying each individually.
// It returns the first error encountered after retries are exhausted,
// having already attempted every event regardless of earlier failures.
func (p *Publisher) PublishAll(ctx context.Context, events []AdmittedEvent) error {
	var firstErr error
	for _, e := range events {
		if err := p.publishOne(ctx, e); err != nil {
			if firstErr == nil {
				firstErr = err
			}
		}
	}
	return firstErr
}

func (p *Publisher) publishOne(ctx context.Context, e AdmittedEvent) error {
	body, err := json.Marshal(e)
	if err != nil {
		return errors.Wrap(err, "marshaling admitted event")
	}

	return retry.Do(
		func() error {
			_, err := p.client.SendMessage(ctx, &sqs.SendMessageInput{
				QueueUrl:    aws.String(p.queueURL),
				MessageBody: aws.String(string(body)),
			})
			return err
		},
		retry.Context(ctx),
		retry.Attempts(p.attempts),
		retry.DelayType(retry.BackOffDelay),
		retry.Delay(100*time.Millisecond),
		retry.LastErrorOnly(true),
	)
}
