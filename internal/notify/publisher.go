// Package notify publishes notification messages to an SNS topic.
package notify

import (
	"context"
	"log/slog"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sns"

	"premier-league-notifier/internal/logging"
)

// Subject is the fixed subject line attached to every standings update.
const Subject = "Premier League Standings Update"

// Publisher delivers a message to a topic. Implementations make exactly one
// publish attempt per call.
type Publisher interface {
	Publish(ctx context.Context, topicARN, message, subject string) error
}

// snsAPI is the slice of the SNS client the publisher needs; tests substitute
// a fake.
type snsAPI interface {
	Publish(ctx context.Context, params *sns.PublishInput, optFns ...func(*sns.Options)) (*sns.PublishOutput, error)
}

// SNSPublisher publishes messages via AWS SNS.
type SNSPublisher struct {
	client snsAPI
	logger *slog.Logger
}

// NewSNSPublisher wraps an SNS client. The client may be shared across
// invocations.
func NewSNSPublisher(client snsAPI, logger *slog.Logger) *SNSPublisher {
	return &SNSPublisher{client: client, logger: logger}
}

// Publish sends the message to the topic exactly once. Any service or
// transport failure is returned as a *PublishError after a diagnostic log
// line; success is logged too.
func (p *SNSPublisher) Publish(ctx context.Context, topicARN, message, subject string) error {
	out, err := p.client.Publish(ctx, &sns.PublishInput{
		TopicArn: aws.String(topicARN),
		Message:  aws.String(message),
		Subject:  aws.String(subject),
	})
	if err != nil {
		pErr := &PublishError{Topic: topicARN, Err: err}
		logging.Error(p.logger, "notification publish failed", pErr,
			slog.String(logging.FieldTopic, topicARN))
		return pErr
	}

	messageID := ""
	if out != nil && out.MessageId != nil {
		messageID = *out.MessageId
	}
	logging.Info(p.logger, "notification published",
		slog.String(logging.FieldTopic, topicARN),
		slog.String(logging.FieldSubject, subject),
		slog.String("message_id", messageID))
	return nil
}
