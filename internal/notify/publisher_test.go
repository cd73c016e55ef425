package notify

import (
	"context"
	"errors"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sns"
)

type fakeSNS struct {
	calls  int
	input  *sns.PublishInput
	err    error
	output *sns.PublishOutput
}

func (f *fakeSNS) Publish(ctx context.Context, params *sns.PublishInput, optFns ...func(*sns.Options)) (*sns.PublishOutput, error) {
	f.calls++
	f.input = params
	if f.err != nil {
		return nil, f.err
	}
	if f.output != nil {
		return f.output, nil
	}
	return &sns.PublishOutput{MessageId: aws.String("msg-1")}, nil
}

func TestPublishSendsOnceWithTopicMessageSubject(t *testing.T) {
	fake := &fakeSNS{}
	pub := NewSNSPublisher(fake, nil)

	err := pub.Publish(context.Background(), "arn:topic", "body text", Subject)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if fake.calls != 1 {
		t.Fatalf("expected exactly one publish call, got %d", fake.calls)
	}
	if got := aws.ToString(fake.input.TopicArn); got != "arn:topic" {
		t.Fatalf("unexpected topic %q", got)
	}
	if got := aws.ToString(fake.input.Message); got != "body text" {
		t.Fatalf("unexpected message %q", got)
	}
	if got := aws.ToString(fake.input.Subject); got != Subject {
		t.Fatalf("unexpected subject %q", got)
	}
}

func TestPublishWrapsServiceFailure(t *testing.T) {
	fake := &fakeSNS{err: errors.New("sns unavailable")}
	pub := NewSNSPublisher(fake, nil)

	err := pub.Publish(context.Background(), "arn:topic", "body", Subject)

	pErr, ok := AsPublishError(err)
	if !ok {
		t.Fatalf("expected PublishError, got %v", err)
	}
	if pErr.Topic != "arn:topic" {
		t.Fatalf("unexpected topic on error %q", pErr.Topic)
	}
	if !errors.Is(err, fake.err) {
		t.Fatal("expected wrapped cause to be recoverable")
	}
	if fake.calls != 1 {
		t.Fatalf("expected no retry, got %d calls", fake.calls)
	}
}

func TestPublishToleratesNilOutput(t *testing.T) {
	fake := &fakeSNS{output: &sns.PublishOutput{}}
	pub := NewSNSPublisher(fake, nil)

	if err := pub.Publish(context.Background(), "arn:topic", "body", Subject); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
}
