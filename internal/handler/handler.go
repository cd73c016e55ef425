// Package handler is the Lambda entry point: it validates configuration,
// runs the fetch → format → publish pipeline, and maps every failure to a
// structured response. No error ever escapes the handler.
package handler

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/aws/aws-lambda-go/events"

	"premier-league-notifier/internal/config"
	"premier-league-notifier/internal/format"
	"premier-league-notifier/internal/logging"
	"premier-league-notifier/internal/metrics"
	"premier-league-notifier/internal/notify"
	"premier-league-notifier/internal/providers"
)

// Fixed response bodies. Diagnostic detail stays in the logs; the response
// never carries an underlying error.
const (
	BodyMissingConfig  = "Missing required environment variables: " + config.EnvAPIKey + ", " + config.EnvTopicARN
	BodyFetchFailure   = "Failed to fetch standings data."
	BodyPublishFailure = "Failed to publish notification."
	BodySuccess        = "Standings notification sent successfully."
)

// Handler sequences the notification pipeline for one invocation.
type Handler struct {
	cfg       config.Config
	provider  providers.StandingsProvider
	publisher notify.Publisher
	logger    *slog.Logger
	recorder  *metrics.Recorder
	now       func() time.Time
}

// New builds a handler. Logger and recorder may be nil.
func New(cfg config.Config, provider providers.StandingsProvider, publisher notify.Publisher, logger *slog.Logger, recorder *metrics.Recorder) *Handler {
	return &Handler{
		cfg:       cfg,
		provider:  provider,
		publisher: publisher,
		logger:    logger,
		recorder:  recorder,
		now:       time.Now,
	}
}

// Handle runs one invocation. The event payload only acts as the trigger;
// its content is ignored. The returned error is always nil: every failure is
// expressed as a status code and fixed body.
func (h *Handler) Handle(ctx context.Context, _ json.RawMessage) (events.APIGatewayProxyResponse, error) {
	if err := h.cfg.Validate(); err != nil {
		logging.Error(h.logger, "invocation rejected", err)
		return h.respond(http.StatusBadRequest, BodyMissingConfig), nil
	}

	err := h.run(ctx)
	switch {
	case err == nil:
		return h.respond(http.StatusOK, BodySuccess), nil
	case isPublishFailure(err):
		return h.respond(http.StatusInternalServerError, BodyPublishFailure), nil
	default:
		// run folds everything else into the fetch taxonomy.
		return h.respond(http.StatusInternalServerError, BodyFetchFailure), nil
	}
}

// run executes fetch → format → publish, stopping at the first failure.
// Every returned error belongs to the fetch or publish taxonomy so Handle
// can choose the response by error kind alone.
func (h *Handler) run(ctx context.Context) error {
	start := h.now()
	doc, err := h.provider.FetchStandings(ctx)
	h.recorder.RecordStepAttempt(metrics.StepFetch, h.now().Sub(start), err)
	if err != nil {
		// The football-data client wraps and logs its own failures.
		if _, ok := providers.AsFetchError(err); ok {
			return err
		}
		return &providers.FetchError{Provider: "standings", Err: err}
	}

	message := format.Render(doc)

	start = h.now()
	err = h.publisher.Publish(ctx, h.cfg.TopicARN, message, notify.Subject)
	h.recorder.RecordStepAttempt(metrics.StepPublish, h.now().Sub(start), err)
	if err != nil {
		if _, ok := notify.AsPublishError(err); ok {
			return err
		}
		return &notify.PublishError{Topic: h.cfg.TopicARN, Err: err}
	}

	return nil
}

func isPublishFailure(err error) bool {
	_, ok := notify.AsPublishError(err)
	return ok
}

func (h *Handler) respond(status int, body string) events.APIGatewayProxyResponse {
	h.recorder.RecordInvocation(status)
	logging.Info(h.logger, "invocation finished",
		slog.Int(logging.FieldStatusCode, status))
	return events.APIGatewayProxyResponse{StatusCode: status, Body: body}
}
