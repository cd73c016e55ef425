package main

import (
	"context"
	"os"

	"github.com/aws/aws-lambda-go/lambda"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sns"
	"github.com/joho/godotenv"

	"premier-league-notifier/internal/config"
	"premier-league-notifier/internal/handler"
	"premier-league-notifier/internal/logging"
	"premier-league-notifier/internal/metrics"
	"premier-league-notifier/internal/notify"
	"premier-league-notifier/internal/providers/footballdata"
)

const appVersion = "dev"

func main() {
	if os.Getenv("SKIP_LAMBDA_RUN") == "1" {
		return
	}

	// Local runs only; in Lambda the environment comes from the function config.
	_ = godotenv.Load()

	cfg := config.Load()
	logger := logging.NewLogger(logging.Config{
		Level:   cfg.Log.Level,
		Format:  cfg.Log.Format,
		Service: "premier-league-notifier",
		Version: appVersion,
	})

	ctx := context.Background()

	recorder, promHandler, shutdown, err := metrics.Setup(ctx, metrics.TelemetryConfig{
		Enabled:      cfg.Metrics.Enabled,
		ServiceName:  cfg.Metrics.ServiceName,
		OtlpEndpoint: cfg.Metrics.OtlpEndpoint,
		OtlpInsecure: cfg.Metrics.OtlpInsecure,
	})
	if err != nil {
		logging.Error(logger, "telemetry setup failed, continuing without export", err)
		recorder = metrics.NewRecorder()
		shutdown = func(context.Context) error { return nil }
	}
	defer func() { _ = shutdown(ctx) }()

	if promHandler != nil {
		metricsSrv, srvErr := metrics.StartServer(promHandler, cfg.Metrics.Port, logger)
		if srvErr != nil {
			logging.Error(logger, "metrics server failed to start", srvErr)
		} else {
			defer func() { _ = metricsSrv.Shutdown(ctx) }()
		}
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx)
	if err != nil {
		logging.Error(logger, "failed to load AWS configuration", err)
		os.Exit(1)
	}

	// Clients are built once at cold start and reused across invocations.
	fetcher := footballdata.NewClient(footballdata.Config{
		BaseURL: cfg.FootballData.BaseURL,
		APIKey:  cfg.APIKey,
		Logger:  logger,
	})
	publisher := notify.NewSNSPublisher(sns.NewFromConfig(awsCfg), logger)

	h := handler.New(cfg, fetcher, publisher, logger, recorder)
	lambda.Start(h.Handle)
}
