package config

const (
	// EnvAPIKey and EnvTopicARN are the two required variables; an invocation
	// cannot proceed when either is missing.
	EnvAPIKey   = "PREMIER_LEAGUE_API_KEY"
	EnvTopicARN = "SNS_TOPIC_ARN"

	envFootballDataBaseURL = "FOOTBALL_DATA_BASE_URL"
	envLogLevel            = "LOG_LEVEL"
	envLogFormat           = "LOG_FORMAT"
	envMetricsOn           = "METRICS_ENABLED"
	envMetricsPort         = "METRICS_PORT"
	envOtelEndpoint        = "OTEL_EXPORTER_OTLP_ENDPOINT"
	envOtelService         = "OTEL_SERVICE_NAME"
	envOtelInsecure        = "OTEL_EXPORTER_OTLP_INSECURE"

	defaultFootballDataBaseURL = "https://api.football-data.org/v4"
	defaultMetricsPort         = "9090"
	defaultServiceName         = "premier-league-notifier"
)
