package metrics

// Common metric attribute keys to keep telemetry consistent/searchable.
const (
	AttrStep   = "step"
	AttrStatus = "status"
)

// Pipeline step names used as the step attribute.
const (
	StepFetch   = "fetch"
	StepPublish = "publish"
)
