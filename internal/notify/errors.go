package notify

import (
	"errors"
	"fmt"
)

// PublishError captures a failed publish attempt. The cause is for logs only
// and never reaches callers of the notification endpoint.
type PublishError struct {
	Topic string
	Err   error
}

func (e *PublishError) Error() string {
	return fmt.Sprintf("publish to %s failed: %v", e.Topic, e.Err)
}

func (e *PublishError) Unwrap() error {
	return e.Err
}

// AsPublishError attempts to unwrap an error into a PublishError.
func AsPublishError(err error) (*PublishError, bool) {
	var pErr *PublishError
	if errors.As(err, &pErr) {
		return pErr, true
	}
	return nil, false
}
