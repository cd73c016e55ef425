package providers

import (
	"errors"
	"fmt"
)

// FetchError captures any failure while retrieving standings from an
// upstream provider: request construction, transport, non-2xx status, or
// body decoding. The cause is for logs only and never reaches callers of the
// notification endpoint.
type FetchError struct {
	Provider   string
	StatusCode int
	Err        error
}

func (e *FetchError) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("%s: fetch failed (status=%d): %v", e.Provider, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("%s: fetch failed: %v", e.Provider, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// AsFetchError attempts to unwrap an error into a FetchError.
func AsFetchError(err error) (*FetchError, bool) {
	var fErr *FetchError
	if errors.As(err, &fErr) {
		return fErr, true
	}
	return nil, false
}
