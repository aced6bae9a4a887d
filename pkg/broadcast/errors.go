package broadcast

import "errors"

var (
	// ErrHubClosed is returned for operations on a closed hub.
	ErrHubClosed = errors.New("broadcast: hub is closed")

	// ErrPublishFailed wraps transport-level publish failures.
	ErrPublishFailed = errors.New("broadcast: publish failed")
)
