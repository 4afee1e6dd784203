package tracker

import "fmt"

// UpstreamError wraps a failure of an external collaborator: the feed, the
// frame transform, or the geocoder
type UpstreamError struct {
	Collaborator string
	Err          error
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("%s: %v", e.Collaborator, e.Err)
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}
