package resolve

import "fmt"

// ResolutionError reports a descriptor that could not be turned into a
// concrete site, sky position, or instant.
type ResolutionError struct {
	Kind       string // "location", "source", or "time"
	Descriptor string // the descriptor as given by the caller
	Err        error  // underlying cause, may be nil
}

func (e *ResolutionError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("cannot resolve %s %q: %v", e.Kind, e.Descriptor, e.Err)
	}
	return fmt.Sprintf("cannot resolve %s %q", e.Kind, e.Descriptor)
}

func (e *ResolutionError) Unwrap() error {
	return e.Err
}

func resolutionError(kind, descriptor string, err error) *ResolutionError {
	return &ResolutionError{Kind: kind, Descriptor: descriptor, Err: err}
}
