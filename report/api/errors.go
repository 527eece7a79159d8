package api

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrMissingUUID is returned when the server accepted the results but did not assign an identifier.
var ErrMissingUUID = errors.New("no uuid received")

// StatusError is returned when the server responds with anything other than 201 Created.
type StatusError struct {
	URL        string
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("request to %s failed: status code should be %d (%d): %s", e.URL, http.StatusCreated, e.StatusCode, e.Body)
}

// TransportError is returned when the server could not be reached.
type TransportError struct {
	URL string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("request to %s failed: %s", e.URL, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}
