package booking

import "fmt"

// TransportError marks a network-level failure reaching the booking
// service, as opposed to an application-level rejection.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("booking service unreachable: %v", e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// StatusError is a non-2xx answer from the booking service.
type StatusError struct {
	Code    int
	Message string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("booking service returned %d: %s", e.Code, e.Message)
}
