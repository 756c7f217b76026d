package provider

import "fmt"

// TransportError reports a network-level failure: the request never produced
// a response that could be read (DNS, connect, TLS, or a broken body read).
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("transport error: %v", e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// ProtocolError reports a non-2xx status from the remote service.
// Body carries the raw error payload for diagnostics.
type ProtocolError struct {
	StatusCode int
	Body       string
}

func (e *ProtocolError) Error() string {
	return fmt.Sprintf("request failed with status %d", e.StatusCode)
}

// ParseError reports a response body that does not match the expected shape:
// malformed JSON, a missing choices array, or an empty reply.
type ParseError struct {
	Reason string
	Err    error
}

func (e *ParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("parse error: %s: %v", e.Reason, e.Err)
	}
	return fmt.Sprintf("parse error: %s", e.Reason)
}

func (e *ParseError) Unwrap() error { return e.Err }
