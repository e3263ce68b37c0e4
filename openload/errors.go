package openload

import (
	"errors"
	"fmt"
)

// Kind identifies the class of a failed API call.
type Kind int

// Error kinds, one per classified envelope status.
const (
	KindBadRequest Kind = iota + 1
	KindPermissionDenied
	KindNotFound
	KindUnavailableForLegalReasons
	KindBandwidthExceeded
	KindServerError
)

// String returns a human-readable representation of the kind.
func (k Kind) String() string {
	switch k {
	case KindBadRequest:
		return "bad request"
	case KindPermissionDenied:
		return "permission denied"
	case KindNotFound:
		return "not found"
	case KindUnavailableForLegalReasons:
		return "unavailable for legal reasons"
	case KindBandwidthExceeded:
		return "bandwidth usage exceeded"
	case KindServerError:
		return "server error"
	default:
		return fmt.Sprintf("unknown(%d)", int(k))
	}
}

// Sentinel errors for errors.Is checks against an *APIError.
var (
	ErrBadRequest                 = errors.New("openload: bad request")
	ErrPermissionDenied           = errors.New("openload: permission denied")
	ErrNotFound                   = errors.New("openload: not found")
	ErrUnavailableForLegalReasons = errors.New("openload: unavailable for legal reasons")
	ErrBandwidthExceeded          = errors.New("openload: bandwidth usage exceeded")
	ErrServerError                = errors.New("openload: server error")
)

// ErrUnsupported is returned by operations the service has not shipped yet.
// It also matches errors.ErrUnsupported.
var ErrUnsupported = fmt.Errorf("openload: operation not available: %w", errors.ErrUnsupported)

func (k Kind) sentinel() error {
	switch k {
	case KindBadRequest:
		return ErrBadRequest
	case KindPermissionDenied:
		return ErrPermissionDenied
	case KindNotFound:
		return ErrNotFound
	case KindUnavailableForLegalReasons:
		return ErrUnavailableForLegalReasons
	case KindBandwidthExceeded:
		return ErrBandwidthExceeded
	case KindServerError:
		return ErrServerError
	default:
		return nil
	}
}

// APIError is returned when the envelope status maps to an error kind.
type APIError struct {
	Kind   Kind
	Status int
	Msg    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("openload: %s (status %d): %s", e.Kind, e.Status, e.Msg)
}

// Unwrap exposes the kind's sentinel error.
func (e *APIError) Unwrap() error {
	return e.Kind.sentinel()
}

// TransportError wraps network failures, undecodable bodies and local I/O
// errors. The cause is kept unmodified.
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("openload: %s: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// IsTransport reports whether err or any wrapped error is a TransportError.
func IsTransport(err error) bool {
	var t *TransportError
	return errors.As(err, &t)
}

// CheckStatus maps an envelope status to an error. Statuses outside the
// known table, other than 5xx, yield nil.
func CheckStatus(status int, msg string) error {
	var kind Kind
	switch {
	case status == 200:
		return nil
	case status == 400:
		kind = KindBadRequest
	case status == 403:
		kind = KindPermissionDenied
	case status == 404:
		kind = KindNotFound
	case status == 451:
		kind = KindUnavailableForLegalReasons
	case status == 509:
		kind = KindBandwidthExceeded
	case status >= 500:
		kind = KindServerError
	default:
		return nil
	}
	return &APIError{Kind: kind, Status: status, Msg: msg}
}
