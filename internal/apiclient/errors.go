package apiclient

import (
	"errors"
	"fmt"
	"net/http"
)

// CodeNetwork marks failures where no HTTP response was received.
const CodeNetwork = "ERR_NETWORK"

// Kind classifies a failed backend call for message lookup and status mapping.
type Kind int

const (
	KindUnknown Kind = iota
	KindNetwork
	KindUnauthorized
	KindForbidden
	KindNotFound
	KindValidation
	KindConflict
	KindServer
)

func (k Kind) String() string {
	switch k {
	case KindNetwork:
		return "network"
	case KindUnauthorized:
		return "unauthorized"
	case KindForbidden:
		return "forbidden"
	case KindNotFound:
		return "not_found"
	case KindValidation:
		return "validation"
	case KindConflict:
		return "conflict"
	case KindServer:
		return "server"
	default:
		return "unknown"
	}
}

// HTTPError is returned for every failed backend call. Status is zero when
// the request never got a response.
type HTTPError struct {
	Op      string
	Status  int
	Code    string
	Message string
	Err     error
}

func (e *HTTPError) Error() string {
	switch {
	case e.Code == CodeNetwork:
		return fmt.Sprintf("%s: %s: %v", e.Op, CodeNetwork, e.Err)
	case e.Message != "":
		return fmt.Sprintf("%s: status %d: %s", e.Op, e.Status, e.Message)
	default:
		return fmt.Sprintf("%s: status %d", e.Op, e.Status)
	}
}

func (e *HTTPError) Unwrap() error { return e.Err }

func (e *HTTPError) Kind() Kind {
	if e.Code == CodeNetwork {
		return KindNetwork
	}
	switch e.Status {
	case http.StatusUnauthorized:
		return KindUnauthorized
	case http.StatusForbidden:
		return KindForbidden
	case http.StatusNotFound:
		return KindNotFound
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		return KindValidation
	case http.StatusConflict:
		return KindConflict
	}
	if e.Status >= 500 {
		return KindServer
	}
	return KindUnknown
}

// AsHTTPError unwraps err into *HTTPError when it is one.
func AsHTTPError(err error) (*HTTPError, bool) {
	var he *HTTPError
	if errors.As(err, &he) {
		return he, true
	}
	return nil, false
}
