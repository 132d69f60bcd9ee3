package errors

import (
	"errors"
	"fmt"
)

const (
	STAGE_BEFORE_REQUEST = "before-request"
	STAGE_REQUEST        = "request"

	TYPE_UNKNOWN      = "unknown"
	TYPE_JSON_PARSE   = "json"
	TYPE_URL_BUILD    = "url-build"
	TYPE_REQUEST_PREP = "request-prep"
	TYPE_IO           = "io"
	TYPE_HTTP_STATUS  = "not-ok-http-status"
)

// BeaconError describes why a beacon never made it onto the wire (or
// came back with a non-2xx status). Callers of the tracking API never
// see it; the dispatcher logs it and moves on, since beacons are
// best-effort by contract. It exists so the transport layer and tests
// can still tell failure modes apart.
type BeaconError struct {
	Stage          string
	Type           string
	SourceErr      error
	HttpStatusCode int
}

var _ error = &BeaconError{}

func (e *BeaconError) Error() string {
	return fmt.Sprintf(
		"beacon request failed during '%s' stage with error type '%s', httpStatus: '%d'; original err: %v",
		e.Stage, e.Type, e.HttpStatusCode, e.SourceErr,
	)
}

// Is method is required by errors.Is() to properly distinguish between
// different types -vs- same pointer to the same type.
// See: https://go.dev/doc/faq#nil_error
func (e *BeaconError) Is(other error) bool {
	var err *BeaconError
	return errors.As(other, &err) && err != nil
}

func (e *BeaconError) Unwrap() error {
	return e.SourceErr
}
