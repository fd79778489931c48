package scan

import "errors"

var (
	// ErrMalformedLine is returned for a text line that is not a valve record.
	ErrMalformedLine = errors.New("scan: malformed valve line")

	// ErrBadFlowRate is returned when a flow rate is not an integer.
	ErrBadFlowRate = errors.New("scan: bad flow rate")

	// ErrUnknownFormat is returned for a format name or file extension
	// that is not supported.
	ErrUnknownFormat = errors.New("scan: unknown format")
)
