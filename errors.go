package mpstream

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyStream is returned when the input ends before any byte is
	// read, or before the opening boundary is found in an otherwise
	// empty stream.
	ErrEmptyStream = errors.New("mpstream: empty multipart stream")
	// ErrMalformedStart is returned when the input ends while a prelude
	// is still being scanned for the opening boundary.
	ErrMalformedStart = errors.New("mpstream: input ended before opening boundary")
	// ErrPartialBoundary is returned when the input ends in the middle
	// of a delimiter match: a header block that never reached its
	// closing CRLFCRLF, or the terminal boundary check that never saw
	// its final bytes.
	ErrPartialBoundary = errors.New("mpstream: input ended mid-delimiter")
	// ErrUnterminatedPart is returned when a part's body is followed by
	// end of stream without a closing boundary.
	ErrUnterminatedPart = errors.New("mpstream: part body has no closing boundary")
	// ErrPartsLimitExceeded is returned by SpillReader.NextPart, when
	// FailOnLimit is set, on the call after MaxParts parts have been
	// returned. The check is made before the input is examined, so it
	// is returned even if the stream holds no further part.
	ErrPartsLimitExceeded = errors.New("mpstream: too many parts")
	// ErrMalformedHeaderLine is returned in strict mode (WithStrictHeaders)
	// when a header line has no ':' separator.
	ErrMalformedHeaderLine = errors.New("mpstream: header line missing ':'")
)

// HeaderTooLargeError is returned when a header block exceeds the
// configured header limit. It carries the limit so callers can include
// it in a diagnostic without reaching back into parser configuration.
type HeaderTooLargeError struct {
	Limit int64
}

func (e *HeaderTooLargeError) Error() string {
	return fmt.Sprintf("mpstream: header block exceeds %d byte limit", e.Limit)
}
