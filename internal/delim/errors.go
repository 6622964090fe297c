package delim

import "errors"

// ErrDelimiterNotFound is returned when the underlying stream ends
// before the delimiter being searched for was found. Callers map this
// to whichever public sentinel fits the context (a header block ending
// early is PartialBoundary; a part body ending early is
// UnterminatedPart).
var ErrDelimiterNotFound = errors.New("delim: delimiter not found before end of stream")

// ErrLimitExceeded is returned by ReadHeaderBlock when the configured
// byte limit is reached before HDR_END is found.
var ErrLimitExceeded = errors.New("delim: limit exceeded while searching for delimiter")
