package mpstream

import (
	"errors"
	"io"

	"github.com/hatsuno-dev/mpstream/internal/delim"
)

// defaultHeaderLimit is the default number of bytes a header block may
// occupy before NextPart returns a *HeaderTooLargeError.
const defaultHeaderLimit = 1024

// ReaderOption configures a Reader. There is no config file or
// environment variable parsing; every tunable is a call parameter.
type ReaderOption func(*readerConfig)

type readerConfig struct {
	headerLimit int64
	strict      bool
}

// WithHeaderLimit overrides the default 1024-byte header block limit.
func WithHeaderLimit(n int64) ReaderOption {
	return func(c *readerConfig) { c.headerLimit = n }
}

// WithStrictHeaders turns a colon-less header line into
// ErrMalformedHeaderLine instead of silently dropping it. Opt-in so
// the default, permissive behavior is unchanged.
func WithStrictHeaders() ReaderOption {
	return func(c *readerConfig) { c.strict = true }
}

type readerState int

const (
	stateIdle readerState = iota
	stateBetween
	stateDone
)

// Reader parses a multipart stream entirely in memory, emitting each
// part's body as a lazy, directly-readable stream over the underlying
// io.Reader. See SpillReader for the spill-to-disk alternative.
type Reader struct {
	cur         *delim.Cursor
	b           boundary
	boundaryStr string
	headerLimit int64
	strict      bool
	state       readerState
	curBody     *delim.BodyReader
}

// NewReader returns a Reader that parses the multipart stream r using
// boundary (the value of the Content-Type header's "boundary"
// parameter; extracting that parameter from a request is the
// surrounding HTTP server's job, see the http/echo/gin packages).
func NewReader(r io.Reader, boundary string, opts ...ReaderOption) *Reader {
	c := readerConfig{headerLimit: defaultHeaderLimit}
	for _, opt := range opts {
		opt(&c)
	}

	return &Reader{
		cur:         delim.NewCursor(r),
		b:           newBoundary(boundary),
		boundaryStr: boundary,
		headerLimit: c.headerLimit,
		strict:      c.strict,
	}
}

// NextPart returns the next part in the stream, or io.EOF once the
// terminal boundary has been consumed. A part returned by NextPart
// must be read to completion (or discarded via Part.Discard) before
// the next call: NextPart does this automatically for whatever part it
// previously returned, discarding any bytes the caller left unread.
func (p *Reader) NextPart() (*Part, error) {
	if p.state == stateDone {
		return nil, io.EOF
	}

	if err := p.drainCurrentBody(); err != nil {
		return nil, err
	}

	if p.state == stateIdle {
		sawByte, err := delim.SkipPrelude(p.cur, p.b.start)
		if err != nil {
			p.state = stateDone
			if !sawByte {
				return nil, ErrEmptyStream
			}
			return nil, ErrMalformedStart
		}
		p.state = stateBetween
	}

	block, terminal, err := delim.ReadHeaderBlock(p.cur, p.b.hdrEnd, p.headerLimit)
	if err != nil {
		p.state = stateDone
		return nil, mapHeaderBlockErr(err, p.headerLimit)
	}
	if terminal {
		p.state = stateDone
		return nil, io.EOF
	}

	hdrs, err := decodeHeaders(block, p.strict)
	if err != nil {
		p.state = stateDone
		return nil, err
	}

	body := delim.NewBodyReader(p.cur, p.b.inter)
	p.curBody = body

	return &Part{Header: hdrs, body: &unterminatedMappingReader{br: body}}, nil
}

// unterminatedMappingReader translates the internal package's
// ErrDelimiterNotFound into the public ErrUnterminatedPart at the
// point a caller reads a part's body directly. drainCurrentBody below
// does the equivalent translation for a body the caller never read.
type unterminatedMappingReader struct {
	br *delim.BodyReader
}

func (u *unterminatedMappingReader) Read(p []byte) (int, error) {
	n, err := u.br.Read(p)
	if errors.Is(err, delim.ErrDelimiterNotFound) {
		err = ErrUnterminatedPart
	}
	return n, err
}

func (p *Reader) drainCurrentBody() error {
	if p.curBody == nil {
		return nil
	}
	body := p.curBody
	p.curBody = nil

	if err := body.Discard(); err != nil && !errors.Is(err, delim.ErrDelimiterNotFound) {
		p.state = stateDone
		return err
	}
	if !body.Matched() {
		p.state = stateDone
		return ErrUnterminatedPart
	}
	return nil
}

func mapHeaderBlockErr(err error, limit int64) error {
	switch {
	case errors.Is(err, delim.ErrLimitExceeded):
		return &HeaderTooLargeError{Limit: limit}
	case errors.Is(err, delim.ErrDelimiterNotFound):
		return ErrPartialBoundary
	default:
		return err
	}
}

// Parse collects every part into a Multipart. Because Reader keeps
// each part's body lazy and tied to the shared cursor, advancing to
// collect the next part's headers discards whatever of the previous
// part's body was left unread (see NextPart): by the time Parse
// returns, no part's body has unread content left. Parse is useful
// here for part/header inspection; read each Part's body during a loop
// built on NextPart directly if the content is needed.
func (p *Reader) Parse() (*Multipart, error) {
	var parts []*Part
	for {
		part, err := p.NextPart()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, err
		}
		parts = append(parts, part)
	}
	return &Multipart{parts: parts, boundary: p.boundaryStr}, nil
}
