package mpstream

import (
	"bytes"
	"errors"
	"io"
	"log/slog"
	"os"

	"github.com/hatsuno-dev/mpstream/internal/delim"
	"github.com/hatsuno-dev/mpstream/internal/spillfile"
)

const (
	defaultMaxBeforeWrite DataSize = 50 * MB // 52,428,800 bytes
	defaultMaxParts                = 20
)

// SpillReaderOption configures a SpillReader.
type SpillReaderOption func(*spillReaderConfig)

type spillReaderConfig struct {
	headerLimit    int64
	strict         bool
	maxBeforeWrite DataSize
	maxParts       int
	failOnLimit    bool
	tempDir        string
	creator        spillfile.Creator
	logger         *slog.Logger
}

// WithSpillHeaderLimit overrides the default 1024-byte header block limit.
func WithSpillHeaderLimit(n int64) SpillReaderOption {
	return func(c *spillReaderConfig) { c.headerLimit = n }
}

// WithSpillStrictHeaders mirrors WithStrictHeaders for SpillReader.
func WithSpillStrictHeaders() SpillReaderOption {
	return func(c *spillReaderConfig) { c.strict = true }
}

// WithMaxBeforeWrite overrides the default 50MiB per-part in-memory
// threshold before a part's body spills to a temp file.
func WithMaxBeforeWrite(n DataSize) SpillReaderOption {
	return func(c *spillReaderConfig) { c.maxBeforeWrite = n }
}

// WithMaxParts overrides the default ceiling of 20 parts.
func WithMaxParts(n int) SpillReaderOption {
	return func(c *spillReaderConfig) { c.maxParts = n }
}

// WithFailOnLimit makes asking for a part after MaxParts parts have
// been returned an error (ErrPartsLimitExceeded) instead of the default
// graceful truncation.
func WithFailOnLimit() SpillReaderOption {
	return func(c *spillReaderConfig) { c.failOnLimit = true }
}

// WithTempDir sets the directory spill files are created in (the
// default empty string defers to os.CreateTemp's own default).
func WithTempDir(dir string) SpillReaderOption {
	return func(c *spillReaderConfig) { c.tempDir = dir }
}

// WithLogger sets the logger spill-file cleanup failures are reported
// to. Nil, the default, means such failures are swallowed entirely,
// so callers who don't want a logging dependency don't get one.
func WithLogger(logger *slog.Logger) SpillReaderOption {
	return func(c *spillReaderConfig) { c.logger = logger }
}

// withCreator overrides the temp-file collaborator; unexported because
// it exists for this module's own tests, not for callers.
func withCreator(creator spillfile.Creator) SpillReaderOption {
	return func(c *spillReaderConfig) { c.creator = creator }
}

// SpillReader parses a multipart stream like Reader, but any part body
// that grows past MaxBeforeWrite is transparently redirected to a
// temporary file instead of accumulating in memory, and the number of
// parts is bounded by MaxParts.
type SpillReader struct {
	cur         *delim.Cursor
	b           boundary
	boundaryStr string
	headerLimit int64
	strict      bool

	maxBeforeWrite DataSize
	maxParts       int
	failOnLimit    bool
	tempDir        string
	creator        spillfile.Creator
	logger         *slog.Logger

	state        readerState
	partsEmitted int
	spills       *spillRegistry
}

// NewSpillReader returns a SpillReader parsing r with the given boundary.
func NewSpillReader(r io.Reader, boundary string, opts ...SpillReaderOption) *SpillReader {
	c := spillReaderConfig{
		headerLimit:    defaultHeaderLimit,
		maxBeforeWrite: defaultMaxBeforeWrite,
		maxParts:       defaultMaxParts,
		creator:        spillfile.OSCreator{},
	}
	for _, opt := range opts {
		opt(&c)
	}

	return &SpillReader{
		cur:            delim.NewCursor(r),
		b:              newBoundary(boundary),
		boundaryStr:    boundary,
		headerLimit:    c.headerLimit,
		strict:         c.strict,
		maxBeforeWrite: c.maxBeforeWrite,
		maxParts:       c.maxParts,
		failOnLimit:    c.failOnLimit,
		tempDir:        c.tempDir,
		creator:        c.creator,
		logger:         c.logger,
		spills:         newSpillRegistry(),
	}
}

// NextPart returns the next part, fully resolved: its body is already
// wholly in memory or wholly spilled to disk, so unlike Reader,
// reading it does not pull further from the underlying stream. It
// returns io.EOF once the terminal boundary is consumed, or once
// MaxParts is reached with FailOnLimit unset. In the latter case the
// remainder of the input is deliberately left undrained; the caller
// owns the connection from there.
func (p *SpillReader) NextPart() (*Part, error) {
	if p.state == stateDone {
		return nil, io.EOF
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
	} else if p.partsEmitted >= p.maxParts {
		p.state = stateDone
		if p.failOnLimit {
			return nil, ErrPartsLimitExceeded
		}
		return nil, io.EOF
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

	body, closer, err := p.readSpillBody()
	if err != nil {
		p.state = stateDone
		return nil, err
	}
	p.partsEmitted++

	return &Part{Header: hdrs, body: body, closer: closer}, nil
}

// readSpillBody resolves one part's body: scan for the inter-part
// delimiter (reusing the same BodyReader that Reader hands straight to
// the consumer) while accumulating bytes in memory, and once
// MaxBeforeWrite is reached, redirect the accumulation to a temp file
// instead.
func (p *SpillReader) readSpillBody() (io.Reader, io.Closer, error) {
	body := delim.NewBodyReader(p.cur, p.b.inter)
	spill := spillfile.New(p.creator, p.tempDir, "mpstream-")

	var mem bytes.Buffer
	buf := make([]byte, 32*1024)
	for {
		n, err := body.Read(buf)
		if n > 0 {
			mem.Write(buf[:n])
			if int64(mem.Len()) >= int64(p.maxBeforeWrite) {
				if _, werr := spill.Write(mem.Bytes()); werr != nil {
					p.abortSpill(spill)
					return nil, nil, werr
				}
				mem.Reset()
			}
		}
		if err != nil {
			if err == io.EOF {
				break
			}
			p.abortSpill(spill)
			if errors.Is(err, delim.ErrDelimiterNotFound) {
				return nil, nil, ErrUnterminatedPart
			}
			return nil, nil, err
		}
	}

	if !spill.Active() {
		return bytes.NewReader(mem.Bytes()), nil, nil
	}

	if mem.Len() > 0 {
		if _, err := spill.Write(mem.Bytes()); err != nil {
			p.abortSpill(spill)
			return nil, nil, err
		}
	}
	if err := spill.Close(); err != nil {
		p.abortSpill(spill)
		return nil, nil, err
	}

	path := spill.Path()
	f, err := os.Open(path)
	if err != nil {
		p.abortSpill(spill)
		return nil, nil, err
	}
	p.spills.add(path)

	return f, &spillCloser{file: f, path: path, registry: p.spills, logger: p.logger}, nil
}

func (p *SpillReader) abortSpill(spill *spillfile.Spill) {
	if !spill.Active() {
		return
	}
	spill.Close()
	path := spill.Path()
	if err := spill.Remove(); err != nil {
		logCleanupError(p.logger, path, err)
	}
}

// Close deletes any spill files created for parts the caller never
// closed, guaranteeing every spill file is eventually deleted exactly
// once even if a caller abandons the stream midway.
func (p *SpillReader) Close() error {
	p.spills.closeAll(p.logger)
	return nil
}

// Parse collects every part into a Multipart. Unlike Reader.Parse,
// each Part's body here is already fully materialized (in memory or on
// disk) by the time it is returned, so it remains readable afterward.
// Call Part.Close on each once done with it to release any spill file.
func (p *SpillReader) Parse() (*Multipart, error) {
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

type spillCloser struct {
	file     *os.File
	path     string
	registry *spillRegistry
	logger   *slog.Logger
}

func (c *spillCloser) Close() error {
	err := c.file.Close()
	removeErr := os.Remove(c.path)
	c.registry.remove(c.path)
	if removeErr != nil && !os.IsNotExist(removeErr) {
		logCleanupError(c.logger, c.path, removeErr)
	}
	return err
}

// spillRegistry tracks spill files created by a SpillReader so Close
// can clean up any the caller never did.
type spillRegistry struct {
	paths map[string]struct{}
}

func newSpillRegistry() *spillRegistry {
	return &spillRegistry{paths: make(map[string]struct{})}
}

func (r *spillRegistry) add(path string) {
	r.paths[path] = struct{}{}
}

func (r *spillRegistry) remove(path string) {
	delete(r.paths, path)
}

func (r *spillRegistry) closeAll(logger *slog.Logger) {
	for path := range r.paths {
		if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
			logCleanupError(logger, path, err)
		}
	}
	r.paths = make(map[string]struct{})
}
