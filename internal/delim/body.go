package delim

import (
	"bytes"
	"io"
)

// BodyReader is a lazy io.Reader over one part's body: it drives the
// shared cursor and a scanner for the inter-part delimiter on demand,
// one Read call at a time, so a part's body is never buffered in full.
// Reaching the delimiter ends the reader with io.EOF and pushes the
// delimiter's tail back onto the cursor for whatever reads next (the
// following part's headers, or the terminal-boundary check). Reaching
// the end of the underlying stream without ever finding the delimiter
// is reported as ErrDelimiterNotFound, which callers in this module's
// public API surface as ErrUnterminatedPart.
type BodyReader struct {
	cur     *Cursor
	sc      *scanner
	pending bytes.Buffer
	matched bool
	failed  bool
}

// NewBodyReader returns a BodyReader scanning for delimBytes starting
// from the cursor's current position. Only one BodyReader for a given
// cursor may be in use at a time.
func NewBodyReader(cur *Cursor, delimBytes []byte) *BodyReader {
	return &BodyReader{cur: cur, sc: newScanner(delimBytes)}
}

func (b *BodyReader) Read(p []byte) (int, error) {
	for b.pending.Len() == 0 && !b.matched && !b.failed {
		chunk, err := b.cur.Next()
		if err != nil {
			if err == io.EOF {
				b.failed = true
				break
			}
			return 0, err
		}

		matched, tail := b.sc.feed(chunk, &b.pending)
		if matched {
			b.cur.Unread(tail)
			b.matched = true
		}
	}

	if b.pending.Len() > 0 {
		return b.pending.Read(p)
	}
	if b.matched {
		return 0, io.EOF
	}
	return 0, ErrDelimiterNotFound
}

// Matched reports whether the delimiter has been found (as opposed to
// the body having ended because the underlying stream ran out).
// Meaningful only after Read has returned io.EOF or ErrDelimiterNotFound.
func (b *BodyReader) Matched() bool {
	return b.matched
}

// Discard drains the body without retaining its bytes: a consumer that
// does not read a part's body to completion still causes the
// underlying cursor to advance past it before the next part is
// produced.
func (b *BodyReader) Discard() error {
	_, err := io.Copy(io.Discard, b)
	return err
}
