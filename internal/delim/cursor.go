// Package delim implements the byte-level delimiter scanning that the
// multipart parser is built on: an incremental prefix matcher (the
// boundary scanner), and the two ways of splitting a stream on it (an
// unbounded lazy split for part bodies, and a bounded eager split for
// header blocks).
package delim

import "io"

// readChunkSize is the size of the buffer used to pull bytes from the
// underlying io.Reader. It has no bearing on correctness (the scanner
// tolerates any chunking, including one byte at a time), only on how
// often the underlying Read is called.
const readChunkSize = 32 * 1024

// Cursor is the single mutable byte source a part stream driver is
// built on. It pulls chunks from an io.Reader on demand and lets a
// caller push bytes back onto the front of the stream, which is how a
// delimiter's post-match tail is handed from one scan to the next
// without copying the rest of the stream.
type Cursor struct {
	r          io.Reader
	pushedBack []byte
	eof        bool
	sawByte    bool
}

// NewCursor wraps r for incremental delimiter scanning.
func NewCursor(r io.Reader) *Cursor {
	return &Cursor{r: r}
}

// Next returns the next chunk of input. It returns io.EOF once the
// underlying reader and any pushed-back bytes are exhausted.
func (c *Cursor) Next() ([]byte, error) {
	if len(c.pushedBack) > 0 {
		b := c.pushedBack
		c.pushedBack = nil
		c.sawByte = true
		return b, nil
	}
	if c.eof {
		return nil, io.EOF
	}

	buf := make([]byte, readChunkSize)
	for {
		n, err := c.r.Read(buf)
		if n > 0 {
			c.sawByte = true
			if err != nil {
				c.eof = true
			}
			return buf[:n], nil
		}
		if err != nil {
			c.eof = true
			return nil, err
		}
		// A zero-length chunk with no error is ignored rather than
		// treated as a spurious end of stream.
	}
}

// Unread pushes bytes back onto the front of the stream, ahead of any
// bytes already pushed back (peekTwo relies on this when it returns
// the bytes after its two-byte peek and the caller then returns the
// peek itself). The pushed-back bytes come back as one chunk.
func (c *Cursor) Unread(b []byte) {
	if len(b) == 0 {
		return
	}
	c.pushedBack = append(b, c.pushedBack...)
}

// HasSeenByte reports whether any byte has ever been pulled from the
// underlying reader, distinguishing a wholly empty stream from one
// that ended partway through the prelude.
func (c *Cursor) HasSeenByte() bool {
	return c.sawByte
}

// Drain discards the remainder of the stream, used once the terminal
// "--" closing boundary has been found and any trailing epilogue bytes
// must be consumed.
func (c *Cursor) Drain() error {
	for {
		_, err := c.Next()
		if err != nil {
			if err == io.EOF {
				return nil
			}
			return err
		}
	}
}
