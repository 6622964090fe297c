package mpstream

import "io"

// Part is one (headers, body) entity inside a multipart message. Body
// is a single-consumption byte sequence. For a Reader-produced part it
// is lazy and read straight from the shared input, so any bytes left
// unread are discarded when the Reader is asked for the next part; a
// SpillReader-produced part's body is already held in memory or on
// disk and stays readable after later parts are produced.
type Part struct {
	Header Header
	body   io.Reader
	closer io.Closer
}

// Read implements io.Reader over the part's body.
func (p *Part) Read(b []byte) (int, error) {
	return p.body.Read(b)
}

// Close releases any resources backing the body (a spilled temp file,
// for SpillReader-produced parts). It is always safe to call, and a
// no-op for parts whose body never left memory.
func (p *Part) Close() error {
	if p.closer == nil {
		return nil
	}
	return p.closer.Close()
}

// Discard reads the body to completion without retaining its bytes,
// then calls Close. Reader.NextPart already discards whatever of the
// previous part's body was left unread, so for Reader-produced parts
// this only makes the skip explicit; for SpillReader-produced parts the
// Close releases any spill file.
func (p *Part) Discard() error {
	_, err := io.Copy(io.Discard, p)
	if closeErr := p.Close(); err == nil {
		err = closeErr
	}
	return err
}

// Multipart is the result of collecting an entire stream's parts with
// Reader.Parse / SpillReader.Parse.
type Multipart struct {
	parts    []*Part
	boundary string
}

// Parts returns every part collected from the stream, in input order.
func (m *Multipart) Parts() []*Part {
	return m.parts
}

// Boundary returns the multipart boundary string the message was
// parsed with.
func (m *Multipart) Boundary() string {
	return m.boundary
}
