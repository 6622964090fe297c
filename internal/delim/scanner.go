package delim

import "bytes"

// scanner matches a fixed delimiter against a byte stream that may be
// delivered in arbitrarily small chunks, keeping just enough state
// between calls to recognize a delimiter that straddles a chunk
// boundary.
//
// k is the number of leading delimiter bytes matched by the current
// tail of the input; carry holds those matched bytes verbatim, so
// len(carry) == k always.
type scanner struct {
	delim []byte
	k     int
	carry []byte
}

func newScanner(delim []byte) *scanner {
	return &scanner{delim: delim, carry: make([]byte, 0, len(delim))}
}

// reset clears any in-progress match, for reuse across a delimiter
// search that starts fresh. The readers in this package do not call
// it: each BodyReader, header block read and prelude skip builds its
// own scanner.
func (s *scanner) reset() {
	s.k = 0
	s.carry = s.carry[:0]
}

// pending returns the number of bytes currently held as an unresolved
// candidate match. A non-zero value at end of stream means the
// delimiter was only partially seen.
func (s *scanner) pending() int {
	return s.k
}

// feed scans chunk, writing every byte that is confirmed not to be
// part of the delimiter to out (which may be nil to discard them, used
// for the prelude scan). It returns whether the delimiter was found to
// completion within this chunk, and if so, the remainder of chunk that
// follows the match (the caller is expected to push this back onto the
// cursor, or treat it as already-available input).
//
// A continuing match only grows carry; any failed candidate match
// flushes carry to out before carry is restarted or cleared, so every
// input byte ends up in exactly one of out or carry.
func (s *scanner) feed(chunk []byte, out *bytes.Buffer) (matched bool, tail []byte) {
	delim := s.delim
	for i := 0; i < len(chunk); i++ {
		b := chunk[i]
		switch {
		case s.k < len(delim) && b == delim[s.k]:
			s.carry = append(s.carry, b)
			s.k++
		case b == delim[0]:
			flush(out, s.carry)
			s.carry = append(s.carry[:0], b)
			s.k = 1
		default:
			flush(out, s.carry)
			s.carry = s.carry[:0]
			s.k = 0
			if out != nil {
				out.WriteByte(b)
			}
		}

		if s.k == len(delim) {
			tail = chunk[i+1:]
			s.carry = s.carry[:0]
			s.k = 0
			return true, tail
		}
	}
	return false, nil
}

func flush(out *bytes.Buffer, carry []byte) {
	if out != nil && len(carry) > 0 {
		out.Write(carry)
	}
}
