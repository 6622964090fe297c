package delim

import "io"

// SkipPrelude discards bytes up to and including the first occurrence
// of delimBytes (the opening boundary), reusing the same scanner the
// body and header splitters use but discarding rather than
// accumulating the bytes it passes over. It reports whether any byte
// was read at all, so the caller can distinguish a wholly empty stream
// (ErrEmptyStream) from one that had some prelude but never reached the
// opening boundary (ErrMalformedStart).
func SkipPrelude(cur *Cursor, delimBytes []byte) (sawAnyByte bool, err error) {
	sc := newScanner(delimBytes)
	for {
		chunk, err := cur.Next()
		if err != nil {
			if err == io.EOF {
				return cur.HasSeenByte(), ErrDelimiterNotFound
			}
			return cur.HasSeenByte(), err
		}

		matched, tail := sc.feed(chunk, nil)
		if matched {
			cur.Unread(tail)
			return true, nil
		}
	}
}
