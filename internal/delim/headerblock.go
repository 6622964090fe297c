package delim

import (
	"bytes"
	"io"
)

// ReadHeaderBlock reads up to the next occurrence of delim (the header
// block terminator), enforcing limit bytes scanned in the process, and
// first checks whether the stream is instead positioned at the
// terminal "--" that closes the whole multipart message.
//
// Header blocks are bounded by limit (1024 bytes by default), so
// unlike the part body this is read eagerly into memory rather than
// exposed as a lazy reader: staying unbuffered matters for a
// potentially huge part body, not a few-hundred-byte header block.
func ReadHeaderBlock(cur *Cursor, delimBytes []byte, limit int64) (block []byte, terminal bool, err error) {
	peek, err := peekTwo(cur)
	if err != nil {
		return nil, false, err
	}
	if len(peek) == 2 && peek[0] == '-' && peek[1] == '-' {
		if err := cur.Drain(); err != nil {
			return nil, false, err
		}
		return nil, true, nil
	}
	cur.Unread(peek)

	sc := newScanner(delimBytes)
	var buf bytes.Buffer
	var total int64
	for {
		chunk, err := cur.Next()
		if err != nil {
			if err == io.EOF {
				return nil, false, ErrDelimiterNotFound
			}
			return nil, false, err
		}

		matched, tail := sc.feed(chunk, &buf)
		consumed := len(chunk)
		if matched {
			consumed -= len(tail)
		}
		total += int64(consumed)
		if total > limit {
			return nil, false, ErrLimitExceeded
		}

		if matched {
			cur.Unread(tail)
			return buf.Bytes(), false, nil
		}
	}
}

// peekTwo returns up to the first two bytes of the stream without
// consuming them past what the caller decides to keep: it is the
// caller's responsibility to cur.Unread(peek) the bytes it did not
// act on. Fewer than two bytes are returned only at end of stream.
func peekTwo(cur *Cursor) ([]byte, error) {
	var peek []byte
	for len(peek) < 2 {
		chunk, err := cur.Next()
		if err != nil {
			if err == io.EOF {
				break
			}
			return nil, err
		}
		peek = append(peek, chunk...)
	}
	if len(peek) > 2 {
		cur.Unread(peek[2:])
		peek = peek[:2]
	}
	return peek, nil
}
