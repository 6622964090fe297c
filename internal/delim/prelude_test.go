package delim

import (
	"errors"
	"strings"
	"testing"
)

func TestSkipPrelude_DiscardsUpToStart(t *testing.T) {
	t.Parallel()

	cur := NewCursor(strings.NewReader("preamble the client sent--Bafter"))

	sawByte, err := SkipPrelude(cur, []byte("--B"))
	if err != nil {
		t.Fatalf("SkipPrelude() error = %v", err)
	}
	if !sawByte {
		t.Fatalf("expected sawByte == true")
	}

	rest, err := cur.Next()
	if err != nil {
		t.Fatalf("Next() error = %v", err)
	}
	if string(rest) != "after" {
		t.Fatalf("rest = %q, want %q", rest, "after")
	}
}

func TestSkipPrelude_NoPreludeAtAll(t *testing.T) {
	t.Parallel()

	cur := NewCursor(strings.NewReader("--Bafter"))

	sawByte, err := SkipPrelude(cur, []byte("--B"))
	if err != nil {
		t.Fatalf("SkipPrelude() error = %v", err)
	}
	if !sawByte {
		t.Fatalf("expected sawByte == true")
	}

	rest, err := cur.Next()
	if err != nil {
		t.Fatalf("Next() error = %v", err)
	}
	if string(rest) != "after" {
		t.Fatalf("rest = %q, want %q", rest, "after")
	}
}

func TestSkipPrelude_EmptyStreamNeverSawByte(t *testing.T) {
	t.Parallel()

	cur := NewCursor(strings.NewReader(""))

	sawByte, err := SkipPrelude(cur, []byte("--B"))
	if !errors.Is(err, ErrDelimiterNotFound) {
		t.Fatalf("SkipPrelude() error = %v, want %v", err, ErrDelimiterNotFound)
	}
	if sawByte {
		t.Fatalf("expected sawByte == false on a wholly empty stream")
	}
}

func TestSkipPrelude_MalformedStartSawBytesButNeverMatched(t *testing.T) {
	t.Parallel()

	cur := NewCursor(strings.NewReader("some bytes that never contain the boundary"))

	sawByte, err := SkipPrelude(cur, []byte("--B"))
	if !errors.Is(err, ErrDelimiterNotFound) {
		t.Fatalf("SkipPrelude() error = %v, want %v", err, ErrDelimiterNotFound)
	}
	if !sawByte {
		t.Fatalf("expected sawByte == true when bytes were read but the boundary never matched")
	}
}
