package delim

import (
	"bytes"
	"testing"
)

func TestScanner_Feed(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name      string
		delim     string
		chunks    []string
		wantOut   string
		wantTail  string
		wantMatch bool
	}{
		{
			name:      "no delimiter in a single chunk",
			delim:     "--B",
			chunks:    []string{"hello world"},
			wantOut:   "hello world",
			wantMatch: false,
		},
		{
			name:      "delimiter entirely within one chunk",
			delim:     "--B",
			chunks:    []string{"hello--Bworld"},
			wantOut:   "hello",
			wantTail:  "world",
			wantMatch: true,
		},
		{
			name:      "delimiter straddles two chunks",
			delim:     "--B",
			chunks:    []string{"hello-", "-Bworld"},
			wantOut:   "hello",
			wantTail:  "world",
			wantMatch: true,
		},
		{
			name:      "delimiter straddles every chunk boundary",
			delim:     "--B",
			chunks:    []string{"hello", "-", "-", "B", "world"},
			wantOut:   "hello",
			wantTail:  "", // match completes exactly at chunk end; "world" is a later, unconsumed chunk
			wantMatch: true,
		},
		{
			name:      "false positive prefix is flushed as literal",
			delim:     "--B",
			chunks:    []string{"a-", "-Xb--Bc"},
			wantOut:   "a--Xb",
			wantTail:  "c",
			wantMatch: true,
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			sc := newScanner([]byte(tc.delim))
			var out bytes.Buffer
			var gotMatch bool
			var gotTail []byte

			for _, chunk := range tc.chunks {
				matched, tail := sc.feed([]byte(chunk), &out)
				if matched {
					gotMatch = true
					gotTail = append(gotTail, tail...)
					break
				}
			}

			if gotMatch != tc.wantMatch {
				t.Fatalf("matched = %v, want %v", gotMatch, tc.wantMatch)
			}
			if out.String() != tc.wantOut {
				t.Fatalf("out = %q, want %q", out.String(), tc.wantOut)
			}
			if string(gotTail) != tc.wantTail {
				t.Fatalf("tail = %q, want %q", gotTail, tc.wantTail)
			}
		})
	}
}

func TestScanner_PendingAtPartialMatch(t *testing.T) {
	t.Parallel()

	sc := newScanner([]byte("--B"))
	var out bytes.Buffer
	matched, _ := sc.feed([]byte("hello--"), &out)
	if matched {
		t.Fatalf("expected no match yet")
	}
	if got, want := sc.pending(), 2; got != want {
		t.Fatalf("pending() = %d, want %d", got, want)
	}
	if out.String() != "hello" {
		t.Fatalf("out = %q, want %q", out.String(), "hello")
	}
}

func TestScanner_DiscardsWhenOutIsNil(t *testing.T) {
	t.Parallel()

	sc := newScanner([]byte("--B"))
	matched, tail := sc.feed([]byte("prelude text--Bafter"), nil)
	if !matched {
		t.Fatalf("expected a match")
	}
	if string(tail) != "after" {
		t.Fatalf("tail = %q, want %q", tail, "after")
	}
}
