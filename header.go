package mpstream

import (
	"bytes"
	"strings"
	"unicode/utf8"
)

// HeaderField is one name/value pair from a part's header block.
// Names are stored with case preserved; lookups via Header.Get are
// case-insensitive, matching HTTP header conventions.
type HeaderField struct {
	Name  string
	Value string
}

// Header is the ordered sequence of header fields belonging to a Part.
// Duplicates are permitted and preserved in input order; this module
// does not interpret header values (Content-Disposition parsing is
// left to the caller) beyond the name/value split.
type Header []HeaderField

// Get returns the first value associated with name, case-insensitively,
// or "" if there is none.
func (h Header) Get(name string) string {
	for _, f := range h {
		if strings.EqualFold(f.Name, name) {
			return f.Value
		}
	}
	return ""
}

// Values returns every value associated with name, case-insensitively,
// in input order.
func (h Header) Values(name string) []string {
	var vs []string
	for _, f := range h {
		if strings.EqualFold(f.Name, name) {
			vs = append(vs, f.Value)
		}
	}
	return vs
}

// decodeHeaders decodes a header block: block is the raw bytes of a
// header block already isolated by ReadHeaderBlock (so it is known to
// end at, but not contain, the blank line that terminates it). Each
// line is split bytewise at the first ':' before anything is UTF-8
// decoded, so a non-UTF-8 header value is never mangled by a
// decode-then-fold over byte fragments. Lines without a ':' are
// dropped silently unless strict is set.
func decodeHeaders(block []byte, strict bool) (Header, error) {
	if len(block) == 0 {
		return nil, nil
	}

	var fields Header
	for len(block) > 0 {
		line, rest, _ := bytes.Cut(block, []byte("\r\n"))
		block = rest

		if len(line) == 0 {
			continue
		}

		name, value, ok := bytes.Cut(line, []byte(":"))
		if !ok {
			if strict {
				return nil, ErrMalformedHeaderLine
			}
			continue
		}

		if !utf8.Valid(name) || !utf8.Valid(value) {
			if strict {
				return nil, ErrMalformedHeaderLine
			}
			continue
		}

		fields = append(fields, HeaderField{
			Name:  string(name),
			Value: strings.TrimSpace(string(value)),
		})
	}

	return fields, nil
}
