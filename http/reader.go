// Package http adapts mpstream.Reader / mpstream.SpillReader to
// *http.Request: extracting the multipart boundary from a request's
// Content-Type header is left to the surrounding HTTP server rather
// than the core parser, so every real caller needs a few lines of
// glue like this.
package http

import (
	"mime"
	"net/http"

	"github.com/hatsuno-dev/mpstream"
)

// NewReader derives the multipart boundary from req's Content-Type
// header and returns a Reader over its body.
func NewReader(req *http.Request, opts ...mpstream.ReaderOption) (*mpstream.Reader, error) {
	boundary, err := boundaryFromRequest(req)
	if err != nil {
		return nil, err
	}
	return mpstream.NewReader(req.Body, boundary, opts...), nil
}

// NewSpillReader is NewReader's spill-to-disk counterpart.
func NewSpillReader(req *http.Request, opts ...mpstream.SpillReaderOption) (*mpstream.SpillReader, error) {
	boundary, err := boundaryFromRequest(req)
	if err != nil {
		return nil, err
	}
	return mpstream.NewSpillReader(req.Body, boundary, opts...), nil
}

func boundaryFromRequest(req *http.Request) (string, error) {
	contentType := req.Header.Get("Content-Type")
	d, params, err := mime.ParseMediaType(contentType)
	if err != nil || d != "multipart/form-data" {
		return "", http.ErrNotMultipart
	}

	boundary, ok := params["boundary"]
	if !ok {
		return "", http.ErrMissingBoundary
	}

	return boundary, nil
}
