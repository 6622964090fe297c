// Package echoform adapts mpstream.Reader / mpstream.SpillReader to
// echo.Context.
package echoform

import (
	"mime"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/hatsuno-dev/mpstream"
)

// NewReader derives the multipart boundary from c's Content-Type
// header and returns a Reader over the request body.
func NewReader(c echo.Context, opts ...mpstream.ReaderOption) (*mpstream.Reader, error) {
	boundary, err := boundaryFromContext(c)
	if err != nil {
		return nil, err
	}
	return mpstream.NewReader(c.Request().Body, boundary, opts...), nil
}

// NewSpillReader is NewReader's spill-to-disk counterpart.
func NewSpillReader(c echo.Context, opts ...mpstream.SpillReaderOption) (*mpstream.SpillReader, error) {
	boundary, err := boundaryFromContext(c)
	if err != nil {
		return nil, err
	}
	return mpstream.NewSpillReader(c.Request().Body, boundary, opts...), nil
}

func boundaryFromContext(c echo.Context) (string, error) {
	contentType := c.Request().Header.Get("Content-Type")
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
