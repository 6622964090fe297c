// Package ginform adapts mpstream.Reader / mpstream.SpillReader to
// *gin.Context.
package ginform

import (
	"mime"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hatsuno-dev/mpstream"
)

// NewReader derives the multipart boundary from c's Content-Type
// header and returns a Reader over the request body.
func NewReader(c *gin.Context, opts ...mpstream.ReaderOption) (*mpstream.Reader, error) {
	boundary, err := boundaryFromContext(c)
	if err != nil {
		return nil, err
	}
	return mpstream.NewReader(c.Request.Body, boundary, opts...), nil
}

// NewSpillReader is NewReader's spill-to-disk counterpart.
func NewSpillReader(c *gin.Context, opts ...mpstream.SpillReaderOption) (*mpstream.SpillReader, error) {
	boundary, err := boundaryFromContext(c)
	if err != nil {
		return nil, err
	}
	return mpstream.NewSpillReader(c.Request.Body, boundary, opts...), nil
}

func boundaryFromContext(c *gin.Context) (string, error) {
	contentType := c.GetHeader("Content-Type")
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
