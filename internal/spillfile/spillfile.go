// Package spillfile implements the temporary-file collaborator the
// spill-to-disk reader depends on, narrowed to exactly the operations
// it needs: create a file lazily, write to it, and delete it.
package spillfile

import (
	"io"
	"os"
)

// File is the subset of *os.File the spill driver writes through.
type File interface {
	io.Writer
	io.Closer
	Name() string
}

// Creator creates a uniquely named, empty temporary file. It is an
// interface (rather than a direct os.CreateTemp call) so the
// delete-on-any-error-after-creation behavior can be exercised against
// a filesystem that fails, without touching a real disk.
type Creator interface {
	Create(dir, pattern string) (File, error)
}

// OSCreator creates real files via os.CreateTemp.
type OSCreator struct{}

// Create implements Creator.
func (OSCreator) Create(dir, pattern string) (File, error) {
	return os.CreateTemp(dir, pattern)
}

// Spill manages one part body's backing temp file: created lazily on
// first write, written to as bytes accumulate, and deleted exactly
// once regardless of whether the part finished normally or an error
// aborted it.
type Spill struct {
	creator Creator
	dir     string
	pattern string
	file    File
	path    string
}

// New returns a Spill that will create its file (if ever needed) under
// dir using creator.
func New(creator Creator, dir, pattern string) *Spill {
	return &Spill{creator: creator, dir: dir, pattern: pattern}
}

// Write appends to the backing file, creating it on the first call.
func (s *Spill) Write(p []byte) (int, error) {
	if s.file == nil {
		f, err := s.creator.Create(s.dir, s.pattern)
		if err != nil {
			return 0, err
		}
		s.file = f
		s.path = f.Name()
	}
	return s.file.Write(p)
}

// Active reports whether a backing file has been created.
func (s *Spill) Active() bool {
	return s.file != nil
}

// Path returns the backing file's path, or "" if none was created or
// Remove has already been called.
func (s *Spill) Path() string {
	return s.path
}

// Close closes the backing file handle, if any, without deleting it.
func (s *Spill) Close() error {
	if s.file == nil {
		return nil
	}
	return s.file.Close()
}

// Remove deletes the backing file, if any. It is safe to call more
// than once or on a Spill that never created a file.
func (s *Spill) Remove() error {
	if s.path == "" {
		return nil
	}
	path := s.path
	s.path = ""
	err := os.Remove(path)
	if os.IsNotExist(err) {
		return nil
	}
	return err
}
