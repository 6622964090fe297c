package spillfile_test

import (
	"errors"
	"os"
	"testing"

	"go.uber.org/mock/gomock"

	"github.com/hatsuno-dev/mpstream/internal/spillfile"
)

var errTest = errors.New("test error")

func TestSpill_WriteCreatesFileLazily(t *testing.T) {
	t.Parallel()

	s := spillfile.New(spillfile.OSCreator{}, "", "spillfile-test-")
	if s.Active() {
		t.Fatalf("expected no backing file before first write")
	}

	if _, err := s.Write([]byte("hello")); err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	if !s.Active() {
		t.Fatalf("expected a backing file after first write")
	}
	path := s.Path()
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("expected backing file to exist: %v", err)
	}

	if err := s.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}
	if err := s.Remove(); err != nil {
		t.Fatalf("Remove() error = %v", err)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Fatalf("expected backing file to be gone, stat err = %v", err)
	}

	// Remove is idempotent.
	if err := s.Remove(); err != nil {
		t.Fatalf("second Remove() error = %v", err)
	}
}

func TestSpill_CreateFailurePropagates(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	creator := NewMockCreator(ctrl)
	creator.EXPECT().Create("", "spillfile-test-").Return(nil, errTest)

	s := spillfile.New(creator, "", "spillfile-test-")
	_, err := s.Write([]byte("hello"))
	if !errors.Is(err, errTest) {
		t.Fatalf("Write() error = %v, want %v", err, errTest)
	}
	if s.Active() {
		t.Fatalf("expected no backing file after a failed create")
	}
}
