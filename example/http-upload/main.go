// Command http-upload is a worked example of SpillReader over a real
// net/http server.
package main

import (
	"errors"
	"io"
	"log/slog"
	"mime"
	"net/http"
	"os"
	"path/filepath"

	"github.com/hatsuno-dev/mpstream"
	httpform "github.com/hatsuno-dev/mpstream/http"
)

const iconDir = "icons"

func main() {
	if err := os.MkdirAll(iconDir, 0o755); err != nil {
		panic(err)
	}

	logger := slog.Default()
	mux := http.NewServeMux()

	mux.HandleFunc("/submit", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}

		reader, err := httpform.NewSpillReader(r, mpstream.WithLogger(logger))
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		var id string
		for {
			part, err := reader.NextPart()
			if err != nil {
				if errors.Is(err, io.EOF) {
					break
				}
				http.Error(w, err.Error(), http.StatusBadRequest)
				return
			}

			disposition := part.Header.Get("Content-Disposition")
			if disposition == "" {
				part.Discard()
				continue
			}

			name := fieldName(disposition)
			switch name {
			case "id":
				idBytes, err := io.ReadAll(part)
				part.Close()
				if err != nil {
					http.Error(w, "failed to read id", http.StatusBadRequest)
					return
				}
				id = string(idBytes)
			case "icon":
				if id == "" {
					part.Discard()
					http.Error(w, "id must precede icon", http.StatusBadRequest)
					return
				}
				if err := saveIcon(id, part); err != nil {
					part.Close()
					http.Error(w, err.Error(), http.StatusInternalServerError)
					return
				}
				part.Close()
			default:
				part.Discard()
			}
		}

		w.WriteHeader(http.StatusCreated)
	})
	mux.Handle("/icons/", http.StripPrefix("/icons/", http.FileServer(http.Dir(iconDir))))

	if err := http.ListenAndServe(":8080", mux); err != nil {
		panic(err)
	}
}

func saveIcon(id string, r io.Reader) error {
	iconPath := filepath.Join(iconDir, id)

	if _, err := os.Stat(iconPath); err == nil {
		return errors.New("user already exists")
	} else if !os.IsNotExist(err) {
		return err
	}

	f, err := os.Create(iconPath)
	if err != nil {
		return err
	}
	defer f.Close()

	_, err = io.Copy(f, r)
	return err
}

// fieldName extracts the "name" parameter from a Content-Disposition
// value. The core parser doesn't interpret Content-Disposition itself;
// this is the surrounding application's job, shown here the way a real
// caller would do it with the standard library.
func fieldName(contentDisposition string) string {
	_, params, err := mime.ParseMediaType(contentDisposition)
	if err != nil {
		return ""
	}
	return params["name"]
}
