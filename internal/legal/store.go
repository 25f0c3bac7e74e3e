package legal

import (
	"context"
	"errors"
	"io"
	"path"
	"strings"
	"time"
)

var (
	// ErrNotFound is returned when a document does not exist.
	ErrNotFound = errors.New("legal: document not found")

	// ErrInvalidName is returned for names that are not plain PDF file names.
	ErrInvalidName = errors.New("legal: invalid document name")
)

// ContentTypePDF is the content type of every served document.
const ContentTypePDF = "application/pdf"

// Document is an open legal document. Callers must close Body.
type Document struct {
	Name        string
	ContentType string
	Size        int64
	ModTime     time.Time
	Body        io.ReadCloser
}

// Store opens legal documents by name.
type Store interface {
	Open(ctx context.Context, name string) (*Document, error)
}

// ValidName reports whether name is a plain PDF file name.
func ValidName(name string) bool {
	if name == "" || len(name) > 255 {
		return false
	}
	if strings.ContainsAny(name, "/\\\x00") {
		return false
	}
	if name == "." || name == ".." || strings.HasPrefix(name, ".") {
		return false
	}
	return strings.EqualFold(path.Ext(name), ".pdf") && len(name) > len(".pdf")
}
