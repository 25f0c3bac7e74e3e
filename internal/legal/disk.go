package legal

import (
	"context"
	"errors"
	"io/fs"
	"os"
)

// DiskStore serves documents from a directory.
type DiskStore struct {
	fsys fs.FS
}

// NewDiskStore creates a store rooted at dir.
func NewDiskStore(dir string) *DiskStore {
	return &DiskStore{fsys: os.DirFS(dir)}
}

// NewFSStore creates a store over an arbitrary file system.
func NewFSStore(fsys fs.FS) *DiskStore {
	return &DiskStore{fsys: fsys}
}

// Open implements Store.
func (s *DiskStore) Open(ctx context.Context, name string) (*Document, error) {
	if !ValidName(name) {
		return nil, ErrInvalidName
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f, err := s.fsys.Open(name)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, err
	}
	if info.IsDir() {
		f.Close()
		return nil, ErrNotFound
	}

	return &Document{
		Name:        name,
		ContentType: ContentTypePDF,
		Size:        info.Size(),
		ModTime:     info.ModTime(),
		Body:        f,
	}, nil
}
