package media

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// Disk stores uploaded creative media on the local filesystem. It is the
// default MediaStore implementation; object storage can replace it behind
// the same port without touching the usecases.
type Disk struct {
	dir string
}

// NewDisk creates the store rooted at dir, creating the directory if
// needed.
func NewDisk(dir string) (*Disk, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create media dir: %w", err)
	}
	return &Disk{dir: dir}, nil
}

// Save writes the content under a fresh uuid-based name, keeping only the
// upload's extension, and returns the stored reference. Uploaded names are
// never trusted as paths.
func (d *Disk) Save(name string, content io.Reader) (string, error) {
	stored := uuid.NewString() + filepath.Ext(filepath.Base(name))
	f, err := os.Create(filepath.Join(d.dir, stored))
	if err != nil {
		return "", err
	}
	if _, err = io.Copy(f, content); err != nil {
		f.Close()
		_ = os.Remove(f.Name())
		return "", err
	}
	if err = f.Close(); err != nil {
		return "", err
	}
	return stored, nil
}
