package publish

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"github.com/vango-dev/markup/internal/errors"
)

// DiskStore publishes documents into a local directory. Each document
// gets a ".meta" file next to it holding its content type, encoding and
// metadata.
type DiskStore struct {
	dir string
}

// Meta is the sidecar stored next to each document.
type Meta struct {
	ContentType     string            `json:"content_type"`
	ContentEncoding string            `json:"content_encoding,omitempty"`
	Size            int64             `json:"size"`
	Metadata        map[string]string `json:"metadata,omitempty"`
	PublishedAt     time.Time         `json:"published_at"`
}

// NewDiskStore creates a DiskStore rooted at dir, creating it if needed.
func NewDiskStore(dir string) (*DiskStore, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, errors.New("E120").WithDetail(dir).Wrap(err)
	}
	return &DiskStore{dir: dir}, nil
}

// Put writes obj to dir/key and returns the file path. The document is
// written to a temporary file and renamed, so readers never see a
// partial document. A document whose sidecar cannot be written is removed.
func (s *DiskStore) Put(ctx context.Context, key string, obj *Object) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", errors.New("E120").WithDetail(key).Wrap(err)
	}
	if !filepath.IsLocal(filepath.FromSlash(key)) {
		return "", errors.New("E120").WithDetailf("key %q escapes %s", key, s.dir)
	}

	path := filepath.Join(s.dir, filepath.FromSlash(key))
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return "", errors.New("E120").WithDetail(path).Wrap(err)
	}
	if err := writeFile(path, obj.Body); err != nil {
		return "", errors.New("E120").WithDetail(path).Wrap(err)
	}

	meta := &Meta{
		ContentType:     obj.ContentType,
		ContentEncoding: obj.ContentEncoding,
		Size:            int64(len(obj.Body)),
		Metadata:        obj.Metadata,
		PublishedAt:     time.Now().UTC(),
	}
	if err := s.saveMeta(path, meta); err != nil {
		os.Remove(path)
		return "", errors.New("E120").WithDetail(metaPath(path)).Wrap(err)
	}
	return path, nil
}

// Meta returns the sidecar of a published document.
func (s *DiskStore) Meta(key string) (*Meta, error) {
	data, err := os.ReadFile(metaPath(filepath.Join(s.dir, filepath.FromSlash(key))))
	if err != nil {
		return nil, err
	}
	var meta Meta
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}
	return &meta, nil
}

func (s *DiskStore) saveMeta(path string, meta *Meta) error {
	data, err := json.Marshal(meta)
	if err != nil {
		return err
	}
	return writeFile(metaPath(path), data)
}

func metaPath(path string) string {
	return path + ".meta"
}

// writeFile replaces path with data atomically.
func writeFile(path string, data []byte) error {
	f, err := os.CreateTemp(filepath.Dir(path), ".publish-*")
	if err != nil {
		return err
	}
	tmp := f.Name()

	if _, err := f.Write(data); err != nil {
		f.Close()
		os.Remove(tmp)
		return err
	}
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return err
	}
	if err := os.Chmod(tmp, 0644); err != nil {
		os.Remove(tmp)
		return err
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return err
	}
	return nil
}
