package catalog

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/gosimple/slug"
)

// ImagePreview holds at most one locally selected file waiting to be uploaded
// with a freshly created product, plus the URL the create screen shows as the
// preview. Selecting a new file replaces and removes the previous one, and
// consuming or discarding the selection removes the file as well, so preview
// files never outlive the flow that created them.
type ImagePreview struct {
	dir     string // on-disk preview directory
	urlBase string // public path the preview directory is served under

	mu         sync.Mutex
	filename   string // original client-side file name
	storedPath string
	previewURL string
}

// NewImagePreview stores previews under dir, served at urlBase
// (e.g. "/previews").
func NewImagePreview(dir, urlBase string) *ImagePreview {
	return &ImagePreview{dir: dir, urlBase: urlBase}
}

// Select replaces the pending selection with the given file and returns the
// preview URL. The previous preview file, if any, is removed.
func (p *ImagePreview) Select(filename string, file io.Reader) (string, error) {
	if err := os.MkdirAll(p.dir, 0o755); err != nil {
		return "", err
	}

	// Slugged original name plus a uuid keeps the stored name URL-safe and
	// collision-free regardless of what the operator's file was called.
	ext := filepath.Ext(filename)
	base := strings.TrimSuffix(filepath.Base(filename), ext)
	stored := slug.Make(base) + "-" + uuid.New().String() + ext
	storedPath := filepath.Join(p.dir, stored)

	out, err := os.Create(storedPath)
	if err != nil {
		return "", err
	}
	if _, err := io.Copy(out, file); err != nil {
		out.Close()
		os.Remove(storedPath)
		return "", err
	}
	if err := out.Close(); err != nil {
		os.Remove(storedPath)
		return "", err
	}

	p.mu.Lock()
	previous := p.storedPath
	p.filename = filename
	p.storedPath = storedPath
	p.previewURL = p.urlBase + "/" + stored
	url := p.previewURL
	p.mu.Unlock()

	if previous != "" {
		os.Remove(previous)
	}
	return url, nil
}

// Held reports the pending selection, if any.
func (p *ImagePreview) Held() (filename, previewURL string, ok bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.filename, p.previewURL, p.storedPath != ""
}

// Open returns the original file name and a reader over the held file for
// the upload call. The selection stays held until Release; the upload flow
// releases it once the attempt completes, success or failure.
func (p *ImagePreview) Open() (string, io.ReadCloser, error) {
	p.mu.Lock()
	filename, path := p.filename, p.storedPath
	p.mu.Unlock()
	if path == "" {
		return "", nil, os.ErrNotExist
	}
	f, err := os.Open(path)
	if err != nil {
		return "", nil, err
	}
	return filename, f, nil
}

// Release discards the pending selection and removes its preview file.
func (p *ImagePreview) Release() {
	p.mu.Lock()
	path := p.storedPath
	p.filename = ""
	p.storedPath = ""
	p.previewURL = ""
	p.mu.Unlock()
	if path != "" {
		os.Remove(path)
	}
}
