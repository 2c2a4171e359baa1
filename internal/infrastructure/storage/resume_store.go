package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	resumeSubdir    = "resumes"
	publicURLPrefix = "/uploads/resumes/"
)

var ErrUnsupportedFileType = errors.New("unsupported resume file type")

var allowedExtensions = map[string]bool{
	".pdf":  true,
	".doc":  true,
	".docx": true,
}

// ResumeStore writes uploaded resumes to disk. Names are derived from the
// uploader and a nanosecond timestamp, so concurrent uploads from different
// users can never collide and no locking is needed.
type ResumeStore struct {
	dir string
	now func() time.Time
}

func NewResumeStore(baseDir string) (*ResumeStore, error) {
	dir := filepath.Join(baseDir, resumeSubdir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &ResumeStore{dir: dir, now: time.Now}, nil
}

// Save streams the resume to disk and returns its public URL path.
func (s *ResumeStore) Save(_ context.Context, uploaderID uuid.UUID, originalName string, r io.Reader) (string, error) {
	ext := strings.ToLower(filepath.Ext(originalName))
	if ext == "" {
		ext = ".pdf"
	}
	if !allowedExtensions[ext] {
		return "", ErrUnsupportedFileType
	}

	name := fmt.Sprintf("%s-%d%s", uploaderID, s.now().UnixNano(), ext)

	f, err := os.OpenFile(filepath.Join(s.dir, name), os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return "", fmt.Errorf("create resume file: %w", err)
	}

	if _, err := io.Copy(f, r); err != nil {
		_ = f.Close()
		_ = os.Remove(f.Name())
		return "", fmt.Errorf("write resume file: %w", err)
	}
	if err := f.Close(); err != nil {
		return "", err
	}

	return publicURLPrefix + name, nil
}

// Dir is the absolute-or-relative directory resumes land in; the HTTP layer
// serves it under /uploads.
func (s *ResumeStore) Dir() string {
	return s.dir
}
