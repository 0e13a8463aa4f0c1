package storage

import (
	"errors"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"

	"github.com/gofiber/fiber/v2/log"

	"github.com/clipvibe/ClipVibe/internal/pkg/constants"
	"github.com/clipvibe/ClipVibe/internal/pkg/env"
)

// LocalStorage writes uploaded media into a flat directory on disk. Records
// reference files by generated name only, never by a user-supplied path.
type LocalStorage struct {
	baseDir string
}

// NewLocalStorage returns storage rooted at UPLOAD_DIR (default "uploads").
func NewLocalStorage() *LocalStorage {
	return &LocalStorage{baseDir: env.GetEnv("UPLOAD_DIR", constants.UploadsPath)}
}

// NewLocalStorageAt returns storage rooted at the given directory.
func NewLocalStorageAt(dir string) *LocalStorage {
	return &LocalStorage{baseDir: dir}
}

// BaseDir returns the directory files are stored under.
func (s *LocalStorage) BaseDir() string {
	return s.baseDir
}

// Save writes the multipart file under the given stored name.
func (s *LocalStorage) Save(file *multipart.FileHeader, storedName string) error {
	if err := os.MkdirAll(s.baseDir, 0o755); err != nil {
		return err
	}

	src, err := file.Open()
	if err != nil {
		return err
	}
	defer src.Close()

	dst, err := os.Create(filepath.Join(s.baseDir, filepath.Base(storedName)))
	if err != nil {
		return err
	}
	defer dst.Close()

	_, err = io.Copy(dst, src)
	return err
}

// Delete removes a stored file. A file that is already gone is not an error;
// profile picture replacement relies on that.
func (s *LocalStorage) Delete(storedName string) error {
	if storedName == "" {
		return nil
	}

	err := os.Remove(filepath.Join(s.baseDir, filepath.Base(storedName)))
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Errorf("[Storage] Failed to delete %s: %v", storedName, err)
		return err
	}
	return nil
}
