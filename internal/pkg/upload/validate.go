package upload

import (
	"errors"
	"fmt"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/google/uuid"
)

// allowedExt is the upload allow-list: short clips plus the image formats
// accepted for profile pictures.
var allowedExt = map[string]bool{
	".mp4":  true,
	".mov":  true,
	".jpg":  true,
	".jpeg": true,
	".png":  true,
}

// ErrUnsupportedMediaType is returned for files outside the allow-list.
var ErrUnsupportedMediaType = errors.New("unsupported file type: allowed are MP4, MOV, JPG, JPEG, PNG")

var unsafeChars = regexp.MustCompile(`[^a-zA-Z0-9._-]`)

// ValidateFilename checks the file extension (case-insensitive) against the
// allow-list and returns the normalized extension.
func ValidateFilename(filename string) (string, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	if !allowedExt[ext] {
		return "", ErrUnsupportedMediaType
	}
	return ext, nil
}

// GenerateStoredName builds the on-disk filename for an upload: a random
// token joined with the sanitized original basename. The stored name never
// contains user-controlled path elements, so collisions and traversal via
// the original filename are off the table.
func GenerateStoredName(original string) (string, error) {
	if _, err := ValidateFilename(original); err != nil {
		return "", err
	}

	base := filepath.Base(original)
	base = unsafeChars.ReplaceAllString(base, "_")

	return fmt.Sprintf("%s_%s", uuid.New().String(), base), nil
}
