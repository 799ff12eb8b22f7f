package domain

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// UploadFilename builds the stored name for an uploaded file: the
// original base name with an 8-hex-char suffix so repeated uploads of
// the same file never collide.
func UploadFilename(original string) string {
	base := filepath.Base(original)
	ext := filepath.Ext(base)
	name := strings.TrimSuffix(base, ext)
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
	return fmt.Sprintf("%s_%s%s", name, suffix, ext)
}

// SaveUpload stores a multipart file under <root>/<kind>/ and returns
// the relative "<kind>/<filename>" path persisted on the entity.
func SaveUpload(file *multipart.FileHeader, root, kind string) (string, error) {
	if file == nil || file.Filename == "" {
		return "", nil
	}

	dir := filepath.Join(root, kind)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create upload dir: %w", err)
	}

	filename := UploadFilename(file.Filename)

	src, err := file.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open upload: %w", err)
	}
	defer src.Close()

	dst, err := os.Create(filepath.Join(dir, filename))
	if err != nil {
		return "", fmt.Errorf("failed to store upload: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", fmt.Errorf("failed to store upload: %w", err)
	}

	return kind + "/" + filename, nil
}
