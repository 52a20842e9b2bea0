package utils

import (
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// SaveUploadedFile persists file bytes under a collision-resistant
// generated key, preserving the original extension. Returns the stored
// path.
func SaveUploadedFile(destDir, originalName string, data []byte) (string, error) {
	if err := os.MkdirAll(destDir, 0755); err != nil {
		return "", err
	}

	ext := filepath.Ext(originalName)
	newFilename := uuid.NewString() + ext
	filePath := filepath.Join(destDir, newFilename)

	if err := os.WriteFile(filePath, data, 0644); err != nil {
		return "", err
	}

	return filePath, nil
}

// RemoveUploadedFile deletes a stored file, used to compensate when the
// record insert after an upload fails.
func RemoveUploadedFile(filePath string) error {
	if filePath == "" {
		return nil
	}
	return os.Remove(filePath)
}

func GetFileURL(filePath string) string {
	if filePath == "" {
		return ""
	}
	return "/uploads/" + filepath.Base(filePath)
}
