package utils

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
)

// SaveCropPhoto stores an uploaded photo under destDir keyed by the crop id,
// so a second upload for the same crop overwrites the first. A prior photo
// with a different extension is removed to avoid orphan files.
func SaveCropPhoto(file *multipart.FileHeader, destDir string, cropID uint) (string, error) {
	src, err := file.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	if err := os.MkdirAll(destDir, 0755); err != nil {
		return "", err
	}

	ext := filepath.Ext(file.Filename)
	newFilename := fmt.Sprintf("crop_%d%s", cropID, ext)
	filePath := filepath.Join(destDir, newFilename)

	// Drop stale photos for this crop saved under another extension
	stale, _ := filepath.Glob(filepath.Join(destDir, fmt.Sprintf("crop_%d.*", cropID)))
	for _, old := range stale {
		if old != filePath {
			os.Remove(old)
		}
	}

	dst, err := os.Create(filePath)
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", err
	}

	return "/uploads/" + newFilename, nil
}
