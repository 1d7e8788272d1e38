package service

import (
	"crypto/sha256"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"

	"miniblog/pkg/config"
	"miniblog/pkg/logger"

	"go.uber.org/zap"
)

// ImageService stores post images on local disk and hands back a
// relative path persisted on the post.
type ImageService struct {
	basePath string
}

func NewImageService() (*ImageService, error) {
	basePath := "uploads"
	if config.GlobalConfig.Upload.StoragePath != "" {
		basePath = config.GlobalConfig.Upload.StoragePath
	}

	if err := os.MkdirAll(basePath, 0755); err != nil {
		return nil, fmt.Errorf("failed to create storage directory: %w", err)
	}

	return &ImageService{basePath: basePath}, nil
}

// StoreImage saves an uploaded image and returns its path relative to
// the storage root. Non-image extensions are rejected.
func (s *ImageService) StoreImage(file *multipart.FileHeader, userID uint) (string, error) {
	fileExt := strings.ToLower(filepath.Ext(file.Filename))
	switch fileExt {
	case ".jpg", ".jpeg", ".png", ".gif":
	default:
		return "", ErrNotAnImage
	}

	src, err := file.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer src.Close()

	// Filename + timestamp + user makes the hash unique per upload.
	timestamp := time.Now().UnixNano()
	h := sha256.New()
	io.WriteString(h, fmt.Sprintf("%s%d%d", file.Filename, timestamp, userID))
	hash := fmt.Sprintf("%x", h.Sum(nil))[:12]

	userDir := fmt.Sprintf("posts/user_%d", userID)
	if err := os.MkdirAll(filepath.Join(s.basePath, userDir), 0755); err != nil {
		return "", fmt.Errorf("failed to create user storage directory: %w", err)
	}

	safeName := strings.ReplaceAll(file.Filename, "/", "_")
	safeName = strings.ReplaceAll(safeName, " ", "_")
	safeFilename := fmt.Sprintf("%s_%s%s",
		strings.TrimSuffix(safeName, fileExt), hash, fileExt)

	relPath := filepath.Join(userDir, safeFilename)
	dst, err := os.Create(filepath.Join(s.basePath, relPath))
	if err != nil {
		return "", fmt.Errorf("failed to create file: %w", err)
	}
	defer dst.Close()

	if _, err = io.Copy(dst, src); err != nil {
		return "", fmt.Errorf("failed to save file: %w", err)
	}

	logger.L.Info("Image stored",
		zap.String("path", relPath),
		zap.Int64("size", file.Size),
		zap.Uint("userID", userID))

	return relPath, nil
}
