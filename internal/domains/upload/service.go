package upload

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"

	"github.com/phongnguyen123/treow-physio-sub000/pkg/logger"
)

const MaxFileSize = 5 << 20 // 5MB

var (
	ErrFileTooLarge    = errors.New("file vượt quá giới hạn 5MB")
	ErrUnsupportedType = errors.New("chỉ chấp nhận ảnh JPEG, PNG, WebP hoặc GIF")
	ErrEmptyFile       = errors.New("file rỗng")
)

// allowedTypes: MIME sniffing từ nội dung file, không tin extension
// client gửi lên.
var allowedTypes = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/webp": ".webp",
	"image/gif":  ".gif",
}

// Storage trừu tượng hóa đích lưu trữ: MinIO khi configured, local
// disk fallback.
type Storage interface {
	Save(ctx context.Context, filename string, data []byte, contentType string) (string, error)
	Delete(ctx context.Context, filename string) error
}

type Result struct {
	URL      string `json:"url"`
	Filename string `json:"filename"`
}

type Service struct {
	storage Storage
}

func NewService(storage Storage) *Service {
	return &Service{storage: storage}
}

// Upload validate size và content type rồi lưu với tên file random,
// trả về public URL. Tên file gốc chỉ giữ lại để log.
func (s *Service) Upload(ctx context.Context, originalName string, data []byte) (*Result, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFile
	}
	if len(data) > MaxFileSize {
		return nil, ErrFileTooLarge
	}

	mtype := mimetype.Detect(data)
	ext, ok := allowedTypes[mtype.String()]
	if !ok {
		return nil, ErrUnsupportedType
	}

	filename := uuid.New().String() + ext

	url, err := s.storage.Save(ctx, filename, data, mtype.String())
	if err != nil {
		logger.Error("Failed to store upload", err)
		return nil, fmt.Errorf("failed to store upload: %w", err)
	}

	logger.Info("File uploaded", map[string]interface{}{
		"original": filepath.Base(strings.TrimSpace(originalName)),
		"stored":   filename,
		"size":     len(data),
	})

	return &Result{URL: url, Filename: filename}, nil
}
