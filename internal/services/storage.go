package services

import (
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"regexp"
	"strings"

	"blogcms/internal/apperr"
	"blogcms/internal/logger"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	MaxImagesPerArticle = 5
	MaxImageSize        = 5 << 20 // 5MB
)

var (
	publicRe  = regexp.MustCompile(`(?i)uploads/(.+)$`)
	uploadsRe = regexp.MustCompile(`(?i)uploads[/\\]+(.+)$`)
)

// PublicPath канонизирует ссылку на изображение к виду "uploads/<filename>"
// (прямой слеш, без ведущего слеша) — независимо от того, пришло голое имя,
// абсолютный путь с диска или уже корректная относительная форма.
func PublicPath(p string) string {
	if p == "" {
		return ""
	}
	s := strings.ReplaceAll(p, `\`, "/")
	if strings.HasPrefix(s, "uploads/") {
		return s
	}
	if m := publicRe.FindStringSubmatch(s); m != nil {
		return "uploads/" + m[1]
	}
	return "uploads/" + path.Base(s)
}

// UploadsRel возвращает имя файла внутри каталога uploads (для удаления с диска).
func UploadsRel(p string) string {
	if p == "" {
		return ""
	}
	if m := uploadsRe.FindStringSubmatch(p); m != nil {
		return m[1]
	}
	return path.Base(strings.ReplaceAll(p, `\`, "/"))
}

// Storage сохраняет и удаляет файлы изображений в пределах одного
// фиксированного корня. Выход за корень (path traversal) блокируется.
type Storage struct {
	root string // абсолютный путь к каталогу uploads
}

func NewStorage(dir string) (*Storage, error) {
	if err := os.MkdirAll(dir, os.ModePerm); err != nil {
		return nil, fmt.Errorf("создание каталога uploads: %w", err)
	}
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, err
	}
	return &Storage{root: abs}, nil
}

// SaveImages сохраняет загруженные файлы под uuid-именами и возвращает
// публичные пути "uploads/<name>". Лимиты: не больше 5 файлов, до 5MB каждый,
// только изображения (по содержимому, не по расширению).
// Частично сохранённые файлы убираются при любой ошибке.
func (s *Storage) SaveImages(files []*multipart.FileHeader) ([]string, error) {
	if len(files) == 0 {
		return nil, nil
	}
	if len(files) > MaxImagesPerArticle {
		return nil, apperr.Validation(fmt.Sprintf("Не больше %d изображений за раз.", MaxImagesPerArticle))
	}

	var saved []string
	fail := func(err error) ([]string, error) {
		s.RemoveMany(saved)
		return nil, err
	}

	for _, fh := range files {
		if fh.Size > MaxImageSize {
			return fail(apperr.Validation("Слишком большой файл. Лимит 5MB."))
		}

		src, err := fh.Open()
		if err != nil {
			return fail(err)
		}

		sniff := make([]byte, 512)
		n, err := src.Read(sniff)
		if err != nil && err != io.EOF {
			src.Close()
			return fail(err)
		}
		if !strings.HasPrefix(http.DetectContentType(sniff[:n]), "image/") {
			src.Close()
			return fail(apperr.Validation("Разрешены только файлы изображений."))
		}
		if _, err := src.Seek(0, io.SeekStart); err != nil {
			src.Close()
			return fail(err)
		}

		name := uuid.NewString() + strings.ToLower(filepath.Ext(fh.Filename))
		dst, err := os.Create(filepath.Join(s.root, name))
		if err != nil {
			src.Close()
			return fail(err)
		}
		_, err = io.Copy(dst, src)
		src.Close()
		dst.Close()
		if err != nil {
			return fail(err)
		}

		saved = append(saved, "uploads/"+name)
	}
	return saved, nil
}

// Remove удаляет файл по публичной ссылке. Отсутствие файла — не ошибка,
// остальные сбои только логируются (best-effort).
func (s *Storage) Remove(p string) {
	rel := UploadsRel(p)
	if rel == "" {
		return
	}

	full := filepath.Join(s.root, rel)
	if !strings.HasPrefix(full, s.root+string(os.PathSeparator)) {
		logger.Log.Warn("Попытка удаления вне каталога uploads", zap.String("path", p))
		return
	}

	if err := os.Remove(full); err != nil && !os.IsNotExist(err) {
		logger.Log.Error("Ошибка удаления файла", zap.String("path", full), zap.Error(err))
	}
}

func (s *Storage) RemoveMany(paths []string) {
	for _, p := range paths {
		s.Remove(p)
	}
}
