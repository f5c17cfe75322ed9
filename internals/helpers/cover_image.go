// file: internals/helpers/cover_image.go
package helper

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"
	"github.com/google/uuid"
)

const (
	coverMaxWidth  = 600
	coverMaxHeight = 900
	coverQuality   = 80
)

// SaveCoverImage converts an uploaded cover to a downscaled WebP and writes
// it under dir. Returns the relative path to store on the book row.
func SaveCoverImage(dir string, fileHeader *multipart.FileHeader) (string, error) {
	src, err := fileHeader.Open()
	if err != nil {
		return "", fmt.Errorf("open cover upload: %w", err)
	}
	defer src.Close()

	all, err := io.ReadAll(src)
	if err != nil {
		return "", fmt.Errorf("read cover upload: %w", err)
	}
	if len(all) == 0 {
		return "", fmt.Errorf("empty file")
	}

	img, err := decodeImage(all, fileHeader.Filename)
	if err != nil {
		return "", err
	}

	// keep aspect, never upscale
	img = imaging.Fit(img, coverMaxWidth, coverMaxHeight, imaging.CatmullRom)

	buf := new(bytes.Buffer)
	if err := webp.Encode(buf, img, &webp.Options{Lossless: false, Quality: coverQuality}); err != nil {
		return "", fmt.Errorf("encode webp: %w", err)
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create cover dir: %w", err)
	}

	filename := GenerateUniqueFilename(fileHeader.Filename) + ".webp"
	path := filepath.Join(dir, filename)
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return "", fmt.Errorf("write cover file: %w", err)
	}
	return filename, nil
}

// DeleteCoverImage removes a previously stored cover. A missing file is fine.
func DeleteCoverImage(dir, filename string) error {
	if strings.TrimSpace(filename) == "" {
		return nil
	}
	err := os.Remove(filepath.Join(dir, filepath.Base(filename)))
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

func decodeImage(all []byte, filename string) (image.Image, error) {
	head := all
	if len(head) > 512 {
		head = head[:512]
	}
	ct := http.DetectContentType(head)

	switch {
	case strings.Contains(ct, "jpeg"):
		return jpeg.Decode(bytes.NewReader(all))
	case strings.Contains(ct, "png"):
		return png.Decode(bytes.NewReader(all))
	case strings.Contains(ct, "webp"):
		return webp.Decode(bytes.NewReader(all))
	}

	// fallback by extension
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".jpg", ".jpeg":
		return jpeg.Decode(bytes.NewReader(all))
	case ".png":
		return png.Decode(bytes.NewReader(all))
	case ".webp":
		return webp.Decode(bytes.NewReader(all))
	}
	return nil, fmt.Errorf("unsupported image format: %s", ct)
}

var unsafeFilenameChars = regexp.MustCompile(`[^a-zA-Z0-9.\-_]+`)

func GenerateUniqueFilename(originalFilename string) string {
	base := strings.TrimSuffix(originalFilename, filepath.Ext(originalFilename))
	safe := unsafeFilenameChars.ReplaceAllString(base, "_")
	return fmt.Sprintf("%s-%s-%s", time.Now().Format("20060102"), uuid.New().String(), safe)
}
