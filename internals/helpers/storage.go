// file: internals/helpers/storage.go
package helper

import (
	"bytes"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/aliyun/aliyun-oss-go-sdk/oss"
	"github.com/chai2010/webp"
	"github.com/google/uuid"
	"golang.org/x/image/draw"

	"edcrm_backend/internals/configs"
)

const (
	maxUploadSize  = int64(5 * 1024 * 1024)
	webpQuality    = float32(80)
	maxImageWidth  = 1280
	maxImageHeight = 1280
)

/* =======================================================================
   Image re-encode: every avatar goes out as WebP, resized when oversized
======================================================================= */

// EncodeImageToWebP decodes jpeg/png/webp input and re-encodes it as WebP.
func EncodeImageToWebP(r io.Reader) ([]byte, error) {
	src, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}

	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	if w > maxImageWidth || h > maxImageHeight {
		scale := float64(maxImageWidth) / float64(w)
		if s := float64(maxImageHeight) / float64(h); s < scale {
			scale = s
		}
		dst := image.NewRGBA(image.Rect(0, 0, int(float64(w)*scale), int(float64(h)*scale)))
		draw.CatmullRom.Scale(dst, dst.Bounds(), src, b, draw.Over, nil)
		src = dst
	}

	var out bytes.Buffer
	if err := webp.Encode(&out, src, &webp.Options{Quality: webpQuality}); err != nil {
		return nil, fmt.Errorf("encode webp: %w", err)
	}
	return out.Bytes(), nil
}

/* =======================================================================
   Upload targets: OSS when configured, local disk otherwise
======================================================================= */

// UploadAvatar re-encodes the uploaded image to WebP and stores it.
func UploadAvatar(fh *multipart.FileHeader) (string, error) {
	if fh.Size > maxUploadSize {
		return "", fmt.Errorf("file exceeds %d bytes", maxUploadSize)
	}
	src, err := fh.Open()
	if err != nil {
		return "", fmt.Errorf("open upload: %w", err)
	}
	defer src.Close()

	data, err := EncodeImageToWebP(src)
	if err != nil {
		return "", err
	}
	name := fmt.Sprintf("avatars/%s.webp", uuid.NewString()[:12])
	return UploadBytes(name, data, "image/webp")
}

// UploadHomeworkFile stores a raw homework attachment as-is.
func UploadHomeworkFile(fh *multipart.FileHeader) (string, error) {
	if fh.Size > maxUploadSize {
		return "", fmt.Errorf("file exceeds %d bytes", maxUploadSize)
	}
	src, err := fh.Open()
	if err != nil {
		return "", fmt.Errorf("open upload: %w", err)
	}
	defer src.Close()

	data, err := io.ReadAll(src)
	if err != nil {
		return "", fmt.Errorf("read upload: %w", err)
	}
	ext := strings.ToLower(filepath.Ext(fh.Filename))
	if ext == "" {
		ext = ".bin"
	}
	name := fmt.Sprintf("homeworks/%s%s", uuid.NewString()[:12], ext)
	return UploadBytes(name, data, "application/octet-stream")
}

// UploadBytes writes to OSS when configured and falls back to the local
// upload dir for dev setups. Returns a retrievable URL either way.
func UploadBytes(objectName string, data []byte, contentType string) (string, error) {
	if configs.OSSEndpoint != "" && configs.OSSBucket != "" {
		return uploadToOSS(objectName, data, contentType)
	}
	return uploadToDisk(objectName, data)
}

func uploadToOSS(objectName string, data []byte, contentType string) (string, error) {
	client, err := oss.New(configs.OSSEndpoint, configs.OSSAccessKeyID, configs.OSSAccessSecret)
	if err != nil {
		return "", fmt.Errorf("oss client: %w", err)
	}
	bucket, err := client.Bucket(configs.OSSBucket)
	if err != nil {
		return "", fmt.Errorf("oss bucket: %w", err)
	}
	key := fmt.Sprintf("%s/%s", time.Now().Format("2006/01"), objectName)
	if err := bucket.PutObject(key, bytes.NewReader(data), oss.ContentType(contentType)); err != nil {
		return "", fmt.Errorf("oss put: %w", err)
	}
	return fmt.Sprintf("https://%s.%s/%s", configs.OSSBucket, configs.OSSEndpoint, key), nil
}

func uploadToDisk(objectName string, data []byte) (string, error) {
	path := filepath.Join(configs.UploadDir, objectName)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", fmt.Errorf("mkdir upload dir: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("write upload: %w", err)
	}
	return "/" + filepath.ToSlash(path), nil
}
