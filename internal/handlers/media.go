// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif" // register GIF decoder
	"image/jpeg"
	_ "image/png" // register PNG decoder
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp" // register WebP decoder

	"oldvine/internal/middleware"
	"oldvine/internal/models"
	"oldvine/internal/session"
	"oldvine/internal/storage"
	"oldvine/internal/store"
)

const (
	// maxFileSize is the maximum size for a single uploaded image (10 MB).
	maxFileSize = 10 << 20

	// maxBatchSize bounds the whole multipart request.
	maxBatchSize = 100 << 20

	// thumbMaxWidth is the maximum thumbnail width in pixels.
	thumbMaxWidth = 400

	// thumbQuality is the JPEG quality for generated thumbnails.
	thumbQuality = 80

	// maxImagePixels caps decoded size to prevent memory bombs.
	maxImagePixels = 100_000_000
)

// allowedImageTypes are the MIME types accepted for upload. The media
// library holds site imagery only.
var allowedImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/gif":  true,
	"image/webp": true,
}

// thumbableTypes support thumbnail generation. GIF is excluded to
// preserve animation.
var thumbableTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/webp": true,
}

// Media handles image uploads to object storage and the media library.
type Media struct {
	media   *store.MediaStore
	storage *storage.Client
}

// NewMedia creates the media handler group. storage may be nil when
// object storage is not configured; uploads then fail with 503.
func NewMedia(media *store.MediaStore, sc *storage.Client) *Media {
	return &Media{media: media, storage: sc}
}

// uploadResult is the per-file outcome in an upload batch. A failed
// file never aborts the rest of the batch.
type uploadResult struct {
	OriginalName string `json:"originalName"`
	Filename     string `json:"filename,omitempty"`
	URL          string `json:"url,omitempty"`
	ThumbURL     string `json:"thumbUrl,omitempty"`
	Size         int64  `json:"size,omitempty"`
	Success      bool   `json:"success"`
	Error        string `json:"error,omitempty"`
}

// Upload accepts one or more files in the multipart field "images",
// stores them in object storage, and records metadata per file.
func (h *Media) Upload(w http.ResponseWriter, r *http.Request) {
	if h.storage == nil {
		respondError(w, http.StatusServiceUnavailable, "Object storage is not configured")
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxBatchSize)
	if err := r.ParseMultipartForm(32 << 20); err != nil {
		respondError(w, http.StatusRequestEntityTooLarge, "Upload too large")
		return
	}

	files := r.MultipartForm.File["images"]
	if len(files) == 0 {
		respondError(w, http.StatusBadRequest, "No files provided")
		return
	}

	sess := middleware.SessionFromCtx(r.Context())

	results := make([]uploadResult, 0, len(files))
	for _, header := range files {
		results = append(results, h.uploadOne(r, header, sess))
	}

	respondData(w, http.StatusOK, map[string]any{"files": results})
}

func (h *Media) uploadOne(r *http.Request, header *multipart.FileHeader, sess *session.Data) uploadResult {
	res := uploadResult{OriginalName: header.Filename}
	fail := func(msg string) uploadResult {
		res.Error = msg
		return res
	}

	if header.Size > maxFileSize {
		return fail("File too large. Maximum size is 10 MB.")
	}

	file, err := header.Open()
	if err != nil {
		return fail("Failed to read file.")
	}
	defer file.Close()

	sniffBuf := make([]byte, 512)
	n, err := file.Read(sniffBuf)
	if err != nil && err != io.EOF {
		return fail("Failed to read file.")
	}
	contentType := http.DetectContentType(sniffBuf[:n])
	if !allowedImageTypes[contentType] {
		return fail(fmt.Sprintf("File type %q is not allowed.", contentType))
	}
	if !validImageExtension(header.Filename) {
		return fail("File extension is not allowed.")
	}

	if _, err := file.Seek(0, io.SeekStart); err != nil {
		return fail("Failed to process file.")
	}
	fileBytes, err := io.ReadAll(file)
	if err != nil {
		return fail("Failed to read file.")
	}

	ext := strings.ToLower(filepath.Ext(header.Filename))
	fileID := uuid.New()
	filename := fileID.String() + ext
	s3Key := "uploads/" + filename

	ctx := r.Context()
	if err := h.storage.Upload(ctx, s3Key, contentType, bytes.NewReader(fileBytes), int64(len(fileBytes))); err != nil {
		slog.Error("s3 upload failed", "error", err, "key", s3Key)
		return fail("Failed to upload file.")
	}

	var thumbKey *string
	if thumbableTypes[contentType] {
		thumbData, err := generateThumbnail(bytes.NewReader(fileBytes), thumbMaxWidth)
		if err != nil {
			slog.Warn("thumbnail generation failed", "error", err, "key", s3Key)
		} else if thumbData != nil {
			tk := "uploads/thumbs/" + fileID.String() + "_thumb.jpg"
			if err := h.storage.Upload(ctx, tk, "image/jpeg", bytes.NewReader(thumbData), int64(len(thumbData))); err != nil {
				slog.Warn("thumbnail upload failed", "error", err, "key", tk)
			} else {
				thumbKey = &tk
			}
		}
	}

	m := &models.MediaFile{
		Filename:     filename,
		OriginalName: header.Filename,
		ContentType:  contentType,
		SizeBytes:    int64(len(fileBytes)),
		S3Key:        s3Key,
		ThumbS3Key:   thumbKey,
	}
	if sess != nil {
		m.UploaderID = &sess.AdminID
	}

	created, err := h.media.Create(m)
	if err != nil {
		slog.Error("media db insert failed", "error", err, "key", s3Key)
		return fail("Failed to save file metadata.")
	}
	if created == nil {
		return fail("A file with this name already exists.")
	}

	res.Success = true
	res.Filename = created.Filename
	res.Size = created.SizeBytes
	res.URL = h.storage.FileURL(created.S3Key)
	if created.ThumbS3Key != nil {
		res.ThumbURL = h.storage.FileURL(*created.ThumbS3Key)
	}
	return res
}

// List returns the media library, newest first.
func (h *Media) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.media.List()
	if err != nil {
		slog.Error("media list failed", "error", err)
		respondError(w, http.StatusInternalServerError, "Failed to load media library")
		return
	}

	type mediaView struct {
		models.MediaFile
		URL      string `json:"url"`
		ThumbURL string `json:"thumbUrl,omitempty"`
	}
	views := make([]mediaView, 0, len(items))
	for _, m := range items {
		mv := mediaView{MediaFile: m}
		if h.storage != nil {
			mv.URL = h.storage.FileURL(m.S3Key)
			if m.ThumbS3Key != nil {
				mv.ThumbURL = h.storage.FileURL(*m.ThumbS3Key)
			}
		}
		views = append(views, mv)
	}

	respondData(w, http.StatusOK, map[string]any{"files": views})
}

// Delete removes a file by its stored filename. Database first, then
// best-effort object cleanup.
func (h *Media) Delete(w http.ResponseWriter, r *http.Request) {
	filename := chi.URLParam(r, "filename")

	deleted, err := h.media.DeleteByFilename(filename)
	if err != nil {
		slog.Error("media db delete failed", "filename", filename, "error", err)
		respondError(w, http.StatusInternalServerError, "Failed to delete file")
		return
	}
	if deleted == nil {
		respondError(w, http.StatusNotFound, "File not found")
		return
	}

	if h.storage != nil {
		ctx := r.Context()
		if err := h.storage.Delete(ctx, deleted.S3Key); err != nil {
			slog.Warn("s3 original delete failed", "error", err, "key", deleted.S3Key)
		}
		if deleted.ThumbS3Key != nil {
			if err := h.storage.Delete(ctx, *deleted.ThumbS3Key); err != nil {
				slog.Warn("s3 thumbnail delete failed", "error", err, "key", *deleted.ThumbS3Key)
			}
		}
	}

	respondMessage(w, http.StatusOK, "File deleted")
}

// validImageExtension checks the filename extension against the image
// allowlist. Sniffed MIME type is checked separately.
func validImageExtension(filename string) bool {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".jpg", ".jpeg", ".png", ".gif", ".webp":
		return true
	}
	return false
}

// generateThumbnail creates a JPEG thumbnail constrained to maxWidth
// while preserving aspect ratio. Returns nil if the image is already
// narrower than maxWidth.
func generateThumbnail(src io.Reader, maxWidth int) ([]byte, error) {
	imgCfg, _, err := image.DecodeConfig(src)
	if err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}

	if int64(imgCfg.Width)*int64(imgCfg.Height) > maxImagePixels {
		return nil, fmt.Errorf("image too large: %dx%d exceeds %d pixels", imgCfg.Width, imgCfg.Height, maxImagePixels)
	}

	if imgCfg.Width <= maxWidth {
		return nil, nil
	}

	seeker, ok := src.(io.Seeker)
	if !ok {
		return nil, fmt.Errorf("source does not support seeking")
	}
	if _, err := seeker.Seek(0, io.SeekStart); err != nil {
		return nil, fmt.Errorf("seek: %w", err)
	}

	img, _, err := image.Decode(src)
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}

	bounds := img.Bounds()
	ratio := float64(maxWidth) / float64(bounds.Dx())
	newWidth := maxWidth
	newHeight := int(float64(bounds.Dy()) * ratio)

	dst := image.NewRGBA(image.Rect(0, 0, newWidth, newHeight))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, draw.Over, nil)

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, dst, &jpeg.Options{Quality: thumbQuality}); err != nil {
		return nil, fmt.Errorf("encode thumbnail: %w", err)
	}

	return buf.Bytes(), nil
}
