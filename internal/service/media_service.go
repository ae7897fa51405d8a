package service

import (
	"bytes"
	"context"
	"image"
	"mime"
	"net/http"
	"strings"

	"glowup/internal/models"
	"glowup/internal/storage"
	"glowup/internal/validation"

	"github.com/chai2010/webp"
	xdraw "golang.org/x/image/draw"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
)

const (
	avatarMaxDim = 512
	coverMaxDim  = 1440
	webpQuality  = 85
)

// MediaService handles media uploads: raw passthrough for gallery and
// story media, and a decode/resize/re-encode pipeline for profile images.
type MediaService struct {
	store storage.ObjectStore
}

// UploadResult describes a stored object.
type UploadResult struct {
	URL       string `json:"url"`
	Bucket    string `json:"bucket"`
	Key       string `json:"key"`
	MediaType string `json:"media_type"`
}

// NewMediaService returns a new MediaService.
func NewMediaService(store storage.ObjectStore) *MediaService {
	return &MediaService{store: store}
}

// UploadMedia validates and stores a gallery or story upload as-is.
func (s *MediaService) UploadMedia(ctx context.Context, userID uint, bucket, filename, contentType string, data []byte) (*UploadResult, error) {
	contentType = normalizeMediaContentType(contentType)
	if len(data) == 0 {
		return nil, models.NewValidationError("Upload is empty")
	}
	if err := validation.ValidateUpload(bucket, contentType, int64(len(data))); err != nil {
		return nil, err
	}
	if sniffed := http.DetectContentType(data); !contentTypesAgree(contentType, sniffed) {
		return nil, models.NewValidationError("File content does not match its declared type")
	}

	key := storage.ObjectKey(userID, filename)
	url, err := s.store.Upload(ctx, bucket, key, contentType, bytes.NewReader(data))
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return &UploadResult{
		URL:       url,
		Bucket:    bucket,
		Key:       key,
		MediaType: validation.MediaTypeFor(contentType),
	}, nil
}

// UploadProfileImage normalizes an avatar or cover image: decode, downscale
// to the target bound, re-encode as WebP, store in profile-images. cover
// selects the larger bound.
func (s *MediaService) UploadProfileImage(ctx context.Context, userID uint, filename, contentType string, data []byte, cover bool) (*UploadResult, error) {
	contentType = normalizeMediaContentType(contentType)
	if len(data) == 0 {
		return nil, models.NewValidationError("Upload is empty")
	}
	if err := validation.ValidateUpload(storage.BucketProfileImages, contentType, int64(len(data))); err != nil {
		return nil, err
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, models.NewValidationError("Could not decode image")
	}

	maxDim := avatarMaxDim
	if cover {
		maxDim = coverMaxDim
	}
	img = resizeToFit(img, maxDim, maxDim)

	encoded, err := encodeWebP(img, webpQuality)
	if err != nil {
		return nil, models.NewInternalError(err)
	}

	key := storage.ObjectKey(userID, webpName(filename))
	url, err := s.store.Upload(ctx, storage.BucketProfileImages, key, "image/webp", bytes.NewReader(encoded))
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return &UploadResult{
		URL:       url,
		Bucket:    storage.BucketProfileImages,
		Key:       key,
		MediaType: models.MediaTypeImage,
	}, nil
}

// PresignUpload issues a short-lived direct-upload URL after validating
// the declared type against the bucket's rules. Size is enforced by the
// bucket policy, not here.
func (s *MediaService) PresignUpload(ctx context.Context, userID uint, bucket, filename, contentType string) (*UploadResult, error) {
	contentType = normalizeMediaContentType(contentType)
	if err := validation.ValidateUpload(bucket, contentType, 0); err != nil {
		return nil, err
	}
	key := storage.ObjectKey(userID, filename)
	url, err := s.store.PresignUpload(ctx, bucket, key, contentType)
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return &UploadResult{
		URL:       url,
		Bucket:    bucket,
		Key:       key,
		MediaType: validation.MediaTypeFor(contentType),
	}, nil
}

func resizeToFit(src image.Image, maxWidth, maxHeight int) image.Image {
	bounds := src.Bounds()
	w := bounds.Dx()
	h := bounds.Dy()
	if w <= 0 || h <= 0 {
		return src
	}
	if w <= maxWidth && h <= maxHeight {
		return src
	}

	scaleW := float64(maxWidth) / float64(w)
	scaleH := float64(maxHeight) / float64(h)
	scale := scaleW
	if scaleH < scale {
		scale = scaleH
	}
	newW := int(float64(w) * scale)
	newH := int(float64(h) * scale)
	if newW < 1 {
		newW = 1
	}
	if newH < 1 {
		newH = 1
	}

	dst := image.NewRGBA(image.Rect(0, 0, newW, newH))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), src, bounds, xdraw.Over, nil)
	return dst
}

func encodeWebP(img image.Image, quality int) ([]byte, error) {
	buf := bytes.NewBuffer(nil)
	if err := webp.Encode(buf, img, &webp.Options{Quality: float32(quality)}); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func normalizeMediaContentType(contentType string) string {
	if contentType == "" {
		return ""
	}
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return strings.ToLower(strings.TrimSpace(contentType))
	}
	return strings.ToLower(strings.TrimSpace(mediaType))
}

// contentTypesAgree tolerates sniffing coarseness: DetectContentType
// cannot identify every video container, and jpg/jpeg are the same thing.
func contentTypesAgree(declared, sniffed string) bool {
	d := normalizeMediaContentType(declared)
	sn := normalizeMediaContentType(sniffed)
	if d == sn {
		return true
	}
	if (d == "image/jpg" && sn == "image/jpeg") || (d == "image/jpeg" && sn == "image/jpg") {
		return true
	}
	// Video sniffing often yields application/octet-stream.
	if strings.HasPrefix(d, "video/") && (sn == "application/octet-stream" || strings.HasPrefix(sn, "video/")) {
		return true
	}
	return false
}

func webpName(filename string) string {
	if i := strings.LastIndex(filename, "."); i > 0 {
		filename = filename[:i]
	}
	if filename == "" {
		filename = "image"
	}
	return filename + ".webp"
}
