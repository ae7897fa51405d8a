package validation

import (
	"fmt"
	"strings"
)

// Per-bucket upload size ceilings in bytes.
const (
	MaxProfileImageBytes = 5 << 20
	MaxGalleryBytes      = 50 << 20
	MaxStoryBytes        = 20 << 20
)

var imageContentTypes = map[string]struct{}{
	"image/jpeg": {},
	"image/png":  {},
	"image/gif":  {},
	"image/webp": {},
}

var videoContentTypes = map[string]struct{}{
	"video/mp4":       {},
	"video/webm":      {},
	"video/quicktime": {},
}

// MaxUploadBytes returns the size ceiling for the given bucket.
func MaxUploadBytes(bucket string) int64 {
	switch bucket {
	case "profile-images":
		return MaxProfileImageBytes
	case "stories":
		return MaxStoryBytes
	default:
		return MaxGalleryBytes
	}
}

// ValidateUpload checks the content type and size against the bucket's rules.
// Profile images must be images; gallery and story buckets also accept video.
func ValidateUpload(bucket, contentType string, size int64) error {
	contentType = strings.ToLower(strings.TrimSpace(contentType))

	_, isImage := imageContentTypes[contentType]
	_, isVideo := videoContentTypes[contentType]

	switch bucket {
	case "profile-images":
		if !isImage {
			return fmt.Errorf("profile images must be jpeg, png, gif, or webp")
		}
	default:
		if !isImage && !isVideo {
			return fmt.Errorf("unsupported media type %q", contentType)
		}
	}

	// Size 0 means unknown (presigned uploads); the bucket policy enforces it.
	if size == 0 {
		return nil
	}
	if size < 0 {
		return fmt.Errorf("upload is empty")
	}
	if maxSize := MaxUploadBytes(bucket); size > maxSize {
		return fmt.Errorf("upload exceeds the %dMB limit for this media type", maxSize>>20)
	}

	return nil
}

// MediaTypeFor maps a content type onto the stored media type label.
func MediaTypeFor(contentType string) string {
	if _, ok := videoContentTypes[strings.ToLower(contentType)]; ok {
		return "video"
	}
	return "image"
}
