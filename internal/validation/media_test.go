package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateUpload(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name        string
		bucket      string
		contentType string
		size        int64
		wantErr     bool
	}{
		{"Profile image ok", "profile-images", "image/webp", 1 << 20, false},
		{"Profile image too big", "profile-images", "image/png", 6 << 20, true},
		{"Profile video rejected", "profile-images", "video/mp4", 1 << 20, true},
		{"Gallery video ok", "gallery", "video/mp4", 40 << 20, false},
		{"Gallery too big", "gallery", "video/mp4", 51 << 20, true},
		{"Story image ok", "stories", "image/jpeg", 1 << 20, false},
		{"Story too big", "stories", "video/webm", 21 << 20, true},
		{"Unknown size allowed", "gallery", "image/png", 0, false},
		{"Negative size rejected", "gallery", "image/png", -1, true},
		{"Unknown type", "gallery", "application/pdf", 100, true},
		{"Case insensitive type", "gallery", "IMAGE/PNG", 100, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateUpload(tt.bucket, tt.contentType, tt.size)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestMediaTypeFor(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "video", MediaTypeFor("video/mp4"))
	assert.Equal(t, "image", MediaTypeFor("image/png"))
	assert.Equal(t, "image", MediaTypeFor("application/unknown"))
}
