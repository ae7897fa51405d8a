package storage

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestObjectKey(t *testing.T) {
	key := ObjectKey(42, "selfie.webp")
	assert.True(t, strings.HasPrefix(key, "42/"))
	assert.True(t, strings.HasSuffix(key, "-selfie.webp"))
}

func TestObjectKey_SanitizesTraversal(t *testing.T) {
	key := ObjectKey(7, "../../etc/passwd")
	assert.NotContains(t, key, "..")
	assert.False(t, strings.Contains(strings.TrimPrefix(key, "7/"), "/etc/"))
}

func TestObjectKey_EmptyFilename(t *testing.T) {
	key := ObjectKey(1, "")
	assert.True(t, strings.HasSuffix(key, "-upload"))
}

func TestPublicURL(t *testing.T) {
	s := &S3Store{publicURL: "http://localhost:9000"}
	assert.Equal(t, "http://localhost:9000/gallery/1/x.webp", s.PublicURL(BucketGallery, "1/x.webp"))
}
