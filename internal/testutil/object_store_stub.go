// Package testutil provides shared test doubles and fixtures for backend tests.
package testutil

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/png"
	"io"
	"sync"
)

// StoredObject is what MemStore records for each upload.
type StoredObject struct {
	ContentType string
	Data        []byte
}

// MemStore is an in-memory ObjectStore implementation for tests.
type MemStore struct {
	mu      sync.Mutex
	objects map[string]StoredObject
}

// NewMemStore creates an empty in-memory object store.
func NewMemStore() *MemStore {
	return &MemStore{objects: make(map[string]StoredObject)}
}

func (s *MemStore) path(bucket, key string) string {
	return bucket + "/" + key
}

// Upload records the object and returns its public URL.
func (s *MemStore) Upload(_ context.Context, bucket, key, contentType string, body io.Reader) (string, error) {
	data, err := io.ReadAll(body)
	if err != nil {
		return "", err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.objects[s.path(bucket, key)] = StoredObject{ContentType: contentType, Data: data}
	return s.PublicURL(bucket, key), nil
}

// PresignUpload returns a fake direct-upload URL without storing anything.
func (s *MemStore) PresignUpload(_ context.Context, bucket, key, contentType string) (string, error) {
	return fmt.Sprintf("http://stub-store.local/presigned/%s/%s?ct=%s", bucket, key, contentType), nil
}

// Delete removes the object if present.
func (s *MemStore) Delete(_ context.Context, bucket, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.objects, s.path(bucket, key))
	return nil
}

// PublicURL mirrors the real store's bucket/key URL shape.
func (s *MemStore) PublicURL(bucket, key string) string {
	return fmt.Sprintf("http://stub-store.local/%s/%s", bucket, key)
}

// Get returns the stored object for bucket/key.
func (s *MemStore) Get(bucket, key string) (StoredObject, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	obj, ok := s.objects[s.path(bucket, key)]
	return obj, ok
}

// Len reports how many objects are stored.
func (s *MemStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.objects)
}

// TinyPNG returns an in-memory PNG byte slice with the requested dimensions.
func TinyPNG(t interface {
	Helper()
	Fatalf(string, ...any)
}, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	buf := bytes.NewBuffer(nil)
	if err := png.Encode(buf, img); err != nil {
		t.Fatalf("encode png: %v", err)
	}
	return buf.Bytes()
}
