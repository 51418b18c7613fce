package usda

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeS3 struct {
	uploaded map[string][]byte
}

func (f *fakeS3) UploadBytes(ctx context.Context, objectKey string, body []byte, contentType string) (string, error) {
	f.uploaded[objectKey] = body
	return objectKey, nil
}

func (f *fakeS3) GetPublicLinkKey(objectKey string) string {
	return "https://bucket.example/" + objectKey
}

func TestS3ArchiveStoresUnderRunAndReturnsLink(t *testing.T) {
	s3 := &fakeS3{uploaded: map[string][]byte{}}

	link, err := NewS3Archive(s3).Archive(context.Background(), "run-1", "173944", []byte(`{"fdcId":173944}`))
	require.NoError(t, err)

	assert.Equal(t, "https://bucket.example/usda/run-1/173944.json", link)
	assert.JSONEq(t, `{"fdcId":173944}`, string(s3.uploaded["usda/run-1/173944.json"]))
}
