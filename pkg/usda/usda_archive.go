package usda

import (
	"context"
	"fmt"

	"nutrition-tracker/internal/utils/storage"
)

type s3Archive struct {
	s3 storage.AwsS3
}

// NewS3Archive stores payloads under usda/<run-id>/<fdc-id>.json.
func NewS3Archive(s3 storage.AwsS3) PayloadArchive {
	return &s3Archive{s3: s3}
}

func (a *s3Archive) Archive(ctx context.Context, runID, fdcID string, payload []byte) (string, error) {
	key := fmt.Sprintf("usda/%s/%s.json", runID, fdcID)
	objectKey, err := a.s3.UploadBytes(ctx, key, payload, "application/json")
	if err != nil {
		return "", fmt.Errorf("failed to archive %s: %w", fdcID, err)
	}
	return a.s3.GetPublicLinkKey(objectKey), nil
}
