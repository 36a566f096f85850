package checks

import (
	"context"
	"fmt"

	"loadout-manager/core/cache/objectstore"
	"loadout-manager/core/storage"

	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

// StorageReport describes the cache bucket.
type StorageReport struct {
	Bucket  string         `json:"bucket"`
	Exists  bool           `json:"exists"`
	Objects map[string]int `json:"objects"`
	Missing []string       `json:"missing"`
}

// CheckStorage counts the cached objects of every namespace. Namespaces
// without objects are reported missing.
func CheckStorage(ctx context.Context, client storage.Client, bucket, prefix string, namespaces []string) (*StorageReport, error) {
	report := &StorageReport{
		Bucket:  bucket,
		Objects: make(map[string]int),
		Missing: []string{},
	}

	exists, err := client.BucketExists(ctx, bucket)
	if err != nil {
		return nil, fmt.Errorf("failed to check bucket existence: %w", err)
	}
	if !exists {
		report.Missing = append(report.Missing, namespaces...)
		return report, nil
	}
	report.Exists = true

	store := objectstore.New(client, bucket, prefix)
	for _, ns := range namespaces {
		keys, err := store.Keys(ctx, ns)
		if err != nil {
			return nil, fmt.Errorf("failed to list namespace %s: %w", ns, err)
		}
		report.Objects[ns] = len(keys)
		if len(keys) == 0 {
			report.Missing = append(report.Missing, ns)
		}
	}

	return report, nil
}

// FixStorage creates the bucket when it does not exist.
func FixStorage(ctx context.Context, client storage.Client, bucket string, logger *zap.Logger) error {
	exists, err := client.BucketExists(ctx, bucket)
	if err != nil {
		return fmt.Errorf("failed to check bucket existence: %w", err)
	}
	if exists {
		return nil
	}
	if err := client.MakeBucket(ctx, bucket, minio.MakeBucketOptions{}); err != nil {
		logger.Error("Failed to create bucket", zap.String("bucket", bucket), zap.Error(err))
		return err
	}
	logger.Info("Created missing bucket", zap.String("bucket", bucket))
	return nil
}
