package objectstore

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"path"
	"sort"
	"strings"

	"loadout-manager/core/cache"
	"loadout-manager/core/storage"

	"github.com/minio/minio-go/v7"
)

var _ cache.Store = (*Store)(nil)

// Store persists cache entries as objects named <prefix>/<namespace>/<key>.
type Store struct {
	client storage.Client
	bucket string
	prefix string
}

// New creates a Store on the given bucket.
func New(client storage.Client, bucket, prefix string) *Store {
	return &Store{
		client: client,
		bucket: bucket,
		prefix: strings.Trim(prefix, "/"),
	}
}

// Init creates the bucket when it does not exist yet. Namespaces are plain
// prefixes and need no preparation.
func (s *Store) Init(ctx context.Context, _ ...string) error {
	exists, err := s.client.BucketExists(ctx, s.bucket)
	if err != nil {
		return fmt.Errorf("check bucket %s: %w", s.bucket, err)
	}
	if exists {
		return nil
	}
	if err := s.client.MakeBucket(ctx, s.bucket, minio.MakeBucketOptions{}); err != nil {
		return fmt.Errorf("create bucket %s: %w", s.bucket, err)
	}
	return nil
}

// Get reads one object. A missing object is a miss, not an error.
func (s *Store) Get(ctx context.Context, namespace, key string) ([]byte, bool, error) {
	obj, err := s.client.GetObject(ctx, s.bucket, s.objectName(namespace, key), minio.GetObjectOptions{})
	if err != nil {
		if storage.IsNotFound(err) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("get %s/%s: %w", namespace, key, err)
	}
	defer obj.Close()

	data, err := io.ReadAll(obj)
	if err != nil {
		if storage.IsNotFound(err) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("read %s/%s: %w", namespace, key, err)
	}
	return data, true, nil
}

// Put writes the value, replacing any existing object.
func (s *Store) Put(ctx context.Context, namespace, key string, value []byte) error {
	_, err := s.client.PutObject(ctx, s.bucket, s.objectName(namespace, key),
		bytes.NewReader(value), int64(len(value)),
		minio.PutObjectOptions{ContentType: "application/json"})
	if err != nil {
		return fmt.Errorf("put %s/%s: %w", namespace, key, err)
	}
	return nil
}

// Add writes the value unconditionally. Object storage has no cheap
// insert-only primitive and callers clear the namespace before adding.
func (s *Store) Add(ctx context.Context, namespace, key string, value []byte) error {
	return s.Put(ctx, namespace, key, value)
}

// Keys lists the keys of a namespace in sorted order.
func (s *Store) Keys(ctx context.Context, namespace string) ([]string, error) {
	prefix := s.namespacePrefix(namespace)
	var keys []string
	for obj := range s.client.ListObjects(ctx, s.bucket, minio.ListObjectsOptions{Prefix: prefix, Recursive: true}) {
		if obj.Err != nil {
			return nil, fmt.Errorf("list %s: %w", namespace, obj.Err)
		}
		keys = append(keys, strings.TrimPrefix(obj.Key, prefix))
	}
	sort.Strings(keys)
	return keys, nil
}

// Clear removes every object of a namespace.
func (s *Store) Clear(ctx context.Context, namespace string) error {
	prefix := s.namespacePrefix(namespace)
	objectsCh := s.client.ListObjects(ctx, s.bucket, minio.ListObjectsOptions{Prefix: prefix, Recursive: true})

	var listErr error
	toRemove := make(chan minio.ObjectInfo)
	go func() {
		defer close(toRemove)
		for obj := range objectsCh {
			if obj.Err != nil {
				listErr = obj.Err
				continue
			}
			toRemove <- obj
		}
	}()

	var removeErr error
	for rErr := range s.client.RemoveObjects(ctx, s.bucket, toRemove, minio.RemoveObjectsOptions{}) {
		if removeErr == nil {
			removeErr = fmt.Errorf("remove %s: %w", rErr.ObjectName, rErr.Err)
		}
	}
	if removeErr != nil {
		return fmt.Errorf("clear %s: %w", namespace, removeErr)
	}
	if listErr != nil {
		return fmt.Errorf("clear %s: %w", namespace, listErr)
	}
	return nil
}

func (s *Store) namespacePrefix(namespace string) string {
	return path.Join(s.prefix, namespace) + "/"
}

func (s *Store) objectName(namespace, key string) string {
	return s.namespacePrefix(namespace) + key
}
