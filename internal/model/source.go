package model

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/redis/go-redis/v9"

	"creditrisk/pkg/platform/sentinel"
)

// Source fetches a serialized artifact by name. Missing artifacts are
// reported as sentinel.ErrNotFound.
type Source interface {
	Fetch(ctx context.Context, name string) ([]byte, error)
}

// FileSource reads artifacts from a directory.
type FileSource struct {
	dir string
}

func NewFileSource(dir string) *FileSource {
	return &FileSource{dir: dir}
}

func (s *FileSource) Fetch(_ context.Context, name string) ([]byte, error) {
	if name == "" || filepath.Base(name) != name {
		return nil, fmt.Errorf("invalid artifact name %q", name)
	}
	raw, err := os.ReadFile(filepath.Join(s.dir, name))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("artifact %s: %w", name, sentinel.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("read artifact %s: %w", name, err)
	}
	return raw, nil
}

// RedisSource reads artifacts stored as plain string values under
// prefix+name.
type RedisSource struct {
	client redis.Cmdable
	prefix string
}

func NewRedisSource(client redis.Cmdable, prefix string) *RedisSource {
	return &RedisSource{client: client, prefix: prefix}
}

func (s *RedisSource) Fetch(ctx context.Context, name string) ([]byte, error) {
	raw, err := s.client.Get(ctx, s.prefix+name).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, fmt.Errorf("artifact %s: %w", name, sentinel.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("artifact %s: %w: %v", name, sentinel.ErrUnavailable, err)
	}
	return raw, nil
}

// Put publishes an artifact. Used by tooling that promotes a trained model.
func (s *RedisSource) Put(ctx context.Context, name string, raw []byte) error {
	return s.client.Set(ctx, s.prefix+name, raw, 0).Err()
}
