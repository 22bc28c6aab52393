// Package storage provides the blob-backed implementation of the file store.
package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"institute/config"
	"institute/internal/domain/service"
	"institute/internal/errors"

	"github.com/google/uuid"
	"go.uber.org/fx"
	"gocloud.dev/blob"
	"gocloud.dev/blob/fileblob"
	"gocloud.dev/gcerrors"
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
}

// blobStore implements service.FileStore on top of a gocloud blob bucket.
type blobStore struct {
	bucket  *blob.Bucket
	maxSize int64
}

// New opens a local fileblob bucket rooted at the configured upload path.
func New(params Params) (service.FileStore, error) {
	uploadCfg := params.Config.Upload
	if uploadCfg == nil || uploadCfg.Path == "" {
		return nil, errors.New("upload path is required")
	}

	absPath, err := filepath.Abs(uploadCfg.Path)
	if err != nil {
		return nil, errors.Wrap(err, "resolve upload path")
	}
	if err := os.MkdirAll(absPath, 0o755); err != nil {
		return nil, errors.Wrap(err, "create upload directory")
	}

	bucket, err := fileblob.OpenBucket(absPath, &fileblob.Options{
		CreateDir: true,
		Metadata:  fileblob.MetadataDontWrite,
	})
	if err != nil {
		return nil, errors.Wrap(err, "open upload bucket")
	}

	params.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return bucket.Close()
		},
	})

	return &blobStore{
		bucket:  bucket,
		maxSize: uploadCfg.MaxFileSize,
	}, nil
}

// Save writes the file under the kind's prefix with a uniquified name and
// returns the stored key.
func (s *blobStore) Save(ctx context.Context, kind service.UploadKind, filename string, r io.Reader) (string, error) {
	if !kind.IsValid() {
		return "", errors.Errorf("unknown upload kind: %s", kind)
	}

	key := fmt.Sprintf("%s/%s%s", kind, uuid.NewString(), sanitizeExt(filename))

	if s.maxSize > 0 {
		// One extra byte so an exactly-at-limit file still passes.
		r = io.LimitReader(r, s.maxSize+1)
	}

	w, err := s.bucket.NewWriter(ctx, key, nil)
	if err != nil {
		return "", errors.Wrap(err, "open blob writer")
	}

	written, err := io.Copy(w, r)
	if err != nil {
		_ = w.Close()

		return "", errors.Wrap(err, "write upload")
	}
	if err := w.Close(); err != nil {
		return "", errors.Wrap(err, "close blob writer")
	}

	if s.maxSize > 0 && written > s.maxSize {
		_ = s.bucket.Delete(ctx, key)

		return "", errors.Errorf("file exceeds maximum size of %d bytes", s.maxSize)
	}

	return key, nil
}

// Delete removes a previously stored file by key. A missing key is not an error.
func (s *blobStore) Delete(ctx context.Context, key string) error {
	if key == "" {
		return nil
	}

	if err := s.bucket.Delete(ctx, key); err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return nil
		}

		return errors.Wrap(err, "delete upload")
	}

	return nil
}

// sanitizeExt keeps only a short, safe file extension from the original name.
func sanitizeExt(filename string) string {
	ext := strings.ToLower(filepath.Ext(filepath.Base(filename)))
	if len(ext) > 10 {
		return ""
	}
	for _, r := range ext[min(len(ext), 1):] {
		if (r < 'a' || r > 'z') && (r < '0' || r > '9') {
			return ""
		}
	}

	return ext
}
