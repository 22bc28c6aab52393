package storage

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"

	"institute/config"
	"institute/internal/domain/service"
)

func newTestStore(t *testing.T, maxSize int64) service.FileStore {
	t.Helper()

	cfg := &config.Config{
		Upload: &config.UploadConfig{
			Path:        t.TempDir(),
			MaxFileSize: maxSize,
		},
	}

	lc := fxtest.NewLifecycle(t)
	store, err := New(Params{Config: cfg, Lifecycle: lc})
	require.NoError(t, err)
	t.Cleanup(lc.RequireStop)

	return store
}

func TestBlobStore_SaveAndDelete(t *testing.T) {
	t.Parallel()

	store := newTestStore(t, 0)
	ctx := t.Context()

	key, err := store.Save(ctx, service.UploadBlogImage, "cover.PNG", strings.NewReader("image-bytes"))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(key, "blog-image/"))
	assert.True(t, strings.HasSuffix(key, ".png"))

	require.NoError(t, store.Delete(ctx, key))

	// Deleting an already-removed key is a no-op.
	assert.NoError(t, store.Delete(ctx, key))
}

func TestBlobStore_RejectsUnknownKind(t *testing.T) {
	t.Parallel()

	store := newTestStore(t, 0)

	_, err := store.Save(t.Context(), service.UploadKind("everything"), "x.pdf", strings.NewReader("data"))
	assert.Error(t, err)
}

func TestBlobStore_EnforcesMaxSize(t *testing.T) {
	t.Parallel()

	store := newTestStore(t, 8)
	ctx := t.Context()

	_, err := store.Save(ctx, service.UploadJobResume, "resume.pdf", strings.NewReader("well over eight bytes"))
	assert.Error(t, err)

	key, err := store.Save(ctx, service.UploadJobResume, "resume.pdf", strings.NewReader("8 bytes!"))
	require.NoError(t, err)
	assert.NotEmpty(t, key)
}

func TestBlobStore_UniquifiesNames(t *testing.T) {
	t.Parallel()

	store := newTestStore(t, 0)
	ctx := t.Context()

	first, err := store.Save(ctx, service.UploadTestimonialImage, "avatar.jpg", strings.NewReader("one"))
	require.NoError(t, err)
	second, err := store.Save(ctx, service.UploadTestimonialImage, "avatar.jpg", strings.NewReader("two"))
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestSanitizeExt(t *testing.T) {
	t.Parallel()

	assert.Equal(t, ".pdf", sanitizeExt("resume.pdf"))
	assert.Equal(t, ".png", sanitizeExt("../../escape.PNG"))
	assert.Equal(t, "", sanitizeExt("noext"))
	assert.Equal(t, "", sanitizeExt("weird.p df"))
}
