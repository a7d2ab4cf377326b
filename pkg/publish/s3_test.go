package publish_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"sync"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/weft-dev/weft/pkg/publish"
)

// fakeS3 implements publish.S3API in memory.
type fakeS3 struct {
	mu       sync.Mutex
	objects  map[string][]byte
	ctypes   map[string]string
	deleted  []string
	pageSize int   // list page size, 0 = everything in one page
	putErr   error // returned by PutObject when set
}

var _ publish.S3API = (*fakeS3)(nil)

func newFakeS3(keys ...string) *fakeS3 {
	f := &fakeS3{
		objects: make(map[string][]byte),
		ctypes:  make(map[string]string),
	}
	for _, k := range keys {
		f.objects[k] = []byte("remote")
	}
	return f
}

func (f *fakeS3) PutObject(ctx context.Context, in *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.putErr != nil {
		return nil, f.putErr
	}
	data, err := io.ReadAll(in.Body)
	if err != nil {
		return nil, err
	}
	f.objects[aws.ToString(in.Key)] = data
	f.ctypes[aws.ToString(in.Key)] = aws.ToString(in.ContentType)
	return &s3.PutObjectOutput{}, nil
}

func (f *fakeS3) DeleteObject(ctx context.Context, in *s3.DeleteObjectInput, _ ...func(*s3.Options)) (*s3.DeleteObjectOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	key := aws.ToString(in.Key)
	delete(f.objects, key)
	f.deleted = append(f.deleted, key)
	return &s3.DeleteObjectOutput{}, nil
}

func (f *fakeS3) ListObjectsV2(ctx context.Context, in *s3.ListObjectsV2Input, _ ...func(*s3.Options)) (*s3.ListObjectsV2Output, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var keys []string
	for k := range f.objects {
		if in.Prefix == nil || strings.HasPrefix(k, aws.ToString(in.Prefix)) {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)

	start := 0
	if in.ContinuationToken != nil {
		start, _ = strconv.Atoi(aws.ToString(in.ContinuationToken))
	}
	end := len(keys)
	if f.pageSize > 0 && start+f.pageSize < end {
		end = start + f.pageSize
	}

	out := &s3.ListObjectsV2Output{IsTruncated: aws.Bool(end < len(keys))}
	for _, k := range keys[start:end] {
		out.Contents = append(out.Contents, types.Object{Key: aws.String(k)})
	}
	if end < len(keys) {
		out.NextContinuationToken = aws.String(strconv.Itoa(end))
	}
	return out, nil
}

func (f *fakeS3) keys() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	var keys []string
	for k := range f.objects {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func writeSite(t *testing.T, files map[string]string) string {
	t.Helper()
	root := t.TempDir()
	for rel, content := range files {
		full := filepath.Join(root, filepath.FromSlash(rel))
		require.NoError(t, os.MkdirAll(filepath.Dir(full), 0755))
		require.NoError(t, os.WriteFile(full, []byte(content), 0644))
	}
	return root
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newPublisher(t *testing.T, client publish.S3API, opts ...publish.S3Option) *publish.S3 {
	t.Helper()
	opts = append([]publish.S3Option{publish.WithLogger(discardLogger())}, opts...)
	pub, err := publish.NewS3(client, "site-bucket", opts...)
	require.NoError(t, err)
	return pub
}

func TestS3Upload(t *testing.T) {
	files := map[string]string{
		"index.html":       "<html><body>home</body></html>",
		"about/index.html": "<html><body>about</body></html>",
		"css/app.css":      "body { margin: 0 }",
	}
	root := writeSite(t, files)
	fake := newFakeS3()
	pub := newPublisher(t, fake, publish.WithPrefix("site"))

	res, err := pub.Upload(context.Background(), root)
	require.NoError(t, err)

	assert.Equal(t, 3, res.Uploaded)
	assert.Equal(t, 0, res.Deleted)
	var wantBytes int64
	for _, content := range files {
		wantBytes += int64(len(content))
	}
	assert.Equal(t, wantBytes, res.Bytes)

	assert.Equal(t, []string{"site/about/index.html", "site/css/app.css", "site/index.html"}, fake.keys())
	assert.Equal(t, files["index.html"], string(fake.objects["site/index.html"]))
	assert.Equal(t, "text/html; charset=utf-8", fake.ctypes["site/index.html"])
	assert.Equal(t, "text/css; charset=utf-8", fake.ctypes["site/css/app.css"])
}

func TestS3UploadNoPrefix(t *testing.T) {
	root := writeSite(t, map[string]string{"index.html": "x"})
	fake := newFakeS3()
	pub := newPublisher(t, fake)

	_, err := pub.Upload(context.Background(), root)
	require.NoError(t, err)
	assert.Equal(t, []string{"index.html"}, fake.keys())
}

func TestS3ContentTypes(t *testing.T) {
	root := writeSite(t, map[string]string{
		"app.js":      "console.log(1)",
		"data.json":   "{}",
		"feed.xml":    "<feed/>",
		"logo.svg":    "<svg/>",
		"favicon.ico": "ico",
		"font.woff2":  "wf2",
		"blob.bin":    "raw",
	})
	fake := newFakeS3()
	pub := newPublisher(t, fake)

	_, err := pub.Upload(context.Background(), root)
	require.NoError(t, err)

	want := map[string]string{
		"app.js":      "text/javascript; charset=utf-8",
		"data.json":   "application/json",
		"feed.xml":    "application/xml",
		"logo.svg":    "image/svg+xml",
		"favicon.ico": "image/x-icon",
		"font.woff2":  "font/woff2",
		"blob.bin":    "application/octet-stream",
	}
	for key, ct := range want {
		assert.Equal(t, ct, fake.ctypes[key], "content type for %s", key)
	}
}

func TestS3Prune(t *testing.T) {
	root := writeSite(t, map[string]string{"index.html": "new"})
	fake := newFakeS3("site/index.html", "site/old/page.html", "other/keep.html")
	pub := newPublisher(t, fake, publish.WithPrefix("site"), publish.WithPrune(true))

	res, err := pub.Upload(context.Background(), root)
	require.NoError(t, err)

	assert.Equal(t, 1, res.Uploaded)
	assert.Equal(t, 1, res.Deleted)
	assert.Equal(t, []string{"site/old/page.html"}, fake.deleted)
	assert.Equal(t, []string{"other/keep.html", "site/index.html"}, fake.keys(),
		"keys outside the prefix must survive pruning")
}

func TestS3PrunePaginates(t *testing.T) {
	root := writeSite(t, map[string]string{"index.html": "new"})
	fake := newFakeS3("site/a.html", "site/b.html", "site/c.html", "site/index.html")
	fake.pageSize = 1
	pub := newPublisher(t, fake, publish.WithPrefix("site"), publish.WithPrune(true))

	res, err := pub.Upload(context.Background(), root)
	require.NoError(t, err)

	assert.Equal(t, 3, res.Deleted)
	assert.ElementsMatch(t, []string{"site/a.html", "site/b.html", "site/c.html"}, fake.deleted)
}

func TestS3DryRun(t *testing.T) {
	root := writeSite(t, map[string]string{"index.html": "new"})
	fake := newFakeS3("site/stale.html")
	pub := newPublisher(t, fake,
		publish.WithPrefix("site"),
		publish.WithPrune(true),
		publish.WithDryRun(true),
	)

	res, err := pub.Upload(context.Background(), root)
	require.NoError(t, err)

	assert.Equal(t, 1, res.Uploaded)
	assert.Equal(t, 1, res.Deleted)
	assert.Equal(t, int64(3), res.Bytes)
	assert.Empty(t, fake.deleted)
	assert.Equal(t, []string{"site/stale.html"}, fake.keys(), "dry run must not touch the bucket")
}

func TestS3SkipsDotEntries(t *testing.T) {
	root := writeSite(t, map[string]string{
		"index.html": "x",
		".DS_Store":  "junk",
		".git/HEAD":  "ref: refs/heads/main",
	})
	fake := newFakeS3()
	pub := newPublisher(t, fake)

	res, err := pub.Upload(context.Background(), root)
	require.NoError(t, err)
	assert.Equal(t, 1, res.Uploaded)
	assert.Equal(t, []string{"index.html"}, fake.keys())
}

func TestS3EmptyDir(t *testing.T) {
	pub := newPublisher(t, newFakeS3())

	_, err := pub.Upload(context.Background(), t.TempDir())
	assert.ErrorIs(t, err, publish.ErrNoFiles)
}

func TestS3PutError(t *testing.T) {
	root := writeSite(t, map[string]string{"index.html": "x"})
	fake := newFakeS3()
	fake.putErr = errors.New("access denied")
	pub := newPublisher(t, fake)

	_, err := pub.Upload(context.Background(), root)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "index.html")
	assert.Contains(t, err.Error(), "access denied")
}

func TestNewS3Validation(t *testing.T) {
	_, err := publish.NewS3(nil, "bucket")
	assert.Error(t, err)

	_, err = publish.NewS3(newFakeS3(), "")
	assert.Error(t, err)
}
