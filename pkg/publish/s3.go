package publish

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"mime"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// ErrNoFiles is returned when the directory to upload contains no files.
var ErrNoFiles = errors.New("publish: no files to upload")

// S3API is the subset of the S3 client the publisher uses. *s3.Client
// satisfies it.
type S3API interface {
	s3.ListObjectsV2APIClient
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	DeleteObject(ctx context.Context, params *s3.DeleteObjectInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectOutput, error)
}

var _ S3API = (*s3.Client)(nil)

// Result reports what an upload run did. In dry-run mode the counts
// reflect what would have been done.
type Result struct {
	Uploaded int   // files uploaded
	Deleted  int   // stale remote keys removed by pruning
	Bytes    int64 // total bytes uploaded
}

// S3 uploads a built site directory to an S3 bucket.
type S3 struct {
	client S3API
	bucket string
	prefix string
	prune  bool
	dryRun bool
	logger *slog.Logger
}

// S3Option configures an S3 publisher.
type S3Option func(*S3)

// WithPrefix sets the key prefix uploads are placed under. Leading and
// trailing slashes are trimmed.
func WithPrefix(prefix string) S3Option {
	return func(p *S3) { p.prefix = strings.Trim(prefix, "/") }
}

// WithPrune enables deleting remote keys with no local counterpart
// after the upload pass.
func WithPrune(prune bool) S3Option {
	return func(p *S3) { p.prune = prune }
}

// WithDryRun reports what an upload would do without mutating the
// bucket.
func WithDryRun(dry bool) S3Option {
	return func(p *S3) { p.dryRun = dry }
}

// WithLogger sets the logger for progress output. Defaults to
// slog.Default().
func WithLogger(logger *slog.Logger) S3Option {
	return func(p *S3) { p.logger = logger }
}

// NewS3 returns a publisher that uploads to the given bucket through
// client.
func NewS3(client S3API, bucket string, opts ...S3Option) (*S3, error) {
	if client == nil {
		return nil, errors.New("publish: nil S3 client")
	}
	if bucket == "" {
		return nil, errors.New("publish: bucket required")
	}
	p := &S3{
		client: client,
		bucket: bucket,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p, nil
}

// Upload walks root and uploads every file under the configured key
// prefix, then prunes stale remote keys when pruning is enabled.
func (p *S3) Upload(ctx context.Context, root string) (*Result, error) {
	files, err := collectFiles(root)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("%w in %s", ErrNoFiles, root)
	}

	res := &Result{}
	local := make(map[string]bool, len(files))
	for _, rel := range files {
		local[rel] = true
		n, err := p.put(ctx, root, rel)
		if err != nil {
			return nil, err
		}
		res.Uploaded++
		res.Bytes += n
	}

	if p.prune {
		deleted, err := p.pruneRemote(ctx, local)
		if err != nil {
			return nil, err
		}
		res.Deleted = deleted
	}

	msg := "publish complete"
	if p.dryRun {
		msg = "publish dry run"
	}
	p.logger.Info(msg,
		"bucket", p.bucket,
		"uploaded", res.Uploaded,
		"deleted", res.Deleted,
		"bytes", res.Bytes,
	)
	return res, nil
}

func (p *S3) put(ctx context.Context, root, rel string) (int64, error) {
	data, err := os.ReadFile(filepath.Join(root, filepath.FromSlash(rel)))
	if err != nil {
		return 0, fmt.Errorf("publish: %w", err)
	}
	key := p.key(rel)
	ct := contentTypeFor(rel)

	if p.dryRun {
		p.logger.Info("would upload", "key", key, "content_type", ct, "bytes", len(data))
		return int64(len(data)), nil
	}

	_, err = p.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(p.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(ct),
	})
	if err != nil {
		return 0, fmt.Errorf("publish: put %s: %w", key, err)
	}
	p.logger.Debug("upload", "key", key, "content_type", ct, "bytes", len(data))
	return int64(len(data)), nil
}

// pruneRemote deletes remote keys under the prefix that have no local
// counterpart. It returns the number of stale keys found.
func (p *S3) pruneRemote(ctx context.Context, local map[string]bool) (int, error) {
	in := &s3.ListObjectsV2Input{Bucket: aws.String(p.bucket)}
	if p.prefix != "" {
		in.Prefix = aws.String(p.prefix + "/")
	}

	var stale []string
	paginator := s3.NewListObjectsV2Paginator(p.client, in)
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return 0, fmt.Errorf("publish: list %s: %w", p.bucket, err)
		}
		for _, obj := range page.Contents {
			key := aws.ToString(obj.Key)
			rel := key
			if p.prefix != "" {
				rel = strings.TrimPrefix(key, p.prefix+"/")
			}
			if !local[rel] {
				stale = append(stale, key)
			}
		}
	}

	for _, key := range stale {
		if p.dryRun {
			p.logger.Info("would delete", "key", key)
			continue
		}
		_, err := p.client.DeleteObject(ctx, &s3.DeleteObjectInput{
			Bucket: aws.String(p.bucket),
			Key:    aws.String(key),
		})
		if err != nil {
			return 0, fmt.Errorf("publish: delete %s: %w", key, err)
		}
		p.logger.Debug("delete", "key", key)
	}
	return len(stale), nil
}

// key maps a site-relative path to its object key under the prefix.
func (p *S3) key(rel string) string {
	if p.prefix == "" {
		return rel
	}
	return p.prefix + "/" + rel
}

// collectFiles walks root and returns the site-relative paths of every
// regular file, sorted. Dot-entries such as .git are skipped.
func collectFiles(root string) ([]string, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("publish: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("publish: %s is not a directory", root)
	}

	var files []string
	err = filepath.WalkDir(root, func(fp string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if fp != root && strings.HasPrefix(d.Name(), ".") {
				return fs.SkipDir
			}
			return nil
		}
		if strings.HasPrefix(d.Name(), ".") {
			return nil
		}
		rel, err := filepath.Rel(root, fp)
		if err != nil {
			return err
		}
		files = append(files, filepath.ToSlash(rel))
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("publish: walk %s: %w", root, err)
	}
	sort.Strings(files)
	return files, nil
}

// wellKnownTypes pins content types for the core site formats;
// mime.TypeByExtension varies with the host's mime database.
var wellKnownTypes = map[string]string{
	".html":  "text/html; charset=utf-8",
	".htm":   "text/html; charset=utf-8",
	".css":   "text/css; charset=utf-8",
	".js":    "text/javascript; charset=utf-8",
	".mjs":   "text/javascript; charset=utf-8",
	".json":  "application/json",
	".map":   "application/json",
	".xml":   "application/xml",
	".txt":   "text/plain; charset=utf-8",
	".svg":   "image/svg+xml",
	".png":   "image/png",
	".jpg":   "image/jpeg",
	".jpeg":  "image/jpeg",
	".gif":   "image/gif",
	".webp":  "image/webp",
	".avif":  "image/avif",
	".ico":   "image/x-icon",
	".woff":  "font/woff",
	".woff2": "font/woff2",
	".wasm":  "application/wasm",
	".pdf":   "application/pdf",
}

// contentTypeFor derives the upload content type from the file
// extension.
func contentTypeFor(name string) string {
	ext := strings.ToLower(path.Ext(name))
	if ct, ok := wellKnownTypes[ext]; ok {
		return ct
	}
	if ct := mime.TypeByExtension(ext); ct != "" {
		return ct
	}
	return "application/octet-stream"
}
