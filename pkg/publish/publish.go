// Package publish uploads rendered snapshots of component trees to S3.
//
// Example:
//
//	p, err := publish.NewFromConfig(ctx, "my-bucket",
//		publish.WithPrefix("snapshots/"),
//		publish.WithRegion("eu-west-1"))
//	if err != nil { ... }
//	key, err := p.Snapshot(ctx, m, nil)
package publish

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/trellis-ui/trellis/pkg/manifest"
	"github.com/trellis-ui/trellis/pkg/render"
)

// ErrNoRoot is returned when a manifest materializes to nothing.
var ErrNoRoot = errors.New("publish: manifest produced no root instance")

// S3API is the slice of the S3 client the publisher needs.
type S3API interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// Option configures a Publisher.
type Option func(*Publisher)

// WithPrefix sets the object key prefix for snapshots.
func WithPrefix(prefix string) Option {
	return func(p *Publisher) {
		p.prefix = prefix
	}
}

// WithRegion overrides the ambient AWS region. Only effective with
// NewFromConfig.
func WithRegion(region string) Option {
	return func(p *Publisher) {
		p.region = region
	}
}

// WithRenderer sets the renderer used for snapshot HTML.
func WithRenderer(r *render.Renderer) Option {
	return func(p *Publisher) {
		p.renderer = r
	}
}

// WithLogger sets the publisher's logger.
func WithLogger(logger *slog.Logger) Option {
	return func(p *Publisher) {
		p.logger = logger
	}
}

// Publisher renders manifests and uploads the HTML to an S3 bucket.
type Publisher struct {
	client   S3API
	bucket   string
	prefix   string
	region   string
	renderer *render.Renderer
	logger   *slog.Logger
	now      func() time.Time
}

// New creates a publisher over an existing S3 client.
func New(client S3API, bucket string, opts ...Option) *Publisher {
	p := &Publisher{
		client:   client,
		bucket:   bucket,
		renderer: render.New(render.Config{}),
		logger:   slog.Default(),
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// NewFromConfig creates a publisher using the ambient AWS configuration
// (environment, shared config files, instance role).
func NewFromConfig(ctx context.Context, bucket string, opts ...Option) (*Publisher, error) {
	p := New(nil, bucket, opts...)

	var loadOpts []func(*awsconfig.LoadOptions) error
	if p.region != "" {
		loadOpts = append(loadOpts, awsconfig.WithRegion(p.region))
	}
	cfg, err := awsconfig.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, fmt.Errorf("publish: load aws config: %w", err)
	}
	p.client = s3.NewFromConfig(cfg)
	return p, nil
}

// Snapshot materializes the manifest, renders the tree, and uploads the
// document. The returned key locates the uploaded object.
func (p *Publisher) Snapshot(ctx context.Context, m *manifest.Manifest, owner any) (string, error) {
	tree := m.Materialize(owner)
	defer tree.Destroy()
	tree.Startup()

	root := tree.Root()
	if root == nil {
		return "", ErrNoRoot
	}
	html, err := p.renderer.ToString(root.Node())
	if err != nil {
		return "", fmt.Errorf("publish: render: %w", err)
	}
	return p.PublishHTML(ctx, m.Name, html)
}

// PublishHTML uploads an HTML document under a timestamped key.
func (p *Publisher) PublishHTML(ctx context.Context, name, html string) (string, error) {
	key := p.snapshotKey(name)

	_, err := p.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(p.bucket),
		Key:         aws.String(key),
		Body:        strings.NewReader(html),
		ContentType: aws.String("text/html; charset=utf-8"),
		Metadata: map[string]string{
			"publish-time": p.now().UTC().Format(time.RFC3339),
		},
	})
	if err != nil {
		return "", fmt.Errorf("publish: upload %s: %w", key, err)
	}

	p.logger.Info("snapshot published", "bucket", p.bucket, "key", key, "bytes", len(html))
	return key, nil
}

// snapshotKey builds "<prefix><name>/<timestamp>.html". Nameless manifests
// publish under "snapshot".
func (p *Publisher) snapshotKey(name string) string {
	if name == "" {
		name = "snapshot"
	}
	stamp := p.now().UTC().Format("20060102-150405")
	return p.prefix + name + "/" + stamp + ".html"
}
