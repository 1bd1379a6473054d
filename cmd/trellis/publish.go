package main

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"github.com/trellis-ui/trellis/pkg/publish"
)

func publishCmd() *cobra.Command {
	var (
		bucket string
		region string
		prefix string
	)

	cmd := &cobra.Command{
		Use:   "publish [manifest]",
		Short: "Render a manifest and upload the snapshot to S3",
		Long: `Materialize a component manifest, render it, and upload the HTML
to an S3 bucket under a timestamped key.

Credentials come from the ambient AWS configuration (environment,
shared config files, instance role).

Examples:
  trellis publish --bucket my-site
  trellis publish app.yaml --bucket my-site --prefix snapshots/`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var manifestArg string
			if len(args) > 0 {
				manifestArg = args[0]
			}
			return runPublish(cmd.Context(), manifestArg, bucket, region, prefix)
		},
	}

	cmd.Flags().StringVarP(&bucket, "bucket", "b", "", "S3 bucket (default from trellis.json)")
	cmd.Flags().StringVar(&region, "region", "", "AWS region override")
	cmd.Flags().StringVar(&prefix, "prefix", "", "Object key prefix")

	return cmd
}

func runPublish(ctx context.Context, manifestArg, bucket, region, prefix string) error {
	cfg, m, err := loadProject(manifestArg)
	if err != nil {
		return err
	}
	if bucket == "" {
		bucket = cfg.Publish.Bucket
	}
	if bucket == "" {
		return errors.New("no bucket: pass --bucket or set publish.bucket in trellis.json")
	}
	if region == "" {
		region = cfg.Publish.Region
	}
	if prefix == "" {
		prefix = cfg.Publish.Prefix
	}
	if ctx == nil {
		ctx = context.Background()
	}

	p, err := publish.NewFromConfig(ctx, bucket,
		publish.WithRegion(region),
		publish.WithPrefix(prefix))
	if err != nil {
		return err
	}

	key, err := p.Snapshot(ctx, m, nil)
	if err != nil {
		return err
	}

	success("published s3://%s/%s", bucket, key)
	return nil
}
