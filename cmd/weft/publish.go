package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/spf13/cobra"

	"github.com/weft-dev/weft/internal/config"
	"github.com/weft-dev/weft/pkg/publish"
)

func publishCmd() *cobra.Command {
	var (
		bucket string
		region string
		prefix string
		prune  bool
		dryRun bool
	)

	cmd := &cobra.Command{
		Use:   "publish [dir]",
		Short: "Upload a built site to S3",
		Long: `Upload a built site directory to an S3 bucket.

The bucket, region, and key prefix come from the publish section
of weft.yaml; flags override the manifest. The directory defaults
to the build output directory. With --prune, remote keys that no
longer exist locally are deleted after the upload.

AWS credentials are resolved the usual way: environment,
~/.aws/credentials, or an attached role.

Examples:
  weft publish
  weft publish out --bucket=my-site --region=eu-west-1
  weft publish --prune
  weft publish --dry-run`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := ""
			if len(args) > 0 {
				dir = args[0]
			}
			return runPublish(dir, bucket, region, prefix,
				prune, cmd.Flags().Changed("prune"), dryRun)
		},
	}

	cmd.Flags().StringVar(&bucket, "bucket", "", "Target bucket (default from weft.yaml)")
	cmd.Flags().StringVar(&region, "region", "", "AWS region (default from weft.yaml)")
	cmd.Flags().StringVar(&prefix, "prefix", "", "Key prefix for uploaded objects")
	cmd.Flags().BoolVar(&prune, "prune", false, "Delete remote keys absent locally")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Report actions without touching the bucket")

	return cmd
}

func runPublish(dir, bucket, region, prefix string, prune, pruneSet, dryRun bool) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	// Apply command-line overrides
	if bucket != "" {
		cfg.Publish.Bucket = bucket
	}
	if region != "" {
		cfg.Publish.Region = region
	}
	if prefix != "" {
		cfg.Publish.Prefix = prefix
	}
	if pruneSet {
		cfg.Publish.Prune = prune
	}

	if cfg.Publish.Bucket == "" {
		return fmt.Errorf("no bucket configured: set publish.bucket in %s or pass --bucket", config.FileName)
	}
	if cfg.Publish.Region == "" {
		return fmt.Errorf("no region configured: set publish.region in %s or pass --region", config.FileName)
	}

	root := cfg.OutputPath()
	if dir != "" {
		root = dir
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(cfg.Publish.Region))
	if err != nil {
		return fmt.Errorf("load AWS config: %w", err)
	}

	pub, err := publish.NewS3(s3.NewFromConfig(awsCfg), cfg.Publish.Bucket,
		publish.WithPrefix(cfg.Publish.Prefix),
		publish.WithPrune(cfg.Publish.Prune),
		publish.WithDryRun(dryRun),
		publish.WithLogger(newLogger()),
	)
	if err != nil {
		return err
	}

	target := "s3://" + cfg.Publish.Bucket
	if cfg.Publish.Prefix != "" {
		target += "/" + cfg.Publish.Prefix
	}
	if dryRun {
		info("Dry run: publishing %s to %s", root, target)
	} else {
		info("Publishing %s to %s", root, target)
	}
	fmt.Println()

	res, err := pub.Upload(ctx, root)
	if err != nil {
		return err
	}

	fmt.Println()
	if dryRun {
		success("Would upload %d files (%s)", res.Uploaded, formatBytes(res.Bytes))
		if res.Deleted > 0 {
			success("Would prune %d stale objects", res.Deleted)
		}
		return nil
	}
	success("Uploaded %d files (%s)", res.Uploaded, formatBytes(res.Bytes))
	if res.Deleted > 0 {
		success("Pruned %d stale objects", res.Deleted)
	}
	return nil
}
