package main

import (
	"path/filepath"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/spf13/cobra"

	"github.com/tagtree-dev/tagtree/internal/config"
	"github.com/tagtree-dev/tagtree/pkg/publish"
)

func publishCmd() *cobra.Command {
	var (
		bucket string
		prefix string
		region string
	)

	cmd := &cobra.Command{
		Use:   "publish",
		Short: "Render and upload the document to S3",
		Long: `Render the document definition and upload the result to S3.

Credentials are resolved through the default AWS credential chain
(environment, shared config, instance role).

Examples:
  tagtree publish
  tagtree publish --bucket my-site --prefix pages/ --region eu-west-1`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(".")
			if err != nil {
				return err
			}
			if bucket == "" {
				bucket = cfg.Publish.Bucket
			}
			if prefix == "" {
				prefix = cfg.Publish.Prefix
			}
			if region == "" {
				region = cfg.Publish.Region
			}

			html, err := renderDocument(cfg.Document, cfg.Separator)
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			var opts []func(*awsconfig.LoadOptions) error
			if region != "" {
				opts = append(opts, awsconfig.WithRegion(region))
			}
			awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
			if err != nil {
				return err
			}

			pub := publish.NewS3Publisher(s3.NewFromConfig(awsCfg), bucket, prefix)
			key := filepath.Base(cfg.Output)

			info("uploading %d bytes to bucket %s", len(html), bucket)
			loc, err := pub.Publish(ctx, key, []byte(html))
			if err != nil {
				return err
			}

			success("published %s", loc)
			return nil
		},
	}

	cmd.Flags().StringVar(&bucket, "bucket", "", "S3 bucket (default from tagtree.json)")
	cmd.Flags().StringVar(&prefix, "prefix", "", "Key prefix (default from tagtree.json)")
	cmd.Flags().StringVar(&region, "region", "", "AWS region (default from tagtree.json)")

	return cmd
}
